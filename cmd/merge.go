package cmd

import (
	"fmt"
	"os"
	"strings"

	"log-merger/core/config"
	"log-merger/core/loader"
	"log-merger/core/logger"
	"log-merger/core/merge"
	"log-merger/core/output"
	"log-merger/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	formatFlag int
	loaderFlag string
	nestedFlag []string
	outFlag    string
	forceFlag  bool
)

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge --format N --out FILE input...",
	Short: "Merge log files and save per-key mean and standard deviation",
	Long: `Merge multiple log files into one CSV of aggregate statistics.

Inputs may be local paths or s3://bucket/object URLs. The chosen loader is
applied to every input. Use --nested to select comma-separated feature paths
for format 3; formats 0-2 merge top-level values and reject --nested.

Run "log-merger formats" for a description of every format and loader.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		logg = logger.WithRunID(logg)
		defer logg.Sync()

		// Resolve strategies before touching anything on disk
		merger, err := merge.ForFormat(formatFlag)
		if err != nil {
			return err
		}
		loaderName := loaderFlag
		if loaderName == "" {
			loaderName = cfg.Merge.Loader
		}
		load, err := loader.Get(loaderName)
		if err != nil {
			return err
		}

		if !forceFlag && !cfg.Merge.Force {
			ok, err := output.ConfirmOverwrite(outFlag, os.Stdin, os.Stdout)
			if err != nil {
				return err
			}
			if !ok {
				logg.Info("aborted, output left untouched", zap.String("out", outFlag))
				return nil
			}
		}

		fetcher := &loader.Fetcher{}
		if anyRemote(args) {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
			fetcher.Storage = client
		}

		docs := make([]merge.Document, len(args))
		for i, path := range args {
			raw, err := fetcher.Read(ctx, path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			doc, err := load(raw)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", path, err)
			}
			docs[i] = doc
		}
		logg.Info("inputs loaded",
			zap.Int("files", len(docs)),
			zap.String("loader", loaderName),
			zap.Int("format", formatFlag))

		res, err := merger.Merge(docs, nestedFlag)
		if err != nil {
			return err
		}

		if err := output.WriteFile(outFlag, res); err != nil {
			return err
		}
		logg.Info("statistics written",
			zap.String("out", outFlag),
			zap.Int("rows", len(res.Rows)))
		return nil
	},
}

// anyRemote reports whether any input path points at object storage.
func anyRemote(paths []string) bool {
	for _, path := range paths {
		if strings.HasPrefix(path, "s3://") {
			return true
		}
	}
	return false
}

func init() {
	RootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().IntVar(&formatFlag, "format", 0, "format of the input log files (see \"log-merger formats\")")
	mergeCmd.Flags().StringVar(&loaderFlag, "loader", "", "how to parse each input file (default from MERGE_LOADER or \"yaml\")")
	// StringArray, not StringSlice: commas separate the key segments inside
	// one feature path, so the flag must be repeated per feature
	mergeCmd.Flags().StringArrayVar(&nestedFlag, "nested", nil, "comma-separated key path of a nested feature to extract, repeatable (format 3 only)")
	mergeCmd.Flags().StringVar(&outFlag, "out", "", "output CSV file")
	mergeCmd.Flags().BoolVar(&forceFlag, "force", false, "overwrite the output file without asking")
	_ = mergeCmd.MarkFlagRequired("format")
	_ = mergeCmd.MarkFlagRequired("out")
}
