package cmd

import (
	"fmt"

	"log-merger/core/loader"
	"log-merger/core/merge"

	"github.com/spf13/cobra"
)

// formatsCmd represents the formats command
var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported input formats and loaders",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Formats:")
		for _, id := range merge.Formats() {
			fmt.Printf("  %d  %s\n", id, merge.Descriptions[id])
		}
		fmt.Println("Loaders:")
		for _, name := range loader.Names() {
			fmt.Printf("  %s\n", name)
		}
	},
}

func init() {
	RootCmd.AddCommand(formatsCmd)
}
