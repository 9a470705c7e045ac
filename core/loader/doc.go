// Package loader turns raw input files into generically decoded documents.
//
// Each loader is a named parsing strategy registered at startup; the chosen
// loader is applied uniformly to every input of a run.
//
// # Loaders
//
//   - "yaml": the whole file is one YAML document.
//   - "json_lastrow": only the final non-empty line is parsed as JSON. Suits
//     loggers that append a summary object as their last line.
//   - "json_rows": every line is parsed as an independent JSON value; the file
//     becomes a sequence indexed by line number.
//
// # Fetching
//
// A Fetcher resolves input paths to raw bytes. Plain paths read from the
// local filesystem; s3://bucket/object paths read from object storage via
// core/storage.
package loader
