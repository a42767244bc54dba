package bpecmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/agentstation/unittok"
	"github.com/agentstation/unittok/fileio"
)

// readInput loads a batch from path, or from stdin when path is empty.
func readInput(path string) (unittok.Batch, error) {
	if path == "" {
		return fileio.Read(os.Stdin)
	}
	return fileio.ReadBatch(path)
}

// writeOutput writes batch to path in the whitespace-per-line file format,
// or to stdout using the given --format when path is empty.
func writeOutput(path, format string, batch unittok.Batch) error {
	if path != "" {
		return fileio.WriteBatch(path, batch)
	}

	switch format {
	case "json":
		data, err := json.Marshal(batch)
		if err != nil {
			return fmt.Errorf("marshal output: %w", err)
		}
		fmt.Println(string(data))
	case "newline":
		for _, seq := range batch {
			for _, u := range seq {
				fmt.Println(u)
			}
		}
	case "space", "":
		return fileio.Write(os.Stdout, batch)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
	return nil
}
