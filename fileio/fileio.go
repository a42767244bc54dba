package fileio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/agentstation/unittok"
)

// ReadBatch reads a whitespace-per-line integer batch from path. Blank
// lines are skipped rather than producing an empty sequence.
func ReadBatch(path string) (unittok.Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fileio: read %s: %w", path, err)
	}
	defer f.Close()

	batch, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("fileio: read %s: %w", path, err)
	}
	return batch, nil
}

// Read parses a whitespace-per-line integer batch from r.
func Read(r io.Reader) (unittok.Batch, error) {
	var batch unittok.Batch
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		seq := make(unittok.Sequence, len(fields))
		for i, f := range fields {
			u, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			seq[i] = u
		}
		batch = append(batch, seq)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return batch, nil
}

// WriteBatch writes b to path as whitespace-per-line integers, one
// sequence per line.
func WriteBatch(path string, b unittok.Batch) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fileio: write %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, b); err != nil {
		return fmt.Errorf("fileio: write %s: %w", path, err)
	}
	return nil
}

// Write serializes b to w as whitespace-per-line integers.
func Write(w io.Writer, b unittok.Batch) error {
	bw := bufio.NewWriter(w)
	for _, seq := range b {
		for i, u := range seq {
			if i > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.Itoa(u)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
