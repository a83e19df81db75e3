package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is a single parsed sequence record. ID is the first
// whitespace-delimited token of the header, Description the remainder.
// Qual is only populated for FASTQ input.
type Record struct {
	ID          string
	Description string
	Seq         string
	Qual        string
}

// Read parses FASTA records from r. Lines beginning with '>' start a
// record; subsequent lines are concatenated into its sequence. Blank
// lines are ignored and line endings may be CRLF. An input with no
// records yields ErrEmptyInput.
func Read(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var records []Record
	var cur *Record
	var seq strings.Builder
	flush := func() {
		if cur != nil {
			cur.Seq = seq.String()
			records = append(records, *cur)
			seq.Reset()
		}
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, ">"):
			flush()
			id, desc := splitHeader(line[1:])
			cur = &Record{ID: id, Description: desc}
		case cur == nil:
			return nil, ErrMissingHeader
		default:
			seq.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fasta: read: %w", err)
	}
	flush()

	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	return records, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fasta: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// splitHeader separates a header line into ID and description.
func splitHeader(h string) (id, desc string) {
	h = strings.TrimSpace(h)
	if k := strings.IndexAny(h, " \t"); k >= 0 {
		return h[:k], strings.TrimSpace(h[k+1:])
	}

	return h, ""
}
