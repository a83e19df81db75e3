package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadFastq parses FASTQ records from r: four lines per record — an
// '@'-headed identifier, the sequence, a '+' separator, and a quality
// string of the same length as the sequence. Structural violations
// yield ErrBadFormat; an input with no records yields ErrEmptyInput.
//
// Multi-line sequences (legal but rare in FASTQ) are not supported.
func ReadFastq(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var records []Record
	var lines [4]string
	n := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if n == 0 && line == "" {
			continue // tolerate blank lines between records
		}
		lines[n] = line
		n++
		if n < 4 {
			continue
		}
		n = 0

		rec, err := parseFastq(lines, len(records)+1)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fasta: read fastq: %w", err)
	}
	if n != 0 {
		return nil, fmt.Errorf("%w: truncated record at end of input", ErrBadFormat)
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	return records, nil
}

func parseFastq(lines [4]string, recNo int) (Record, error) {
	if !strings.HasPrefix(lines[0], "@") {
		return Record{}, fmt.Errorf("%w: record %d: header must start with '@'", ErrBadFormat, recNo)
	}
	if !strings.HasPrefix(lines[2], "+") {
		return Record{}, fmt.Errorf("%w: record %d: separator must start with '+'", ErrBadFormat, recNo)
	}
	if len(lines[3]) != len(lines[1]) {
		return Record{}, fmt.Errorf("%w: record %d: quality length %d != sequence length %d",
			ErrBadFormat, recNo, len(lines[3]), len(lines[1]))
	}

	id, desc := splitHeader(lines[0][1:])

	return Record{ID: id, Description: desc, Seq: lines[1], Qual: lines[3]}, nil
}
