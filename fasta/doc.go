// Package fasta reads FASTA and FASTQ formatted sequence data into
// plain in-memory records.
//
// Parsing is intentionally simple and conservative: headers and raw
// symbol strings come out, nothing is validated beyond structure.
// Records feed the align and seq packages, which only care about symbol
// content.
//
// ⚙️ Usage:
//
//	records, err := fasta.ReadFile("genome.fa")
//	if err != nil {
//	  // handle ErrEmptyInput / ErrMissingHeader / I/O errors
//	}
//	for _, r := range records {
//	  fmt.Println(r.ID, len(r.Seq))
//	}
package fasta
