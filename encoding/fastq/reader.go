package fastq

import (
	"io"

	"github.com/0820LL/biopython/encoding/seq"
)

// Reader decodes FASTQ records under one dialect. It consumes the
// tokenizer's raw triples, decodes each quality character under the
// dialect's offset, validates the decoded scores against the dialect's
// range and attaches them to the record under the dialect's annotation
// key. No cross-dialect conversion happens on read: a Solexa file yields
// Solexa-scale scores.
type Reader struct {
	// Title overrides the default title parsing (seq.ParseTitle). Set it
	// before the first Scan.
	Title seq.TitleFunc

	sc      *Scanner
	dialect Dialect
	err     error
}

// NewReader constructs a Reader for the given dialect.
func NewReader(r io.Reader, d Dialect) *Reader {
	return &Reader{Title: seq.ParseTitle, sc: NewScanner(r), dialect: d}
}

// Scan decodes the next record into rec. Scan returns a boolean
// indicating whether the scan succeeded; once it returns false it never
// returns true again. Check Err upon completion.
func (r *Reader) Scan(rec *seq.Record) bool {
	if r.err != nil {
		return false
	}
	var raw Raw
	if !r.sc.Scan(&raw) {
		r.err = r.sc.Err()
		return false
	}
	scores := make([]seq.Score, len(raw.Qual))
	for i := 0; i < len(raw.Qual); i++ {
		q := scoreFromChar(raw.Qual[i], r.dialect.Offset)
		if err := r.dialect.validate(raw.Title, q); err != nil {
			r.err = err
			return false
		}
		scores[i] = seq.NewScore(float64(q))
	}
	id, name, description := r.Title(raw.Title)
	*rec = *seq.NewRecord(raw.Seq, id, name, description)
	if err := rec.SetLetterAnnotation(r.dialect.Key, scores); err != nil {
		// Unreachable for tokenizer output: len(Qual) == len(Seq) holds
		// for every Raw the Scanner yields.
		r.err = err
		return false
	}
	return true
}

// Err returns the reading error, if any.
func (r *Reader) Err() error {
	return r.err
}
