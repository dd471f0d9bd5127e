package fastq

import (
	"io"

	"github.com/0820LL/biopython/encoding/seq"
	"github.com/pkg/errors"
)

// PhredScores resolves the PHRED-scale scores of a record: the
// "phred_quality" annotation if present, otherwise the "solexa_quality"
// annotation converted score by score. ErrMissingScores is returned when
// the record carries neither.
func PhredScores(rec *seq.Record) ([]seq.Score, error) {
	if scores, ok := rec.LetterAnnotation(seq.PhredQuality); ok {
		return scores, nil
	}
	if solexa, ok := rec.LetterAnnotation(seq.SolexaQuality); ok {
		scores := make([]seq.Score, len(solexa))
		for i, s := range solexa {
			scores[i] = PhredFromSolexa(s)
		}
		return scores, nil
	}
	return nil, errors.Wrapf(ErrMissingScores, "record %q", rec.ID)
}

// SolexaScores resolves the Solexa-scale scores of a record: the
// "solexa_quality" annotation if present, otherwise the "phred_quality"
// annotation converted score by score. ErrMissingScores is returned when
// the record carries neither.
func SolexaScores(rec *seq.Record) ([]seq.Score, error) {
	if scores, ok := rec.LetterAnnotation(seq.SolexaQuality); ok {
		return scores, nil
	}
	if phred, ok := rec.LetterAnnotation(seq.PhredQuality); ok {
		scores := make([]seq.Score, len(phred))
		for i, s := range phred {
			converted, err := SolexaFromPhred(s)
			if err != nil {
				return nil, errors.Wrapf(err, "record %q", rec.ID)
			}
			scores[i] = converted
		}
		return scores, nil
	}
	return nil, errors.Wrapf(ErrMissingScores, "record %q", rec.ID)
}

// Writer emits records as FASTQ under one dialect, one physical line per
// logical line. Output is normalized rather than a byte-faithful echo of
// any input: the '+' line is always bare and sequence and quality are
// never wrapped.
type Writer struct {
	w       io.Writer
	dialect Dialect
	err     error
}

// NewWriter constructs a FASTQ writer for the given dialect.
func NewWriter(w io.Writer, d Dialect) *Writer {
	return &Writer{w: w, dialect: d}
}

// Write writes one record. Scores on the writer's native scale are
// preferred; scores on the other scale are converted. A record with no
// quality annotation at all fails with ErrMissingScores, and any single
// absent score fails the whole record with ErrMissingScore before
// anything is emitted.
func (w *Writer) Write(rec *seq.Record) error {
	if w.err != nil {
		return w.err
	}
	var (
		scores []seq.Score
		err    error
	)
	if w.dialect.SolexaScale {
		scores, err = SolexaScores(rec)
	} else {
		scores, err = PhredScores(rec)
	}
	if err != nil {
		return err
	}
	if len(scores) != len(rec.Seq) {
		return errors.Wrapf(ErrLengthMismatch,
			"record %q has sequence length %d but %d quality scores",
			rec.ID, len(rec.Seq), len(scores))
	}
	qual := make([]byte, len(scores))
	for i, s := range scores {
		c, err := charFromScore(s, w.dialect.Offset)
		if err != nil {
			return errors.Wrapf(err, "record %q", rec.ID)
		}
		qual[i] = c
	}
	w.writeln("@" + rec.Title())
	w.writeln(rec.Seq)
	w.writeln("+")
	w.writeln(string(qual))
	return w.err
}

var newline = []byte{'\n'}

func (w *Writer) writeln(line string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, line)
	if w.err == nil {
		_, w.err = w.w.Write(newline)
	}
}
