// Package seq provides the sequence record container shared by the FASTQ,
// QUAL and FASTA codecs: a record is an identified sequence plus named
// per-letter annotations such as quality scores.
package seq

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Letter-annotation keys used by the quality codecs. Scores stored under
// PhredQuality are on the PHRED scale; scores under SolexaQuality are on
// the Solexa scale. No automatic conversion happens on attachment.
const (
	PhredQuality  = "phred_quality"
	SolexaQuality = "solexa_quality"
)

// ErrLengthMismatch is returned when a per-letter annotation does not have
// one value per sequence letter.
var ErrLengthMismatch = errors.New("annotation length does not match sequence length")

// A Score is a single per-letter quality value. The zero value represents
// a missing score, which propagates losslessly through scale conversions.
type Score struct {
	v  float64
	ok bool
}

// NewScore returns a present Score holding v.
func NewScore(v float64) Score { return Score{v: v, ok: true} }

// Missing reports whether the score is absent.
func (s Score) Missing() bool { return !s.ok }

// Value returns the numeric value. It is only meaningful when the score is
// present.
func (s Score) Value() float64 { return s.v }

// Int returns the value rounded to the nearest integer, ties away from
// zero.
func (s Score) Int() int { return int(math.Round(s.v)) }

// A TitleFunc splits a record title line (without its leading marker
// character) into an ID, a display name and a free-form description.
type TitleFunc func(title string) (id, name, description string)

// ParseTitle is the default TitleFunc: the whole title becomes the
// description, and its first whitespace-separated word the ID and name.
func ParseTitle(title string) (id, name, description string) {
	description = title
	if fields := strings.Fields(title); len(fields) > 0 {
		id = fields[0]
	}
	name = id
	return id, name, description
}

// A Record is a sequence with an identity and optional named per-letter
// annotations. Records produced by QUAL-only parsing carry an empty Seq;
// for those, annotation lengths are not checked against the sequence.
type Record struct {
	ID          string
	Name        string
	Description string
	Seq         string

	annotations map[string][]Score
}

// NewRecord constructs a Record.
func NewRecord(sequence, id, name, description string) *Record {
	return &Record{ID: id, Name: name, Description: description, Seq: sequence}
}

// SetLetterAnnotation attaches scores under key, overwriting any previous
// annotation with that key. When the record has a sequence, the score
// count must equal the sequence length.
func (r *Record) SetLetterAnnotation(key string, scores []Score) error {
	if r.Seq != "" && len(scores) != len(r.Seq) {
		return errors.Wrapf(ErrLengthMismatch,
			"record %q has sequence length %d but %d scores", r.ID, len(r.Seq), len(scores))
	}
	if r.annotations == nil {
		r.annotations = make(map[string][]Score)
	}
	r.annotations[key] = scores
	return nil
}

// LetterAnnotation returns the scores stored under key, if any.
func (r *Record) LetterAnnotation(key string) ([]Score, bool) {
	scores, ok := r.annotations[key]
	return scores, ok
}

// Title returns the header text written for the record: the description
// verbatim if its first word is already the ID, "ID description"
// otherwise, or the bare ID when there is no description.
func (r *Record) Title() string {
	if r.Description == "" {
		return r.ID
	}
	if fields := strings.Fields(r.Description); len(fields) > 0 && fields[0] == r.ID {
		return r.Description
	}
	return r.ID + " " + r.Description
}
