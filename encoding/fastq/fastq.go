// Package fastq parses and emits FASTQ sequencing reads in the three
// quality encodings found in the wild: Sanger PHRED (ASCII offset 33),
// Illumina 1.3+ PHRED (offset 64) and the legacy Solexa scale (offset 64).
//
// The grammar is shared by all three variants, so a single tokenizer
// (Scanner) splits the byte stream into raw title/sequence/quality triples
// and the per-dialect readers only differ in how they decode and validate
// the quality characters.
package fastq

import "github.com/pkg/errors"

var (
	// ErrMalformedRecord is returned when a stream violates the FASTQ
	// grammar, e.g. a record that does not start with '@' or ends before
	// its quality block.
	ErrMalformedRecord = errors.New("malformed FASTQ record")
	// ErrTitleMismatch is returned when the optional title repeated on the
	// '+' line differs from the '@' line title.
	ErrTitleMismatch = errors.New("sequence and quality titles differ")
	// ErrLengthMismatch is returned when a record's quality text and
	// sequence end up with different lengths.
	ErrLengthMismatch = errors.New("sequence and quality lengths differ")
	// ErrOutOfRange is returned when a decoded quality score falls outside
	// the dialect's valid band. This usually means the file is in one of
	// the other FASTQ variants.
	ErrOutOfRange = errors.New("quality score out of range")
	// ErrInvalidScore is returned for scores no encoding can represent,
	// such as a negative PHRED quality.
	ErrInvalidScore = errors.New("invalid quality score")
	// ErrMissingScore is returned when a single absent score is found
	// while encoding a record.
	ErrMissingScore = errors.New("missing quality score")
	// ErrMissingScores is returned when a record carries no quality
	// annotation a writer could use.
	ErrMissingScores = errors.New("no suitable quality scores")
)
