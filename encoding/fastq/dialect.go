package fastq

import (
	"github.com/0820LL/biopython/encoding/seq"
	"github.com/pkg/errors"
)

// A Dialect is the immutable configuration of one FASTQ quality encoding:
// the ASCII offset, the score scale, the valid decoded range and the
// letter-annotation key records store their scores under. The three
// dialects share one grammar; only quality interpretation differs.
type Dialect struct {
	// Name is the conventional format name, e.g. "fastq-sanger".
	Name string
	// Offset is the ASCII offset added to a score when encoding.
	Offset int
	// SolexaScale is true when scores are on the Solexa scale rather than
	// PHRED.
	SolexaScale bool
	// Min and Max bound valid decoded scores. Max < Min means unbounded
	// above.
	Min, Max int
	// Key is the annotation key scores are stored under.
	Key string

	// hint names the likely true dialect when validation fails, since
	// mislabeled files are the primary real-world failure mode.
	hint string
}

var (
	// Sanger is standard FASTQ: PHRED scores with ASCII offset 33.
	Sanger = Dialect{
		Name:   "fastq-sanger",
		Offset: SangerOffset,
		Min:    0,
		Max:    93,
		Key:    seq.PhredQuality,
		hint: "your file is probably not in the standard Sanger FASTQ format; " +
			"check if it is one of the Solexa/Illumina variants instead",
	}
	// Solexa is the early Solexa/Illumina pipeline format: Solexa-scale
	// scores with ASCII offset 64. Scores can be negative, down to -5.
	Solexa = Dialect{
		Name:        "fastq-solexa",
		Offset:      SolexaOffset,
		SolexaScale: true,
		Min:         -5,
		Max:         -6, // unbounded above
		Key:         seq.SolexaQuality,
		hint: "your file is probably not in the original Solexa (or early Illumina) " +
			"format; check if it is a standard Sanger FASTQ file",
	}
	// Illumina is the Illumina 1.3+ pipeline format: PHRED scores with
	// ASCII offset 64.
	Illumina = Dialect{
		Name:   "fastq-illumina",
		Offset: SolexaOffset,
		Min:    0,
		Max:    93,
		Key:    seq.PhredQuality,
		hint: "your file is probably not in the Illumina 1.3+ FASTQ format; " +
			"check if it is a standard Sanger FASTQ file or from an older " +
			"Solexa/Illumina pipeline",
	}
)

// validate checks one decoded score against the dialect's valid band.
func (d Dialect) validate(title string, score int) error {
	if score < d.Min || (d.Max >= d.Min && score > d.Max) {
		return errors.Wrapf(ErrOutOfRange,
			"record %q: %s quality score %d outside valid range: %s",
			title, d.Name, score, d.hint)
	}
	return nil
}
