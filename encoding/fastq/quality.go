package fastq

import (
	"math"

	"github.com/0820LL/biopython/encoding/seq"
	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
)

// ASCII offsets of the FASTQ quality encodings.
const (
	SangerOffset = 33 // '!'
	SolexaOffset = 64 // '@'
)

// SolexaFromPhred converts a PHRED quality to the Solexa scale.
//
// Both scales are log transformations of an error probability, so the
// conversion goes through the probability domain:
//
//	solexa = 10*log10(10^(phred/10) - 1)
//
// Real Solexa data floors at -5: a uniformly random base call is correct
// 25% of the time, which is PHRED 1.25 or Solexa -4.77, so anything below
// -5 carries no information. The formula is undefined at phred 0 (an
// error probability of 1), which also maps to -5. A missing score stays
// missing; a negative PHRED quality is an error.
//
// The result is a real number; round it if an integer is needed.
func SolexaFromPhred(phred seq.Score) (seq.Score, error) {
	if phred.Missing() {
		return seq.Score{}, nil
	}
	q := phred.Value()
	switch {
	case q > 0:
		return seq.NewScore(math.Max(-5.0, 10*math.Log10(math.Pow(10, q/10)-1))), nil
	case q == 0:
		return seq.NewScore(-5.0), nil
	default:
		return seq.Score{}, errors.Wrapf(ErrInvalidScore,
			"PHRED quality %v must be positive or zero", q)
	}
}

// PhredFromSolexa converts a Solexa quality (which can be negative) to
// the PHRED scale:
//
//	phred = 10*log10(10^(solexa/10) + 1)
//
// A Solexa quality below -5 is not expected in real data and logs a
// warning, but the formula remains defined there so the conversion still
// proceeds. A missing score stays missing.
func PhredFromSolexa(solexa seq.Score) seq.Score {
	if solexa.Missing() {
		return seq.Score{}
	}
	q := solexa.Value()
	if q < -5 {
		log.Error.Printf("Solexa quality %v is less than -5", q)
	}
	return seq.NewScore(10 * math.Log10(math.Pow(10, q/10)+1))
}

// charFromScore encodes one score as the character at round(score)+offset,
// ties away from zero.
func charFromScore(s seq.Score, offset int) (byte, error) {
	if s.Missing() {
		return 0, errors.Wrap(ErrMissingScore, "cannot encode an absent quality value")
	}
	return byte(s.Int() + offset), nil
}

// scoreFromChar decodes one quality character under the given offset.
// Decoding is exact, no rounding is involved.
func scoreFromChar(c byte, offset int) int {
	return int(c) - offset
}
