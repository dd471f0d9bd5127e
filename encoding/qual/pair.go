package qual

import (
	"io"

	"github.com/0820LL/biopython/encoding/fasta"
	"github.com/0820LL/biopython/encoding/fastq"
	"github.com/0820LL/biopython/encoding/seq"
	"github.com/pkg/errors"
)

// PairScanner composes a FASTA reader and a QUAL reader to scan a matched
// pair of streams in strict positional lockstep, attaching each QUAL
// record's scores onto the corresponding FASTA record. No reordering or
// resynchronization is attempted: the n-th FASTA record must pair with
// the n-th QUAL record.
type PairScanner struct {
	fasta *fasta.Reader
	qual  *Reader
	err   error
}

// NewPairScanner creates a PairScanner from the provided FASTA and QUAL
// readers.
func NewPairScanner(fastaIn, qualIn io.Reader) *PairScanner {
	return &PairScanner{fasta: fasta.NewReader(fastaIn), qual: NewReader(qualIn)}
}

// SetTitleFunc overrides title parsing on both underlying readers.
func (p *PairScanner) SetTitleFunc(fn seq.TitleFunc) {
	p.fasta.Title = fn
	p.qual.Title = fn
}

// Scan merges the next record pair into rec, overwriting any prior
// quality annotation on the FASTA record. Scan returns a boolean
// indicating whether the scan succeeded; once it returns false it never
// returns true again. Check Err upon completion: both streams ending
// together is a normal stop, one ending early is ErrUnbalancedStreams.
func (p *PairScanner) Scan(rec *seq.Record) bool {
	if p.err != nil {
		return false
	}
	var frec, qrec seq.Record
	fOK := p.fasta.Scan(&frec)
	qOK := p.qual.Scan(&qrec)
	if !fOK || !qOK {
		if err := p.fasta.Err(); err != nil {
			p.err = err
		} else if err := p.qual.Err(); err != nil {
			p.err = err
		} else if fOK {
			p.err = errors.Wrap(ErrUnbalancedStreams, "FASTA file has more entries than the QUAL file")
		} else if qOK {
			p.err = errors.Wrap(ErrUnbalancedStreams, "QUAL file has more entries than the FASTA file")
		}
		return false
	}
	if frec.ID != qrec.ID {
		p.err = errors.Wrapf(ErrIdentifierMismatch, "%q vs %q", frec.ID, qrec.ID)
		return false
	}
	scores, _ := qrec.LetterAnnotation(seq.PhredQuality)
	if len(frec.Seq) != len(scores) {
		p.err = errors.Wrapf(fastq.ErrLengthMismatch,
			"record %q has sequence length %d but %d quality scores",
			frec.ID, len(frec.Seq), len(scores))
		return false
	}
	if err := frec.SetLetterAnnotation(seq.PhredQuality, scores); err != nil {
		p.err = err
		return false
	}
	*rec = frec
	return true
}

// Err returns the scanning error, if any. It should be checked after Scan
// returns false.
func (p *PairScanner) Err() error {
	return p.err
}
