// Package fasta contains code for parsing FASTA files. Briefly, FASTA
// files consist of a number of titled sequences that may be interrupted by
// newlines. For example:
//
//	>chr7
//	ACGTAC
//	GAGGAC
//	GCG
//	>chr8
//	ACGT
//
// Reader streams records one at a time; New loads a whole file into a
// random-access view.
package fasta

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/0820LL/biopython/encoding/seq"
	"github.com/pkg/errors"
)

// ErrMalformedRecord is returned when a stream violates the FASTA grammar.
var ErrMalformedRecord = errors.New("malformed FASTA record")

const maxLineSize = 64 * 1024 * 1024 // allow very long single-line sequences

// Reader streams FASTA records. The Scan method returns the next record,
// returning a boolean indicating whether the scan succeeded. Readers are
// not threadsafe.
type Reader struct {
	// Title overrides the default title parsing (seq.ParseTitle). Set it
	// before the first Scan.
	Title seq.TitleFunc

	b       *bufio.Scanner
	next    string
	started bool
	done    bool
	err     error
}

// NewReader constructs a Reader that reads FASTA data from r.
func NewReader(r io.Reader) *Reader {
	b := bufio.NewScanner(r)
	b.Buffer(nil, maxLineSize)
	return &Reader{Title: seq.ParseTitle, b: b}
}

// Scan reads the next record into rec. Once Scan returns false it never
// returns true again; check Err upon completion. Text before the first
// '>' line is skipped, and a stream with no '>' line yields no records.
func (r *Reader) Scan(rec *seq.Record) bool {
	if r.err != nil || r.done {
		return false
	}
	if !r.started {
		for {
			line, ok := r.readLine()
			if !ok {
				r.done = true
				return false
			}
			if strings.HasPrefix(line, ">") {
				r.next = line
				break
			}
		}
		r.started = true
	}
	if !strings.HasPrefix(r.next, ">") {
		r.err = errors.Wrap(ErrMalformedRecord, "record does not start with '>'")
		return false
	}
	title := strings.TrimRightFunc(r.next[1:], unicode.IsSpace)
	var sb strings.Builder
	for {
		line, ok := r.readLine()
		if !ok {
			r.done = true
			break
		}
		if strings.HasPrefix(line, ">") {
			r.next = line
			break
		}
		sb.WriteString(strings.TrimRightFunc(line, unicode.IsSpace))
	}
	if r.err != nil {
		return false
	}
	id, name, description := r.Title(title)
	*rec = *seq.NewRecord(sb.String(), id, name, description)
	return true
}

// Err returns the reading error, if any.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) readLine() (string, bool) {
	if !r.b.Scan() {
		r.err = r.b.Err()
		return "", false
	}
	return r.b.Text(), true
}
