package fastq

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// A Raw is one tokenized FASTQ record before any quality decoding: the
// title line text (without the leading '@'), the sequence and the quality
// text. For every Raw a Scanner yields, len(Seq) == len(Qual).
type Raw struct {
	Title, Seq, Qual string
}

// Scanner splits a FASTQ byte stream into Raw records on structural
// grammar alone, without interpreting quality characters numerically.
//
// Both the sequence and the quality block may span multiple physical
// lines. Because quality characters are drawn from the same printable
// range as the '@' and '+' markers, a line starting with '@' inside the
// quality block is only treated as the next record once the accumulated
// quality text has reached the sequence length; until then it is quality
// data. The sequence length from the current record is the only reliable
// anchor for this disambiguation.
//
// The Scan method returns the next record, returning a boolean indicating
// whether the scan succeeded. Scanners are not threadsafe.
type Scanner struct {
	b       *bufio.Scanner
	next    string // lookahead '@' line carried between records
	started bool
	done    bool
	err     error
}

// NewScanner constructs a Scanner reading raw FASTQ data from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{b: bufio.NewScanner(r)}
}

// Scan the next record into raw. Scan returns a boolean indicating
// whether the scan succeeded. Once Scan returns false, it never returns
// true again. Upon completion the caller should check Err to distinguish
// end of stream from a parse error.
func (s *Scanner) Scan(raw *Raw) bool {
	if s.err != nil || s.done {
		return false
	}
	if !s.started {
		// Skip any text before the first record (blank lines, comments).
		// A stream with no '@' line at all yields no records.
		for {
			line, ok := s.readLine()
			if !ok {
				s.done = true
				return false
			}
			if strings.HasPrefix(line, "@") {
				s.next = line
				break
			}
		}
		s.started = true
	}
	if !strings.HasPrefix(s.next, "@") {
		s.err = errors.Wrapf(ErrMalformedRecord, "record starts with %q, not '@'", firstByte(s.next))
		return false
	}
	title := rstrip(s.next[1:])

	// One or more sequence lines, then the '+' separator.
	line, ok := s.readLine()
	if !ok {
		if s.err == nil {
			s.err = errors.Wrapf(ErrMalformedRecord,
				"record %q: end of file without quality information", title)
		}
		return false
	}
	var seq strings.Builder
	seq.WriteString(rstrip(line))
	for {
		line, ok = s.readLine()
		if !ok {
			if s.err == nil {
				s.err = errors.Wrapf(ErrMalformedRecord,
					"record %q: end of file without quality information", title)
			}
			return false
		}
		if strings.HasPrefix(line, "+") {
			// The repeated title is optional, but if present must match.
			if second := rstrip(line[1:]); second != "" && second != title {
				s.err = errors.Wrapf(ErrTitleMismatch, "%q on '+' line, %q on '@' line", second, title)
				return false
			}
			break
		}
		seq.WriteString(rstrip(line))
	}
	seqLen := seq.Len()

	// One or more quality lines. A leading '@' only starts the next record
	// once enough quality text has accumulated; end of stream here is not
	// an error, only a final length mismatch is.
	var qual strings.Builder
	if line, ok = s.readLine(); ok {
		qual.WriteString(strings.TrimSpace(line))
		sawNext := false
		for {
			line, ok = s.readLine()
			if !ok {
				break
			}
			if strings.HasPrefix(line, "@") && qual.Len() >= seqLen {
				s.next = line
				sawNext = true
				break
			}
			qual.WriteString(rstrip(line))
		}
		if !sawNext {
			s.done = true
		}
	} else {
		s.done = true
	}
	if s.err != nil {
		return false
	}
	if qual.Len() != seqLen {
		s.err = errors.Wrapf(ErrLengthMismatch,
			"record %q has sequence length %d but quality length %d", title, seqLen, qual.Len())
		return false
	}
	raw.Title = title
	raw.Seq = seq.String()
	raw.Qual = qual.String()
	return true
}

// Err returns the scanning error, if any.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) readLine() (string, bool) {
	if !s.b.Scan() {
		s.err = s.b.Err()
		return "", false
	}
	return s.b.Text(), true
}

func rstrip(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

func firstByte(s string) string {
	if s == "" {
		return ""
	}
	return s[:1]
}
