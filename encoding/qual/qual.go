// Package qual parses and emits QUAL files: FASTA-framed records holding
// whitespace-separated decimal PHRED quality scores but no sequence. It
// also provides PairScanner, which walks matched FASTA and QUAL streams
// in lockstep and merges them into records with quality annotations.
package qual

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/0820LL/biopython/encoding/fastq"
	"github.com/0820LL/biopython/encoding/seq"
	"github.com/pkg/errors"
)

var (
	// ErrMalformedRecord is returned when a stream violates the QUAL
	// grammar, e.g. a non-numeric score token.
	ErrMalformedRecord = errors.New("malformed QUAL record")
	// ErrUnbalancedStreams is returned by PairScanner when one input runs
	// out of records before the other.
	ErrUnbalancedStreams = errors.New("unbalanced FASTA and QUAL streams")
	// ErrIdentifierMismatch is returned by PairScanner when paired records
	// do not share an identifier.
	ErrIdentifierMismatch = errors.New("FASTA and QUAL identifiers do not match")
)

// Reader streams QUAL records. The records it yields carry an empty
// sequence and their scores under the "phred_quality" annotation.
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

// NewReader constructs a Reader that reads QUAL data from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{Title: seq.ParseTitle, b: bufio.NewScanner(r)}
}

// Scan reads the next record into rec. Once Scan returns false it never
// returns true again; check Err upon completion. Text before the first
// '>' line is skipped.
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
	id, name, description := r.Title(title)

	var scores []seq.Score
	min, max := 0, 0
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
		for _, word := range strings.Fields(line) {
			q, err := strconv.Atoi(word)
			if err != nil {
				r.err = errors.Wrapf(ErrMalformedRecord,
					"record %q: quality score %q is not an integer", id, word)
				return false
			}
			if len(scores) == 0 || q < min {
				min = q
			}
			if len(scores) == 0 || q > max {
				max = q
			}
			scores = append(scores, seq.NewScore(float64(q)))
		}
	}
	if r.err != nil {
		return false
	}
	if len(scores) > 0 && (min < 0 || max > 93) {
		r.err = errors.Wrapf(fastq.ErrOutOfRange,
			"quality score range for %q is %d to %d, outside the expected 0 to 93; "+
				"perhaps these are Solexa/Illumina scores, and not PHRED scores", id, min, max)
		return false
	}
	*rec = *seq.NewRecord("", id, name, description)
	if err := rec.SetLetterAnnotation(seq.PhredQuality, scores); err != nil {
		r.err = err
		return false
	}
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

// DefaultWrap is the line width Writer wraps quality scores at: 60
// characters of text, not 60 scores.
const DefaultWrap = 60

// Writer emits records as QUAL. Scores under "phred_quality" are
// preferred; "solexa_quality" scores are converted. Scores are rounded to
// integers on output.
type Writer struct {
	// Wrap is the maximum width in characters of a score line. Lines
	// break only between scores, never mid-number. Zero or negative
	// means a single unwrapped line.
	Wrap int
	// Title overrides the default title text, which combines the record
	// ID and description the same way the FASTA writer does.
	Title func(*seq.Record) string

	w   io.Writer
	err error
}

// NewWriter constructs a QUAL writer wrapping scores at DefaultWrap.
func NewWriter(w io.Writer) *Writer {
	return &Writer{Wrap: DefaultWrap, w: w}
}

// Write writes one record. A record with no quality annotation fails with
// fastq.ErrMissingScores; any single absent score fails the whole record
// with fastq.ErrMissingScore before anything is emitted.
func (w *Writer) Write(rec *seq.Record) error {
	if w.err != nil {
		return w.err
	}
	scores, err := fastq.PhredScores(rec)
	if err != nil {
		return err
	}
	words := make([]string, len(scores))
	for i, s := range scores {
		if s.Missing() {
			return errors.Wrapf(fastq.ErrMissingScore, "record %q", rec.ID)
		}
		words[i] = strconv.Itoa(s.Int())
	}
	title := rec.Title()
	if w.Title != nil {
		title = w.Title(rec)
	}
	w.writeln(">" + title)
	if w.Wrap <= 0 {
		w.writeln(strings.Join(words, " "))
		return w.err
	}
	for i := 0; i < len(words); {
		line := words[i]
		i++
		for i < len(words) && len(line)+1+len(words[i]) < w.Wrap {
			line += " " + words[i]
			i++
		}
		w.writeln(line)
	}
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
