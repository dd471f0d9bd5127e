package fastq_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/0820LL/biopython/encoding/fastq"
	"github.com/0820LL/biopython/encoding/seq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAll(t *testing.T, recs []seq.Record, d fastq.Dialect) string {
	t.Helper()
	var b bytes.Buffer
	w := fastq.NewWriter(&b, d)
	for i := range recs {
		require.NoError(t, w.Write(&recs[i]))
	}
	return b.String()
}

// Output is normalized: bare '+' lines, one physical line per logical
// line. The example file is already in that shape, so a Sanger read/write
// cycle reproduces it byte for byte.
func TestSangerRoundTrip(t *testing.T) {
	recs := readAll(t, exampleFASTQ, fastq.Sanger)
	require.Len(t, recs, 3)
	assert.Equal(t, exampleFASTQ, writeAll(t, recs, fastq.Sanger))

	// decode(encode(rec)) preserves every field and score.
	again := readAll(t, writeAll(t, recs, fastq.Sanger), fastq.Sanger)
	require.Len(t, again, 3)
	for i := range recs {
		assert.Equal(t, recs[i].ID, again[i].ID)
		assert.Equal(t, recs[i].Seq, again[i].Seq)
		assert.Equal(t, phredInts(t, &recs[i]), phredInts(t, &again[i]))
	}
}

// A Solexa-scale record written by the Sanger writer is converted to
// PHRED on the fly; the repeated '+' title is dropped on output.
func TestSolexaToSanger(t *testing.T) {
	recs := readAll(t, solexaFaked, fastq.Solexa)
	require.Len(t, recs, 1)
	want := "@slxa_0001_1_0001_01\n" +
		"ACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTNNNNNN\n" +
		"+\n" +
		"IHGFEDCBA@?>=<;:9876543210/.-,++*)('&&%%$$##\"\"\n"
	assert.Equal(t, want, writeAll(t, recs, fastq.Sanger))
}

// A PHRED record written by the Solexa writer goes the other way.
func TestSangerToSolexa(t *testing.T) {
	recs := readAll(t, exampleFASTQ, fastq.Sanger)
	out := writeAll(t, recs, fastq.Solexa)
	again := readAll(t, out, fastq.Solexa)
	require.Len(t, again, 3)
	// PHRED 26 is Solexa 25.99..., rounding to 26.
	got := annotationInts(t, &again[0], seq.SolexaQuality)
	assert.Equal(t, 26, got[0])
}

func TestIlluminaRoundTrip(t *testing.T) {
	const in = "@r1 first read\nACGTA\n+\nht^J@\n"
	recs := readAll(t, in, fastq.Illumina)
	assert.Equal(t, in, writeAll(t, recs, fastq.Illumina))
}

func TestWriterTitleLine(t *testing.T) {
	for _, test := range []struct {
		id, description string
		want            string
	}{
		{"r1", "", "@r1\n"},
		{"r1", "r1 extra text", "@r1 extra text\n"},
		{"r1", "extra text", "@r1 extra text\n"},
	} {
		rec := seq.NewRecord("AC", test.id, test.id, test.description)
		require.NoError(t, rec.SetLetterAnnotation(seq.PhredQuality,
			[]seq.Score{seq.NewScore(1), seq.NewScore(2)}))
		out := writeAll(t, []seq.Record{*rec}, fastq.Sanger)
		assert.True(t, strings.HasPrefix(out, test.want), "got %q, want prefix %q", out, test.want)
	}
}

func TestWriterMissingScores(t *testing.T) {
	var b bytes.Buffer
	w := fastq.NewWriter(&b, fastq.Sanger)

	rec := seq.NewRecord("ACGT", "r1", "r1", "")
	err := w.Write(rec)
	assert.Equal(t, fastq.ErrMissingScores, errors.Cause(err))

	// A single absent score fails the whole record; nothing is emitted.
	require.NoError(t, rec.SetLetterAnnotation(seq.PhredQuality,
		[]seq.Score{seq.NewScore(1), seq.NewScore(2), {}, seq.NewScore(4)}))
	err = w.Write(rec)
	assert.Equal(t, fastq.ErrMissingScore, errors.Cause(err))
	assert.Zero(t, b.Len())
}

func TestWriterLengthMismatch(t *testing.T) {
	rec := seq.NewRecord("", "r1", "r1", "")
	require.NoError(t, rec.SetLetterAnnotation(seq.PhredQuality,
		[]seq.Score{seq.NewScore(1), seq.NewScore(2)}))
	rec.Seq = "ACGT" // now out of step with the annotation
	var b bytes.Buffer
	err := fastq.NewWriter(&b, fastq.Sanger).Write(rec)
	assert.Equal(t, fastq.ErrLengthMismatch, errors.Cause(err))
}

func TestWriterNegativePhredRejected(t *testing.T) {
	rec := seq.NewRecord("AC", "r1", "r1", "")
	require.NoError(t, rec.SetLetterAnnotation(seq.PhredQuality,
		[]seq.Score{seq.NewScore(-1), seq.NewScore(2)}))
	var b bytes.Buffer
	err := fastq.NewWriter(&b, fastq.Solexa).Write(rec)
	assert.Equal(t, fastq.ErrInvalidScore, errors.Cause(err))
}
