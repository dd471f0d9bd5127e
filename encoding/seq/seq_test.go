package seq

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	assert.True(t, Score{}.Missing())
	s := NewScore(26)
	assert.False(t, s.Missing())
	assert.Equal(t, 26.0, s.Value())
	assert.Equal(t, 26, s.Int())

	// Ties round away from zero.
	assert.Equal(t, 3, NewScore(2.5).Int())
	assert.Equal(t, -3, NewScore(-2.5).Int())
	assert.Equal(t, 2, NewScore(2.4).Int())
}

func TestParseTitle(t *testing.T) {
	id, name, description := ParseTitle("EAS54_6_R1_2_1_413_324 length=25")
	assert.Equal(t, "EAS54_6_R1_2_1_413_324", id)
	assert.Equal(t, id, name)
	assert.Equal(t, "EAS54_6_R1_2_1_413_324 length=25", description)

	id, name, description = ParseTitle("")
	assert.Empty(t, id)
	assert.Empty(t, name)
	assert.Empty(t, description)
}

func TestLetterAnnotation(t *testing.T) {
	rec := NewRecord("ACGT", "r1", "r1", "")
	scores := []Score{NewScore(1), NewScore(2), NewScore(3), NewScore(4)}
	require.NoError(t, rec.SetLetterAnnotation(PhredQuality, scores))
	got, ok := rec.LetterAnnotation(PhredQuality)
	require.True(t, ok)
	assert.Equal(t, scores, got)

	_, ok = rec.LetterAnnotation(SolexaQuality)
	assert.False(t, ok)

	// Attachment is where the length invariant is enforced.
	err := rec.SetLetterAnnotation(PhredQuality, scores[:3])
	assert.Equal(t, ErrLengthMismatch, errors.Cause(err))

	// Overwriting with a matching annotation is allowed.
	more := []Score{NewScore(5), NewScore(6), NewScore(7), NewScore(8)}
	require.NoError(t, rec.SetLetterAnnotation(PhredQuality, more))
	got, _ = rec.LetterAnnotation(PhredQuality)
	assert.Equal(t, more, got)
}

// QUAL-only records have no sequence; their annotation length is
// unconstrained until a sequence is attached downstream.
func TestLetterAnnotationNoSeq(t *testing.T) {
	rec := NewRecord("", "r1", "r1", "")
	assert.NoError(t, rec.SetLetterAnnotation(PhredQuality, []Score{NewScore(1)}))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "r1", NewRecord("", "r1", "r1", "").Title())
	assert.Equal(t, "r1 with text", NewRecord("", "r1", "r1", "with text").Title())
	assert.Equal(t, "r1 with text", NewRecord("", "r1", "r1", "r1 with text").Title())
	// A description whose first word merely shares a prefix with the ID
	// does not count as leading with it.
	assert.Equal(t, "r1 r10 text", NewRecord("", "r1", "r1", "r10 text").Title())
}
