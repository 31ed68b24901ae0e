package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "the beatles", Normalize("  The  Beatles! "))
	assert.Equal(t, "acdc", Normalize("AC/DC"))
	assert.Equal(t, "mgmt", Normalize("MGMT"))
	assert.Equal(t, "blink 182", Normalize("blink-182"))
	assert.Equal(t, "", Normalize("!!!"))
	assert.Equal(t, "", Normalize(""))
}

func TestSimilarity_Identity(t *testing.T) {
	for _, name := range []string{"Drake", "The Weeknd", "blink-182", "x"} {
		assert.Equal(t, 1.0, Similarity(name, name), name)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"The Weeknd", "Weeknd"},
		{"Weeknd", "Weekend"},
		{"Drake", "Drak"},
		{"", "Anyone"},
	}
	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]), "%s vs %s", p[0], p[1])
	}
}

func TestSimilarity_PunctuationIgnored(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("AC/DC", "ACDC"))
	assert.Equal(t, 1.0, Similarity("P!nk", "Pnk"))
}

func TestSimilarity_KnownDistances(t *testing.T) {
	// "the weeknd" (10) vs "weeknd" (6): edit distance 4 over the longer form.
	assert.InDelta(t, 0.6, Similarity("The Weeknd", "Weeknd"), 1e-9)

	// "weeknd" vs "weekend": one insertion over length 7.
	assert.InDelta(t, 6.0/7.0, Similarity("Weeknd", "Weekend"), 1e-9)

	// "drake" vs "drak": one deletion over length 5.
	assert.InDelta(t, 0.8, Similarity("Drake", "Drak"), 1e-9)
}

func TestSimilarity_EmptyCanonicalForms(t *testing.T) {
	// Normalizing strips everything, leaving two identical empty strings.
	assert.Equal(t, 1.0, Similarity("!!!", "???"))

	// One side empty, the other not: nothing in common.
	assert.Equal(t, 0.0, Similarity("", "Drake"))
	assert.Equal(t, 0.0, Similarity("...", "Drake"))
}

func TestSimilarity_Bounded(t *testing.T) {
	pairs := [][2]string{
		{"Drake", "Taylor Swift"},
		{"A", "completely different name"},
		{"Mötley Crüe", "Motley Crue"},
	}
	for _, p := range pairs {
		s := Similarity(p[0], p[1])
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}
