package corpusq_test

import (
	"testing"

	"github.com/awalczak/corpusq"
	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	t.Run("lowercases alphanumeric runs", func(t *testing.T) {
		t.Parallel()

		tokens := corpusq.Tokenize("Mission Alignment matters")

		assert.Equal(t, []string{"mission", "alignment", "matters"}, tokens)
	})

	t.Run("drops tokens shorter than three runes", func(t *testing.T) {
		t.Parallel()

		tokens := corpusq.Tokenize("go to a FAANG co")

		assert.Equal(t, []string{"faang"}, tokens)
	})

	t.Run("drops stopwords", func(t *testing.T) {
		t.Parallel()

		tokens := corpusq.Tokenize("the opening line for the letter")

		assert.Equal(t, []string{"opening", "line", "letter"}, tokens)
	})

	t.Run("splits on punctuation", func(t *testing.T) {
		t.Parallel()

		tokens := corpusq.Tokenize("data-driven, outcome-focused")

		assert.Equal(t, []string{"data", "driven", "outcome", "focused"}, tokens)
	})

	t.Run("keeps digits", func(t *testing.T) {
		t.Parallel()

		tokens := corpusq.Tokenize("grew revenue 140 percent")

		assert.Equal(t, []string{"grew", "revenue", "140", "percent"}, tokens)
	})

	t.Run("preserves duplicates in order", func(t *testing.T) {
		t.Parallel()

		tokens := corpusq.Tokenize("resume resume resume")

		assert.Equal(t, []string{"resume", "resume", "resume"}, tokens)
	})

	t.Run("empty text yields no tokens", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, corpusq.Tokenize(""))
	})
}

func TestTokenSet(t *testing.T) {
	t.Parallel()

	set := corpusq.TokenSet("## Opening Strategies\n\nLead with mission alignment.")

	assert.Contains(t, set, "opening")
	assert.Contains(t, set, "strategies")
	assert.Contains(t, set, "mission")
	assert.Contains(t, set, "alignment")
	assert.Contains(t, set, "lead")
	assert.NotContains(t, set, "with")
}

func TestNormalizeKeyword(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mission", corpusq.NormalizeKeyword("  Mission "))
	assert.Empty(t, corpusq.NormalizeKeyword("   "))
}
