package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupe(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"nil input", nil, nil},
		{"empty strings dropped", []string{"", "a", ""}, []string{"a"}},
		{"duplicates removed in order", []string{"b", "a", "b", "a"}, []string{"b", "a"}},
		{"all empty collapses to nil", []string{"", ""}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dedupe(tt.input))
		})
	}
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, wordCount(""))
	assert.Equal(t, 0, wordCount("   "))
	assert.Equal(t, 3, wordCount("one  two\tthree"))
}

func TestSentenceCount(t *testing.T) {
	assert.Equal(t, 1, sentenceCount("One sentence."))
	assert.Equal(t, 2, sentenceCount("First. Second."))
	assert.Equal(t, 0, sentenceCount("   "))
}

func TestLooksStructured(t *testing.T) {
	assert.True(t, looksStructured("Intro:\n- first\n- second"))
	assert.True(t, looksStructured("Intro:\n1. first\n2. second"))
	assert.False(t, looksStructured("Just one flat paragraph of text."))
}

func TestExtractSteps(t *testing.T) {
	lineBased := extractSteps("Preamble text.\n1. Export the list.\n2. Review accounts.")
	assert.Equal(t, []string{"1. Export the list.", "2. Review accounts."}, lineBased)

	inline := extractSteps("Do this: 1. Export the list; 2. Review accounts.")
	assert.Len(t, inline, 2)
	assert.Equal(t, "Export the list", inline[0])

	assert.Empty(t, extractSteps("No steps here at all."))
}

func TestExtractKeyTerms(t *testing.T) {
	terms := extractKeyTerms("Provide evidence to show access reviews are completed and approved.")
	assert.Contains(t, terms, "access reviews")

	// Hyphenated compounds are key terms too.
	terms = extractKeyTerms("Provide evidence to show centrally-administered password management is in place.")
	assert.Contains(t, terms, "centrally-administered")
	assert.Contains(t, terms, "password management")
}

func TestTermMatches(t *testing.T) {
	assert.True(t, termMatches("the access review report", "access reviews")) // singular match
	assert.True(t, termMatches("all access reviews listed", "access review")) // plural match
	assert.False(t, termMatches("firewall configuration", "access review"))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abcdef", 3))
	assert.Equal(t, "abc", truncateRunes("abc", 10))
	assert.Equal(t, "héllo", truncateRunes("héllo world", 5)) // rune-safe, not byte-safe
}

func TestNonEmptyLines(t *testing.T) {
	lines := nonEmptyLines("  first  \n\n second\n   \n")
	assert.Equal(t, []string{"first", "second"}, lines)
}
