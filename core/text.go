package core

import "strings"

// dedupe removes duplicate and empty strings while preserving first-seen order.
func dedupe(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// wordCount counts whitespace-separated words.
func wordCount(text string) int {
	return len(strings.Fields(text))
}

// looksStructured reports whether the text contains any line-based list marker.
func looksStructured(text string) bool {
	return reStructureMarker.MatchString(text)
}

// sentenceCount counts sentence fragments separated by terminal punctuation
// followed by whitespace. Trailing punctuation does not start a new fragment.
func sentenceCount(text string) int {
	n := 0
	for _, part := range reSentenceBoundary.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			n++
		}
	}
	return n
}

// extractSteps pulls individual steps out of guidance text. Line-based list
// markers win; when none exist, inline "1. text" fragments are used instead.
func extractSteps(text string) []string {
	var steps []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if reListLineStart.MatchString(trimmed) {
			steps = append(steps, trimmed)
		}
	}
	if len(steps) > 0 {
		return steps
	}
	for _, m := range reInlineStep.FindAllStringSubmatch(text, -1) {
		stepText := strings.TrimSpace(m[2])
		if len(stepText) > 5 {
			steps = append(steps, stepText)
		}
	}
	return steps
}

// extractKeyTerms pulls the key concepts out of a "what to collect" statement:
// the outcome subject, hyphenated compounds, and domain noun phrases. Terms
// shorter than six characters are noise and dropped.
func extractKeyTerms(text string) []string {
	cleaned := reStandardPrefixStrip.ReplaceAllString(text, "")

	var terms []string
	if m := reOutcomeSubject.FindStringSubmatch(cleaned); m != nil {
		subject := strings.TrimSpace(m[1])
		if len(subject) > 5 {
			terms = append(terms, strings.ToLower(subject))
		}
	}
	for _, m := range reHyphenatedTerm.FindAllString(cleaned, -1) {
		terms = append(terms, strings.ToLower(m))
	}
	for _, m := range reTechPhrase.FindAllString(cleaned, -1) {
		terms = append(terms, strings.ToLower(m))
	}

	out := dedupe(terms)
	filtered := out[:0]
	for _, t := range out {
		if len(t) > 5 {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// termMatches reports whether the haystack contains the term in singular or
// plural form. This is a deliberate stemming shortcut: "access reviews" in
// "what" matches "access review report" in "how".
func termMatches(haystack, term string) bool {
	singular := strings.TrimSuffix(term, "s")
	plural := term
	if !strings.HasSuffix(term, "s") {
		plural = term + "s"
	}
	return strings.Contains(haystack, term) ||
		strings.Contains(haystack, singular) ||
		strings.Contains(haystack, plural)
}

// truncateRunes returns the first n runes of s.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// nonEmptyLines returns the trimmed, non-empty lines of the text.
func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
