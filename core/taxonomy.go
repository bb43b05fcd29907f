package core

import (
	"regexp"
	"strings"
)

// reSlashPattern matches the /body/flags pattern form.
var reSlashPattern = regexp.MustCompile(`^/(.+)/([a-zA-Z]*)$`)

// reInlineFlag strips inline (?i) markers from user patterns so they can be
// recompiled with the shared case-insensitive default.
var reInlineFlag = regexp.MustCompile(`(?i)\(\?i\)`)

// artifactHints is the fallback vocabulary for natural phrases that name
// evidence artifacts without matching any configured pattern.
var artifactHints = []string{
	"diagram", "screenshot", "export", "configuration", "config",
	"log", "audit log", "report", "record", "attestation", "ticket",
	"email", "agreement", "contract", "policy", "procedure", "document",
}

var reArtifactSeparators = regexp.MustCompile(`[/;,]+`)

// SafePattern compiles a user-supplied rubric pattern, returning nil for
// anything that does not compile. Patterns may be raw text or /body/flags
// form; matching is case-insensitive unless the flags say otherwise.
func SafePattern(p string) *regexp.Regexp {
	trimmed := strings.TrimSpace(p)
	if trimmed == "" {
		return nil
	}

	body := trimmed
	flags := "i"
	if m := reSlashPattern.FindStringSubmatch(trimmed); m != nil {
		body = m[1]
		if m[2] != "" {
			flags = m[2]
		}
	} else {
		body = reInlineFlag.ReplaceAllString(body, "")
	}

	expr := body
	var prefix []string
	for _, f := range flags {
		switch f {
		case 'i':
			prefix = append(prefix, "i")
		case 'm':
			prefix = append(prefix, "m")
		case 's':
			prefix = append(prefix, "s")
		}
	}
	if len(prefix) > 0 {
		expr = "(?" + strings.Join(prefix, "") + ")" + body
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil
	}
	return re
}

// MatchesAnyArtifact reports whether the text names an evidence artifact,
// checking the configured patterns first and a hint-word vocabulary as a
// fallback. Invalid patterns are skipped.
func MatchesAnyArtifact(text string, patterns []string) bool {
	for _, p := range patterns {
		if re := SafePattern(p); re != nil && re.MatchString(text) {
			return true
		}
	}

	normalized := reArtifactSeparators.ReplaceAllString(strings.ToLower(text), " ")
	for _, hint := range artifactHints {
		if strings.Contains(normalized, hint) {
			return true
		}
	}
	return false
}

// DetectCadence returns the first cadence phrase in the text ("30 days",
// "quarterly"), or the empty string when none is present.
func DetectCadence(text string) string {
	return reCadence.FindString(text)
}

// CadenceSuppressed reports whether a cadence mention is attributable to a
// framework clause reference rather than a real collection timeframe.
func CadenceSuppressed(text string) bool {
	return reClause.MatchString(text)
}
