package schema

import "github.com/fatih/color"

// Colors for verdict and status labels in table output.
var (
	passColor = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	failColor = color.New(color.FgRed)
)

// ColorVerdict returns a colored verdict label for console output.
func ColorVerdict(v Verdict) string {
	switch v {
	case VerdictPass:
		return passColor.Sprint(string(v))
	case VerdictPartial:
		return warnColor.Sprint(string(v))
	default:
		return failColor.Sprint(string(v))
	}
}

// ColorStatus returns a colored check status label for console output.
func ColorStatus(s CheckStatus) string {
	switch s {
	case StatusPass:
		return passColor.Sprint(string(s))
	case StatusWarn:
		return warnColor.Sprint(string(s))
	case StatusFail:
		return failColor.Sprint(string(s))
	default:
		return string(s)
	}
}

// ParseRecordKind maps user input to a RecordKind, defaulting to control.
func ParseRecordKind(s string) (RecordKind, bool) {
	switch s {
	case string(ControlKind), "controls":
		return ControlKind, true
	case string(EvidenceTaskKind), "evidence_task", "evidence-task":
		return EvidenceTaskKind, true
	}
	return ControlKind, false
}
