package assistant

import "strings"

type ClassificationKind int

const (
	KindNavigation ClassificationKind = iota
	KindQuery
)

// Classification is the navigation-vs-query decision for one utterance.
// Navigation carries the target path, Query carries the original text.
type Classification struct {
	Kind   ClassificationKind
	Target string
	Text   string
}

type navCommand struct {
	Keyword string
	Path    string
}

// first match wins, declaration order matters
var navCommands = []navCommand{
	{"dashboard", "/dashboard"},
	{"workouts", "/workouts"},
	{"nutrition", "/nutrition"},
	{"progress", "/progress"},
	{"activities", "/activities"},
	{"trainers", "/trainers"},
	{"profile", "/profile"},
	{"settings", "/settings"},
}

// Classify maps an utterance to a navigation target or a free-form query.
// Pure function, no side effects.
func Classify(utterance string) Classification {
	lowered := strings.ToLower(utterance)
	trimmed := strings.TrimSpace(lowered)
	for _, nc := range navCommands {
		if trimmed == nc.Keyword ||
			strings.Contains(lowered, "go to "+nc.Keyword) ||
			strings.Contains(lowered, "open "+nc.Keyword) ||
			strings.Contains(lowered, "show "+nc.Keyword) {
			return Classification{
				Kind:   KindNavigation,
				Target: nc.Path,
			}
		}
	}
	return Classification{
		Kind: KindQuery,
		Text: utterance,
	}
}
