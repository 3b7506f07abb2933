package domain

// FixSuggestion is advisory replacement text for one issue
type FixSuggestion struct {
	File string `json:"file"`
	Line int    `json:"line"`
	From string `json:"from"`
	To   string `json:"to"`
}

// FileFixes groups suggestions for a single file in scan order
type FileFixes struct {
	File  string          `json:"file"`
	Fixes []FixSuggestion `json:"fixes"`
}
