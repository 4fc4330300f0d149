package data

// CategoryStats reduces one entity collection to its size and per-category
// member counts. Category keys are the default rendering of the label.
type CategoryStats struct {
	Count      int            `json:"count"`
	Categories map[string]int `json:"categories"`
}

// ProcessStats summarizes the discovered processes
type ProcessStats struct {
	Count    int            `json:"count"`
	Actors   map[string]int `json:"actors"`
	Diagrams map[string]int `json:"diagrams"` // diagram type -> count
}

// ChainStats summarizes the discovered process chains
type ChainStats struct {
	Count   int            `json:"count"`
	Folders map[string]int `json:"folders"`
}

// Overview aggregates counts and category breakdowns across every entity
// kind of one catalog instance
type Overview struct {
	Functions     CategoryStats `json:"functions"`
	Enums         CategoryStats `json:"enums"`
	Types         CategoryStats `json:"types"`
	Exceptions    CategoryStats `json:"exceptions"`
	Processes     ProcessStats  `json:"processes"`
	ProcessChains ChainStats    `json:"processChains"`
}
