package data

// ProcessRef references a process involved in a chain
type ProcessRef struct {
	Id   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// ChainFunction is a function embedded in a chain step, optionally pointing
// at the process that realizes it
type ChainFunction struct {
	Name          string `json:"name"`
	LinkedProcess string `json:"linkedProcess,omitempty"`
}

// ChainStep is one ordered step of a process chain
type ChainStep struct {
	Number      int              `json:"number"`
	Name        string           `json:"name,omitempty"`
	Description MultilingualText `json:"description"`
	Function    *ChainFunction   `json:"function,omitempty"`
	Critical    bool             `json:"critical,omitempty"`
	Optional    bool             `json:"optional,omitempty"`
	Frequency   string           `json:"frequency,omitempty"`
}

// ChainProcessData is the structured process-data variant of a chain outcome
type ChainProcessData struct {
	Name   string      `json:"name,omitempty"`
	Fields []TypeField `json:"fields"`
}

// ChainOutcome preserves the three historically grown outcome conventions of
// chain documents as explicit optional variants instead of forcing one
// unified schema. Artifacts are common to all three.
type ChainOutcome struct {
	// variant 1: log types and stored data
	LogTypes   []string `json:"logTypes,omitempty"`
	StoredData []string `json:"storedData,omitempty"`
	// variant 2: resulting state and log messages
	State       string   `json:"state,omitempty"`
	LogMessages []string `json:"logMessages,omitempty"`
	// variant 3: structured process data
	ProcessData *ChainProcessData `json:"processData,omitempty"`

	Artifacts []string `json:"artifacts,omitempty"`
}

// ChainUseCase is one use case of a chain, either a bare text (description
// only) or a name + description pair
type ChainUseCase struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description"`
}

// ProcessChainSummary is the lightweight form of a process chain used in
// list views. Id derives from the filename; ChainId is the XML-declared
// display identifier; Folder records the directory the file was found in.
type ProcessChainSummary struct {
	Id          string           `json:"id"`
	ChainId     string           `json:"chainId"`
	Folder      string           `json:"folder"`
	Name        MultilingualText `json:"name"`
	Description MultilingualText `json:"description"`
	Processes   []ProcessRef     `json:"processes"`
	Steps       []ChainStep      `json:"steps"`
}

// ProcessChainDetail is the full normalized form used in single-item views
type ProcessChainDetail struct {
	ProcessChainSummary
	Prerequisites  []string          `json:"prerequisites"`
	Actors         []string          `json:"actors"`
	Variants       []string          `json:"variants"`
	Outcome        *ChainOutcome     `json:"outcome,omitempty"`
	ImportantNotes []string          `json:"importantNotes"`
	UseCases       []ChainUseCase    `json:"useCases"`
	UsageScenario  string            `json:"usageScenario,omitempty"`
	References     []string          `json:"references"`
	MermaidContent map[string]string `json:"mermaidContent"`
}
