package data

// DiagramType constants, derived from the folder a process file lives in
const (
	DiagramTypeFlow    = "flow"
	DiagramTypeSequenz = "sequenz"
)

// ProcessParameter is one input or output parameter of a process
type ProcessParameter struct {
	Name        string           `json:"name"`
	Type        string           `json:"type,omitempty"`
	Description MultilingualText `json:"description"`
}

// ProcessSummary is the lightweight form of a process used in list views.
// Actor and DiagramType are not stored in the XML; they are derived from the
// file's position in the directory tree and together with Id form the
// composite identity of the process.
type ProcessSummary struct {
	Id                 string           `json:"id"`
	Actor              string           `json:"actor"`
	DiagramType        string           `json:"diagramType"` // flow, sequenz
	ProcessId          string           `json:"processId,omitempty"`
	Name               MultilingualText `json:"name"`
	Description        MultilingualText `json:"description"`
	Actors             []string         `json:"actors"`
	InterfaceFunctions []string         `json:"interfaceFunctions"`
}

// ProcessDetail is the full normalized form used in single-item views
type ProcessDetail struct {
	ProcessSummary
	UsedObjects      []string           `json:"usedObjects"`
	InputParameters  []ProcessParameter `json:"inputParameters"`
	OutputParameters []ProcessParameter `json:"outputParameters"`
	UsedDataObjects  []string           `json:"usedDataObjects"`
	Exceptions       []string           `json:"exceptions"`
	References       []string           `json:"references"`
	Notes            []string           `json:"notes"`
	MermaidContent   map[string]string  `json:"mermaidContent"` // language -> diagram source
}
