package data

// Parameter direction constants used across function signatures
const (
	DirectionInput  = "INPUT"
	DirectionOutput = "OUTPUT"
	DirectionInOut  = "INOUT"
)

// FunctionParameter represents one parameter of an interface function
type FunctionParameter struct {
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	Direction   string           `json:"direction"` // INPUT, OUTPUT, INOUT
	Required    bool             `json:"required"`
	Default     string           `json:"default,omitempty"`
	Description MultilingualText `json:"description"`
}

// FunctionReturn describes the return value of an interface function
type FunctionReturn struct {
	Type        string           `json:"type"`
	Description MultilingualText `json:"description"`
}

// FunctionSummary is the lightweight form of a function used in list views
type FunctionSummary struct {
	Id          string              `json:"id"`
	Name        string              `json:"name"`
	Category    MultilingualText    `json:"category"`
	Description MultilingualText    `json:"description"`
	Parameters  []FunctionParameter `json:"parameters"`
	ReturnValue *FunctionReturn     `json:"returnValue,omitempty"`
	Exceptions  []string            `json:"exceptions"`
	StepCount   int                 `json:"stepCount"`
}

// StandardStepRef points a detailed step at a shared standard step definition
type StandardStepRef struct {
	Id   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// FunctionStep is one entry of the ordered execution description of a
// function. LegacyText carries pre-multilingual plain text when present.
type FunctionStep struct {
	Number       int              `json:"number"`
	Description  MultilingualText `json:"description"`
	LegacyText   string           `json:"legacyText,omitempty"`
	Pseudocode   string           `json:"pseudocode,omitempty"`
	ErrorCases   []string         `json:"errorCases,omitempty"`
	SuccessCases []string         `json:"successCases,omitempty"`
	StandardStep *StandardStepRef `json:"standardStep,omitempty"`
}

// LogField is one field of a system or transaction log structure
type LogField struct {
	Name        string           `json:"name"`
	Type        string           `json:"type,omitempty"`
	Description MultilingualText `json:"description"`
}

// LogStructure describes a log written by a function, including the
// ASN.1 structure text where the source document declares one
type LogStructure struct {
	LogType       string     `json:"logType"`
	Requirement   string     `json:"requirement,omitempty"`
	ASN1Structure string     `json:"asn1Structure,omitempty"`
	Fields        []LogField `json:"fields"`
}

// FunctionDetail is the full normalized form used in single-item views
type FunctionDetail struct {
	FunctionSummary
	DetailedSteps    []FunctionStep `json:"detailedSteps"`
	Notes            []string       `json:"notes"`
	Overloads        []string       `json:"overloads"`
	MutualExclusions []string       `json:"mutualExclusions"`
	SystemLogs       []LogStructure `json:"systemLogs"`
	TransactionLogs  []LogStructure `json:"transactionLogs"`
}
