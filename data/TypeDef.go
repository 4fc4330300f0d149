package data

// TypeKind constants derived from the XML root element of a type document
const (
	TypeKindResult    = "result"
	TypeKindSimple    = "simple"
	TypeKindEventData = "eventData"
	TypeKindComplex   = "complex"
)

// TypeField is one field of a structured data type
type TypeField struct {
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	Description MultilingualText `json:"description"`
	Required    bool             `json:"required"`
	Optional    bool             `json:"optional"`
	Default     string           `json:"default,omitempty"`
}

// TypeSummary is the lightweight form of a data type used in list views
type TypeSummary struct {
	Id          string           `json:"id"`
	Name        string           `json:"name"`
	Category    MultilingualText `json:"category"`
	Description MultilingualText `json:"description"`
	Fields      []TypeField      `json:"fields"`
}

// TypeDetail is the full normalized form used in single-item views
type TypeDetail struct {
	TypeSummary
	TypeKind       string   `json:"typeKind"`
	BaseType       string   `json:"baseType,omitempty"`
	TypeDefinition string   `json:"typeDefinition,omitempty"`
	UsageNotes     []string `json:"usageNotes"`
	Constraints    []string `json:"constraints"`
}
