package data

// EnumValue is one member of an enumeration
type EnumValue struct {
	Name        string           `json:"name"`
	Value       int              `json:"value"`
	HexValue    string           `json:"hexValue,omitempty"`
	Description MultilingualText `json:"description"`
	Deprecated  bool             `json:"deprecated,omitempty"`
	Since       string           `json:"since,omitempty"`
}

// EnumSummary is the lightweight form of an enumeration used in list views
type EnumSummary struct {
	Id          string           `json:"id"`
	Name        string           `json:"name"`
	Category    MultilingualText `json:"category"`
	Description MultilingualText `json:"description"`
	Values      []EnumValue      `json:"values"`
}

// EnumTypeInfo carries the target-language representation of an enumeration
type EnumTypeInfo struct {
	TypeNames map[string]string `json:"typeNames,omitempty"` // target language -> type name
	Encoding  string            `json:"encoding,omitempty"`
}

// EnumDetail is the full normalized form used in single-item views
type EnumDetail struct {
	EnumSummary
	TypeInfo     *EnumTypeInfo `json:"typeInfo,omitempty"`
	Constraints  []string      `json:"constraints"`
	RelatedEnums []string      `json:"relatedEnums"`
	Notes        []string      `json:"notes"`
	Version      string        `json:"version,omitempty"`
}
