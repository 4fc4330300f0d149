package parser

import (
	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/data"
)

var enumRoots = []string{"enumeration", "enum"}

// ParseEnumSummary normalizes one enumeration XML file into its summary
// form. Returns nil when the file is unreadable or not an enum document.
func ParseEnumSummary(path string) *data.EnumSummary {
	doc := ParseXMLFile(path)
	root, ok := documentRoot(doc, enumRoots...)
	if !ok {
		return nil
	}

	summary := enumSummary(root, fileBase(path))
	return &summary
}

// ParseEnumDetail normalizes one enumeration XML file into its detail form.
func ParseEnumDetail(path string) *data.EnumDetail {
	doc := ParseXMLFile(path)
	root, ok := documentRoot(doc, enumRoots...)
	if !ok {
		return nil
	}

	return &data.EnumDetail{
		EnumSummary:  enumSummary(root, fileBase(path)),
		TypeInfo:     parseEnumTypeInfo(root["typeInfo"]),
		Constraints:  TextList(childList(root, "constraints", "constraint")),
		RelatedEnums: namedList(childList(root, "relatedEnumerations", "enumeration")),
		Notes:        TextList(childList(root, "notes", "note")),
		Version:      ChildText(root, "version"),
	}
}

func enumSummary(root Node, base string) data.EnumSummary {
	id := resolveId(root, base, "name")
	name := ChildText(root, "name")
	if name == "" {
		name = id
	}

	return data.EnumSummary{
		Id:          id,
		Name:        name,
		Category:    resolveCategory(root["category"]),
		Description: resolveDescribed(root, "description"),
		Values:      parseEnumValues(root),
	}
}

func parseEnumValues(root Node) []data.EnumValue {
	values := []data.EnumValue{}
	for _, entry := range AsList(childList(root, "values", "value")) {
		node := AsNode(entry)
		if node == nil {
			// bare value elements carry the member name only
			if name := Text(entry); name != "" {
				values = append(values, data.EnumValue{Name: name, Description: data.NewMultilingualText()})
			}
			continue
		}
		values = append(values, data.EnumValue{
			Name:        ChildText(node, "name"),
			Value:       IntText(firstOf(node, "value", "number")),
			HexValue:    FirstChildText(node, "hexValue", "hex"),
			Description: resolveDescribed(node, "description"),
			Deprecated:  BoolText(node["deprecated"]),
			Since:       FirstChildText(node, "since", "sinceVersion"),
		})
	}
	return values
}

func parseEnumTypeInfo(v any) *data.EnumTypeInfo {
	node := AsNode(v)
	if node == nil {
		return nil
	}

	info := &data.EnumTypeInfo{Encoding: ChildText(node, "encoding")}

	names := map[string]string{}
	for _, entry := range AsList(childList(node, "typeNames", "typeName")) {
		typeName := AsNode(entry)
		if typeName == nil {
			continue
		}
		lang := FirstChildText(typeName, "language", "lang")
		value := FirstChildText(typeName, "name", textKey)
		if lang != "" && value != "" {
			names[lang] = value
		}
	}
	if len(names) > 0 {
		info.TypeNames = names
	}

	if info.TypeNames == nil && info.Encoding == "" {
		return nil
	}
	return info
}

// firstOf returns the first present child's raw value
func firstOf(node Node, names ...string) any {
	v, _ := firstPresent(node, names...)
	return v
}
