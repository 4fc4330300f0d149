package parser

import (
	"strings"

	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/data"
)

// typeRoots in priority order; a document matching none of these still
// parses through its first root key, since older type documents used ad-hoc
// root names
var typeRoots = []string{"type", "resultType", "eventData"}

// ParseTypeSummary normalizes one data-type XML file into its summary form.
func ParseTypeSummary(path string) *data.TypeSummary {
	root, _, ok := typeRoot(ParseXMLFile(path))
	if !ok {
		return nil
	}

	summary := typeSummary(root, fileBase(path))
	return &summary
}

// ParseTypeDetail normalizes one data-type XML file into its detail form,
// including the typeKind tag derived from the root element.
func ParseTypeDetail(path string) *data.TypeDetail {
	root, rootName, ok := typeRoot(ParseXMLFile(path))
	if !ok {
		return nil
	}

	summary := typeSummary(root, fileBase(path))

	return &data.TypeDetail{
		TypeSummary:    summary,
		TypeKind:       typeKind(rootName, root, summary.Name),
		BaseType:       ChildText(root, "baseType"),
		TypeDefinition: FirstChildText(root, "typeDefinition", "definition"),
		UsageNotes:     TextList(childList(root, "usageNotes", "note")),
		Constraints:    TextList(childList(root, "constraints", "constraint")),
	}
}

// typeRoot resolves the polymorphic root element of a type document:
// type > resultType > eventData > first key of the document
func typeRoot(doc Node) (Node, string, bool) {
	if doc == nil {
		return nil, "", false
	}
	for _, name := range typeRoots {
		if v, ok := doc[name]; ok {
			return AsNode(v), name, true
		}
	}
	for name, v := range doc {
		return AsNode(v), name, true
	}
	return nil, "", false
}

func typeSummary(root Node, base string) data.TypeSummary {
	id := resolveId(root, base, "name")
	name := ChildText(root, "name")
	if name == "" {
		name = id
	}

	return data.TypeSummary{
		Id:          id,
		Name:        name,
		Category:    typeCategory(root, name),
		Description: resolveDescribed(root, "description"),
		Fields:      parseTypeFields(root),
	}
}

// typeCategory applies the naming-suffix heuristic unless the document
// declares an explicit category
func typeCategory(root Node, name string) data.MultilingualText {
	if explicit := ResolveDescription(root["category"]); !explicit.IsEmpty() {
		return explicit
	}

	switch {
	case strings.HasSuffix(name, "EventData"):
		return data.NewMultilingualString("EventData")
	case strings.HasSuffix(name, "Result"):
		return data.NewMultilingualString("Result")
	case strings.HasSuffix(name, "Set"):
		return data.NewMultilingualString("Set")
	default:
		return data.NewMultilingualString(CategoryUncategorized)
	}
}

// typeKind tags the document variant: resultType roots are results, a
// declared baseType marks a simple type, the EventData name suffix marks
// event data, everything else is a complex type
func typeKind(rootName string, root Node, name string) string {
	switch {
	case rootName == "resultType":
		return data.TypeKindResult
	case ChildText(root, "baseType") != "":
		return data.TypeKindSimple
	case rootName == "eventData" || strings.HasSuffix(name, "EventData"):
		return data.TypeKindEventData
	default:
		return data.TypeKindComplex
	}
}

func parseTypeFields(root Node) []data.TypeField {
	raw := childList(root, "fields", "field")
	if raw == nil {
		raw = childList(root, "elements", "element")
	}

	fields := []data.TypeField{}
	for _, entry := range AsList(raw) {
		node := AsNode(entry)
		if node == nil {
			continue
		}
		fields = append(fields, data.TypeField{
			Name:        ChildText(node, "name"),
			Type:        ChildText(node, "type"),
			Description: resolveDescribed(node, "description"),
			Required:    BoolText(node["required"]),
			Optional:    BoolText(node["optional"]),
			Default:     FirstChildText(node, "default", "defaultValue"),
		})
	}
	return fields
}
