package parser

import (
	"sort"
	"strings"

	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/data"
)

// CategoryUncategorized is the grouping label applied wherever a document
// declares no category
const CategoryUncategorized = "Uncategorized"

// resolveId applies the identifier precedence shared by every entity:
// explicit id attribute, then a name-like field, then the filename base
func resolveId(node Node, fileBase string, nameFields ...string) string {
	if id := ChildText(node, "id"); id != "" {
		return id
	}
	if name := FirstChildText(node, nameFields...); name != "" {
		return name
	}
	return fileBase
}

// resolveCategory normalizes a category value to MultilingualText,
// defaulting to Uncategorized when absent
func resolveCategory(v any) data.MultilingualText {
	category := ResolveDescription(v)
	if category.IsEmpty() {
		return data.NewMultilingualString(CategoryUncategorized)
	}
	return category
}

// resolveDescribed decodes the new multilingual description shape and falls
// back to the legacy germanText/originalText pair only when the new shape
// yielded nothing
func resolveDescribed(node Node, field string) data.MultilingualText {
	described := ResolveDescription(node[field])
	if !described.IsEmpty() {
		return described
	}
	return ResolveLegacyText(node)
}

// documentRoot matches the parsed document against the accepted root
// element names of an entity kind. A missing root signals "not this kind of
// entity", never an error. The returned node may be nil for an empty root
// element; every accessor tolerates nil.
func documentRoot(doc Node, names ...string) (Node, bool) {
	if doc == nil {
		return nil, false
	}
	for _, name := range names {
		if v, ok := doc[name]; ok {
			return AsNode(v), true
		}
	}
	return nil, false
}

// childList reaches through a container element to its repeated items,
// e.g. <parameters><parameter/>...</parameters>
func childList(node Node, container, item string) any {
	inner := AsNode(node[container])
	if inner == nil {
		return nil
	}
	return inner[item]
}

// firstPresent returns the first of names that exists on the node, present
// meaning declared in the document even when empty
func firstPresent(node Node, names ...string) (any, bool) {
	for _, name := range names {
		if v, ok := node[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// fileBase strips directories and the extension off an XML path
func fileBase(path string) string {
	name := path
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	return name
}

// namedList collects the name of each entry of a maybe-single child list,
// accepting plain strings and nodes with a name field
func namedList(v any) []string {
	names := []string{}
	for _, entry := range AsList(v) {
		switch t := entry.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				names = append(names, s)
			}
		case Node:
			if name := FirstChildText(t, "name", textKey); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

// sortStepsByNumber orders detailed steps numerically regardless of their
// order in the file
func sortStepsByNumber[T any](steps []T, number func(T) int) {
	sort.SliceStable(steps, func(i, j int) bool {
		return number(steps[i]) < number(steps[j])
	})
}
