package parser

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

// Node is the generic parsed-XML representation. Values are one of:
// string (leaf text), Node (single child element), []any (repeated child
// elements). Attributes are merged into the element's own keys; attributes
// in the xml namespace keep their "xml:" prefix. Mixed text next to child
// elements or attributes is stored under the "#text" key.
type Node = map[string]any

// textKey holds character data on elements that also carry attributes or
// children
const textKey = "#text"

// XMLFile describes one XML file found in a catalog directory
type XMLFile struct {
	Name string // file name including extension
	Path string // full path
	Base string // file name without the .xml extension
}

// ParseXMLFile reads and parses one XML document into its generic Node form.
// It fails softly: a read error or malformed XML yields nil, logged at warn,
// and the caller treats the entity as not found.
func ParseXMLFile(path string) Node {
	content, err := os.ReadFile(path)
	if err != nil {
		log.Warn(fmt.Sprintf("XML Loader: cannot read %v: %v", path, err))
		return nil
	}

	decoder := xml.NewDecoder(strings.NewReader(string(content)))

	for {
		token, err := decoder.Token()
		if err != nil {
			log.Warn(fmt.Sprintf("XML Loader: malformed document %v: %v", path, err))
			return nil
		}

		if start, ok := token.(xml.StartElement); ok {
			value, err := parseElement(decoder, &start)
			if err != nil {
				log.Warn(fmt.Sprintf("XML Loader: malformed document %v: %v", path, err))
				return nil
			}
			return Node{start.Name.Local: value}
		}
	}
}

// parseElement consumes one element and its subtree from the decoder. Leaf
// elements without attributes collapse to their text content.
func parseElement(decoder *xml.Decoder, start *xml.StartElement) (any, error) {
	node := Node{}

	for _, attr := range start.Attr {
		node[attrKey(attr.Name)] = attr.Value
	}

	var text strings.Builder

	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return finishElement(node, text.String()), nil
			}
		case xml.StartElement:
			child, err := parseElement(decoder, &t)
			if err != nil {
				return nil, err
			}
			appendChild(node, t.Name.Local, child)
		case xml.CharData:
			text.WriteString(string(t))
		}
	}
}

// finishElement folds accumulated text into the node and collapses pure
// text leaves to plain strings
func finishElement(node Node, raw string) any {
	text := strings.TrimSpace(raw)

	if len(node) == 0 {
		return text
	}
	if text != "" {
		node[textKey] = text
	}
	return node
}

// appendChild stores a child value, promoting repeated names to a list.
// Single occurrences stay unwrapped; every consumer coerces through AsList.
func appendChild(node Node, name string, child any) {
	existing, ok := node[name]
	if !ok {
		node[name] = child
		return
	}
	if list, ok := existing.([]any); ok {
		node[name] = append(list, child)
		return
	}
	node[name] = []any{existing, child}
}

func attrKey(name xml.Name) string {
	if name.Space == "xml" {
		return "xml:" + name.Local
	}
	return name.Local
}

// ListXMLFiles enumerates the XML files of a directory. An absent directory
// yields an empty list, not an error.
func ListXMLFiles(dir string) []XMLFile {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return []XMLFile{}
	}

	var files []XMLFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), ".xml") {
			continue
		}
		files = append(files, XMLFile{
			Name: name,
			Path: filepath.Join(dir, name),
			Base: strings.TrimSuffix(name, filepath.Ext(name)),
		})
	}
	return files
}

// AsList coerces a maybe-single, maybe-repeated field to a slice. nil yields
// an empty slice.
func AsList(v any) []any {
	switch t := v.(type) {
	case nil:
		return []any{}
	case []any:
		return t
	default:
		return []any{t}
	}
}

// AsNode coerces a value to its Node form; plain strings and nil yield nil
func AsNode(v any) Node {
	if n, ok := v.(Node); ok {
		return n
	}
	return nil
}

// Text extracts the plain text of a value: strings directly, nodes via
// their #text content
func Text(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case Node:
		if s, ok := t[textKey].(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// ChildText returns the text of a named child (attribute or element)
func ChildText(node Node, name string) string {
	if node == nil {
		return ""
	}
	return Text(node[name])
}

// FirstChildText returns the text of the first present name in order
func FirstChildText(node Node, names ...string) string {
	for _, name := range names {
		if s := ChildText(node, name); s != "" {
			return s
		}
	}
	return ""
}

// BoolText normalizes boolean-ish XML content: the string "true" and a
// literal true are true, everything else is false
func BoolText(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.TrimSpace(t) == "true"
	case Node:
		return BoolText(Text(t))
	}
	return false
}

// IntText parses integer-ish XML content, returning 0 when it isn't one
func IntText(v any) int {
	n, err := strconv.Atoi(Text(v))
	if err != nil {
		return 0
	}
	return n
}

// TextList coerces a maybe-single child into a list of non-empty strings
func TextList(v any) []string {
	items := []string{}
	for _, entry := range AsList(v) {
		if s := Text(entry); s != "" {
			items = append(items, s)
		}
	}
	return items
}
