package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseXMLFileMergesAttributes(t *testing.T) {
	doc := parseFixture(t, `<function id="fn1" deprecated="true"><name>doIt</name></function>`)

	root := AsNode(doc["function"])
	require.NotNil(t, root)
	assert.Equal(t, "fn1", ChildText(root, "id"))
	assert.Equal(t, "true", ChildText(root, "deprecated"))
	assert.Equal(t, "doIt", ChildText(root, "name"))
}

func TestParseXMLFileSingleChildNotWrapped(t *testing.T) {
	doc := parseFixture(t, `<root><item>one</item></root>`)

	root := AsNode(doc["root"])
	_, isList := root["item"].([]any)
	assert.False(t, isList, "single children stay unwrapped")
	assert.Len(t, AsList(root["item"]), 1)
}

func TestParseXMLFileRepeatedChildrenPromoted(t *testing.T) {
	doc := parseFixture(t, `<root><item>one</item><item>two</item><item>three</item></root>`)

	items := AsList(AsNode(doc["root"])["item"])
	assert.Len(t, items, 3)
	assert.Equal(t, "one", Text(items[0]))
	assert.Equal(t, "three", Text(items[2]))
}

func TestParseXMLFileLeafCollapsesToString(t *testing.T) {
	doc := parseFixture(t, `<root><name>startTransaction</name></root>`)

	name, isString := AsNode(doc["root"])["name"].(string)
	assert.True(t, isString)
	assert.Equal(t, "startTransaction", name)
}

func TestParseXMLFileMixedTextUnderTextKey(t *testing.T) {
	doc := parseFixture(t, `<root><ref id="r1">see elsewhere</ref></root>`)

	ref := AsNode(AsNode(doc["root"])["ref"])
	require.NotNil(t, ref)
	assert.Equal(t, "r1", ChildText(ref, "id"))
	assert.Equal(t, "see elsewhere", Text(ref))
}

func TestParseXMLFileMalformedReturnsNil(t *testing.T) {
	path := writeXML(t, t.TempDir(), "broken.xml", `<root><unclosed></root>`)
	assert.Nil(t, ParseXMLFile(path))
}

func TestParseXMLFileMissingReturnsNil(t *testing.T) {
	assert.Nil(t, ParseXMLFile(filepath.Join(t.TempDir(), "absent.xml")))
}

func TestParseXMLFileIdempotent(t *testing.T) {
	path := writeXML(t, t.TempDir(), "doc.xml", `<root a="1"><b>x</b><b>y</b><c><d>deep</d></c></root>`)

	first := ParseXMLFile(path)
	second := ParseXMLFile(path)

	assert.Equal(t, first, second)
}

func TestListXMLFiles(t *testing.T) {
	dir := t.TempDir()
	writeXML(t, dir, "alpha.xml", `<a/>`)
	writeXML(t, dir, "beta.xml", `<b/>`)
	writeXML(t, dir, "notes.txt", `ignored`)

	files := ListXMLFiles(dir)

	require.Len(t, files, 2)
	assert.Equal(t, "alpha", files[0].Base)
	assert.Equal(t, "alpha.xml", files[0].Name)
	assert.Equal(t, filepath.Join(dir, "beta.xml"), files[1].Path)
}

func TestListXMLFilesAbsentDirectory(t *testing.T) {
	files := ListXMLFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Empty(t, files)
	assert.NotNil(t, files)
}

func TestAsList(t *testing.T) {
	assert.Empty(t, AsList(nil))
	assert.Equal(t, []any{"x"}, AsList("x"))
	assert.Equal(t, []any{"x", "y"}, AsList([]any{"x", "y"}))
}

func TestBoolText(t *testing.T) {
	assert.True(t, BoolText("true"))
	assert.True(t, BoolText(" true "))
	assert.True(t, BoolText(true))
	assert.False(t, BoolText("yes"))
	assert.False(t, BoolText("TRUE"))
	assert.False(t, BoolText(""))
	assert.False(t, BoolText(nil))
}

func TestIntText(t *testing.T) {
	assert.Equal(t, 7, IntText("7"))
	assert.Equal(t, 0, IntText("seven"))
	assert.Equal(t, 0, IntText(nil))
}
