package parser

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/data"
)

// ResolveText turns a raw parsed-XML value into a MultilingualText. The
// value may be absent, a plain string, or a container holding one or more
// childTag elements tagged with xml:lang (or a bare lang attribute);
// untagged text is accepted as legacy fallback. Identical input always
// yields identical output.
func ResolveText(v any, childTag string) data.MultilingualText {
	switch t := v.(type) {
	case nil:
		return data.NewMultilingualText()
	case string:
		return data.NewMultilingualString(strings.TrimSpace(t))
	case Node:
		return resolveNode(t, childTag)
	}
	return data.NewMultilingualText()
}

// ResolveDescription is ResolveText with the conventional "text" child tag
func ResolveDescription(v any) data.MultilingualText {
	return ResolveText(v, "text")
}

func resolveNode(node Node, childTag string) data.MultilingualText {
	result := data.NewMultilingualText()

	children := AsList(node[childTag])
	if len(children) == 0 {
		// no tagged children: fall back to raw text directly on the node
		if raw := Text(node); raw != "" {
			return data.NewMultilingualString(raw)
		}
		return result.Finalize()
	}

	for _, child := range children {
		content := Text(child)
		if content == "" {
			continue
		}

		lang := languageOf(child)
		if lang == "" {
			// untagged text seeds the default only; cross-fill decides the rest
			if result.Default() == "" {
				result[data.DefaultKey] = content
			}
			continue
		}
		result[lang] = content
	}

	return result.Finalize()
}

// languageOf reads the language attribute of a text child, preferring
// xml:lang over a bare lang attribute, canonicalized to its base code
// (de-DE -> de)
func languageOf(v any) string {
	node := AsNode(v)
	if node == nil {
		return ""
	}

	raw := FirstChildText(node, "xml:lang", "lang")
	if raw == "" {
		return ""
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return strings.ToLower(raw)
	}
	base, _ := tag.Base()
	return base.String()
}

// ResolveLegacyText decodes the pre-multilingual germanText/originalText
// convention into a MultilingualText. Used only when the new description
// shape yielded an empty result.
func ResolveLegacyText(node Node) data.MultilingualText {
	result := data.NewMultilingualText()
	if node == nil {
		return result
	}

	if german := ChildText(node, "germanText"); german != "" {
		result["de"] = german
	}
	if original := ChildText(node, "originalText"); original != "" {
		result[data.DefaultKey] = original
		if result["de"] == "" {
			result["de"] = original
		}
	}
	return result.Finalize()
}
