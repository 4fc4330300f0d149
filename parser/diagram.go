package parser

import (
	"os"
	"strings"

	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/data"
)

// LoadDiagramContent resolves the mermaid diagram sources accompanying a
// process or process-chain XML file. For each supported language it tries
// <base>_<lang>.mermaid; a languageless legacy <base>.mermaid feeds the de
// slot; when only one language's file exists its content fills the other.
// Missing files degrade to empty strings, never an error.
func LoadDiagramContent(xmlPath string) map[string]string {
	base := strings.TrimSuffix(xmlPath, ".xml")

	content := map[string]string{}
	for _, lang := range data.Languages {
		content[lang] = readDiagramFile(base + "_" + lang + ".mermaid")
	}

	if content["de"] == "" {
		content["de"] = readDiagramFile(base + ".mermaid")
	}

	var present string
	for _, lang := range data.Languages {
		if content[lang] != "" {
			present = content[lang]
			break
		}
	}
	for _, lang := range data.Languages {
		if content[lang] == "" {
			content[lang] = present
		}
	}

	return content
}

func readDiagramFile(path string) string {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(bytes)
}
