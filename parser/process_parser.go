package parser

import (
	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/data"
)

var processRoots = []string{"process"}

// ParseProcessSummary normalizes one process XML file into its summary
// form. Actor and diagram type come from the file's directory position, not
// from the document, and are threaded through by the discovery walk.
func ParseProcessSummary(path, actor, diagramType string) *data.ProcessSummary {
	doc := ParseXMLFile(path)
	root, ok := documentRoot(doc, processRoots...)
	if !ok {
		return nil
	}

	summary := processSummary(root, fileBase(path), actor, diagramType)
	return &summary
}

// ParseProcessDetail normalizes one process XML file into its detail form,
// including the per-language mermaid diagram sources found next to the file.
func ParseProcessDetail(path, actor, diagramType string) *data.ProcessDetail {
	doc := ParseXMLFile(path)
	root, ok := documentRoot(doc, processRoots...)
	if !ok {
		return nil
	}

	return &data.ProcessDetail{
		ProcessSummary:   processSummary(root, fileBase(path), actor, diagramType),
		UsedObjects:      namedList(childList(root, "usedObjects", "object")),
		InputParameters:  parseProcessParameters(childList(root, "inputParameters", "parameter")),
		OutputParameters: parseProcessParameters(childList(root, "outputParameters", "parameter")),
		UsedDataObjects:  namedList(childList(root, "usedDataObjects", "dataObject")),
		Exceptions:       namedList(childList(root, "exceptions", "exception")),
		References:       TextList(childList(root, "references", "reference")),
		Notes:            TextList(childList(root, "notes", "note")),
		MermaidContent:   LoadDiagramContent(path),
	}
}

func processSummary(root Node, base, actor, diagramType string) data.ProcessSummary {
	return data.ProcessSummary{
		Id:                 base,
		Actor:              actor,
		DiagramType:        diagramType,
		ProcessId:          FirstChildText(root, "processId", "id"),
		Name:               ResolveDescription(root["name"]),
		Description:        resolveDescribed(root, "description"),
		Actors:             namedList(childList(root, "actors", "actor")),
		InterfaceFunctions: namedList(childList(root, "interfaceFunctions", "function")),
	}
}

func parseProcessParameters(v any) []data.ProcessParameter {
	params := []data.ProcessParameter{}
	for _, entry := range AsList(v) {
		switch t := entry.(type) {
		case string:
			if t != "" {
				params = append(params, data.ProcessParameter{Name: Text(t), Description: data.NewMultilingualText()})
			}
		case Node:
			params = append(params, data.ProcessParameter{
				Name:        ChildText(t, "name"),
				Type:        ChildText(t, "type"),
				Description: resolveDescribed(t, "description"),
			})
		}
	}
	return params
}
