package parser

import (
	"strings"

	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/data"
)

// ChainRootElement is the root element identifying a process-chain
// document; the discovery walk uses it to tell chains apart from ignored
// files in the same folder.
const ChainRootElement = "processChain"

// IsProcessChainDocument reports whether the file at path parses and is
// rooted at a processChain element.
func IsProcessChainDocument(path string) bool {
	doc := ParseXMLFile(path)
	_, ok := documentRoot(doc, ChainRootElement)
	return ok
}

// ParseProcessChainSummary normalizes one process-chain XML file into its
// summary form. The folder name is recorded for traceability.
func ParseProcessChainSummary(path, folder string) *data.ProcessChainSummary {
	doc := ParseXMLFile(path)
	root, ok := documentRoot(doc, ChainRootElement)
	if !ok {
		return nil
	}

	summary := chainSummary(root, fileBase(path), folder)
	return &summary
}

// ParseProcessChainDetail normalizes one process-chain XML file into its
// detail form, including the polymorphic outcome block and the per-language
// mermaid diagram sources found next to the file.
func ParseProcessChainDetail(path, folder string) *data.ProcessChainDetail {
	doc := ParseXMLFile(path)
	root, ok := documentRoot(doc, ChainRootElement)
	if !ok {
		return nil
	}

	return &data.ProcessChainDetail{
		ProcessChainSummary: chainSummary(root, fileBase(path), folder),
		Prerequisites:       TextList(childList(root, "prerequisites", "prerequisite")),
		Actors:              namedList(childList(root, "actors", "actor")),
		Variants:            TextList(childList(root, "variants", "variant")),
		Outcome:             parseChainOutcome(root["outcome"]),
		ImportantNotes:      collectImportantNotes(root),
		UseCases:            parseChainUseCases(childList(root, "useCases", "useCase")),
		UsageScenario:       ChildText(root, "usageScenario"),
		References:          TextList(childList(root, "references", "reference")),
		MermaidContent:      LoadDiagramContent(path),
	}
}

func chainSummary(root Node, base, folder string) data.ProcessChainSummary {
	chainId := FirstChildText(root, "chainId", "id")
	if chainId == "" {
		chainId = base
	}

	summary := data.ProcessChainSummary{
		Id:          base,
		ChainId:     chainId,
		Folder:      folder,
		Name:        ResolveDescription(root["name"]),
		Description: resolveDescribed(root, "description"),
		Processes:   parseChainProcessRefs(childList(root, "processes", "process")),
		Steps:       parseChainSteps(childList(root, "steps", "step")),
	}

	sortStepsByNumber(summary.Steps, func(s data.ChainStep) int { return s.Number })
	return summary
}

func parseChainProcessRefs(v any) []data.ProcessRef {
	refs := []data.ProcessRef{}
	for _, entry := range AsList(v) {
		switch t := entry.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				refs = append(refs, data.ProcessRef{Id: s})
			}
		case Node:
			ref := data.ProcessRef{
				Id:   ChildText(t, "id"),
				Name: FirstChildText(t, "name", textKey),
			}
			if ref.Id == "" {
				ref.Id = ref.Name
			}
			if ref.Id != "" {
				refs = append(refs, ref)
			}
		}
	}
	return refs
}

func parseChainSteps(v any) []data.ChainStep {
	steps := []data.ChainStep{}
	for _, entry := range AsList(v) {
		node := AsNode(entry)
		if node == nil {
			continue
		}
		steps = append(steps, data.ChainStep{
			Number:      IntText(node["number"]),
			Name:        ChildText(node, "name"),
			Description: resolveDescribed(node, "description"),
			Function:    parseChainFunction(node["function"]),
			Critical:    BoolText(node["critical"]),
			Optional:    BoolText(node["optional"]),
			Frequency:   ChildText(node, "frequency"),
		})
	}
	return steps
}

func parseChainFunction(v any) *data.ChainFunction {
	switch t := v.(type) {
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return &data.ChainFunction{Name: s}
		}
	case Node:
		fn := &data.ChainFunction{
			Name:          FirstChildText(t, "name", textKey),
			LinkedProcess: FirstChildText(t, "linkedProcess", "process"),
		}
		if fn.Name != "" {
			return fn
		}
	}
	return nil
}

// parseChainOutcome decodes the three historically grown outcome shapes by
// inspecting which keys the document carries; no unifying schema is
// guessed, mixed documents keep every variant they declare
func parseChainOutcome(v any) *data.ChainOutcome {
	node := AsNode(v)
	if node == nil {
		return nil
	}

	outcome := &data.ChainOutcome{
		LogTypes:    TextList(childList(node, "logTypes", "logType")),
		StoredData:  TextList(childList(node, "storedData", "data")),
		State:       ChildText(node, "state"),
		LogMessages: TextList(childList(node, "logMessages", "message")),
		ProcessData: parseChainProcessData(node["processData"]),
		Artifacts:   TextList(childList(node, "artifacts", "artifact")),
	}

	if len(outcome.LogTypes) == 0 && len(outcome.StoredData) == 0 &&
		outcome.State == "" && len(outcome.LogMessages) == 0 &&
		outcome.ProcessData == nil && len(outcome.Artifacts) == 0 {
		return nil
	}
	return outcome
}

func parseChainProcessData(v any) *data.ChainProcessData {
	node := AsNode(v)
	if node == nil {
		return nil
	}
	return &data.ChainProcessData{
		Name:   ChildText(node, "name"),
		Fields: parseTypeFields(node),
	}
}

// collectImportantNotes flattens note content across possibly repeated
// notes sections
func collectImportantNotes(root Node) []string {
	notes := []string{}
	for _, section := range AsList(firstOf(root, "importantNotes", "notes")) {
		sectionNode := AsNode(section)
		if sectionNode == nil {
			if s := Text(section); s != "" {
				notes = append(notes, s)
			}
			continue
		}
		notes = append(notes, TextList(sectionNode["note"])...)
	}
	return notes
}

func parseChainUseCases(v any) []data.ChainUseCase {
	useCases := []data.ChainUseCase{}
	for _, entry := range AsList(v) {
		switch t := entry.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				useCases = append(useCases, data.ChainUseCase{Description: s})
			}
		case Node:
			uc := data.ChainUseCase{
				Name:        ChildText(t, "name"),
				Description: ChildText(t, "description"),
			}
			if uc.Name != "" || uc.Description != "" {
				useCases = append(useCases, uc)
			}
		}
	}
	return useCases
}
