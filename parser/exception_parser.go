package parser

import (
	"strings"

	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/data"
)

var exceptionRoots = []string{"exception"}

// ParseExceptionSummary normalizes one exception XML file into its summary
// form. Returns nil when the file is unreadable or not an exception
// document.
func ParseExceptionSummary(path string) *data.ExceptionSummary {
	doc := ParseXMLFile(path)
	root, ok := documentRoot(doc, exceptionRoots...)
	if !ok {
		return nil
	}

	summary := exceptionSummary(root, fileBase(path))
	return &summary
}

// ParseExceptionDetail normalizes one exception XML file into its detail
// form.
func ParseExceptionDetail(path string) *data.ExceptionDetail {
	doc := ParseXMLFile(path)
	root, ok := documentRoot(doc, exceptionRoots...)
	if !ok {
		return nil
	}

	return &data.ExceptionDetail{
		ExceptionSummary:    exceptionSummary(root, fileBase(path)),
		RelatedExceptions:   parseRelatedExceptions(childList(root, "relatedExceptions", "exception")),
		TriggerConditions:   TextList(childList(root, "triggerConditions", "condition")),
		ExecutionSequence:   TextList(childList(root, "executionSequence", "step")),
		Postconditions:      TextList(childList(root, "postconditions", "postcondition")),
		Recovery:            parseRecovery(root["recovery"]),
		UsageScenarios:      parseUsageScenarios(childList(root, "usageScenarios", "scenario")),
		ImplementationNotes: TextList(childList(root, "implementationContext", "note")),
	}
}

func exceptionSummary(root Node, base string) data.ExceptionSummary {
	id := resolveId(root, base, "name")
	name := ChildText(root, "name")
	if name == "" {
		name = id
	}

	severity := ChildText(root, "severity")
	if severity == "" {
		severity = data.SeverityDefault
	}

	return data.ExceptionSummary{
		Id:            id,
		Name:          name,
		Category:      resolveCategory(root["category"]),
		Severity:      severity,
		Description:   resolveDescribed(root, "description"),
		JavadocText:   FirstChildText(root, "javadoc", "javadocSummary"),
		Specification: parseSpecificationRef(root["specification"]),
		ThrownBy:      namedList(childList(root, "thrownBy", "function")),
	}
}

func parseSpecificationRef(v any) *data.SpecificationRef {
	node := AsNode(v)
	if node == nil {
		return nil
	}

	ref := &data.SpecificationRef{
		Source:      ChildText(node, "source"),
		Requirement: ChildText(node, "requirement"),
	}
	if ref.Source == "" && ref.Requirement == "" {
		return nil
	}
	return ref
}

// parseRelatedExceptions accepts both the structured form and the legacy
// "Name - description" convention string
func parseRelatedExceptions(v any) []data.RelatedException {
	related := []data.RelatedException{}
	for _, entry := range AsList(v) {
		switch t := entry.(type) {
		case string:
			if rel, ok := splitRelatedException(t); ok {
				related = append(related, rel)
			}
		case Node:
			rel := data.RelatedException{
				Name:        FirstChildText(t, "name", textKey),
				Description: ChildText(t, "description"),
			}
			if rel.Name != "" {
				related = append(related, rel)
			}
		}
	}
	return related
}

// splitRelatedException parses the "Name - description" convention, split
// on the first " - " occurrence; a string without the separator is taken as
// a bare name
func splitRelatedException(raw string) (data.RelatedException, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return data.RelatedException{}, false
	}

	if name, description, found := strings.Cut(raw, " - "); found {
		return data.RelatedException{
			Name:        strings.TrimSpace(name),
			Description: strings.TrimSpace(description),
		}, true
	}
	return data.RelatedException{Name: raw}, true
}

func parseRecovery(v any) *data.RecoveryProcedure {
	node := AsNode(v)
	if node == nil {
		if text := Text(v); text != "" {
			return &data.RecoveryProcedure{Description: text}
		}
		return nil
	}

	return &data.RecoveryProcedure{
		Description:   ChildText(node, "description"),
		Action:        ChildText(node, "action"),
		AlternatePath: ChildText(node, "alternatePath"),
		Steps:         TextList(childList(node, "steps", "step")),
	}
}

func parseUsageScenarios(v any) []data.UsageScenario {
	scenarios := []data.UsageScenario{}
	for _, entry := range AsList(v) {
		node := AsNode(entry)
		if node == nil {
			if text := Text(entry); text != "" {
				scenarios = append(scenarios, data.UsageScenario{Description: text})
			}
			continue
		}
		scenarios = append(scenarios, data.UsageScenario{
			Name:             ChildText(node, "name"),
			Description:      ChildText(node, "description"),
			Example:          ChildText(node, "example"),
			RelatedFunctions: namedList(childList(node, "relatedFunctions", "function")),
			ErrorContext:     ChildText(node, "errorContext"),
		})
	}
	return scenarios
}
