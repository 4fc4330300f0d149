package parser

import (
	"strings"

	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/data"
)

// functionRoots lists the accepted root elements of a function document;
// interfaceFunction is the legacy spelling
var functionRoots = []string{"function", "interfaceFunction"}

// ParseFunctionSummary normalizes one function XML file into its summary
// form. Returns nil when the file is unreadable or not a function document.
func ParseFunctionSummary(path string) *data.FunctionSummary {
	doc := ParseXMLFile(path)
	root, ok := documentRoot(doc, functionRoots...)
	if !ok {
		return nil
	}

	summary := functionSummary(root, fileBase(path))
	return &summary
}

// ParseFunctionDetail normalizes one function XML file into its detail form,
// additionally decoding steps, notes, and log structures.
func ParseFunctionDetail(path string) *data.FunctionDetail {
	doc := ParseXMLFile(path)
	root, ok := documentRoot(doc, functionRoots...)
	if !ok {
		return nil
	}

	detail := &data.FunctionDetail{
		FunctionSummary:  functionSummary(root, fileBase(path)),
		DetailedSteps:    parseFunctionSteps(root),
		Notes:            TextList(childList(root, "notes", "note")),
		Overloads:        TextList(childList(root, "overloads", "overload")),
		MutualExclusions: namedList(childList(root, "mutualExclusions", "function")),
		SystemLogs:       parseLogStructures(root["systemLog"]),
		TransactionLogs:  parseLogStructures(root["transactionLog"]),
	}

	sortStepsByNumber(detail.DetailedSteps, func(s data.FunctionStep) int { return s.Number })
	return detail
}

func functionSummary(root Node, base string) data.FunctionSummary {
	id := resolveId(root, base, "name")
	name := ChildText(root, "name")
	if name == "" {
		name = id
	}

	return data.FunctionSummary{
		Id:          id,
		Name:        name,
		Category:    resolveCategory(root["category"]),
		Description: resolveDescribed(root, "description"),
		Parameters:  parseFunctionParameters(root),
		ReturnValue: parseFunctionReturn(root),
		Exceptions:  namedList(childList(root, "exceptions", "exception")),
		StepCount:   len(AsList(functionStepsRaw(root))),
	}
}

// functionStepsRaw locates the step list, accepting the legacy steps
// container next to the current detailedSteps one
func functionStepsRaw(root Node) any {
	if v := childList(root, "detailedSteps", "step"); v != nil {
		return v
	}
	return childList(root, "steps", "step")
}

func parseFunctionParameters(root Node) []data.FunctionParameter {
	raw := childList(root, "parameters", "parameter")
	if raw == nil {
		// legacy documents attach parameter elements directly to the root
		raw = root["parameter"]
	}

	params := []data.FunctionParameter{}
	for _, entry := range AsList(raw) {
		node := AsNode(entry)
		if node == nil {
			continue
		}
		params = append(params, data.FunctionParameter{
			Name:        ChildText(node, "name"),
			Type:        ChildText(node, "type"),
			Direction:   normalizeDirection(ChildText(node, "direction")),
			Required:    BoolText(node["required"]),
			Default:     FirstChildText(node, "default", "defaultValue"),
			Description: resolveDescribed(node, "description"),
		})
	}
	return params
}

// normalizeDirection maps the direction spellings observed across document
// generations onto the three canonical values
func normalizeDirection(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "OUT", "OUTPUT":
		return data.DirectionOutput
	case "INOUT", "IN_OUT", "IN/OUT", "INPUT_OUTPUT":
		return data.DirectionInOut
	default:
		return data.DirectionInput
	}
}

func parseFunctionReturn(root Node) *data.FunctionReturn {
	raw, ok := firstPresent(root, "returnValue", "return")
	if !ok {
		return nil
	}

	node := AsNode(raw)
	if node == nil {
		if text := Text(raw); text != "" {
			return &data.FunctionReturn{Type: text, Description: data.NewMultilingualText()}
		}
		return nil
	}

	return &data.FunctionReturn{
		Type:        ChildText(node, "type"),
		Description: resolveDescribed(node, "description"),
	}
}

func parseFunctionSteps(root Node) []data.FunctionStep {
	steps := []data.FunctionStep{}
	for _, entry := range AsList(functionStepsRaw(root)) {
		node := AsNode(entry)
		if node == nil {
			continue
		}
		steps = append(steps, data.FunctionStep{
			Number:       IntText(node["number"]),
			Description:  resolveDescribed(node, "description"),
			LegacyText:   FirstChildText(node, "germanText", "originalText"),
			Pseudocode:   ChildText(node, "pseudocode"),
			ErrorCases:   TextList(childList(node, "errorCases", "errorCase")),
			SuccessCases: TextList(childList(node, "successCases", "successCase")),
			StandardStep: parseStandardStep(node["standardStep"]),
		})
	}
	return steps
}

func parseStandardStep(v any) *data.StandardStepRef {
	switch t := v.(type) {
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return &data.StandardStepRef{Name: s}
		}
	case Node:
		ref := &data.StandardStepRef{
			Id:   ChildText(t, "id"),
			Name: FirstChildText(t, "name", textKey),
		}
		if ref.Id != "" || ref.Name != "" {
			return ref
		}
	}
	return nil
}

func parseLogStructures(v any) []data.LogStructure {
	logs := []data.LogStructure{}
	for _, entry := range AsList(v) {
		node := AsNode(entry)
		if node == nil {
			continue
		}
		logs = append(logs, data.LogStructure{
			LogType:       FirstChildText(node, "logType", "type"),
			Requirement:   ChildText(node, "requirement"),
			ASN1Structure: FirstChildText(node, "asn1Structure", "asn1"),
			Fields:        parseLogFields(childList(node, "fields", "field")),
		})
	}
	return logs
}

func parseLogFields(v any) []data.LogField {
	fields := []data.LogField{}
	for _, entry := range AsList(v) {
		switch t := entry.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				fields = append(fields, data.LogField{Name: s, Description: data.NewMultilingualText()})
			}
		case Node:
			fields = append(fields, data.LogField{
				Name:        ChildText(t, "name"),
				Type:        ChildText(t, "type"),
				Description: resolveDescribed(t, "description"),
			})
		}
	}
	return fields
}
