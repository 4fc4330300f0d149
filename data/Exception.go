package data

// SeverityDefault applies when an exception document declares no severity
const SeverityDefault = "Medium"

// SpecificationRef ties an exception back to its normative requirement
type SpecificationRef struct {
	Source      string `json:"source,omitempty"`
	Requirement string `json:"requirement,omitempty"`
}

// ExceptionSummary is the lightweight form of an exception used in list views
type ExceptionSummary struct {
	Id            string            `json:"id"`
	Name          string            `json:"name"`
	Category      MultilingualText  `json:"category"`
	Severity      string            `json:"severity"`
	Description   MultilingualText  `json:"description"`
	JavadocText   string            `json:"javadocText,omitempty"`
	Specification *SpecificationRef `json:"specification,omitempty"`
	ThrownBy      []string          `json:"thrownBy"`
}

// RelatedException references another exception by name, with the free-text
// description the source document attached to the relation
type RelatedException struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// RecoveryProcedure describes how callers recover from an exception
type RecoveryProcedure struct {
	Description   string   `json:"description,omitempty"`
	Action        string   `json:"action,omitempty"`
	AlternatePath string   `json:"alternatePath,omitempty"`
	Steps         []string `json:"steps,omitempty"`
}

// UsageScenario is one documented situation in which an exception occurs
type UsageScenario struct {
	Name             string   `json:"name,omitempty"`
	Description      string   `json:"description,omitempty"`
	Example          string   `json:"example,omitempty"`
	RelatedFunctions []string `json:"relatedFunctions,omitempty"`
	ErrorContext     string   `json:"errorContext,omitempty"`
}

// ExceptionDetail is the full normalized form used in single-item views
type ExceptionDetail struct {
	ExceptionSummary
	RelatedExceptions   []RelatedException `json:"relatedExceptions"`
	TriggerConditions   []string           `json:"triggerConditions"`
	ExecutionSequence   []string           `json:"executionSequence"`
	Postconditions      []string           `json:"postconditions"`
	Recovery            *RecoveryProcedure `json:"recovery,omitempty"`
	UsageScenarios      []UsageScenario    `json:"usageScenarios"`
	ImplementationNotes []string           `json:"implementationNotes"`
}
