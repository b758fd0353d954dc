// Package types provides type definitions for structured data used throughout the study-coach system.
package types

// ServiceType identifies the category of guidance a pipeline run was invoked for.
// The set is closed; anything outside it is handled through ServiceGeneric templates.
type ServiceType string

// Service type constants define the supported guidance categories.
const (
	// ServiceConceptExplanation explains a single AI concept from first principles.
	ServiceConceptExplanation ServiceType = "concept_explanation"
	// ServiceToolUsage teaches how to use a specific AI tool for a stated purpose.
	ServiceToolUsage ServiceType = "tool_usage"
	// ServiceLearningPlan builds a study roadmap from a current level toward a goal.
	ServiceLearningPlan ServiceType = "learning_plan"
	// ServiceCSCareerSpec guides CS students on building a credentials portfolio.
	ServiceCSCareerSpec ServiceType = "cs_career_spec"
	// ServiceEthicsSafety covers ethical and safe use of AI systems.
	ServiceEthicsSafety ServiceType = "ethics_safety"
	// ServiceGeneric is the fallback used for any service type outside the closed set.
	ServiceGeneric ServiceType = "generic"
)

// serviceLabels maps canonical service types to their user-facing Korean labels.
var serviceLabels = map[ServiceType]string{
	ServiceConceptExplanation: "AI 개념 이해",
	ServiceToolUsage:          "AI 도구 사용법",
	ServiceLearningPlan:       "AI 학습 계획",
	ServiceCSCareerSpec:       "CS 학생 스펙 가이드",
	ServiceEthicsSafety:       "AI 윤리 및 안전",
}

// serviceDescriptions maps service types to a one-line description shown in catalogs.
var serviceDescriptions = map[ServiceType]string{
	ServiceConceptExplanation: "AI의 기본 개념과 원리를 쉽게 이해하고 싶을 때",
	ServiceToolUsage:          "특정 AI 도구를 효과적으로 활용하는 방법을 배우고 싶을 때",
	ServiceLearningPlan:       "체계적인 AI 학습 로드맵과 계획이 필요할 때",
	ServiceCSCareerSpec:       "컴퓨터공학 전공 학생을 위한 구체적인 스펙 로드맵이 필요할 때",
	ServiceEthicsSafety:       "AI의 윤리적 사용과 안전한 활용에 대해 알고 싶을 때",
}

// requiredInputKeys maps service types to the input fields the UI must collect.
// Validation of non-empty values is the caller's responsibility; the core
// treats missing keys as empty strings.
var requiredInputKeys = map[ServiceType][]string{
	ServiceConceptExplanation: {"concept"},
	ServiceToolUsage:          {"tool_name", "purpose"},
	ServiceLearningPlan:       {"current_level", "goals"},
	ServiceCSCareerSpec:       {"current_situation", "career_goals"},
	ServiceEthicsSafety:       {"area_of_interest"},
}

// AllServiceTypes returns the closed enumeration in display order,
// excluding the generic fallback.
func AllServiceTypes() []ServiceType {
	return []ServiceType{
		ServiceConceptExplanation,
		ServiceToolUsage,
		ServiceLearningPlan,
		ServiceCSCareerSpec,
		ServiceEthicsSafety,
	}
}

// Known reports whether the service type is a member of the closed enumeration.
func (s ServiceType) Known() bool {
	_, ok := serviceLabels[s]
	return ok
}

// Label returns the user-facing Korean label for the service type.
// Unknown service types are returned as-is so they remain visible in output.
func (s ServiceType) Label() string {
	if label, ok := serviceLabels[s]; ok {
		return label
	}
	return string(s)
}

// Description returns the one-line catalog description for the service type.
func (s ServiceType) Description() string {
	return serviceDescriptions[s]
}

// RequiredInputKeys returns the input fields a caller should supply for the
// service type. Unknown service types have no required keys.
func (s ServiceType) RequiredInputKeys() []string {
	keys := requiredInputKeys[s]
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// ParseServiceType resolves a user-supplied string to a canonical service type.
// Both canonical values ("tool_usage") and Korean labels ("AI 도구 사용법") are
// accepted. Strings outside the closed set are returned unchanged; downstream
// template selection degrades to the generic fallback for them.
func ParseServiceType(raw string) ServiceType {
	st := ServiceType(raw)
	if st.Known() {
		return st
	}
	for canonical, label := range serviceLabels {
		if label == raw {
			return canonical
		}
	}
	return st
}
