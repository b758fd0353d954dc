package prompts

import (
	"strings"

	"github.com/jonathan/study-coach/internal/types"
)

// stageFiles maps each stage to the JSON file holding its templates.
var stageFiles = map[types.Stage]string{
	types.StageFoundations:  "foundations.json",
	types.StagePractical:    "practical.json",
	types.StageLearningPath: "learning.json",
}

// templateKeys maps service types to their template key within a stage file.
// Every stage file carries the same key set plus "generic" and, for stages
// that consume prior output, "prior_context".
var templateKeys = map[types.ServiceType]string{
	types.ServiceConceptExplanation: "concept_explanation",
	types.ServiceToolUsage:          "tool_usage",
	types.ServiceLearningPlan:       "learning_plan",
	types.ServiceCSCareerSpec:       "cs_career_spec",
	types.ServiceEthicsSafety:       "ethics_safety",
}

// genericKey is the fallback template key for service types outside the closed set.
const genericKey = "generic"

// priorContextKey holds the delimited block that embeds the previous stage's
// output verbatim. Present in practical.json and learning.json only.
const priorContextKey = "prior_context"

// fieldPlaceholders maps input field names to their template placeholder keys.
// Fields absent from the input resolve to empty strings, never to errors.
var fieldPlaceholders = map[string]string{
	"concept":           "Concept",
	"tool_name":         "ToolName",
	"purpose":           "Purpose",
	"current_level":     "CurrentLevel",
	"goals":             "Goals",
	"current_situation": "CurrentSituation",
	"career_goals":      "CareerGoals",
	"area_of_interest":  "AreaOfInterest",
}

// BuildPrompt selects and populates the template for a (stage, serviceType)
// pair. It is pure and total: unknown service types use the generic template,
// missing input fields substitute as empty strings, and priorText is embedded
// verbatim in a delimited block for the second and third stages. Input content
// is not escaped or validated; it is opaque text inside a larger text.
func BuildPrompt(stage types.Stage, serviceType types.ServiceType, inputData types.InputData, priorText string) string {
	file, ok := stageFiles[stage]
	if !ok {
		// Out-of-range stages degrade to the first stage, which takes no
		// prior-context block.
		stage = types.StageFoundations
		file = stageFiles[stage]
	}

	key, ok := templateKeys[serviceType]
	if !ok {
		key = genericKey
	}

	body, err := Get(file, key)
	if err != nil {
		body = MustGet(file, genericKey)
	}

	data := placeholderData(serviceType, inputData)
	body = Format(body, data)

	if stage == types.StageFoundations {
		return body
	}

	block := Format(MustGet(file, priorContextKey), map[string]string{"PriorText": priorText})

	var sb strings.Builder
	sb.WriteString(block)
	sb.WriteString("\n\n")
	sb.WriteString(body)
	return sb.String()
}

// placeholderData builds the substitution map for one template expansion.
// All known field placeholders are always present so absent fields render empty.
func placeholderData(serviceType types.ServiceType, inputData types.InputData) map[string]string {
	data := map[string]string{
		"ServiceLabel": serviceType.Label(),
		"InputSummary": inputData.Summary(),
	}
	for field, placeholder := range fieldPlaceholders {
		data[placeholder] = inputData.Get(field)
	}
	return data
}
