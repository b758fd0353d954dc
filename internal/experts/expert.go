// Package experts provides the three educational experts that each perform
// one pass of the guidance pipeline: foundations, practical application, and
// learning path design.
package experts

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/study-coach/internal/llm"
	"github.com/jonathan/study-coach/internal/prompts"
	"github.com/jonathan/study-coach/internal/types"
)

// Expert is one member of the education team. Each expert owns a fixed
// persona, a stage of the pipeline, and the fallback text substituted when
// the model returns nothing or fails. Run never returns an error: failures
// become the stage's output text and flow to the next stage as ordinary
// prior context.
type Expert struct {
	id            string
	personaName   string
	personaIntro  string
	stage         types.Stage
	personaKey    string
	tier          llm.ModelTier
	emptyFallback string
	errorFallback string // fmt verb %s receives the failure message
}

// ID returns the expert identity recorded in run logs.
func (e *Expert) ID() string {
	return e.id
}

// PersonaName returns the expert's user-facing persona name.
func (e *Expert) PersonaName() string {
	return e.personaName
}

// Stage returns the pipeline stage this expert performs.
func (e *Expert) Stage() types.Stage {
	return e.stage
}

// ComposePrompt builds the full outbound prompt: the persona preamble
// wrapped around the catalog template for this expert's stage, with the
// previous stage's output threaded in verbatim for the later stages.
func (e *Expert) ComposePrompt(serviceType types.ServiceType, inputData types.InputData, priorText string) string {
	body := prompts.BuildPrompt(e.stage, serviceType, inputData, priorText)

	wrap := prompts.MustGet("personas.json", e.personaKey)
	return prompts.Format(wrap, map[string]string{
		"ExpertName":  e.personaName,
		"ExpertIntro": e.personaIntro,
		"Prompt":      body,
	})
}

// Run performs this expert's pass: compose the prompt, call the model once,
// and return the stage result. Model failures and empty responses are
// converted to fallback text; they are never raised to the caller.
func (e *Expert) Run(ctx context.Context, client llm.Client, priorText string, serviceType types.ServiceType, inputData types.InputData) types.StageResult {
	prompt := e.ComposePrompt(serviceType, inputData, priorText)

	text, err := client.GenerateContent(ctx, prompt, e.tier)
	if err != nil {
		return types.FallbackResult(fmt.Sprintf(e.errorFallback, err.Error()))
	}
	if strings.TrimSpace(text) == "" {
		return types.FallbackResult(e.emptyFallback)
	}
	return types.OkResult(text)
}
