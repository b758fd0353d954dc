package experts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/study-coach/internal/llm"
	"github.com/jonathan/study-coach/internal/types"
)

// fakeClient returns canned responses per call, recording prompts.
type fakeClient struct {
	responses []string
	err       error
	prompts   []string
	tiers     []llm.ModelTier
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.tiers = append(f.tiers, tier)
	if f.err != nil {
		return "", f.err
	}
	idx := len(f.prompts) - 1
	if idx < len(f.responses) {
		return f.responses[idx], nil
	}
	return "", nil
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

func TestComposePrompt_WrapsPersonaAroundBody(t *testing.T) {
	expert := NewFoundations()
	input := types.InputData{"concept": "신경망이란?"}

	prompt := expert.ComposePrompt(types.ServiceConceptExplanation, input, "")

	assert.Contains(t, prompt, "김민준 AI 기초 전문가")
	assert.Contains(t, prompt, "12년간 AI 연구와 교육 경험")
	assert.Contains(t, prompt, "신경망이란?")
	assert.NotContains(t, prompt, "{{.Prompt}}")
}

func TestComposePrompt_LaterStagesEmbedPriorText(t *testing.T) {
	expert := NewPractical()
	prior := "기초 단계 결과물"

	prompt := expert.ComposePrompt(types.ServiceConceptExplanation, types.InputData{"concept": "RAG"}, prior)

	assert.Contains(t, prompt, "박서연 실무 응용 전문가")
	assert.Contains(t, prompt, prior)
}

func TestRun_OkResult(t *testing.T) {
	client := &fakeClient{responses: []string{"생성된 설명"}}
	expert := NewFoundations()

	result := expert.Run(context.Background(), client, "", types.ServiceConceptExplanation, types.InputData{"concept": "x"})

	assert.False(t, result.Fallback)
	assert.Equal(t, "생성된 설명", result.Text)
	assert.Equal(t, []llm.ModelTier{llm.TierLite}, client.tiers)
}

func TestRun_ErrorBecomesFallbackEmbeddingMessage(t *testing.T) {
	client := &fakeClient{err: &llm.ModelError{Message: "quota exceeded"}}
	expert := NewLearningPath()

	result := expert.Run(context.Background(), client, "prior", types.ServiceLearningPlan, types.InputData{})

	assert.True(t, result.Fallback)
	assert.Contains(t, result.Text, "학습 경로 생성 중 오류가 발생했습니다")
	assert.Contains(t, result.Text, "quota exceeded")
}

func TestRun_EmptyResponseBecomesRetryFallback(t *testing.T) {
	client := &fakeClient{responses: []string{"   \n\t "}}
	expert := NewFoundations()

	result := expert.Run(context.Background(), client, "", types.ServiceConceptExplanation, types.InputData{"concept": "x"})

	assert.True(t, result.Fallback)
	assert.Equal(t, "응답을 생성할 수 없습니다. 다시 시도해주세요.", result.Text)
}

func TestRoster_StagesAndTiers(t *testing.T) {
	foundations := NewFoundations()
	practical := NewPractical()
	learning := NewLearningPath()

	assert.Equal(t, types.StageFoundations, foundations.Stage())
	assert.Equal(t, types.StagePractical, practical.Stage())
	assert.Equal(t, types.StageLearningPath, learning.Stage())

	assert.Equal(t, FoundationsExpertID, foundations.ID())
	assert.Equal(t, PracticalExpertID, practical.ID())
	assert.Equal(t, LearningPathExpertID, learning.ID())
}
