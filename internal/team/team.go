// Package team provides the high-level orchestration of the three-expert
// guidance pipeline.
package team

import (
	"context"
	"fmt"

	"github.com/jonathan/study-coach/internal/experts"
	"github.com/jonathan/study-coach/internal/llm"
	"github.com/jonathan/study-coach/internal/logstore"
	"github.com/jonathan/study-coach/internal/types"
)

// ApologyText is returned as the final text when the pipeline itself fails
// outside the stages. The specific failure is preserved in the run log, not
// shown to the user.
const ApologyText = "죄송합니다. 처리 중 오류가 발생했습니다. 다시 시도해주세요."

// Progress event phases.
const (
	PhaseStarted   = "started"
	PhaseCompleted = "completed"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Stage    string `json:"stage"`
	Expert   string `json:"expert"`
	Phase    string `json:"phase"`
	Message  string `json:"message"`
	Fallback bool   `json:"fallback,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Config holds the collaborators for one education team.
type Config struct {
	Client     llm.Client
	Store      *logstore.Store
	OnProgress ProgressCallback
}

// Team sequences the three experts over one request. Stage order is a
// correctness requirement, not a choice: each stage's prompt embeds the
// previous stage's output, so the stages cannot run concurrently.
type Team struct {
	client      llm.Client
	store       *logstore.Store
	onProgress  ProgressCallback
	foundations *experts.Expert
	practical   *experts.Expert
	learning    *experts.Expert
}

// New creates an education team around one model client and log store.
func New(cfg Config) *Team {
	return &Team{
		client:      cfg.Client,
		store:       cfg.Store,
		onProgress:  cfg.OnProgress,
		foundations: experts.NewFoundations(),
		practical:   experts.NewPractical(),
		learning:    experts.NewLearningPath(),
	}
}

// stageMessages holds the start/done progress text per stage, carried from
// the original team's step banners.
var stageMessages = map[types.Stage][2]string{
	types.StageFoundations:  {"김민준 기초 전문가가 핵심 개념을 분석 중입니다...", "기초 개념 분석 완료"},
	types.StagePractical:    {"박서연 실무 전문가가 실제 사례를 분석 중입니다...", "실무 사례 분석 완료"},
	types.StageLearningPath: {"이준호 학습 경로 전문가가 최종 학습 계획을 준비 중입니다...", "학습 경로 설계 완료"},
}

// Run executes the three stages strictly in sequence, threading each stage's
// output into the next stage's prompt, and returns the final text with the
// completed run log. No error ever crosses this boundary: stage failures are
// absorbed by the experts as fallback text, and anything escaping the
// pipeline itself is converted to the apology text plus an error-status log.
// The finalized log is appended to the store before Run returns.
func (t *Team) Run(ctx context.Context, serviceType types.ServiceType, inputData types.InputData) (string, types.RunLog) {
	return t.RunWithProgress(ctx, serviceType, inputData, t.onProgress)
}

// RunWithProgress is Run with a per-run progress callback, used by the SSE
// endpoint where progress belongs to one request rather than the team.
func (t *Team) RunWithProgress(ctx context.Context, serviceType types.ServiceType, inputData types.InputData, onProgress ProgressCallback) (finalText string, runLog types.RunLog) {
	runLog = types.NewRunLog(serviceType)

	defer func() {
		if r := recover(); r != nil {
			runLog.Fail(fmt.Sprintf("pipeline failure: %v", r))
			finalText = ApologyText
		}
		if t.store != nil {
			t.store.Append(runLog)
		}
	}()

	if t.client == nil {
		runLog.Fail("pipeline failure: model client is not configured")
		return ApologyText, runLog
	}

	input := inputData.Clone()

	initial := t.runStage(ctx, t.foundations, "", serviceType, input, &runLog, onProgress)
	enhanced := t.runStage(ctx, t.practical, initial.Text, serviceType, input, &runLog, onProgress)
	final := t.runStage(ctx, t.learning, enhanced.Text, serviceType, input, &runLog, onProgress)

	runLog.Complete()
	return final.Text, runLog
}

// runStage executes one expert pass and records it. Stage completion is
// unconditional: experts convert their own failures to fallback text.
func (t *Team) runStage(ctx context.Context, expert *experts.Expert, priorText string, serviceType types.ServiceType, input types.InputData, runLog *types.RunLog, onProgress ProgressCallback) types.StageResult {
	stage := expert.Stage()
	messages := stageMessages[stage]

	emit(onProgress, ProgressEvent{
		Stage:   stage.String(),
		Expert:  expert.ID(),
		Phase:   PhaseStarted,
		Message: messages[0],
	})

	result := expert.Run(ctx, t.client, priorText, serviceType, input)
	runLog.AppendStep(expert.ID(), stage)

	emit(onProgress, ProgressEvent{
		Stage:    stage.String(),
		Expert:   expert.ID(),
		Phase:    PhaseCompleted,
		Message:  messages[1],
		Fallback: result.Fallback,
	})

	return result
}

// emit calls the progress callback if configured
func emit(onProgress ProgressCallback, event ProgressEvent) {
	if onProgress != nil {
		onProgress(event)
	}
}
