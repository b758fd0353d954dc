package experts

import (
	"github.com/jonathan/study-coach/internal/llm"
	"github.com/jonathan/study-coach/internal/types"
)

// Expert identities recorded in run logs.
const (
	FoundationsExpertID  = "AIFoundationsExpert"
	PracticalExpertID    = "PracticalAIExpert"
	LearningPathExpertID = "LearningPathExpert"
)

// NewFoundations returns the first-pass expert: core AI concepts and theory.
func NewFoundations() *Expert {
	return &Expert{
		id:          FoundationsExpertID,
		personaName: "김민준 AI 기초 전문가",
		personaIntro: "안녕하세요, 김민준 AI 기초 전문가입니다.\n" +
			"저는 인공지능의 핵심 개념과 이론적 배경을 쉽게 설명합니다.\n" +
			"12년간 AI 연구와 교육 경험을 바탕으로 복잡한 개념을 명확하게 전달해 드리겠습니다.",
		stage:         types.StageFoundations,
		personaKey:    "foundations",
		tier:          llm.TierLite,
		emptyFallback: "응답을 생성할 수 없습니다. 다시 시도해주세요.",
		errorFallback: "기초 개념 설명 중 오류가 발생했습니다: %s",
	}
}

// NewPractical returns the second-pass expert: real-world application and
// industry insight layered on top of the foundations explanation.
func NewPractical() *Expert {
	return &Expert{
		id:          PracticalExpertID,
		personaName: "박서연 실무 응용 전문가",
		personaIntro: "안녕하세요, 박서연 실무 응용 전문가입니다.\n" +
			"저는 AI의 실무 적용 방법과 현업 사례를 전문으로 합니다.\n" +
			"10년간의 AI 프로젝트 구현 및 컨설팅 경험을 통해 이론을 실제로 적용하는 방법을 안내해 드리겠습니다.",
		stage:         types.StagePractical,
		personaKey:    "practical",
		tier:          llm.TierStandard,
		emptyFallback: "실무 응용 설명을 생성할 수 없습니다. 다시 시도해주세요.",
		errorFallback: "실무 응용 설명 중 오류가 발생했습니다: %s",
	}
}

// NewLearningPath returns the final-pass expert: a personalized study plan
// synthesizing the two earlier perspectives.
func NewLearningPath() *Expert {
	return &Expert{
		id:          LearningPathExpertID,
		personaName: "이준호 학습 경로 전문가",
		personaIntro: "안녕하세요, 이준호 학습 경로 전문가입니다.\n" +
			"저는 AI 학습 계획 수립과 성장 로드맵 설계를 전문으로 합니다.\n" +
			"15년간의 교육 경험을 바탕으로 여러분에게 최적화된 학습 경로를 제안해 드리겠습니다.",
		stage:         types.StageLearningPath,
		personaKey:    "learning",
		tier:          llm.TierAdvanced,
		emptyFallback: "학습 경로를 생성할 수 없습니다. 다시 시도해주세요.",
		errorFallback: "학습 경로 생성 중 오류가 발생했습니다: %s",
	}
}
