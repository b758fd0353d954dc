package logstore

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/study-coach/internal/types"
)

func completedLog(serviceType types.ServiceType) types.RunLog {
	log := types.NewRunLog(serviceType)
	log.AppendStep("AIFoundationsExpert", types.StageFoundations)
	log.AppendStep("PracticalAIExpert", types.StagePractical)
	log.AppendStep("LearningPathExpert", types.StageLearningPath)
	log.Complete()
	return log
}

func TestStore_AppendAndList(t *testing.T) {
	store := New()
	assert.Equal(t, 0, store.Len())

	first := completedLog(types.ServiceConceptExplanation)
	second := completedLog(types.ServiceToolUsage)
	store.Append(first)
	store.Append(second)

	logs := store.List()
	require.Len(t, logs, 2)
	assert.Equal(t, first.ID, logs[0].ID)
	assert.Equal(t, second.ID, logs[1].ID)
}

func TestStore_AppendCopiesTheLog(t *testing.T) {
	store := New()
	log := completedLog(types.ServiceConceptExplanation)
	store.Append(log)

	log.Steps[0].Expert = "mutated"
	log.Fail("mutated")

	stored, ok := store.Get(log.ID)
	require.True(t, ok)
	assert.Equal(t, "AIFoundationsExpert", stored.Steps[0].Expert)
	assert.Equal(t, types.StatusCompleted, stored.Status)
}

func TestStore_ListReturnsCopies(t *testing.T) {
	store := New()
	store.Append(completedLog(types.ServiceConceptExplanation))

	logs := store.List()
	logs[0].Steps[0].Expert = "mutated"

	fresh := store.List()
	assert.Equal(t, "AIFoundationsExpert", fresh[0].Steps[0].Expert)
}

func TestStore_Get(t *testing.T) {
	store := New()
	log := completedLog(types.ServiceLearningPlan)
	store.Append(log)

	found, ok := store.Get(log.ID)
	assert.True(t, ok)
	assert.Equal(t, log.ID, found.ID)

	_, ok = store.Get(uuid.New())
	assert.False(t, ok)
}

func TestStore_CountByStatus(t *testing.T) {
	store := New()
	store.Append(completedLog(types.ServiceConceptExplanation))

	failed := types.NewRunLog(types.ServiceToolUsage)
	failed.Fail("pipeline failure: boom")
	store.Append(failed)

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 1, store.CountByStatus(types.StatusCompleted))
	assert.Equal(t, 1, store.CountByStatus(types.StatusError))
	assert.Equal(t, 0, store.CountByStatus(types.StatusInProgress))
}

func TestStore_Clear(t *testing.T) {
	store := New()
	store.Append(completedLog(types.ServiceConceptExplanation))
	store.Clear()
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.List())
}

func TestStore_ConcurrentAppends(t *testing.T) {
	store := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Append(completedLog(types.ServiceConceptExplanation))
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
}
