package repository

import (
	"sync"
	"testing"

	"github.com/lshigami/fizzbuzz-game/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_SaveAndFind(t *testing.T) {
	repo := NewSessionRepository()
	session := model.NewGameSession()

	repo.Save(session)

	found, ok := repo.FindByID(session.ID)
	require.True(t, ok)
	assert.Equal(t, session.ID, found.ID)
	assert.Equal(t, session.StartedAt, found.StartedAt)

	_, ok = repo.FindByID("missing")
	assert.False(t, ok)
}

func TestSessionRepository_UpdateMissing(t *testing.T) {
	repo := NewSessionRepository()

	_, ok := repo.Update("missing", func(s *model.GameSession) {
		s.TotalQuestions++
	})
	assert.False(t, ok)
}

func TestSessionRepository_SnapshotIsolation(t *testing.T) {
	repo := NewSessionRepository()
	session := model.NewGameSession()
	session.Questions = append(session.Questions, model.GameQuestion{Number: 15, ExpectedAnswer: "FizzBuzz"})
	repo.Save(session)

	found, ok := repo.FindByID(session.ID)
	require.True(t, ok)

	// Mutating the snapshot must not leak into the store.
	found.TotalQuestions = 99
	found.Questions[0].UserAnswer = "tampered"

	again, ok := repo.FindByID(session.ID)
	require.True(t, ok)
	assert.Equal(t, 0, again.TotalQuestions)
	assert.Empty(t, again.Questions[0].UserAnswer)
}

func TestSessionRepository_ConcurrentUpdates(t *testing.T) {
	repo := NewSessionRepository()
	session := model.NewGameSession()
	repo.Save(session)

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			repo.Update(session.ID, func(s *model.GameSession) {
				s.Questions = append(s.Questions, model.GameQuestion{Number: 1, ExpectedAnswer: "1"})
				s.TotalQuestions++
			})
		}()
	}
	wg.Wait()

	found, ok := repo.FindByID(session.ID)
	require.True(t, ok)
	assert.Equal(t, workers, found.TotalQuestions)
	assert.Len(t, found.Questions, workers)
}

func TestSessionRepository_FindAll(t *testing.T) {
	repo := NewSessionRepository()
	first := model.NewGameSession()
	second := model.NewGameSession()
	repo.Save(first)
	repo.Save(second)

	all := repo.FindAll()
	assert.Len(t, all, 2)
}
