package model

import (
	"time"

	"github.com/google/uuid"
)

// GameSession is one play-through from start to end. Sessions live in the
// in-memory session store only; they reference rules transiently through the
// ExpectedAnswer captured per question, so rule changes never rewrite history.
type GameSession struct {
	ID             string
	StartedAt      time.Time
	EndedAt        *time.Time
	TotalQuestions int
	CorrectAnswers int
	Questions      []GameQuestion
}

// GameQuestion records one asked number and how the player answered it.
type GameQuestion struct {
	Number         int
	ExpectedAnswer string
	UserAnswer     string
	IsCorrect      bool
}

func NewGameSession() *GameSession {
	return &GameSession{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
}
