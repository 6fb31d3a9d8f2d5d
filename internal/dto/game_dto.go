package dto

import "time"

// GameAnswerDTO is the request body for submitting one answer.
type GameAnswerDTO struct {
	SessionID string `json:"sessionId" binding:"required"`
	Number    int    `json:"number" binding:"required"`
	Answer    string `json:"answer" binding:"required"`
}

type GameStartResponseDTO struct {
	SessionID string            `json:"sessionId"`
	Number    int               `json:"number"`
	Rules     []RuleResponseDTO `json:"rules"`
}

type GameAnswerResponseDTO struct {
	IsCorrect     bool   `json:"isCorrect"`
	CorrectAnswer string `json:"correctAnswer"`
	NextNumber    int    `json:"nextNumber"`
	GameEnded     bool   `json:"gameEnded"`
}

type QuestionSummaryDTO struct {
	Number         int    `json:"number"`
	ExpectedAnswer string `json:"expectedAnswer"`
	UserAnswer     string `json:"userAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
}

// GameSummaryDTO aggregates a session's history and score. Duration is a
// colon-delimited "[d.]hh:mm:ss[.fffffff]" string; the browser client splits
// it on ':' to render minutes and seconds.
type GameSummaryDTO struct {
	SessionID          string               `json:"sessionId"`
	StartedAt          time.Time            `json:"startedAt"`
	EndedAt            time.Time            `json:"endedAt"`
	Duration           string               `json:"duration"`
	TotalQuestions     int                  `json:"totalQuestions"`
	CorrectAnswers     int                  `json:"correctAnswers"`
	AccuracyPercentage float64              `json:"accuracyPercentage"`
	Questions          []QuestionSummaryDTO `json:"questions"`
}
