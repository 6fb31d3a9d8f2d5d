package service

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/fizzbuzz-game/internal/dto"
	"github.com/lshigami/fizzbuzz-game/internal/model"
	"github.com/lshigami/fizzbuzz-game/internal/repository"
	"github.com/rs/zerolog/log"
)

// Numbers presented to the player are drawn uniformly from [1, maxGameNumber].
const maxGameNumber = 100

// GameService drives the session lifecycle: start, answer submissions and
// the explicit end that freezes the summary. The expected answer is computed
// against the rules active at submission time and captured on the question
// record, so later rule edits never rewrite a session's history.
type GameService interface {
	StartGame() (*dto.GameStartResponseDTO, error)
	SubmitAnswer(req dto.GameAnswerDTO) (*dto.GameAnswerResponseDTO, error)
	EndGame(sessionID string) (*dto.GameSummaryDTO, error)
	GetSummary(sessionID string) (*dto.GameSummaryDTO, error)
}

type gameService struct {
	sessionRepo repository.SessionRepository
	ruleService RuleService
}

func NewGameService(sessionRepo repository.SessionRepository, ruleService RuleService) GameService {
	return &gameService{sessionRepo: sessionRepo, ruleService: ruleService}
}

func (s *gameService) StartGame() (*dto.GameStartResponseDTO, error) {
	session := model.NewGameSession()
	s.sessionRepo.Save(session)

	rules, err := s.ruleService.GetActiveRules()
	if err != nil {
		return nil, fmt.Errorf("error starting game: %w", err)
	}

	log.Info().Str("sessionID", session.ID).Msg("Game session started")
	return &dto.GameStartResponseDTO{
		SessionID: session.ID,
		Number:    drawNumber(),
		Rules:     rules,
	}, nil
}

func (s *gameService) SubmitAnswer(req dto.GameAnswerDTO) (*dto.GameAnswerResponseDTO, error) {
	if _, ok := s.sessionRepo.FindByID(req.SessionID); !ok {
		return nil, ErrSessionNotFound
	}

	rules, err := s.ruleService.ActiveRules()
	if err != nil {
		return nil, fmt.Errorf("error submitting answer: %w", err)
	}

	expected := ApplyRules(req.Number, rules)
	isCorrect := strings.EqualFold(strings.TrimSpace(req.Answer), expected)

	if _, ok := s.sessionRepo.Update(req.SessionID, func(session *model.GameSession) {
		session.Questions = append(session.Questions, model.GameQuestion{
			Number:         req.Number,
			ExpectedAnswer: expected,
			UserAnswer:     req.Answer,
			IsCorrect:      isCorrect,
		})
		session.TotalQuestions++
		if isCorrect {
			session.CorrectAnswers++
		}
	}); !ok {
		return nil, ErrSessionNotFound
	}

	return &dto.GameAnswerResponseDTO{
		IsCorrect:     isCorrect,
		CorrectAnswer: expected,
		NextNumber:    drawNumber(),
		GameEnded:     false,
	}, nil
}

// EndGame stamps the session's end time and returns its summary. Ending an
// already-ended session moves the end time again; the client only ends once.
func (s *gameService) EndGame(sessionID string) (*dto.GameSummaryDTO, error) {
	session, ok := s.sessionRepo.Update(sessionID, func(session *model.GameSession) {
		now := time.Now().UTC()
		session.EndedAt = &now
	})
	if !ok {
		return nil, ErrSessionNotFound
	}
	log.Info().Str("sessionID", sessionID).Int("questions", session.TotalQuestions).Msg("Game session ended")
	return buildSummary(session), nil
}

// GetSummary is read-only; an in-progress session is reported as if it ended
// now, without actually ending it.
func (s *gameService) GetSummary(sessionID string) (*dto.GameSummaryDTO, error) {
	session, ok := s.sessionRepo.FindByID(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return buildSummary(session), nil
}

func buildSummary(session *model.GameSession) *dto.GameSummaryDTO {
	endTime := time.Now().UTC()
	if session.EndedAt != nil {
		endTime = *session.EndedAt
	}

	accuracy := 0.0
	if session.TotalQuestions > 0 {
		accuracy = math.Round(float64(session.CorrectAnswers)/float64(session.TotalQuestions)*100*100) / 100
	}

	questions := make([]dto.QuestionSummaryDTO, 0, len(session.Questions))
	copier.Copy(&questions, &session.Questions)

	return &dto.GameSummaryDTO{
		SessionID:          session.ID,
		StartedAt:          session.StartedAt,
		EndedAt:            endTime,
		Duration:           formatDuration(endTime.Sub(session.StartedAt)),
		TotalQuestions:     session.TotalQuestions,
		CorrectAnswers:     session.CorrectAnswers,
		AccuracyPercentage: accuracy,
		Questions:          questions,
	}
}

// formatDuration renders a duration as "[d.]hh:mm:ss[.fffffff]", the shape
// the browser client parses by splitting on ':'. The fractional part uses
// 100ns ticks and is omitted when zero.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	ticks := (d - seconds*time.Second).Nanoseconds() / 100

	s := fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	if days > 0 {
		s = fmt.Sprintf("%d.%s", days, s)
	}
	if ticks > 0 {
		s = fmt.Sprintf("%s.%07d", s, ticks)
	}
	return s
}

func drawNumber() int {
	return rand.Intn(maxGameNumber) + 1
}
