package game

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/fizzbuzz-game/internal/dto"
	"github.com/lshigami/fizzbuzz-game/internal/service"
	"github.com/rs/zerolog/log"
)

type GameController struct {
	gameService service.GameService
}

func NewGameController(gameService service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// StartGame godoc
// @Summary Start a new game session
// @Description Creates a session and returns its id, the first number to answer and the currently active rules
// @Tags game
// @Produce json
// @Success 200 {object} dto.GameStartResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /game/start [post]
func (c *GameController) StartGame(ctx *gin.Context) {
	resp, err := c.gameService.StartGame()
	if err != nil {
		log.Error().Err(err).Msg("Failed to start game")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "An error occurred while starting the game"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitAnswer godoc
// @Summary Submit an answer for the current number
// @Description Checks the answer against the active rules, records it on the session and returns the next number
// @Tags game
// @Accept json
// @Produce json
// @Param answer body dto.GameAnswerDTO true "Session id, the number asked and the player's answer"
// @Success 200 {object} dto.GameAnswerResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or unknown session"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /game/answer [post]
func (c *GameController) SubmitAnswer(ctx *gin.Context) {
	var req dto.GameAnswerDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind GameAnswerDTO")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.gameService.SubmitAnswer(req)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Str("sessionID", req.SessionID).Msg("Failed to submit answer")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "An error occurred while submitting the answer"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// EndGame godoc
// @Summary End a game session
// @Description Marks the session as ended and returns its summary
// @Tags game
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} dto.GameSummaryDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /game/end/{sessionId} [post]
func (c *GameController) EndGame(ctx *gin.Context) {
	sessionID := ctx.Param("sessionId")

	summary, err := c.gameService.EndGame(sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Game session " + sessionID + " not found"})
			return
		}
		log.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to end game")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "An error occurred while ending the game"})
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// GetSummary godoc
// @Summary Get a session summary
// @Description Returns the summary of a session without ending it; in-progress sessions use now as a provisional end time
// @Tags game
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} dto.GameSummaryDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /game/summary/{sessionId} [get]
func (c *GameController) GetSummary(ctx *gin.Context) {
	sessionID := ctx.Param("sessionId")

	summary, err := c.gameService.GetSummary(sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Game session " + sessionID + " not found"})
			return
		}
		log.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to get game summary")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "An error occurred while retrieving the game summary"})
		return
	}
	ctx.JSON(http.StatusOK, summary)
}
