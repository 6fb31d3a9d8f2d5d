package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/fizzbuzz-game/internal/dto"
	"github.com/lshigami/fizzbuzz-game/internal/service"
	"github.com/rs/zerolog/log"
)

type RuleController struct {
	ruleService service.RuleService
}

func NewRuleController(ruleService service.RuleService) *RuleController {
	return &RuleController{ruleService: ruleService}
}

// GetAllRules godoc
// @Summary List all rules
// @Description Returns every rule, active or not, ordered by divisor
// @Tags rules
// @Produce json
// @Success 200 {array} dto.RuleResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rules [get]
func (c *RuleController) GetAllRules(ctx *gin.Context) {
	rules, err := c.ruleService.GetAllRules()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all rules")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "An error occurred while retrieving rules"})
		return
	}
	ctx.JSON(http.StatusOK, rules)
}

// GetActiveRules godoc
// @Summary List active rules
// @Description Returns the rules currently applied by the game, ordered by divisor
// @Tags rules
// @Produce json
// @Success 200 {array} dto.RuleResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rules/active [get]
func (c *RuleController) GetActiveRules(ctx *gin.Context) {
	rules, err := c.ruleService.GetActiveRules()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get active rules")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "An error occurred while retrieving active rules"})
		return
	}
	ctx.JSON(http.StatusOK, rules)
}

// GetRule godoc
// @Summary Get a rule by ID
// @Tags rules
// @Produce json
// @Param id path int true "Rule ID"
// @Success 200 {object} dto.RuleResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Rule not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rules/{id} [get]
func (c *RuleController) GetRule(ctx *gin.Context) {
	id, ok := parseRuleID(ctx)
	if !ok {
		return
	}

	rule, err := c.ruleService.GetRuleByID(id)
	if err != nil {
		if errors.Is(err, service.ErrRuleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Rule with ID " + strconv.Itoa(int(id)) + " not found"})
			return
		}
		log.Error().Err(err).Uint("ruleID", id).Msg("Failed to get rule")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "An error occurred while retrieving the rule"})
		return
	}
	ctx.JSON(http.StatusOK, rule)
}

// CreateRule godoc
// @Summary Create a rule
// @Description Adds a divisor → replacement text rule. Divisors must be unique across all rules.
// @Tags rules
// @Accept json
// @Produce json
// @Param rule body dto.RuleCreateDTO true "Rule to create"
// @Success 201 {object} dto.RuleResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Duplicate divisor"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rules [post]
func (c *RuleController) CreateRule(ctx *gin.Context) {
	var req dto.RuleCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind RuleCreateDTO")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rule, err := c.ruleService.CreateRule(req)
	if err != nil {
		var conflict *service.ConflictError
		if errors.As(err, &conflict) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: conflict.Error()})
			return
		}
		log.Error().Err(err).Int("divisor", req.Divisor).Msg("Failed to create rule")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "An error occurred while creating the rule"})
		return
	}
	ctx.JSON(http.StatusCreated, rule)
}

// UpdateRule godoc
// @Summary Update a rule
// @Description Partial update: omitted fields keep their current value
// @Tags rules
// @Accept json
// @Produce json
// @Param id path int true "Rule ID"
// @Param rule body dto.RuleUpdateDTO true "Fields to change"
// @Success 200 {object} dto.RuleResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or ID"
// @Failure 404 {object} dto.ErrorResponse "Rule not found"
// @Failure 409 {object} dto.ErrorResponse "Duplicate divisor"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rules/{id} [put]
func (c *RuleController) UpdateRule(ctx *gin.Context) {
	id, ok := parseRuleID(ctx)
	if !ok {
		return
	}

	var req dto.RuleUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind RuleUpdateDTO")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rule, err := c.ruleService.UpdateRule(id, req)
	if err != nil {
		if errors.Is(err, service.ErrRuleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Rule with ID " + strconv.Itoa(int(id)) + " not found"})
			return
		}
		var conflict *service.ConflictError
		if errors.As(err, &conflict) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: conflict.Error()})
			return
		}
		log.Error().Err(err).Uint("ruleID", id).Msg("Failed to update rule")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "An error occurred while updating the rule"})
		return
	}
	ctx.JSON(http.StatusOK, rule)
}

// DeleteRule godoc
// @Summary Delete a rule
// @Description Permanently removes a rule. The last active rule cannot be deleted.
// @Tags rules
// @Param id path int true "Rule ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format or last active rule"
// @Failure 404 {object} dto.ErrorResponse "Rule not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rules/{id} [delete]
func (c *RuleController) DeleteRule(ctx *gin.Context) {
	id, ok := parseRuleID(ctx)
	if !ok {
		return
	}

	if err := c.ruleService.DeleteRule(id); err != nil {
		if errors.Is(err, service.ErrRuleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Rule with ID " + strconv.Itoa(int(id)) + " not found"})
			return
		}
		if errors.Is(err, service.ErrLastActiveRule) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Uint("ruleID", id).Msg("Failed to delete rule")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "An error occurred while deleting the rule"})
		return
	}
	ctx.Status(http.StatusNoContent)
}

func parseRuleID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid rule ID format"})
		return 0, false
	}
	return uint(id), true
}
