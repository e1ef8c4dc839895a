package handler

import (
	"errors"
	"strconv"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/domain/match"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchingHandler struct {
	uc usecase.MatchmakingUsecase
}

type createMatchRequest struct {
	UserAID      string              `json:"userAId"`
	UserBID      string              `json:"userBId"`
	Score        float64             `json:"score"`
	MutualSkills []match.MutualSkill `json:"mutualSkills"`
}

func NewMatchingHandler(uc usecase.MatchmakingUsecase) *MatchingHandler {
	return &MatchingHandler{uc: uc}
}

func (h *MatchingHandler) RegisterRoutes(r fiber.Router, authMw *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	r.Get("/find/:userId", h.FindMatches)
	r.Get("/user/:userId", h.ListUserMatches)
	r.Post("/create", h.CreateMatch, authMw.Middleware())
}

func (h *MatchingHandler) FindMatches(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", err)
	}

	limit := usecase.DefaultFindLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", err)
		}
	}

	matches, err := h.uc.FindMatches(c.Context(), userID, limit)
	if err != nil {
		return mapMatchingError(err)
	}

	return response.Matches(c, fiber.StatusOK, dto.NewRankedMatchResponses(matches))
}

func (h *MatchingHandler) ListUserMatches(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", err)
	}

	matches, err := h.uc.ListUserMatches(c.Context(), userID)
	if err != nil {
		return mapMatchingError(err)
	}

	return response.Matches(c, fiber.StatusOK, dto.NewUserMatchResponses(matches))
}

func (h *MatchingHandler) CreateMatch(c fiber.Ctx) error {
	var req createMatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	userAID, err := uuid.Parse(req.UserAID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid userAId", err)
	}
	userBID, err := uuid.Parse(req.UserBID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid userBId", err)
	}

	if _, err := h.uc.CreateMatch(c.Context(), userAID, userBID, req.Score, req.MutualSkills); err != nil {
		return mapMatchingError(err)
	}

	return response.OK(c, fiber.StatusCreated)
}

func mapMatchingError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
	case errors.Is(err, usecase.ErrSelfMatch):
		return middleware.NewAppError(fiber.StatusBadRequest, "Cannot match a user with themselves", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request", err)
	case errors.Is(err, usecase.ErrMatchExists):
		return middleware.NewAppError(fiber.StatusConflict, "Match already exists", err)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageUpstreamUnavailable, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
