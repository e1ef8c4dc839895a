package handler

import (
	"errors"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/domain/skill"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type UserHandler struct {
	uc usecase.ProfileUsecase
}

type updateProfileRequest struct {
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`

	TeachSkills []skill.Skill `json:"teach_skills"`
	LearnSkills []skill.Skill `json:"learn_skills"`

	FavoriteIceCream string `json:"favorite_ice_cream"`
	SpiritAnimal     string `json:"spirit_animal"`
	PersonalityType  string `json:"personality_type"`
	DailyRhythm      string `json:"daily_rhythm"`
	PersonalColor    string `json:"personal_color"`
}

func NewUserHandler(uc usecase.ProfileUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router, authMw *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	r.Get("/:id", h.GetProfile)
	r.Put("/:id", h.UpdateProfile, authMw.Middleware())
}

func (h *UserHandler) GetProfile(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", err)
	}

	p, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return mapProfileError(err)
	}

	return response.Data(c, fiber.StatusOK, dto.NewProfileResponse(p))
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", err)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	p, err := h.uc.UpdateProfile(c.Context(), userID, usecase.UpdateProfileInput{
		Name:             req.Name,
		Bio:              req.Bio,
		AvatarURL:        req.AvatarURL,
		TeachSkills:      req.TeachSkills,
		LearnSkills:      req.LearnSkills,
		FavoriteIceCream: req.FavoriteIceCream,
		SpiritAnimal:     req.SpiritAnimal,
		PersonalityType:  req.PersonalityType,
		DailyRhythm:      req.DailyRhythm,
		PersonalColor:    req.PersonalColor,
	})
	if err != nil {
		return mapProfileError(err)
	}

	return response.Data(c, fiber.StatusOK, dto.NewProfileResponse(p))
}

func mapProfileError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageUpstreamUnavailable, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
