package routes

import (
	"log"

	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/delivery/http/handler"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/infrastructure/cache"
	"skillswap/internal/pkg/authtoken"
	"skillswap/internal/repository"
	"skillswap/internal/usecase"
	"skillswap/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

func Register(app *fiber.App, d Deps) {
	if app == nil {
		return
	}

	handler.NewHealthHandler(d.DB).RegisterRoutes(app)

	var verifier authtoken.Verifier
	if d.Config.Auth.JWTSecret != "" {
		verifier = authtoken.NewHMACVerifier(d.Config.Auth.JWTSecret)
	}
	authMw := middleware.NewAuthMiddleware(verifier)

	profileRepo := repository.NewPostgresProfileRepository(d.DB)
	matchRepo := repository.NewPostgresMatchRepository(d.DB)

	profileUC := usecase.NewProfileUsecase(profileRepo, d.Cache, d.Logger)
	matchmakingUC := usecase.NewMatchmakingUsecase(profileRepo, matchRepo, d.Cache, d.Logger)

	api := app.Group("/api")
	handler.NewUserHandler(profileUC).RegisterRoutes(api.Group("/users"), authMw)
	handler.NewMatchingHandler(matchmakingUC).RegisterRoutes(api.Group("/matching"), authMw)

	if d.Hub != nil {
		app.Get("/ws", ws.NewHandler(d.Hub, d.Logger).HandleWS)
	}
}
