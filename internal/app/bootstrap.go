package app

import (
	"fmt"
	"strings"

	"talenthub/internal/config"
	"talenthub/internal/delivery/http/handler"
	"talenthub/internal/delivery/http/middleware"
	"talenthub/internal/delivery/http/routes"
	"talenthub/internal/infrastructure/persistence/postgres"
	"talenthub/internal/pkg/jwt"
	"talenthub/internal/usecase"
	ucauth "talenthub/internal/usecase/auth"
	"talenthub/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	logger := c.Logger

	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(logger).Middleware())

	jwtSvc := jwt.NewHMACService(c.Config.JWT.Secret, c.Config.JWT.ExpiresIn)

	accountRepo := postgres.NewAccountRepository(c.DB)
	jobRepo := postgres.NewJobRepository(c.DB)
	applicationRepo := postgres.NewApplicationRepository(c.DB)
	companyRepo := postgres.NewCompanyRepository(c.DB)
	listingRepo := postgres.NewListingRepository(c.DB)

	authSvc := ucauth.NewService(accountRepo, c.Mailer)
	authUC := usecase.NewAuthUsecase(authSvc, jwtSvc)
	accountUC := usecase.NewAccountUsecase(accountRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, c.Cache)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo)
	companyUC := usecase.NewCompanyUsecase(companyRepo, listingRepo)

	authMW := middleware.NewAuthMiddleware(jwtSvc)
	roleMW := middleware.NewRoleMiddleware(accountRepo)

	hub := ws.NewHub(logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Cache),
		handler.NewJobSeekerAuthHandler(authUC, accountUC),
		handler.NewHiringManagerAuthHandler(authUC, accountUC),
		handler.NewJobHandler(jobUC),
		handler.NewApplicationHandler(applicationUC),
		handler.NewCompanyHandler(companyUC),
		ws.NewHandler(hub, logger),
		authMW,
		roleMW,
	)
	registry.Register(f)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(container)
	return app, container.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
