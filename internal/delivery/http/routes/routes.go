package routes

import (
	"talenthub/internal/delivery/http/handler"
	"talenthub/internal/delivery/http/middleware"
	"talenthub/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health       *handler.HealthHandler
	seekerAuth   *handler.AuthHandler
	managerAuth  *handler.AuthHandler
	jobs         *handler.JobHandler
	applications *handler.ApplicationHandler
	companies    *handler.CompanyHandler
	wsHandler    *ws.Handler

	auth  *middleware.AuthMiddleware
	roles *middleware.RoleMiddleware
}

func NewRegistry(
	health *handler.HealthHandler,
	seekerAuth *handler.AuthHandler,
	managerAuth *handler.AuthHandler,
	jobs *handler.JobHandler,
	applications *handler.ApplicationHandler,
	companies *handler.CompanyHandler,
	wsHandler *ws.Handler,
	auth *middleware.AuthMiddleware,
	roles *middleware.RoleMiddleware,
) *Registry {
	return &Registry{
		health:       health,
		seekerAuth:   seekerAuth,
		managerAuth:  managerAuth,
		jobs:         jobs,
		applications: applications,
		companies:    companies,
		wsHandler:    wsHandler,
		auth:         auth,
		roles:        roles,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	authMW := r.auth.Middleware()
	managerMW := r.roles.RequireHiringManager()

	r.health.RegisterRoutes(app)

	r.seekerAuth.RegisterRoutes(app.Group("/auth"), authMW)
	r.managerAuth.RegisterRoutes(app.Group("/hiring-manager"), authMW)
	r.jobs.RegisterRoutes(app.Group("/jobs"), authMW, managerMW)
	r.applications.RegisterRoutes(app.Group("/applications"), authMW, managerMW)
	r.companies.RegisterRoutes(app.Group("/company"), authMW)

	if r.wsHandler != nil {
		app.Get("/ws", r.wsHandler.HandleApplicationsWS)
	}
}
