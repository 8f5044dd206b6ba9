package v1

import (
	"log"

	"empleos-backend/internal/config"
	"empleos-backend/internal/database"
	"empleos-backend/internal/delivery/http/handler"
	"empleos-backend/internal/delivery/http/middleware"
	"empleos-backend/internal/infrastructure/cache"
	"empleos-backend/internal/mailer"
	"empleos-backend/internal/pkg/jwt"
	"empleos-backend/internal/repository"
	"empleos-backend/internal/storage"
	"empleos-backend/internal/usecase"
	ucauth "empleos-backend/internal/usecase/auth"
	"empleos-backend/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the shared infrastructure built at bootstrap; everything else
// (repositories, usecases, handlers) is wired here.
type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Store  *storage.ResumeStore
	Mail   mailer.Mailer
	WS     *ws.Handler
	Logger *log.Logger
}

// Catalog builds the public catalog usecase; also used outside /api/v1 by the
// sitemap endpoint.
func (d Deps) Catalog() usecase.CatalogUsecase {
	return usecase.NewCatalogUsecase(repository.NewPostgresPostingRepository(d.DB), d.Cache, d.Logger)
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		deps.Config.JWT.AccessSecret,
		deps.Config.JWT.RefreshSecret,
		deps.Config.JWT.AccessExpiresIn,
		deps.Config.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	postingRepo := repository.NewPostgresPostingRepository(deps.DB)
	applicationRepo := repository.NewPostgresApplicationRepository(deps.DB)
	adminRepo := repository.NewPostgresAdminRepository(deps.DB)

	catalogUC := usecase.NewCatalogUsecase(postingRepo, deps.Cache, deps.Logger)
	editorUC := usecase.NewEditorUsecase(postingRepo, deps.Cache, deps.Logger)
	intakeUC := usecase.NewIntakeUsecase(applicationRepo, postingRepo, deps.Store, ws.NotifyNewApplication, deps.Logger)
	applicationsUC := usecase.NewApplicationsUsecase(applicationRepo, deps.Store, deps.Logger)
	cvBankUC := usecase.NewCVBankUsecase(deps.Store, applicationRepo, deps.Logger)
	contactUC := usecase.NewContactUsecase(deps.Mail, deps.Logger)
	authUC := ucauth.NewService(adminRepo, jwtSvc)

	authHandler := handler.NewAuthHandler(authUC)
	postingsHandler := handler.NewPostingsHandler(catalogUC)
	adminPostingsHandler := handler.NewAdminPostingsHandler(editorUC)
	applicationsHandler := handler.NewApplicationsHandler(intakeUC, applicationsUC)
	cvBankHandler := handler.NewCVBankHandler(cvBankUC)
	contactHandler := handler.NewContactHandler(contactUC)

	authHandler.RegisterRoutes(r.Group("/auth"))
	postingsHandler.RegisterRoutes(r.Group("/empleos"))
	applicationsHandler.RegisterPublicRoutes(r.Group("/postulaciones"))
	cvBankHandler.RegisterPublicRoutes(r.Group("/cargar-cv"))
	contactHandler.RegisterRoutes(r.Group("/contacto"))

	// The ws route takes its token from a query parameter, so the bearer
	// middleware goes on each admin subgroup rather than on /admin itself.
	admin := r.Group("/admin")
	adminPostingsHandler.RegisterRoutes(admin.Group("/trabajos", authMw.Middleware()))
	applicationsHandler.RegisterAdminRoutes(admin.Group("/postulaciones", authMw.Middleware()))
	cvBankHandler.RegisterAdminRoutes(admin.Group("/curriculums", authMw.Middleware()))

	if deps.WS != nil {
		admin.Get("/ws", deps.WS.HandleAdminWS, authMw.WebSocketMiddleware())
	}
}
