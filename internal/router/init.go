package router

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/yatrarides/booking-api/config"
	"github.com/yatrarides/booking-api/internal/application"
	pginfra "github.com/yatrarides/booking-api/internal/infrastructure/postgres"
	handlers "github.com/yatrarides/booking-api/internal/interface/http"
	"github.com/yatrarides/booking-api/internal/router/modules"
	"github.com/yatrarides/booking-api/pkg/helpers"
	"github.com/yatrarides/booking-api/pkg/mailer"
)

// Deps carries the process-wide collaborators. Everything downstream
// receives them explicitly; there is no global handle.
type Deps struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	Pool   *pgxpool.Pool
	Redis  *redis.Client
	Tokens *helpers.TokenManager
	Mailer application.VerificationMailer
}

// NewMailer builds the default Mailgun-backed verification sender
// from configuration.
func NewMailer(cfg *config.Config) application.VerificationMailer {
	client := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	return mailer.NewVerificationSender(client, cfg.VerifyEmailURL, cfg.MailSendEnabled)
}

// InitModules builds every feature module from deps and registers it.
// Called once during startup.
func InitModules(r *Registry, d Deps) {
	userRepo := pginfra.NewUserRepository(d.Pool)
	bookingRepo := pginfra.NewBookingRepository(d.Pool)
	contactRepo := pginfra.NewContactRepository(d.Pool)

	authSvc := application.NewAuthService(userRepo, d.Tokens, d.Mailer, d.Logger)
	bookingSvc := application.NewBookingService(bookingRepo)
	contactSvc := application.NewContactService(contactRepo)

	authHandler := handlers.NewAuthHandler(authSvc, d.Logger, d.Cfg.CookieDomain, d.Cfg.CookieSecure)
	bookingHandler := handlers.NewBookingHandler(bookingSvc, d.Logger)
	contactHandler := handlers.NewContactHandler(contactSvc, d.Logger)
	healthHandler := handlers.NewHealthHandler(d.Pool)

	r.Add(modules.NewAuthModule(authHandler, d.Redis))
	r.Add(modules.NewBookingModule(bookingHandler, d.Tokens))
	r.Add(modules.NewContactModule(contactHandler, d.Redis))
	r.Add(modules.NewHealthModule(healthHandler))
}
