package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stripe/stripe-go/v82"

	"github.com/studyspot/booking-system/internal/domain"
	"github.com/studyspot/booking-system/internal/mailer"
	"github.com/studyspot/booking-system/internal/payment"
	"github.com/studyspot/booking-system/internal/repository"
	"github.com/studyspot/booking-system/internal/store"
	appvalidator "github.com/studyspot/booking-system/internal/validator"
	"github.com/studyspot/booking-system/internal/vcs"
)

var (
	version = vcs.Version()
)

type application struct {
	config         config
	logger         *slog.Logger
	validator      *validator.Validate
	sessionManager *scs.SessionManager
	mailer         mailer.Mailer

	repo            domain.Repository
	paymentProvider domain.PaymentProvider

	sessions *sessionRegistry
}

type config struct {
	port int
	env  string
	hall string

	store struct {
		path string
	}
	mock struct {
		latency time.Duration
	}
	redis struct {
		url          string
		maxOpenConns int
		maxIdleConns int
		maxIdleTime  time.Duration
	}
	smtp struct {
		host     string
		port     int
		username string
		password string
		sender   string
	}
	stripe struct {
		secretKey string
		currency  string
	}
	auth struct {
		jwtSecret string
	}
}

func Run() error {
	// A missing .env is fine; flags below fall back to env or defaults.
	_ = godotenv.Load()

	var cfg config

	flag.IntVar(&cfg.port, "port", envInt("PORT", 3000), "server port")
	flag.StringVar(&cfg.env, "env", envString("ENV", "dev"), "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.hall, "hall-id", envString("HALL_ID", "hall_1"), "Study hall served by this instance")

	flag.StringVar(&cfg.store.path, "store-path", envString("STORE_PATH", "./studyspot.db"), "SQLite record store path")
	flag.DurationVar(&cfg.mock.latency, "mock-latency", 500*time.Millisecond, "Simulated backend latency (0 disables)")

	flag.StringVar(&cfg.redis.url, "redis-url", envString("REDIS_URL", ""), "Redis URL for session storage (in-memory sessions when empty)")
	flag.IntVar(&cfg.redis.maxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.redis.maxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.redis.maxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.smtp.host, "smtp-host", envString("SMTP_HOST", "sandbox.smtp.mailtrap.io"), "SMTP host")
	flag.IntVar(&cfg.smtp.port, "smtp-port", envInt("SMTP_PORT", 2525), "SMTP port")
	flag.StringVar(&cfg.smtp.username, "smtp-username", envString("SMTP_USERNAME", ""), "SMTP username")
	flag.StringVar(&cfg.smtp.password, "smtp-password", envString("SMTP_PASSWORD", ""), "SMTP password")
	flag.StringVar(&cfg.smtp.sender, "smtp-sender", envString("SMTP_SENDER", "StudySpot <no-reply@studyspot.app>"), "SMTP sender")

	flag.StringVar(&cfg.stripe.secretKey, "stripe-key", envString("STRIPE_SECRET_KEY", ""), "Stripe secret key (mock settlement when empty)")
	flag.StringVar(&cfg.stripe.currency, "stripe-currency", envString("STRIPE_CURRENCY", "inr"), "Stripe settlement currency")

	flag.StringVar(&cfg.auth.jwtSecret, "jwt-secret", envString("JWT_SECRET", "dev-only-secret-change-in-prod"), "JWT signing secret")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	recordStore, err := store.NewSQLiteStore(cfg.store.path)
	if err != nil {
		return err
	}
	defer recordStore.Close()

	appMailer := newMailer(cfg, logger)

	repo := repository.NewMockRepository(
		recordStore,
		cfg.auth.jwtSecret,
		repository.WithLatency(cfg.mock.latency),
		repository.WithOTPMailer(appMailer),
		repository.WithLogger(logger),
	)

	paymentProvider := newPaymentProvider(cfg, logger)

	sessionManager, closeSessions, err := newSessionManager(cfg)
	if err != nil {
		return err
	}
	defer closeSessions()

	app := &application{
		config:          cfg,
		logger:          logger,
		validator:       appvalidator.NewValidator(),
		sessionManager:  sessionManager,
		mailer:          appMailer,
		repo:            repo,
		paymentProvider: paymentProvider,
		sessions:        newSessionRegistry(),
	}

	return app.run()
}

func newMailer(cfg config, logger *slog.Logger) mailer.Mailer {
	if cfg.smtp.username == "" {
		logger.Info("no SMTP credentials configured, recording mail in memory")
		return mailer.NewMockMailer()
	}

	return mailer.NewSMTPMailer(cfg.smtp.host, cfg.smtp.port, cfg.smtp.username, cfg.smtp.password, cfg.smtp.sender)
}

func newPaymentProvider(cfg config, logger *slog.Logger) domain.PaymentProvider {
	if cfg.stripe.secretKey == "" {
		logger.Info("no Stripe key configured, using mock settlement")
		return payment.NewMockProvider(2 * cfg.mock.latency)
	}

	stripe.Key = cfg.stripe.secretKey

	return payment.NewStripeProvider(cfg.stripe.currency)
}

func newSessionManager(cfg config) (*scs.SessionManager, func(), error) {
	sessionManager := scs.New()
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	if cfg.redis.url == "" {
		sessionManager.Store = memstore.New()
		return sessionManager, func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.redis.url,
		MaxIdleConns:    cfg.redis.maxIdleConns,
		MaxActiveConns:  cfg.redis.maxOpenConns,
		ConnMaxIdleTime: cfg.redis.maxIdleTime,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, nil, err
	}

	sessionManager.Store = goredisstore.New(rdb)

	return sessionManager, func() { rdb.Close() }, nil
}

func (app *application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(app.recoverPanic)
	r.Use(app.requestLogger)
	r.Use(app.sessionManager.LoadAndSave)
	r.Use(app.ensureWorkflowSession)

	r.Get("/health", app.GetHealth)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/otp", app.SendOTPHandler)
		r.Post("/otp/verify", app.VerifyOTPHandler)
		r.Post("/login", app.EmailLoginHandler)
		r.Post("/google", app.GoogleLoginHandler)
		r.Post("/logout", app.LogoutHandler)
	})

	r.Get("/dashboard", app.DashboardHandler)

	r.Route("/seats", func(r chi.Router) {
		r.Get("/", app.GetSeatsHandler)
		r.Post("/selection", app.SelectSeatHandler)
		r.Put("/date", app.ChangeDateHandler)
	})

	r.Route("/plans", func(r chi.Router) {
		r.Get("/", app.GetPlansHandler)
		r.Post("/selection", app.SelectPlanHandler)
	})

	r.Get("/checkout", app.CheckoutSummaryHandler)
	r.Post("/payment", app.ProcessPaymentHandler)
	r.Get("/bookings", app.BookingHistoryHandler)

	r.Route("/workflow", func(r chi.Router) {
		r.Get("/", app.WorkflowStateHandler)
		r.Post("/back", app.GoBackHandler)
		r.Post("/reset", app.ResetWorkflowHandler)
	})

	return r
}

func envString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}

	return fallback
}
