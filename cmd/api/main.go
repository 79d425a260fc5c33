package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/medvault/booking-api/internal/bootstrap"
	"github.com/medvault/booking-api/internal/config"
	"github.com/medvault/booking-api/internal/email"
	"github.com/medvault/booking-api/internal/handler"
	adminHandler "github.com/medvault/booking-api/internal/handler/admin"
	authHandler "github.com/medvault/booking-api/internal/handler/auth"
	doctorHandler "github.com/medvault/booking-api/internal/handler/doctor"
	patientHandler "github.com/medvault/booking-api/internal/handler/patient"
	"github.com/medvault/booking-api/internal/middleware"
	"github.com/medvault/booking-api/internal/repository/postgres"
	"github.com/medvault/booking-api/internal/router"
	appointmentService "github.com/medvault/booking-api/internal/service/appointment"
	authService "github.com/medvault/booking-api/internal/service/auth"
	dashboardService "github.com/medvault/booking-api/internal/service/dashboard"
	doctorService "github.com/medvault/booking-api/internal/service/doctor"
	recordService "github.com/medvault/booking-api/internal/service/record"
	userService "github.com/medvault/booking-api/internal/service/user"
	"github.com/medvault/booking-api/internal/validation"
	"github.com/medvault/booking-api/pkg/auth"
	"github.com/medvault/booking-api/pkg/logger"
	"github.com/medvault/booking-api/pkg/messaging"
	redisbroker "github.com/medvault/booking-api/pkg/messaging/redis"
	"github.com/medvault/booking-api/pkg/metrics"
	"github.com/medvault/booking-api/pkg/security"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(nil)

	if err := validation.RegisterCustomValidators(); err != nil {
		log.Fatal().Err(err).Msg("failed to register validators")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories
	base := postgres.NewBaseRepository(db)
	userRepo := postgres.NewUserRepository(base)
	doctorRepo := postgres.NewDoctorRepository(base)
	patientRepo := postgres.NewPatientRepository(base)
	appointmentRepo := postgres.NewAppointmentRepository(base)
	recordRepo := postgres.NewMedicalRecordRepository(base)

	// Shared infrastructure
	hasher := security.NewBcryptHasher(12)
	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	appMetrics := metrics.NewMetrics("medvault")

	var broker messaging.Broker
	if cfg.Redis.Enabled {
		broker, err = redisbroker.NewRedisBroker(redisbroker.Config{
			URL:          cfg.Redis.URL,
			MaxRetries:   3,
			RetryBackoff: 100 * time.Millisecond,
			PoolSize:     10,
			MinIdleConns: 2,
		}, appLogger.Zerolog())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer broker.Close()
	}

	var mailer email.Service
	if cfg.SMTP.Enabled {
		mailer = email.NewSMTPService(email.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	}

	// Services
	authSvc := authService.NewService(userRepo, hasher, jwtSvc, mailer, appMetrics, appLogger)
	appointmentSvc := appointmentService.NewService(
		appointmentRepo, doctorRepo, patientRepo, userRepo,
		broker, mailer, appMetrics, appLogger,
	)
	doctorSvc := doctorService.NewService(doctorRepo)
	recordSvc := recordService.NewService(recordRepo, patientRepo, appMetrics)
	dashboardSvc := dashboardService.NewService(userRepo, doctorRepo, patientRepo, appointmentRepo)
	userSvc := userService.NewService(userRepo)

	// Startup seeding
	if cfg.Seed.Enabled {
		seeder := bootstrap.NewSeeder(userRepo, doctorRepo, hasher, appLogger,
			cfg.Seed.AdminEmail, cfg.Seed.AdminPassword)
		if err := seeder.Seed(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("failed to seed initial data")
		}
	}

	// Handlers
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)
	authH := authHandler.NewHandler(authSvc)
	adminH := adminHandler.NewHandler(dashboardSvc, userSvc)
	doctorH := doctorHandler.NewHandler(appointmentSvc)
	patientH := patientHandler.NewHandler(appointmentSvc, doctorSvc, recordSvc)
	healthH := handler.NewHealthHandler(db)

	r := router.NewRouter(
		authMiddleware,
		authH,
		adminH,
		doctorH,
		patientH,
		healthH,
		router.Config{
			RateLimitRPS:   cfg.Server.RateLimitRPS,
			RateLimitBurst: cfg.Server.RateLimitBurst,
			CORS:           middleware.DefaultCORSConfig(),
			MetricsPrefix:  "medvault",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
