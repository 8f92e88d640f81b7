package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	authhandler "github.com/fieldtrack/fieldtrack-backend/internal/auth/handler"
	"github.com/fieldtrack/fieldtrack-backend/internal/auth/jwt"
	authmw "github.com/fieldtrack/fieldtrack-backend/internal/auth/middleware"
	authservice "github.com/fieldtrack/fieldtrack-backend/internal/auth/service"
	checkinevents "github.com/fieldtrack/fieldtrack-backend/internal/checkin/events"
	checkinhandler "github.com/fieldtrack/fieldtrack-backend/internal/checkin/handler"
	checkinrepo "github.com/fieldtrack/fieldtrack-backend/internal/checkin/repository"
	checkinservice "github.com/fieldtrack/fieldtrack-backend/internal/checkin/service"
	clientevents "github.com/fieldtrack/fieldtrack-backend/internal/client/events"
	clienthandler "github.com/fieldtrack/fieldtrack-backend/internal/client/handler"
	clientrepo "github.com/fieldtrack/fieldtrack-backend/internal/client/repository"
	clientservice "github.com/fieldtrack/fieldtrack-backend/internal/client/service"
	dashboardhandler "github.com/fieldtrack/fieldtrack-backend/internal/dashboard/handler"
	dashboardrepo "github.com/fieldtrack/fieldtrack-backend/internal/dashboard/repository"
	dashboardservice "github.com/fieldtrack/fieldtrack-backend/internal/dashboard/service"
	reporthandler "github.com/fieldtrack/fieldtrack-backend/internal/report/handler"
	reportrepo "github.com/fieldtrack/fieldtrack-backend/internal/report/repository"
	reportservice "github.com/fieldtrack/fieldtrack-backend/internal/report/service"
	userevents "github.com/fieldtrack/fieldtrack-backend/internal/user/events"
	userhandler "github.com/fieldtrack/fieldtrack-backend/internal/user/handler"
	userrepo "github.com/fieldtrack/fieldtrack-backend/internal/user/repository"
	userservice "github.com/fieldtrack/fieldtrack-backend/internal/user/service"
	"github.com/fieldtrack/fieldtrack-backend/pkg/config"
	"github.com/fieldtrack/fieldtrack-backend/pkg/database"
	"github.com/fieldtrack/fieldtrack-backend/pkg/httputil"
	"github.com/fieldtrack/fieldtrack-backend/pkg/logger"
	"github.com/fieldtrack/fieldtrack-backend/pkg/messaging"
)

func main() {
	cfg, err := config.LoadWithValidation("attendance-service")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New("attendance-service", cfg.Server.Environment)
	log.Info().Msg("starting attendance service")

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Event publishing is optional in development: the service stays up
	// without a broker and the nil-safe publishers drop events.
	var rmq *messaging.RabbitMQ
	var attendancePub, directoryPub *messaging.Publisher
	rmq, err = messaging.New(&cfg.RabbitMQ, log)
	if err != nil {
		if cfg.Server.Environment != config.EnvDevelopment {
			log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
		}
		log.Warn().Err(err).Msg("RabbitMQ unavailable, events disabled")
	} else {
		defer rmq.Close()

		attendancePub, err = messaging.NewPublisher(rmq, messaging.ExchangeAttendanceEvents, "attendance-service", log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create attendance publisher")
		}
		directoryPub, err = messaging.NewPublisher(rmq, messaging.ExchangeDirectoryEvents, "attendance-service", log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create directory publisher")
		}
	}

	jwtManager := jwt.NewManager(&cfg.JWT)

	// Repositories
	userRepository := userrepo.NewUserRepository(db)
	clientRepository := clientrepo.NewClientRepository(db)
	checkinRepository := checkinrepo.NewCheckinRepository(db)
	attendanceRepository := reportrepo.NewAttendanceRepository(db)
	dashboardRepository := dashboardrepo.NewDashboardRepository(db)

	// Event publishers (nil sinks are valid and publish nothing)
	var userPub *userevents.Publisher
	var clientPub *clientevents.Publisher
	var checkinPub *checkinevents.Publisher
	if directoryPub != nil {
		userPub = userevents.NewPublisher(directoryPub, log)
		clientPub = clientevents.NewPublisher(directoryPub, log)
	}
	if attendancePub != nil {
		checkinPub = checkinevents.NewPublisher(attendancePub, log)
	}

	// Services
	authService := authservice.NewAuthService(userRepository, jwtManager, log)
	userService := userservice.NewUserService(userRepository, userPub, log)
	clientService := clientservice.NewClientService(clientRepository, clientPub, log)
	checkinService := checkinservice.NewCheckinService(checkinRepository, clientRepository, checkinPub, log)
	reportService := reportservice.NewReportService(attendanceRepository, log)
	dashboardService := dashboardservice.NewDashboardService(dashboardRepository, log)

	// Handlers
	authHandler := authhandler.NewAuthHandler(authService, log)
	userHandler := userhandler.NewUserHandler(userService, log)
	clientHandler := clienthandler.NewClientHandler(clientService, log)
	checkinHandler := checkinhandler.NewCheckinHandler(checkinService, log)
	reportHandler := reporthandler.NewReportHandler(reportService, log)
	dashboardHandler := dashboardhandler.NewDashboardHandler(dashboardService, log)

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(httputil.RequestID)
	r.Use(httputil.Logger(log))
	r.Use(httputil.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		health := map[string]interface{}{
			"status":   "healthy",
			"service":  "attendance-service",
			"database": db.Health(req.Context()),
		}
		if rmq != nil {
			health["rabbitmq"] = rmq.Health()
		}
		httputil.JSON(w, http.StatusOK, health)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
		})

		r.Group(func(r chi.Router) {
			r.Use(authmw.Authenticate(jwtManager))

			r.Route("/users", func(r chi.Router) {
				r.Use(authmw.RequireManager)
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Create)
				r.Get("/{id}", userHandler.Get)
				r.Put("/{id}", userHandler.Update)
				r.Delete("/{id}", userHandler.Delete)
			})

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", clientHandler.List)
				r.Get("/{id}", clientHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(authmw.RequireManager)
					r.Post("/", clientHandler.Create)
					r.Put("/{id}", clientHandler.Update)
					r.Delete("/{id}", clientHandler.Delete)
					r.Post("/{id}/assignments/{employeeID}", clientHandler.Assign)
					r.Delete("/{id}/assignments/{employeeID}", clientHandler.Unassign)
				})
			})

			r.Route("/checkins", func(r chi.Router) {
				r.Post("/check-in", checkinHandler.CheckIn)
				r.Post("/check-out", checkinHandler.CheckOut)
				r.Get("/my-history", checkinHandler.MyHistory)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(authmw.RequireManager)
				r.Get("/daily-summary", reportHandler.DailySummary)
			})

			r.Get("/dashboard/stats", dashboardHandler.Stats)
		})
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	log.Info().Msg("server stopped")
}
