package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"beautysalon/internal/config"
	"beautysalon/internal/database"
	"beautysalon/internal/middleware"
	"beautysalon/internal/modules/auth"
	"beautysalon/internal/modules/booking"
	"beautysalon/internal/modules/favorite"
	"beautysalon/internal/modules/master"
	"beautysalon/internal/modules/payment"
	"beautysalon/internal/modules/review"
	jwtsvc "beautysalon/internal/pkg/jwt"
	"beautysalon/internal/pkg/logger"
	"beautysalon/internal/repository"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Get()
		l.Fatal().Err(err).Msg("config load failed")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("database handle failed")
	}
	defer sqlDB.Close()

	userRepo := repository.NewUserRepository(db)
	masterRepo := repository.NewMasterRepository(db)
	serviceRepo := repository.NewCatalogServiceRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	cardRepo := repository.NewCardRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	masterHandler := master.NewHandler(master.NewService(masterRepo))
	bookingHandler := booking.NewHandler(booking.NewService(appointmentRepo, masterRepo))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, masterRepo, serviceRepo))
	favoriteHandler := favorite.NewHandler(favorite.NewService(favoriteRepo))
	paymentHandler := payment.NewHandler(payment.NewService(cardRepo, paymentRepo))

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.RequestLogger())

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)
		reviewHandler.RegisterPublicRoutes(api)

		// protected
		protected := api.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			masterHandler.RegisterRoutes(protected)
			favoriteHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped")
}
