package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Sidraque/Gym-NR/internal/config"
	"github.com/Sidraque/Gym-NR/internal/domain/checkins"
	"github.com/Sidraque/Gym-NR/internal/domain/dashboard"
	"github.com/Sidraque/Gym-NR/internal/domain/members"
	"github.com/Sidraque/Gym-NR/internal/domain/payments"
	"github.com/Sidraque/Gym-NR/internal/domain/plans"
	"github.com/Sidraque/Gym-NR/internal/domain/trainers"
	"github.com/Sidraque/Gym-NR/internal/firebase"
	apihttp "github.com/Sidraque/Gym-NR/internal/http"
	"github.com/Sidraque/Gym-NR/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logging.Init(cfg.LogLevel)

	app, err := firebase.NewApp(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("firebase app init failed")
	}

	authClient, err := firebase.NewAuthClient(ctx, app)
	if err != nil {
		log.Fatal().Err(err).Msg("firebase auth client init failed")
	}

	fs, err := firebase.NewFirestore(ctx, app)
	if err != nil {
		log.Fatal().Err(err).Msg("firestore init failed")
	}
	defer fs.Close()

	// Repositories
	memberRepo := members.NewRepo(fs.Client)
	trainerRepo := trainers.NewRepo(fs.Client)
	planRepo := plans.NewRepo(fs.Client)
	paymentRepo := payments.NewRepo(fs.Client)
	checkInRepo := checkins.NewRepo(fs.Client)

	// Services
	membersSvc := members.NewService(memberRepo)
	trainersSvc := trainers.NewService(trainerRepo)
	plansSvc := plans.NewService(planRepo)
	paymentsSvc := payments.NewService(paymentRepo, plansSvc)
	checkInsSvc := checkins.NewService(checkInRepo)
	dashboardSvc := dashboard.NewService(memberRepo, trainerRepo, paymentRepo, checkInRepo)

	router := apihttp.NewRouter(apihttp.RouterDeps{
		Cfg:          cfg,
		AuthClient:   authClient,
		MembersSvc:   membersSvc,
		TrainersSvc:  trainersSvc,
		PlansSvc:     plansSvc,
		PaymentsSvc:  paymentsSvc,
		CheckInsSvc:  checkInsSvc,
		DashboardSvc: dashboardSvc,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Port).Str("project", cfg.ProjectID).Msg("API listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	stop := make(chan os.Signal, 2)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info().Msg("shutting down")
	_ = srv.Shutdown(ctxShutdown)
}
