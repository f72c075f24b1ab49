// README: Entry point; loads config, wires stores and services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fieldops/internal/config"
	httptransport "fieldops/internal/http"
	"fieldops/internal/infra"
	"fieldops/internal/logging"
	"fieldops/internal/maps"
	"fieldops/internal/modules/assignment"
	"fieldops/internal/modules/contractor"
	"fieldops/internal/modules/job"
	"fieldops/internal/modules/recommend"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.Log.Level)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Error("db init failed", "err", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	jobStore := job.NewStore(dbPool)
	jobSvc := job.NewService(jobStore)

	contractorStore := contractor.NewStore(dbPool)
	contractorSvc := contractor.NewService(contractorStore)

	assignmentStore := assignment.NewStore(dbPool)
	assignmentSvc := assignment.NewService(assignmentStore, jobSvc, contractorSvc)

	var distance recommend.DistanceProvider
	if cfg.Maps.APIKey != "" {
		distance, err = maps.NewDistanceService(cfg.Maps.APIKey, redisClient, logger)
		if err != nil {
			logger.Error("maps init failed", "err", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("no maps API key configured, using offline haversine estimates")
		distance = maps.NewHaversineEstimator()
	}

	recommendSvc := recommend.NewService(jobStore, contractorStore, assignmentStore, distance, logger)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Jobs:        jobSvc,
		Contractors: contractorSvc,
		Assignments: assignmentSvc,
		Recommend:   recommendSvc,
		Log:         logger,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	logger.Info("listening", "addr", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
