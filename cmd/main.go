package main

import (
	"coffee-chat/api"
	grpc2 "coffee-chat/grpc"
	"coffee-chat/internal"
	"coffee-chat/messaging"
	"coffee-chat/repositories"
	"coffee-chat/runtime"
	"coffee-chat/runtime/workers"
	"coffee-chat/services"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/slack-go/slack"
	"google.golang.org/grpc"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "coffee-chat terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal or a server failure.
// Deferred cleanups run before main exits.
func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. History storage (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	historyRepository := repositories.NewHistoryRepository(db, log, config.SameDay())

	// 3. Pairing core and messaging
	orchestrator := runtime.NewOrchestrator(log, historyRepository, config.NewRand(), time.Now,
		config.GeneratorOptions()...)
	slackClient := messaging.NewSlackClient(slack.New(config.SlackBotToken), log, config.MessageText)
	dispatcher := messaging.NewDispatcher(slackClient, log, config.DispatchConcurrency)
	roundService := services.NewRoundService(slackClient, orchestrator, dispatcher, log)

	// 4. Jobs & supervision
	queue := runtime.NewJobQueue(config.JobRetention, time.Now)
	health := grpc2.NewHealthReporter(log)
	queue.OnDone(health.JobDone)

	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewRoundWorker(queue, roundService, log))
	if config.HeartbeatInterval > 0 {
		sup.Add(workers.NewHeartbeatWorker(log, queue, config.HeartbeatInterval))
	}
	if config.RoundInterval > 0 {
		sup.Add(workers.NewScheduleWorker(queue, config.RoundInterval, log))
		log.Info("Rounds scheduled", "interval", config.RoundInterval)
	}

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	supervisorDone := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supervisorDone)
	}()

	// 6. Servers
	errChan := make(chan error, 2)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler:           api.NewHandler(queue, config.TriggerToken, log),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("Starting HTTP server", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	grpcAddress := fmt.Sprintf("%s:%d", config.Host, config.GrpcPort)
	listener, err := net.Listen("tcp", grpcAddress)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", grpcAddress, err)
	}
	grpcServer := grpc.NewServer()
	health.Register(grpcServer)
	go func() {
		log.Info("Starting gRPC health server", "address", grpcAddress)
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	code := exitOK
	var runErr error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case runErr = <-errChan:
		code = exitRuntime
	}

	// 8. Final Cleanup
	health.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP server shutdown", "error", err)
	}
	grpcServer.GracefulStop()
	sup.Stop()
	select {
	case <-supervisorDone:
	case <-shutdownCtx.Done():
		log.Warn("Workers did not stop in time")
	}
	log.Info("Program stopped cleanly")

	return code, runErr
}
