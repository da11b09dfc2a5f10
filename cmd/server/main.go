package main

import (
	"context"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/unitflow-backend/internal/adapter/grpc"
	"github.com/simaogato/unitflow-backend/internal/adapter/ratesapi"
	"github.com/simaogato/unitflow-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/unitflow-backend/internal/config"
	"github.com/simaogato/unitflow-backend/internal/domain"
	"github.com/simaogato/unitflow-backend/internal/usecase/converter"
	"github.com/simaogato/unitflow-backend/internal/usecase/favorite"
	"github.com/simaogato/unitflow-backend/internal/usecase/rates"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to a YAML config file")
	flag.Parse()

	// 1. Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 2. Setup Database (optional)
	var (
		db           *postgres.DB
		favoriteRepo domain.FavoriteRepository
		rateRepo     domain.RateRepository
	)
	if cfg.DatabaseEnabled() {
		db, err = postgres.NewDB(cfg.DSN())
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to apply database schema: %v", err)
		}

		favoriteRepo = postgres.NewFavoriteRepository(db)
		rateRepo = postgres.NewRateRepository(db)
	} else {
		log.Println("No database configured: favorites disabled, rates kept in memory only")
	}

	// 3. Currency rates
	var provider domain.RateProvider
	if cfg.Rates.APIKey != "" {
		provider = ratesapi.NewClient(cfg.Rates.APIURL, cfg.Rates.APIKey)
	} else {
		log.Println("No rates API key configured: currency conversion uses stored or fallback rates")
	}

	rateStore := rates.NewRateStore()
	rateService := rates.NewRateService(rateStore, provider, rateRepo)

	if restored, err := rateService.Restore(ctx); err != nil {
		log.Printf("Failed to restore saved rates: %v", err)
	} else if restored {
		log.Println("Restored saved currency rates")
	}

	if snapshot, err := rateService.Refresh(ctx); err != nil {
		log.Printf("Initial rate refresh failed, using %d rates (fallback=%t): %v",
			snapshot.Len(), snapshot.IsFallback(), err)
	}

	go rateService.Run(ctx, cfg.Rates.RefreshInterval)

	// 4. Initialize Services (Use Cases)
	registry := converter.NewRegistry(rateStore)

	var favoriteService *favorite.FavoriteService
	if favoriteRepo != nil {
		favoriteService = favorite.NewFavoriteService(favoriteRepo, registry)
	}

	// 5. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.RecoveryInterceptor(nil),
			grpcadapter.LoggingInterceptor(nil),
			grpcadapter.AuthInterceptor(cfg.APIToken,
				grpcadapter.FullMethod(grpcadapter.MethodListSections),
				grpcadapter.FullMethod(grpcadapter.MethodListUnits),
				grpcadapter.FullMethod(grpcadapter.MethodGetRates),
			),
		),
	)

	grpcAdapter := grpcadapter.NewServer(registry, favoriteService, rateService)
	grpcadapter.RegisterConverterServiceServer(grpcServer, grpcAdapter)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.GRPCAddr, err)
	}

	// Start server in a goroutine
	go func() {
		log.Printf("gRPC server listening on %s", cfg.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer, cancel)
}

// waitForShutdown waits for SIGTERM or SIGINT, stops the rate refresher
// and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server, stopBackground context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	stopBackground()

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(10 * time.Second):
		log.Println("Graceful stop timed out, forcing shutdown")
		grpcServer.Stop()
	}
	log.Println("gRPC server stopped")
}
