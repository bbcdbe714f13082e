package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	api "github.com/billowria/bookshorts/internal/api/http"
	"github.com/billowria/bookshorts/internal/config"
	"github.com/billowria/bookshorts/internal/logger"
	"github.com/billowria/bookshorts/internal/model"
	"github.com/billowria/bookshorts/internal/repository/postgres"
	"github.com/billowria/bookshorts/internal/server"
	"github.com/billowria/bookshorts/internal/service"
	storage "github.com/billowria/bookshorts/internal/storage/minio"
	"github.com/billowria/bookshorts/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)
	bookRepo := postgres.NewBookRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	contentRepo := postgres.NewContentRepository(db)
	bookmarkRepo := postgres.NewBookmarkRepository(db)
	ratingRepo := postgres.NewRatingRepository(db)

	tokenManager := token.NewJWT(cfg.JWT.Secret)

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket, cfg.Storage.PublicURL)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	authService := service.NewAuth(userRepo, profileRepo, refreshTokenRepo, tokenManager, logger)
	catalogService := service.NewCatalog(bookRepo, categoryRepo, ratingRepo, logger)
	bookmarkService := service.NewBookmarks(bookmarkRepo, logger)
	contentService := service.NewContent(contentRepo, bookRepo, logger)
	uploadService := service.NewUploads(storageClient, logger)

	apiServer := api.NewServer(authService, catalogService, bookmarkService, contentService, uploadService, logger)
	httpServer := server.NewHTTPServer(
		fmt.Sprintf(":%s", cfg.HTTP.Port),
		apiServer.Router(cfg.HTTP.AllowedOrigins),
		logger,
	)

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
