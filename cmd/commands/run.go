package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"framecast"
	"framecast/config"
	"framecast/internal/application/usecase"
	"framecast/internal/domain/dto"
	"framecast/internal/domain/entity"
	brokerRepo "framecast/internal/domain/repository/broker"
	"framecast/internal/infrastructure/broker"
	"framecast/internal/infrastructure/database"
	"framecast/internal/infrastructure/devices"
	"framecast/internal/infrastructure/minio"
	"framecast/internal/infrastructure/picker"
	"framecast/internal/infrastructure/render"
	"framecast/internal/infrastructure/vision"
	"framecast/internal/presentation/handler"
	"framecast/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running framecast", "version", framecast.StringVersion())

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}

	brokerPublisher := broker.NewPublisher(brokerClient, cfg.PublisherConfig)
	brokerReceiver := broker.NewReceiver(brokerClient)

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	blobStore := database.NewBlobStore(db)
	sessionStore := database.NewSessionStore(db)
	sourceStore := database.NewSourceStore(db)
	variantStore := database.NewVariantStore(db)

	minIOClient, err := minio.New(cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}
	minIOUploader := minio.NewUploader(minIOClient.MinioClient, cfg.MinIOUploader)
	minIOFetcher := minio.NewFetcher(minIOClient.MinioClient, cfg.MinIOFetcher)
	minIORemover := minio.NewRemover(minIOClient.MinioClient, cfg.MinIORemover)

	pickerClient := picker.NewClient(cfg.Picker)
	registryClient := devices.NewClient(cfg.DeviceRegistry)

	gemini, err := vision.NewGemini(context.Background(), cfg.Vision)
	if err != nil {
		ExitOnError(err)
	}

	sessionManager := usecase.NewSessionManager(pickerClient, sessionStore, sourceStore,
		minIOUploader, brokerPublisher)
	poller := usecase.NewPoller(sessionManager)
	enricher := usecase.NewEnricher(blobStore, minIOFetcher, gemini, cfg.Vision.Timeout)
	fanout := usecase.NewFanout(registryClient, render.NewImaging(), minIOFetcher,
		minIOUploader, variantStore)
	ingestor := usecase.NewIngestor(sourceStore, blobStore, fanout, enricher,
		cfg.MinIOUploader.Bucket)
	deleter := usecase.NewDeleter(blobStore, variantStore, minIORemover)

	sessionHandler := handler.NewSessionHandler(sessionManager, poller)
	completionHandler := handler.NewCompletionHandler(ingestor)
	blobHandler := handler.NewBlobHandler(blobStore, deleter, enricher)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit("10M"))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	e.POST("/picker/sessions", sessionHandler.HandleCreate)
	e.GET("/picker/sessions/:id", sessionHandler.HandlePoll)
	e.POST("/picker/sessions/:id/ingest", sessionHandler.HandleIngest)
	e.DELETE("/picker/sessions/:id", sessionHandler.HandleDelete)

	e.POST("/internal/completions", completionHandler.HandleCompletion)

	e.GET("/blobs/:sha256", blobHandler.HandleGet)
	e.DELETE("/blobs/:sha256", blobHandler.HandleDelete)
	e.DELETE("/blobs", blobHandler.HandleDeleteAll)
	e.POST("/blobs/reanalyze", blobHandler.HandleReanalyze)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumerName, err := os.Hostname()
	if err != nil || consumerName == "" {
		consumerName = "framecast-1"
	}

	results, err := brokerReceiver.Messages(ctx, consumerName)
	if err != nil {
		ExitOnError(err)
	}

	go consumeResults(ctx, results, ingestor)

	go func() {
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}

	if err := db.Stop(); err != nil {
		logger.Warn("database close failed", "err", err)
	}

	if err := brokerClient.Close(); err != nil {
		logger.Warn("broker close failed", "err", err)
	}
}

// consumeResults feeds worker results from the stream into the same
// completion path the HTTP callback uses.
func consumeResults(ctx context.Context, results <-chan brokerRepo.Message, ingestor *usecase.Ingestor) {
	for msg := range results {
		var result dto.ProcessingResult
		if err := json.Unmarshal([]byte(msg.Body()), &result); err != nil {
			logger.Error("unreadable worker result dropped", "err", err)
			if err := msg.Ack(); err != nil {
				logger.Warn("result ack failed", "err", err)
			}

			continue
		}

		if err := ingestor.Complete(ctx, result); err != nil {
			var vErr *entity.ValidationError
			if errors.As(err, &vErr) {
				// Malformed payloads never become valid on retry.
				logger.Error("invalid worker result dropped", "source", result.SourceID, "err", err)
				if err := msg.Ack(); err != nil {
					logger.Warn("result ack failed", "err", err)
				}

				continue
			}

			logger.Error("worker result completion failed", "source", result.SourceID, "err", err)
			if err := msg.Nack(); err != nil {
				logger.Warn("result nack failed", "err", err)
			}

			continue
		}

		if err := msg.Ack(); err != nil {
			logger.Warn("result ack failed", "err", err)
		}
	}
}
