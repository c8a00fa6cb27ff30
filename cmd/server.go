package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"chainnote/internal/chain"
	"chainnote/internal/chunk"
	"chainnote/internal/config"
	"chainnote/internal/core"
	"chainnote/internal/db"
	"chainnote/internal/http/handler"
	"chainnote/internal/http/handler/middleware"
	"chainnote/internal/http/payload"
	"chainnote/internal/http/server"
	"chainnote/internal/lifecycle"
	"chainnote/internal/metadata"
	"chainnote/internal/metrics"
	"chainnote/internal/poller"
	"chainnote/internal/repository"
	"chainnote/internal/store"
	"chainnote/internal/wallet"
	"chainnote/pkg/jwt"
	"chainnote/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("chainnote", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	metrics.Init("chainnote")

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewNoteRepository(dbConn)

	if err := repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// chain-data provider with a redis-backed status cache
	redisClient := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
	statusCache := chain.NewStatusCache(redisClient, config.PollInterval)
	provider := chain.NewProvider(logger, config.ProviderURL, config.ProviderKey, statusCache)

	// wallet bridge (websocket signer + notification sink)
	bridge := wallet.NewBridge(logger)

	// transaction lifecycle
	assembler := metadata.NewAssembler(chunk.DefaultBudget)
	executor := lifecycle.NewLifecycle(
		logger,
		assembler,
		provider,
		bridge,
		provider,
		config.SignTimeout,
		config.SubmitTimeout)

	// in-memory view + reconciliation poller
	noteStore := store.NewNoteStore()
	watcher := poller.NewPoller(logger, repo, noteStore, config.PollInterval, bridge)
	defer watcher.Stop()

	// chain-sync worker folds confirmed statuses into the repository
	syncWorker := chain.NewSyncWorker(
		logger,
		provider,
		repo,
		config.PollInterval,
		config.TxExpiry,
		config.MaxRetries)
	syncWorker.Start(context.Background())
	defer syncWorker.Stop()

	// notes service
	notesService := core.NewNotesService(
		logger,
		repo,
		executor,
		noteStore,
		watcher,
		config.PinOnLedger)

	if err := notesService.Restore(context.Background()); err != nil {
		logger.Errorw("failed to restore note view", "error", err)
		return err
	}

	// handler
	notesHlr := handler.NewNotesHandler(
		logger,
		payload.Decoder{},
		notesService,
		provider,
		jwtService,
		bridge,
		config.SessionTTL,
		config.Network,
		config.ExplorerBaseURL)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
	session := middleware.NewSessionMiddleware(logger, jwtService)

	// register routes; mutating note routes require a wallet session
	mux.HandleFunc(handler.ListNotes, notesHlr.HandleListNotes)
	mux.HandleFunc(handler.GetNote, notesHlr.HandleGetNote)
	mux.HandleFunc(handler.NoteStatus, notesHlr.HandleNoteStatus)
	mux.HandleFunc(handler.PendingNotes, notesHlr.HandlePendingNotes)
	mux.HandleFunc(handler.SearchNotes, notesHlr.HandleSearchNotes)
	mux.HandleFunc(handler.GetHistory, notesHlr.HandleGetHistory)
	mux.HandleFunc(handler.GetNotifications, notesHlr.HandleGetNotifications)
	mux.HandleFunc(handler.DismissNotification, notesHlr.HandleDismissNotification)
	mux.Handle(handler.CreateNote, session.Session(http.HandlerFunc(notesHlr.HandleCreateNote)))
	mux.Handle(handler.UpdateNote, session.Session(http.HandlerFunc(notesHlr.HandleUpdateNote)))
	mux.Handle(handler.DeleteNote, session.Session(http.HandlerFunc(notesHlr.HandleDeleteNote)))
	mux.Handle(handler.TogglePin, session.Session(http.HandlerFunc(notesHlr.HandleTogglePin)))
	mux.Handle(handler.RetryNote, session.Session(http.HandlerFunc(notesHlr.HandleRetryNote)))
	mux.Handle(handler.RecoverNote, session.Session(http.HandlerFunc(notesHlr.HandleRecoverNote)))
	mux.HandleFunc(handler.WalletSession, notesHlr.HandleWalletSession)
	mux.HandleFunc(handler.WalletStatus, notesHlr.HandleWalletStatus)
	mux.HandleFunc(handler.WalletBridgeWS, notesHlr.HandleWalletBridge)
	mux.Handle("GET /metrics", metrics.MetricsHandler())

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
