package main

import (
	"companion-lab/auth"
	"companion-lab/fixtures"
	"companion-lab/infrastructure/http/server"
	"companion-lab/internal"
	"companion-lab/moderation"
	"companion-lab/repositories"
	"companion-lab/search"
	"companion-lab/services"
	"companion-lab/sink"
	"companion-lab/store"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and returns once the HTTP server has stopped.
// Returning instead of exiting lets the deferred closes run.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	censoredChar, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return err
	}

	// 2. Storage (BadgerDB) & search index (Bluge)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing Bluge index...")
		_ = writer.Close()
	}()

	// 3. Repositories
	commentRepository, err := repositories.NewCommentRepository(db, log, config.LimitComments)
	if err != nil {
		return err
	}
	defer func() { _ = commentRepository.Close() }()
	notificationRepository, err := repositories.NewNotificationRepository(db, log)
	if err != nil {
		return err
	}
	defer func() { _ = notificationRepository.Close() }()
	userRepository := repositories.NewUserRepository(db, log)
	imageRepository := repositories.NewImageRepository(db)
	index := search.NewEventIndex(writer, log)

	// 4. Moderation
	censored, err := moderation.DefaultLoader().LoadAll("censored")
	if err != nil {
		return fmt.Errorf("censored words loading failed: %w", err)
	}
	moderator, err := moderation.NewModerator(censored.Words, censoredChar, log)
	if err != nil {
		return err
	}
	log.Info("Moderation ready", "languages", censored.Languages, "words", len(censored.Words))

	// 5. Store & services
	s := store.NewStore(store.State{
		Events:       fixtures.Events(),
		Posts:        fixtures.Posts(),
		Chats:        fixtures.Chats(),
		ChatMessages: fixtures.ChatMessages(),
		Champions:    fixtures.Champions(),
	}, log,
		sink.NewCommentSink(commentRepository, log),
		sink.NewNotificationSink(notificationRepository, log),
		sink.NewSearchSink(index, log),
	)

	authService := services.NewAuthService(userRepository, auth.NewTokenizer(config.JWTSecret, config.TokenDuration), fixtures.LoginUser(), log)
	eventService := services.NewEventService(s, index, log)
	consultationService := services.NewConsultationService(s, commentRepository, moderator, log)
	galleryService := services.NewGalleryService(s, imageRepository, moderator, log)
	inboxService := services.NewInboxService(s, notificationRepository, moderator, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = consultationService.Hydrate(ctx); err != nil {
		return fmt.Errorf("comment hydration failed: %w", err)
	}
	if err = eventService.Reindex(ctx); err != nil {
		return fmt.Errorf("search reindex failed: %w", err)
	}
	if err = inboxService.Seed(fixtures.Notifications()); err != nil {
		return fmt.Errorf("notification seeding failed: %w", err)
	}

	// 6. Debug inspector
	internal.StartDebugServer(ctx, log, db, config.DebugPort, "/inspect", internal.StoreMapper, func() map[string]any {
		state := s.Snapshot()
		return map[string]any{
			"Events": len(state.Events),
			"Posts":  len(state.Posts),
			"Chats":  len(state.Chats),
			"Time":   time.Now().Format(time.RFC822),
		}
	})

	// 7. HTTP server
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{
		Addr: address,
		Handler: server.NewServer(log, authService, eventService, consultationService,
			galleryService, inboxService, config.MaxImageBytes).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP shutdown failed: %w", err)
	}
	log.Info("Program stopped cleanly")
	return nil
}
