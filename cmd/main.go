/*
Package main is the entry point for the huecas terminal chat client.

It is responsible for loading configuration, initializing the global logging system,
restoring or establishing a session, joining the community chat room, pumping stdin
lines as outgoing messages, and gracefully handling operating system interrupt
signals (SIGINT, SIGTERM) to ensure a clean teardown.
*/
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"huecas/internal/app/api"
	"huecas/internal/app/chat"
	"huecas/internal/app/guard"
	"huecas/internal/app/session"
	"huecas/internal/app/storage"
	"huecas/internal/configs"
	"huecas/internal/pkg/logx"
)

// sessionTokenSource bridges the construction order between the REST client
// (which needs a token source) and the session store (which needs the REST
// client as its authenticator).
type sessionTokenSource struct {
	store *session.Store
}

func (s *sessionTokenSource) Token() string {
	if s.store == nil {
		return ""
	}
	return s.store.Token()
}

func main() {
	// Load .env when present; real environment variables take precedence
	_ = godotenv.Load()

	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	logx.InitGlobalLogger(cfg.Environment == "development")
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Str("api_url", cfg.APIBaseURL).
		Str("chat_url", cfg.ChatURL).
		Int("reconnect_attempts", cfg.ReconnectAttempts).
		Msg("Configuration loaded successfully")

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Durable session mirror
	fileStore, err := storage.NewFileStore(cfg.StateDir)
	if err != nil {
		logx.Fatal(err, "Failed to open state directory")
	}

	// REST client and session store
	tokens := &sessionTokenSource{}
	client := api.NewClient(cfg.APIBaseURL, tokens)
	store := session.NewStore(client, fileStore)
	tokens.store = store

	if err := ensureSession(ctx, cfg, store); err != nil {
		logx.Fatal(err, "Could not establish a session")
	}

	if expiry, ok := store.TokenExpiresAt(); ok && expiry.Before(time.Now()) {
		logx.Warn("Stored token has expired. The server will likely reject requests; sign in again.",
			"expired_at", expiry.Format(time.RFC3339))
	}

	// The chat view sits behind the Protected guard: an incomplete profile
	// belongs in onboarding, not in the chat room.
	if decision := guard.Protected(store.Snapshot()); decision.Outcome != guard.OutcomeRender {
		logx.Fatal(nil, "Chat requires a fully onboarded session",
			"redirect", decision.Path)
	}

	currentUser, _ := store.CurrentUser()

	var manager *chat.Manager
	manager = chat.NewManager(currentUser, chat.Config{
		URL:               cfg.ChatURL,
		ReconnectAttempts: cfg.ReconnectAttempts,
		ReconnectDelay:    cfg.ReconnectDelay,
		OnMessage: func(msg chat.ChatMessage) {
			printMessage(msg, currentUser.ID, currentUser.Name)
		},
		OnStateChange: func(state chat.State) {
			if state == chat.StateSynced {
				for _, msg := range manager.Messages() {
					printMessage(msg, currentUser.ID, currentUser.Name)
				}
			}
		},
	})

	if err := manager.Start(ctx); err != nil {
		logx.Fatal(err, "Failed to start chat manager")
	}

	logx.Info("Joined the community chat. Type a message and press enter to send.")

	// Pump stdin lines as outgoing messages.
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			manager.SetDraft(scanner.Text())
			if err := manager.Send(); err != nil {
				logx.Warn("Message not sent.", "reason", err.Error())
			}
		}
	}()

	// Wait for interrupt signal (or the manager giving up) before teardown.
	select {
	case <-ctx.Done():
		logx.Info("Received shutdown signal. Leaving the chat...")
	case <-manager.Done():
		logx.Info("Chat connection ended.")
	}

	manager.Stop()

	select {
	case <-manager.Done():
	case <-time.After(5 * time.Second):
		logx.Warn("Chat manager did not stop in time.")
	}

	logx.Info("Client stopped.")
}

// ensureSession restores the stored session or signs in with env credentials.
func ensureSession(ctx context.Context, cfg *configs.AppConfig, store *session.Store) error {
	if store.Token() != "" {
		current, _ := store.CurrentUser()
		logx.Info("Restored stored session.", "user", current.Name)
		return nil
	}

	if cfg.Email == "" || cfg.Password == "" {
		return fmt.Errorf("no stored session and no HUECAS_EMAIL/HUECAS_PASSWORD provided")
	}

	signedIn, err := store.Login(ctx, cfg.Email, cfg.Password)
	if err != nil {
		return err
	}

	logx.Info("Signed in.", "user", signedIn.Name)
	return nil
}

// printMessage renders one chat line, marking the current user's own messages.
func printMessage(msg chat.ChatMessage, userID, userName string) {
	marker := " "
	if msg.UserID == userID || msg.UserName == userName {
		marker = "*"
	}

	fmt.Printf("%s [%s] %s: %s\n", marker, msg.Timestamp, msg.UserName, msg.Message)
}
