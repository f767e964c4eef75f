package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pilearning/pilearn/internal/client/client"
	"github.com/pilearning/pilearn/internal/client/config"
	"github.com/pilearning/pilearn/internal/client/models"
	"github.com/pilearning/pilearn/internal/client/repositories/kv"
	"github.com/pilearning/pilearn/internal/client/repositories/session"
	"github.com/pilearning/pilearn/internal/client/repositories/users"
	"github.com/pilearning/pilearn/internal/client/services"
	"github.com/pilearning/pilearn/internal/digest"
	"github.com/pilearning/pilearn/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the services together and tracks the current identity.
type App struct {
	config           *config.Config
	authService      services.AuthService
	chatService      services.ChatService
	documentService  services.DocumentService
	flashcardService services.FlashcardService
	apiClient        client.Client
	ident            *models.Identity
	reader           *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	registry, err := digest.NewRegistry(digest.DriverName(c.DigestDriver))
	if err != nil {
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.ChatWebhookURL, c.UploadWebhookURL, c.FlashcardsWebhookURL, c.RequestTimeout)

	kvRepo := kv.NewSQLiteRepository(db)
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	return &App{
		config:           c,
		authService:      services.NewAuthService(users.NewKVRepository(db), session.NewSQLiteRepository(db), registry),
		chatService:      services.NewChatService(apiClient, kvRepo, logger),
		documentService:  services.NewDocumentService(apiClient, kvRepo, logger),
		flashcardService: services.NewFlashcardService(apiClient, kvRepo, logger),
		apiClient:        apiClient,
		reader:           bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.ident != nil
}

// status renders the prompt suffix: the logged-in username or nothing.
func (a *App) status() string {
	if a.ident == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.ident.Username)
}

// Run resumes a persisted session if one exists and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.apiClient.Close()

	ident, err := a.authService.Resume(ctx)
	if err == nil && ident != nil {
		a.ident = ident
		printlnFn(fmt.Sprintf("Welcome back, %s!", ident.Username))
	}

	printlnFn("PI Learning CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}
