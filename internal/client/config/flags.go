package config

import (
	"flag"
	"os"
	"time"

	"github.com/pilearning/pilearn/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-chat string    chat webhook URL
//	-upload string  document upload webhook URL
//	-cards string   flashcard generation webhook URL
//	-db string      path to the local SQLite database
//	-digest string  credential digest driver (pbkdf2 or fnv)
//	-t int          webhook request timeout in seconds
//
// Args are filtered with flagx.FilterArgs so this stage does not
// interfere with flags owned by other stages.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-chat", "-upload", "-cards", "-db", "-digest", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ChatWebhookURL, "chat", cfg.ChatWebhookURL, "chat webhook URL")
	fs.StringVar(&cfg.UploadWebhookURL, "upload", cfg.UploadWebhookURL, "document upload webhook URL")
	fs.StringVar(&cfg.FlashcardsWebhookURL, "cards", cfg.FlashcardsWebhookURL, "flashcard generation webhook URL")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "path to the local database")
	fs.StringVar(&cfg.DigestDriver, "digest", cfg.DigestDriver, "credential digest driver (pbkdf2 or fnv)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "webhook request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
