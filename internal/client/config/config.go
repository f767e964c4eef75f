// Package config loads runtime settings for the PI Learning CLI. Values
// are resolved in three stages: built-in defaults, then a JSON file (if
// given via -c/-config), then command-line flags. Later stages win.
package config

import "time"

// Config holds runtime settings for the CLI.
//
// The webhook URLs default to documentation placeholders; while a URL
// still contains the placeholder host the client serves demo content
// instead of dialing out.
//
// DigestDriver pins the credential hashing path for this deployment
// ("pbkdf2" or "fnv"). It must not change once users have registered,
// except that records always verify under the driver recorded with them.
type Config struct {
	ChatWebhookURL       string
	UploadWebhookURL     string
	FlashcardsWebhookURL string
	DatabasePath         string
	DigestDriver         string
	RequestTimeout       time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ChatWebhookURL = "https://your-n8n-instance.com/webhook/chat"
	c.UploadWebhookURL = "https://your-n8n-instance.com/webhook/upload"
	c.FlashcardsWebhookURL = "https://your-n8n-instance.com/webhook/generate-flashcards"
	c.DatabasePath = "pilearning.db"
	c.DigestDriver = "pbkdf2"
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
