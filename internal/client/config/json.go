package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pilearning/pilearn/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout
// is specified in whole seconds. Zero values leave the corresponding
// Config field untouched, so a partial file only overrides what it names.
type JsonConfig struct {
	ChatWebhookURL       string `json:"chat_webhook_url"`
	UploadWebhookURL     string `json:"upload_webhook_url"`
	FlashcardsWebhookURL string `json:"flashcards_webhook_url"`
	DatabasePath         string `json:"database_path"`
	DigestDriver         string `json:"digest_driver"`
	RequestTimeoutS      int    `json:"request_timeout_s"`
}

// parseJson overlays cfg with values loaded from the JSON file named by
// the -c/-config flag. No flag means no JSON stage. Read or unmarshal
// errors panic; config problems should stop the program at startup.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ChatWebhookURL != "" {
		cfg.ChatWebhookURL = jc.ChatWebhookURL
	}
	if jc.UploadWebhookURL != "" {
		cfg.UploadWebhookURL = jc.UploadWebhookURL
	}
	if jc.FlashcardsWebhookURL != "" {
		cfg.FlashcardsWebhookURL = jc.FlashcardsWebhookURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.DigestDriver != "" {
		cfg.DigestDriver = jc.DigestDriver
	}
	if jc.RequestTimeoutS > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutS) * time.Second
	}
}
