// Package client contains client-side building blocks for the PI Learning
// CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the workflow-automation webhook service: SendMessage,
//     UploadDocument, GenerateFlashcards.
//  2. A concrete HTTP implementation (see HTTPClient) that posts JSON to
//     the three configured webhook URLs, normalizes the flashcard response
//     envelopes (array wrapper, object, or bare array; English or Spanish
//     field names), and maps transport failures to sentinel errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations)
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors callers match with
// errors.Is: ErrUnavailable (network failure or non-2xx status) and
// ErrNotConfigured (the webhook URL is still the placeholder). Services
// recover from both by substituting clearly marked offline content.
package client
