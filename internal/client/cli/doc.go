// Package cli implements the interactive PI Learning terminal client: a
// REPL over the auth, chat, document, and flashcard services. Commands
// that touch per-user data are only reachable after login.
package cli
