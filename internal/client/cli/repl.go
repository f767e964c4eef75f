package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to
// operate. The real App type satisfies this interface; tests can provide
// a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Ask(ctx context.Context, args []string) error
	History(ctx context.Context) error
	ClearChat(ctx context.Context) error
	Upload(ctx context.Context, args []string) error
	Documents(ctx context.Context) error
	RemoveDocument(ctx context.Context, args []string) error
	Cards(ctx context.Context) error
	Generate(ctx context.Context, args []string) error
	ClearCards(ctx context.Context) error
	Whoami(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Commands available before login: help, register, login, exit. After
// login the study commands open up: ask, history, clearchat, upload,
// docs, rmdoc, cards, generate, clearcards, logout.
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pilearn %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: register, login, exit")
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Please login first (register, login, exit)")
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: ask, history, clearchat, upload, docs, rmdoc, cards, generate, clearcards, whoami, logout, exit")

		case "ask":
			_ = a.Ask(ctx, args)

		case "history":
			_ = a.History(ctx)

		case "clearchat":
			_ = a.ClearChat(ctx)

		case "upload":
			_ = a.Upload(ctx, args)

		case "docs":
			_ = a.Documents(ctx)

		case "rmdoc":
			_ = a.RemoveDocument(ctx, args)

		case "cards":
			_ = a.Cards(ctx)

		case "generate":
			_ = a.Generate(ctx, args)

		case "clearcards":
			_ = a.ClearCards(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
