package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/pilearning/pilearn/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// errMessage maps service errors to the messages the user sees.
func errMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrValidation):
		return err.Error()
	case errors.Is(err, common.ErrDuplicateUser):
		return "Username already taken"
	case errors.Is(err, common.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, common.ErrWrongPassword):
		return "Incorrect password"
	case errors.Is(err, common.ErrNotFound):
		return "Not found"
	default:
		return fmt.Sprintf("Something went wrong: %s", err.Error())
	}
}

// Register prompts for a username and a password entered twice, creates
// the account, and leaves the user logged in. Password bytes are wiped
// before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Choose a password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(os.Stdout, "Repeat password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		printlnFn("Passwords do not match")
		return common.ErrValidation
	}

	ident, err := a.authService.Register(ctx, username, string(password))
	if err != nil {
		printlnFn(errMessage(err))
		return err
	}

	a.ident = ident
	printlnFn(fmt.Sprintf("Welcome, %s!", ident.Username))
	return nil
}

// Login prompts for credentials and authenticates. Password bytes are
// wiped before returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ident, err := a.authService.Login(ctx, username, string(password))
	if err != nil {
		printlnFn(errMessage(err))
		return err
	}

	a.ident = ident
	printlnFn(fmt.Sprintf("Welcome back, %s!", ident.Username))
	return nil
}

// Whoami prints the current identity.
func (a *App) Whoami(ctx context.Context) error {
	printlnFn(fmt.Sprintf("%s (id %s)", a.ident.Username, a.ident.ID))
	return nil
}

// Logout closes the session. Study data stays on disk under the user's
// keys.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		printlnFn(errMessage(err))
		return err
	}
	a.ident = nil
	printlnFn("Logged out")
	return nil
}
