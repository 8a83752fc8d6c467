package cli

import (
	"context"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, authenticates against the backend, and on
// success persists the returned identity in the session store so the next
// run starts logged in.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	identity, err := a.api.Login(ctx, username, password)
	if err != nil {
		printfFn("login failed: %v\n", err)
		return err
	}

	if err := a.session.Login(ctx, *identity); err != nil {
		printfFn("failed to persist session: %v\n", err)
		return err
	}

	printfFn("Welcome, %s!\n", identity.Username)
	return nil
}

// Register walks the sign-up flow: it pre-checks username and email
// availability the way the registration page does, requires a matching
// password confirmation, and only then submits.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	if username == "" {
		printlnFn("username cannot be empty")
		return nil
	}
	if taken, err := a.api.UsernameExists(ctx, username); err != nil {
		printfFn("error: %v\n", err)
		return err
	} else if taken {
		printlnFn("username is already taken")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if taken, err := a.api.EmailExists(ctx, email); err != nil {
		printfFn("error: %v\n", err)
		return err
	} else if taken {
		printlnFn("email is already registered")
		return nil
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	if password != confirm {
		printlnFn("passwords do not match")
		return nil
	}

	if _, err := a.api.Register(ctx, username, email, password); err != nil {
		printfFn("registration failed: %v\n", err)
		return err
	}

	printlnFn("Success! You can now login.")
	return nil
}

// Logout ends the backend session and clears the persisted identity. The
// local state is cleared even when the server call fails, so a dead backend
// cannot pin the user to a stale session. Cached snapshots are cleared too,
// so a later login cannot surface the previous user's data offline.
func (a *App) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		a.log.Warn(ctx, "backend logout failed", "error", err)
	}
	if err := a.session.Logout(ctx); err != nil {
		printfFn("logout failed: %v\n", err)
		return err
	}
	if err := a.snapshots.Clear(ctx); err != nil {
		a.log.Warn(ctx, "failed to clear cached snapshots", "error", err)
	}
	printlnFn("Logged out.")
	return nil
}

// Forgot requests a password-reset email.
func (a *App) Forgot(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter account email", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.api.RequestPasswordReset(ctx, email); err != nil {
		printfFn("error: %v\n", err)
		return err
	}
	printlnFn("If the address exists, a reset email is on its way.")
	return nil
}

// Reset validates a reset token and sets a new password.
func (a *App) Reset(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", os.Stdout)
	if err != nil {
		return err
	}
	valid, err := a.api.ValidatePasswordResetToken(ctx, token)
	if err != nil {
		printfFn("error: %v\n", err)
		return err
	}
	if !valid {
		printlnFn("token is invalid or expired")
		return nil
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	if password != confirm {
		printlnFn("passwords do not match")
		return nil
	}

	if err := a.api.ResetPassword(ctx, token, password); err != nil {
		printfFn("error: %v\n", err)
		return err
	}
	printlnFn("Password updated. You can now login.")
	return nil
}
