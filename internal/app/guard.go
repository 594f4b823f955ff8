// internal/app/guard.go
package app

import (
	"context"
	"fmt"

	apierrors "home4paws-cli/internal/common/errors"
)

// EnsureAdmin is the route guard for admin commands. It resolves the stored
// admin session first; when there is none (or it no longer validates), it
// falls back to an inline login prompt in place of the command, so the
// command runs immediately after a successful retry instead of being lost.
func (a *App) EnsureAdmin(ctx context.Context) error {
	if a.AdminAuth.Authenticated() {
		a.Prompter.Notify("Checking admin session...")
		if _, err := a.AdminAuth.Me(ctx); err == nil {
			return nil
		} else if !apierrors.IsUnauthorized(err) {
			return err
		}
		// Stored token no longer validates; fall through to the prompt.
	}

	a.Prompter.Notify("Admin login required.")
	username, err := a.Prompter.Line("Admin username")
	if err != nil {
		return err
	}
	password, err := a.Prompter.Password("Password")
	if err != nil {
		return err
	}

	result, err := a.AdminAuth.Login(ctx, username, password)
	if err != nil {
		a.Prompter.Error(result.Error)
		return fmt.Errorf("admin login failed: %w", err)
	}
	return nil
}
