// cmd/home4paws-admin/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"home4paws-cli/internal/app"
	"home4paws-cli/internal/render"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var client *app.App

func main() {
	root := &cobra.Command{
		Use:           "home4paws-admin",
		Short:         "Home4Paws management console",
		Long:          "Review the platform dashboard and moderate dogs, applications, reports, surrender submissions, contact messages and user accounts.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			client, err = app.New()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if client != nil {
				client.Close()
			}
		},
	}

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newDashboardCmd(),
		newUsersCmd(),
		newDogsCmd(),
		newApplicationsCmd(),
		newReportsCmd(),
		newSurrendersCmd(),
		newMessagesCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// guarded wraps a RunE so the admin session is resolved (or interactively
// established) before the command body runs.
func guarded(runE func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := client.EnsureAdmin(context.Background()); err != nil {
			return err
		}
		return runE(cmd, args)
	}
}

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login [username]",
		Short: "Log in with admin credentials",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p := client.Prompter
			var (
				username string
				err      error
			)
			if len(args) == 1 {
				username = args[0]
			} else {
				username, err = p.Line("Admin username")
				if err != nil {
					return err
				}
			}
			password, err := p.Password("Password")
			if err != nil {
				return err
			}

			result, err := client.AdminAuth.Login(ctx, username, password)
			if err != nil {
				p.Error(result.Error)
				return err
			}
			p.Notify(fmt.Sprintf("Logged in as admin %s.", username))
			return nil
		},
	}
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored admin session and its caches",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.AdminAuth.Logout(context.Background()); err != nil {
				return err
			}
			client.Prompter.Notify("Admin session cleared.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current admin session",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := client.AdminAuth.Me(context.Background())
			if err != nil {
				client.Prompter.Error("No valid admin session.")
				return err
			}
			client.Prompter.Notify(fmt.Sprintf("%s <%s> (id %d)", user.Username, user.Email, user.ID))
			return nil
		},
	}
}

func newDashboardCmd() *cobra.Command {
	var (
		watch    bool
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show per-resource counts",
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if !watch {
				render.Dashboard(os.Stdout, client.Dashboard.Collect(ctx))
				return nil
			}

			if client.Cfg.Metrics.Enabled {
				go serveMetrics(client.Cfg.Metrics.Listen)
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			watchDashboard(ctx, os.Stdout, interval)
			return nil
		}),
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "refresh continuously")
	cmd.Flags().DurationVar(&interval, "interval", 30*time.Second, "refresh interval in watch mode")
	return cmd
}

// watchDashboard re-renders the counts on each tick until the context is
// cancelled (Ctrl-C or SIGTERM).
func watchDashboard(ctx context.Context, w io.Writer, interval time.Duration) {
	render.Dashboard(w, client.Dashboard.Collect(ctx))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fmt.Fprintf(w, "\n--- %s ---\n", time.Now().Format(time.TimeOnly))
			render.Dashboard(w, client.Dashboard.Collect(ctx))
		}
	}
}

// serveMetrics exposes the client's Prometheus metrics while watch mode runs.
func serveMetrics(listen string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(listen, mux); err != nil {
		client.Log.Warn("metrics listener stopped", map[string]interface{}{"error": err.Error()})
	}
}
