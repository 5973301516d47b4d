package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/medicart/medicart-client/internal/actions"
	"github.com/medicart/medicart-client/internal/api"
	"github.com/medicart/medicart-client/internal/checkout"
	"github.com/medicart/medicart-client/internal/config"
	"github.com/medicart/medicart-client/internal/errors"
	"github.com/medicart/medicart-client/internal/session"
	"github.com/medicart/medicart-client/internal/storage"
	"github.com/medicart/medicart-client/internal/telemetry"
	"github.com/spf13/cobra"
)

var configPath string

// app bundles everything a command needs; built once per invocation in the
// persistent pre-run and torn down in the persistent post-run.
type app struct {
	cfg      *config.Config
	creds    *storage.CredentialStore
	client   api.Client
	session  *session.Store
	catalog  *actions.Catalog
	cart     *checkout.Cart
	shutdown func(context.Context) error
}

var current *app

var rootCmd = &cobra.Command{
	Use:           "medicart",
	Short:         "MediCart pharmacy storefront client",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		current = a

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if current != nil {
			current.close(cmd.Context())
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the config file")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
	rootCmd.AddCommand(shopCmd, medicineCmd, reviewCmd)
	rootCmd.AddCommand(cartCmd, checkoutCmd, ordersCmd)
	rootCmd.AddCommand(sellerCmd, adminCmd)
}

func newApp(ctx context.Context) (*app, error) {

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return nil, err
	}

	credsPath, err := cfg.ResolveCredentialsPath()
	if err != nil {
		return nil, err
	}

	creds, err := storage.NewCredentialStore(credsPath)
	if err != nil {
		return nil, err
	}

	client := api.New(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Tokens:  creds,
	})

	sess := session.New(client, creds)
	catalog := actions.New(client, sess)

	return &app{
		cfg:      cfg,
		creds:    creds,
		client:   client,
		session:  sess,
		catalog:  catalog,
		cart:     checkout.NewCart(catalog, slog.Default()),
		shutdown: shutdown,
	}, nil
}

func (a *app) close(ctx context.Context) {

	a.session.Close()

	if err := a.shutdown(ctx); err != nil {
		slog.Warn("telemetry shutdown failed", slog.String("error", err.Error()))
	}
}

// requireSession hydrates from the persisted token and fails with a login
// hint when the session is gone.
func (a *app) requireSession(ctx context.Context) error {

	if err := a.session.Hydrate(ctx); err != nil {
		return err
	}

	if _, err := a.session.RequireUser(); err != nil {
		return fmt.Errorf("not logged in, run: medicart login")
	}

	return nil
}

// fail renders the error the way the storefront shows a toast: the server
// message, nothing else.
func fail(err error) error {

	if appErr, ok := errors.IsAppError(err); ok {
		fmt.Fprintln(os.Stderr, appErr.Message)

		return err
	}

	fmt.Fprintln(os.Stderr, err.Error())

	return err
}
