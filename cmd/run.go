package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/animalquiz/internal/app"
	"github.com/abhisek/animalquiz/internal/share"
)

// runApp loads config, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	session, err := newSession(cfg)
	if err != nil {
		return err
	}
	log.Info("starting", zap.String("version", version), zap.String("site_url", cfg.Site.URL))

	opts := app.Options{
		Session: session,
		Config:  cfg,
		Logger:  log,
	}
	if share.Available() {
		opts.Sharer = share.NewClipboard()
	} else {
		fmt.Fprintln(os.Stderr, "No clipboard utility found; sharing will be unavailable.")
		log.Warn("clipboard unsupported, share disabled")
	}

	return app.Run(opts)
}
