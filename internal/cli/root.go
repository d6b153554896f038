// Package cli implements the cloze command-line front end.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/panjuncai/Sola-sub000/internal/app"
	"github.com/panjuncai/Sola-sub000/internal/config"
	"github.com/panjuncai/Sola-sub000/internal/service/cloze"
	"github.com/panjuncai/Sola-sub000/internal/tokenize"
)

// NewRootCmd builds the cloze command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cloze",
		Short:         "Check dictation and cloze answers against the original text",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "Path to YAML config file (overrides CONFIG_PATH)")
	root.PersistentFlags().Bool("verbose", false, "Log at debug level to stderr")

	root.AddCommand(newCompareCmd())
	root.AddCommand(newSplitCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// newService loads configuration the same way the server does and builds
// the practice service on top of it.
func newService(cmd *cobra.Command) (*cloze.Service, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Log.Level = "debug"
		cfg.Log.Format = "text"
		logger = app.NewLogger(cfg.Log)
	}

	svc, err := cloze.NewService(logger, tokenize.NewDefaultRegistry(logger), cfg.Cloze.PracticeConfig())
	if err != nil {
		return nil, fmt.Errorf("cloze service: %w", err)
	}
	return svc, nil
}
