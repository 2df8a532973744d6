package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/Snider/quotes/pkg/logger"
	"github.com/Snider/quotes/pkg/quotes"
	"github.com/Snider/quotes/pkg/shell"
	"github.com/Snider/quotes/pkg/ui"
	"github.com/spf13/cobra"
)

type loggerKey struct{}

// RootCmd represents the base command when called without any subcommands.
// With no subcommand it starts the interactive quote menu.
var RootCmd = NewRootCmd()

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quotes",
		Short: "Print random quotes, optionally filtered by tag.",
		Long: `Quotes is a small command-line tool over a fixed collection of quotations.
Run it without arguments for an interactive menu, or use the random and tags
subcommands from scripts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				cmd.SetContext(withLogger(cmd.Context(), logger.New(cmd.ErrOrStderr(), true)))
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd)
			if err != nil {
				return err
			}
			return shell.New(store, cmd.InOrStdin(), newPrinter(cmd), loggerFrom(cmd)).Run(cmd.Context())
		},
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringP("file", "f", "", "Load quotes from a JSON or YAML file (optionally .gz or .xz)")
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute(log *slog.Logger) error {
	RootCmd.SetContext(withLogger(context.Background(), log))
	return RootCmd.Execute()
}

func withLogger(ctx context.Context, log *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, log)
}

// loggerFrom returns the logger carried on the command context, or a
// discarding logger when none was set.
func loggerFrom(cmd *cobra.Command) *slog.Logger {
	if ctx := cmd.Context(); ctx != nil {
		if log, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return log
		}
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// loadStore builds the quote store from --file, or from the built-in quotes.
func loadStore(cmd *cobra.Command) (*quotes.Store, error) {
	log := loggerFrom(cmd)
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		store, err := quotes.Default()
		if err != nil {
			return nil, err
		}
		log.Debug("loaded built-in quotes", "count", store.Len())
		return store, nil
	}

	store, err := quotes.LoadFile(path)
	if err != nil {
		return nil, err
	}
	log.Debug("loaded quotes from file", "path", path, "count", store.Len())
	return store, nil
}

func newPrinter(cmd *cobra.Command) *ui.Printer {
	noColor, _ := cmd.Flags().GetBool("no-color")
	out := cmd.OutOrStdout()
	return ui.NewPrinter(out, ui.ColorEnabled(out, noColor))
}
