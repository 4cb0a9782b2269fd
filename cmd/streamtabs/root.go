package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pkt.systems/pslog"
	"pkt.systems/streamtabs/internal/appconfig"
	"pkt.systems/streamtabs/tui"
)

// errUsage marks argument errors that should print the usage banner and
// exit with code 2.
var errUsage = errors.New("usage")

func newRootCmd() *cobra.Command {
	var cfgPath string
	var logFile string
	var themeName string

	cmd := &cobra.Command{
		Use:   "streamtabs <filter1> <filter2> ...",
		Short: "Multiplex a piped line stream into filter tabs",
		Long: "streamtabs splits a line stream from stdin into tabs, one per literal\n" +
			"substring filter, with unread badges, pause, and a cross-tab line pin.",
		Example:       "  tail -f app.log | streamtabs error warn info",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters := make([]string, 0, len(args))
			for _, arg := range args {
				if arg != "" {
					filters = append(filters, arg)
				}
			}
			if len(filters) == 0 {
				printUsage(cmd.ErrOrStderr())
				return errUsage
			}
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("stdout must be a TTY (run this in a terminal, not redirected)")
			}

			cfg, err := appconfig.Load(cfgPath)
			if err != nil {
				return err
			}
			if themeName != "" {
				cfg.Theme = themeName
			}
			if logFile != "" {
				cfg.Logging.File = logFile
			}

			ctx, closeLog, err := sessionContext(cmd.Context(), cfg.Logging.File)
			if err != nil {
				return err
			}
			defer closeLog()

			return tui.Run(ctx, tui.Options{
				Filters:        filters,
				Theme:          cfg.Theme,
				MaxLinesPerTab: cfg.MaxLinesPerTab,
				PollInterval:   time.Duration(cfg.PollIntervalMS) * time.Millisecond,
			})
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "config file path (default ~/.config/streamtabs/config.yaml)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write structured logs to this file")
	cmd.Flags().StringVar(&themeName, "theme", "", "color theme name")

	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: streamtabs <filter1> <filter2> ...\n\nExample:\n  tail -f app.log | streamtabs error warn info\n")
}

// sessionContext rebinds the context logger for the TUI's lifetime: to
// the requested file, or to nowhere. Logging to stderr would tear the
// alternate screen.
func sessionContext(ctx context.Context, logPath string) (context.Context, func(), error) {
	if logPath == "" {
		logger := pslog.NewWithOptions(io.Discard, pslog.Options{Mode: pslog.ModeStructured})
		return pslog.ContextWithLogger(ctx, logger), func() {}, nil
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return ctx, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := pslog.NewWithOptions(file, pslog.Options{
		Mode:    pslog.ModeStructured,
		NoColor: true,
	})
	return pslog.ContextWithLogger(ctx, logger), func() { _ = file.Close() }, nil
}
