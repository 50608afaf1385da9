package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/patrickmast/terminal-counter/internal/config"
	"github.com/patrickmast/terminal-counter/internal/ui"
)

var version = "dev"

// newRootCmd builds the counter command with its flags bound to v.
func newRootCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "counter",
		Short: "counter - increment, decrement, reset",
		Long: `counter shows a single count with three controls.

Keys: +/- or ↑/↓ change the count, r resets, tab moves between
controls, enter presses the focused one, ? shows all keys, q quits.

Settings can also come from the environment, for example:

export COUNTER_LOG_FILE=/tmp/counter.log
export COUNTER_LOG_LEVEL=debug
export COUNTER_LOG_FORMAT=json
export COUNTER_ASCII=true`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v, cmd.OutOrStdout())
		},
	}

	config.SetDefaults(v)

	f := cmd.Flags()
	f.String("log-file", "", "log file, or stderr (default discards logs)")
	f.String("log-level", "info", "trace, debug, info, warn, error, fatal or panic")
	f.String("log-format", "text", "text or json")
	f.Bool("alt-screen", true, "use the terminal's alternate screen")
	f.Bool("ascii", false, "use ASCII icons")
	f.Bool("print", true, "print the final count to stdout on exit")

	// viper keys use underscores so they line up with COUNTER_* variables
	for key, flag := range map[string]string{
		"log_file":   "log-file",
		"log_level":  "log-level",
		"log_format": "log-format",
		"alt_screen": "alt-screen",
		"ascii":      "ascii",
		"print":      "print",
	} {
		if err := v.BindPFlag(key, f.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	return cmd
}

func run(v *viper.Viper, stdout io.Writer) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger, closer, err := config.SetupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog(logger, closer)

	logger.WithField("version", version).Info("counter starting")

	opts := []tea.ProgramOption{tea.WithOutput(os.Stderr)}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	// TUI goes to stderr so stdout only carries the final count
	p := tea.NewProgram(ui.New(ui.Options{ASCII: cfg.ASCII, Logger: logger}), opts...)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run counter: %w", err)
	}

	if m, ok := final.(ui.Model); ok {
		logger.WithField("count", m.Count()).Info("counter stopped")
		return report(stdout, m, cfg.Print)
	}
	return nil
}

func closeLog(logger log.FieldLogger, closer io.Closer) {
	if err := closer.Close(); err != nil {
		logger.WithError(err).Warn("close log file")
	}
}

// report writes the final badge text as one line when enabled.
func report(w io.Writer, m ui.Model, enabled bool) error {
	if !enabled {
		return nil
	}
	_, err := fmt.Fprintln(w, m.Display())
	return err
}

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}
