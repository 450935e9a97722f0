package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"minic/pkg/compiler"
	"minic/pkg/config"
	"minic/pkg/logs"
)

const defaultConfigFile = "minic.toml"

var (
	cfgFile string
	verbose bool
	noColor bool
)

var diagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

var rootCmd = &cobra.Command{
	Use:   "minic",
	Short: "minic - front end for a small C subset",
	Long: `minic tokenizes and parses a small subset of C and shows what it sees.

Commands:
  tokens   - print the token stream
  ast      - print the syntax tree
  check    - parse and report diagnostics
  repl     - explore source interactively
  version  - show version information

Source is read from a file argument, from stdin when piped, or from a
built-in sample program when neither is given.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+defaultConfigFile+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
}

// loadConfig resolves the configuration for this run. An explicit
// --config path must exist; the default path is optional.
func loadConfig() (config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return config.Load(defaultConfigFile)
	}
	return config.Default(), nil
}

// setup loads the configuration and builds the logger for a command run.
// logWriter is the terminal stream for log lines, usually stderr.
func setup(logWriter io.Writer) (config.Config, *slog.Logger, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, nil, nil, err
	}
	if noColor {
		cfg.Output.Color = false
	}

	logger, closeLogs, err := logs.New(logWriter, logs.Options{
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		Verbose: verbose,
	})
	if err != nil {
		return cfg, nil, nil, err
	}
	return cfg, logger, closeLogs, nil
}

// printDiags writes one line per diagnostic to w, tinted when color
// output is on.
func printDiags(w io.Writer, cfg config.Config, origin string, diags []compiler.Diagnostic) {
	for _, d := range diags {
		line := fmt.Sprintf("%s: %s", origin, d)
		if cfg.Output.Color {
			line = diagStyle.Render(line)
		}
		fmt.Fprintln(w, line)
	}
}
