package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"minic/pkg/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Explore source interactively",
	Long: `Starts a full-screen explorer. Type source into the input box;
Enter analyzes it and the result pane shows the syntax tree or the
token stream.

Keys:
  Enter    - analyze the buffer
  Tab      - toggle tokens/AST view
  Ctrl+C   - quit`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	// Terminal log lines would corrupt the alt screen, so only file
	// logging stays active while the explorer runs.
	cfg, logger, closeLogs, err := setup(io.Discard)
	if err != nil {
		return err
	}
	defer closeLogs()

	logger.Debug("starting explorer")
	return repl.Run(repl.Options{Color: cfg.Output.Color})
}
