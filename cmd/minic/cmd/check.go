package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"minic/pkg/compiler"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Parse and report diagnostics",
	Long: `Parses the source and prints every diagnostic. Exits non-zero
when the source has problems, so check works as a gate in scripts.

Examples:
  minic check prog.c
  cat prog.c | minic check`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, logger, closeLogs, err := setup(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLogs()

	src, origin, err := readSource(args)
	if err != nil {
		return err
	}

	prog, diags := compiler.Analyze(src)
	logger.Debug("checked", "source", origin, "decls", len(prog.Decls), "diagnostics", len(diags))

	printDiags(cmd.ErrOrStderr(), cfg, origin, diags)
	if len(diags) > 0 {
		return fmt.Errorf("%s: %d diagnostics", origin, len(diags))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d declarations)\n", origin, len(prog.Decls))
	return nil
}
