package cmd

import (
	"github.com/spf13/cobra"

	"minic/pkg/compiler"
)

var astJSON bool

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Print the syntax tree",
	Long: `Parses the source and prints the syntax tree. Parsing is best
effort: when the source has problems the tree covers what could be
recognized and the diagnostics go to stderr.

Examples:
  minic ast prog.c
  minic ast                 # built-in sample
  minic ast --json prog.c`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAst,
}

func init() {
	rootCmd.AddCommand(astCmd)

	astCmd.Flags().BoolVar(&astJSON, "json", false, "emit the tree as JSON")
}

func runAst(cmd *cobra.Command, args []string) error {
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
	logger.Debug("parsed", "source", origin, "decls", len(prog.Decls), "diagnostics", len(diags))

	printDiags(cmd.ErrOrStderr(), cfg, origin, diags)

	if astJSON || cfg.Output.Format == "json" {
		return compiler.FprintJSON(cmd.OutOrStdout(), prog)
	}
	compiler.Fprint(cmd.OutOrStdout(), prog)
	return nil
}
