package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"minic/pkg/compiler"
)

var tokensJSON bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream",
	Long: `Tokenizes the source and prints one token per line with its
classification and position.

Examples:
  minic tokens prog.c
  minic tokens              # built-in sample
  echo "int x;" | minic tokens
  minic tokens --json prog.c`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().BoolVar(&tokensJSON, "json", false, "emit tokens as JSON")
}

func runTokens(cmd *cobra.Command, args []string) error {
	cfg, logger, closeLogs, err := setup(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLogs()

	src, origin, err := readSource(args)
	if err != nil {
		return err
	}

	tokens := compiler.Tokenize(src)
	logger.Debug("tokenized", "source", origin, "tokens", len(tokens))

	if tokensJSON || cfg.Output.Format == "json" {
		return compiler.FprintTokensJSON(cmd.OutOrStdout(), tokens)
	}
	for _, tok := range tokens {
		fmt.Fprintln(cmd.OutOrStdout(), tok)
	}
	return nil
}
