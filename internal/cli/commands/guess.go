package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidemark-labs/commentscan/internal/plid"
)

// NewGuessCommand creates the guess command.
func NewGuessCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "guess [file]",
		Short: "Guess the language of a source snippet",
		Long: `Guess which supported language a file (or stdin) is written in,
using keyword and operator frequency voting.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), plid.Guess(code))
			return err
		},
	}
}
