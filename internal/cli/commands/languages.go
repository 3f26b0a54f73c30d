package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/tidemark-labs/commentscan/internal/cli/config"
	"github.com/tidemark-labs/commentscan/pkg/lang"
)

// NewLanguagesCommand creates the languages command.
func NewLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Long:  `List the language names (and aliases) accepted by extract.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetConfig(cmd.Context())
			names := lang.List()

			if cfg.Output == "table" {
				t := table.NewWriter()
				t.SetOutputMirror(cmd.OutOrStdout())
				t.AppendHeader(table.Row{"Language", "Skip rules", "Keep rules"})
				for _, name := range names {
					d, err := lang.Lookup(name)
					if err != nil {
						return err
					}
					t.AppendRow(table.Row{name, len(d.Skip), len(d.Keep)})
				}
				t.Render()
				return nil
			}

			for _, name := range names {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
