// Package commands implements the commentscan subcommands.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/tidemark-labs/commentscan/internal/cli/config"
	"github.com/tidemark-labs/commentscan/internal/plid"
	"github.com/tidemark-labs/commentscan/pkg/scanner"
)

// NewExtractCommand creates the extract command.
func NewExtractCommand() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract comments from a source snippet",
		Long: `Extract comments from a file (or stdin when no file is given).

The dialect is taken from --language, the configuration, or guessed from
the snippet when neither is set. Comments are printed in source order,
including their delimiter characters.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetConfig(cmd.Context())
			logger := config.GetLogger(cmd.Context())

			code, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			lng := language
			if lng == "" {
				lng = cfg.Language
			}
			if lng == "" {
				lng = plid.Guess(code)
				logger.Debug("guessed language", "language", lng)
			}

			comments, err := scanner.Extract(code, lng)
			if err != nil {
				return err
			}

			return renderComments(cmd.OutOrStdout(), lng, comments, cfg.Output)
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Source language (guessed when empty)")
	_ = cmd.RegisterFlagCompletionFunc("language", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"python", "c", "c++", "java", "c#", "js", "javascript", "go", "php"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// readInput reads the snippet from the file argument or stdin.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func renderComments(w io.Writer, language string, comments []string, format string) error {
	switch format {
	case "json":
		out := struct {
			Language string   `json:"language"`
			Comments []string `json:"comments"`
		}{Language: language, Comments: comments}
		if out.Comments == nil {
			out.Comments = []string{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "table":
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"#", "Comment"})
		for i, c := range comments {
			t.AppendRow(table.Row{i + 1, c})
		}
		t.Render()
		return nil
	default:
		for _, c := range comments {
			if _, err := fmt.Fprintln(w, c); err != nil {
				return err
			}
		}
		return nil
	}
}
