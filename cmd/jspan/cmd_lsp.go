package main

import (
	"github.com/dhamidi/jspan/java/codebase"
	"github.com/spf13/cobra"
)

func newLSPCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		Long: `Start a Language Server Protocol server on stdio. It answers document
symbol and folding range requests with the extracted method spans and keeps
the workspace in sync with changes made on disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := app.scanOptions(cmd, false)
			if err != nil {
				return err
			}
			server := codebase.NewLSPServer(version, opts)
			return server.RunStdio()
		},
	}
}
