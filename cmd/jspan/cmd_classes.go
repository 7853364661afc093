package main

import (
	"fmt"
	"io"

	"github.com/dhamidi/jspan/dot"
	"github.com/dhamidi/jspan/java/codebase"
	"github.com/spf13/cobra"
)

func newClassesCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "classes <dir>",
		Short: "Write a Graphviz class diagram of the Java files in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := app.scanOptions(cmd, output != "-")
			if err != nil {
				return err
			}
			cb := codebase.New(args[0], opts)
			if err := cb.ScanAll(cmd.Context()); err != nil {
				return err
			}
			reportParseErrors(cmd, cb.Errors())

			return writeOutput(cmd, output, func(w io.Writer) error {
				return dot.WriteClassDiagram(w, cb.AllClasses())
			}, func(path string) {
				fmt.Fprintf(cmd.OutOrStdout(), "Generated class diagram in %s\n", path)
				fmt.Fprintf(cmd.OutOrStdout(), "To generate PNG, run: dot -Tpng %s -o class_diagram.png\n", path)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "class_diagram.dot", "output file, - for stdout")

	return cmd
}
