package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/jspan/dot"
	"github.com/dhamidi/jspan/java/codebase"
	"github.com/spf13/cobra"
)

func newCallsCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "calls <dir>",
		Short: "Write a Graphviz graph of method calls in the Java files of a directory",
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
				return dot.WriteCallGraph(w, cb.AllCalls())
			}, func(path string) {
				fmt.Fprintf(cmd.OutOrStdout(), "Generated call graph in %s\n", path)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")

	return cmd
}

// writeOutput runs write against stdout when output is "-", or against the
// named file followed by done.
func writeOutput(cmd *cobra.Command, output string, write func(io.Writer) error, done func(path string)) error {
	if output == "-" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", output, err)
	}
	done(output)
	return nil
}
