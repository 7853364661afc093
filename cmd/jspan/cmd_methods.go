package main

import (
	"fmt"

	"github.com/dhamidi/jspan/format"
	"github.com/dhamidi/jspan/java/extract"
	"github.com/spf13/cobra"
)

type methodsFlags struct {
	outputFormat string
	braceMode    string
	constructors bool
	lenient      bool
}

func (f *methodsFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.outputFormat, "format", "f", "split", "output format (split, json, table)")
	cmd.Flags().StringVar(&f.braceMode, "brace-mode", "", "brace counting (lexical, raw); defaults to the configuration")
	cmd.Flags().BoolVar(&f.constructors, "constructors", false, "also extract constructors")
	cmd.Flags().BoolVar(&f.lenient, "lenient", false, "extract from files with syntax errors")
}

func newMethodsCmd(app *app) *cobra.Command {
	f := &methodsFlags{}

	cmd := &cobra.Command{
		Use:   "methods [ignored...] <file.java>",
		Short: "Print the source text of every method in a Java file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMethods(cmd, app, f, args[len(args)-1])
		},
	}
	f.register(cmd)

	return cmd
}

func runMethods(cmd *cobra.Command, app *app, f *methodsFlags, path string) error {
	opts, err := app.cfg.ExtractOptions()
	if err != nil {
		return err
	}
	if f.braceMode != "" {
		if opts.Mode, err = extract.ParseBraceMode(f.braceMode); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("constructors") {
		opts.Constructors = f.constructors
	}
	opts.Lenient = f.lenient

	encoder, err := format.NewEncoder(f.outputFormat, cmd.OutOrStdout(), app.cfg.Extract.Separator)
	if err != nil {
		return err
	}

	spans, err := extract.FromFile(path, opts)
	if err != nil {
		return err
	}

	if err := encoder.Encode(spans); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
