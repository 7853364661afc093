package main

import (
	"os"

	"github.com/spf13/cobra"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	app := &app{}
	mf := &methodsFlags{}

	rootCmd := &cobra.Command{
		Use:   "jspan [ignored...] <file.java>",
		Short: "Print the source text of every method in a Java file",
		Long: `Print the source text of every method declared in a Java file, each one
preceded by a separator line. Only the last argument is read; earlier
arguments are ignored. If the first argument names a subcommand (methods,
classes, calls, path, lsp) that subcommand runs instead, so put "--" in
front of ignored arguments that might collide:

  jspan -- classes Foo.java`,
		Version:           version,
		Args:              cobra.MinimumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: app.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMethods(cmd, app, mf, args[len(args)-1])
		},
	}

	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", defaultConfigPath, "path to the configuration file")
	rootCmd.PersistentFlags().CountVarP(&app.verbose, "verbose", "v", "increase log verbosity (repeatable)")
	mf.register(rootCmd)

	rootCmd.AddCommand(newMethodsCmd(app))
	rootCmd.AddCommand(newClassesCmd(app))
	rootCmd.AddCommand(newCallsCmd(app))
	rootCmd.AddCommand(newPathCmd())
	rootCmd.AddCommand(newLSPCmd(app))

	return rootCmd
}
