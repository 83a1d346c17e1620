package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "warnemit",
		Short:         "Emit process warnings through the warning policy",
		Long:          `warnemit resolves the warning policy from flags, environment and an optional TOML file, then emits warnings through it`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newEmitCmd())

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "TOML policy file")
	pf.Bool("no-warnings", false, "silence all warnings (env "+envNoWarnings+"=1)")
	pf.String("redirect-warnings", "", "append warnings to this file (env "+envRedirect+")")
	pf.Bool("trace-warnings", false, "print the call-site trace for every warning")
	pf.Bool("trace-deprecation", false, "print the call-site trace for deprecations")
	pf.Bool("no-deprecation", false, "silence deprecation warnings")
	pf.Bool("throw-deprecation", false, "turn deprecation warnings into errors")
	pf.Bool("verbose", false, "log the warning subsystem's own diagnostics")
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}
