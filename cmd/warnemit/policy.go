package main

import (
	"os"

	"github.com/Station-Manager/warnings"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	envNoWarnings = "WARNEMIT_NO_WARNINGS"
	envRedirect   = "WARNEMIT_REDIRECT_WARNINGS"
)

// resolvePolicy layers the policy: TOML file, then environment, then flags.
// Without a file warnings start enabled; with one, its "enabled" key decides.
func resolvePolicy(cmd *cobra.Command) (warnings.Config, error) {
	flags := cmd.Flags()

	cfg := warnings.Config{Enabled: true}
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := warnings.LoadConfig(path)
		if err != nil {
			return warnings.Config{}, err
		}
		cfg = loaded
	}

	if os.Getenv(envNoWarnings) == "1" {
		cfg.Enabled = false
	}
	if p := os.Getenv(envRedirect); p != "" {
		cfg.OutputPath = p
	}

	if v, _ := flags.GetBool("no-warnings"); v {
		cfg.Enabled = false
	}
	if p, _ := flags.GetString("redirect-warnings"); p != "" {
		cfg.OutputPath = p
	}
	for name, dst := range map[string]*bool{
		"trace-warnings":    &cfg.TraceWarnings,
		"trace-deprecation": &cfg.TraceDeprecation,
		"no-deprecation":    &cfg.NoDeprecation,
		"throw-deprecation": &cfg.ThrowDeprecation,
	} {
		if flags.Changed(name) {
			*dst, _ = flags.GetBool(name)
		}
	}
	return cfg, nil
}

func newSubsystem(cmd *cobra.Command) (*warnings.Subsystem, error) {
	cfg, err := resolvePolicy(cmd)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Nop()
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return warnings.New(cfg, warnings.WithLogger(logger))
}
