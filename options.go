package warnings

import "github.com/rs/zerolog"

// Option customizes a Subsystem at construction time.
type Option func(*Subsystem)

// WithLogger routes the subsystem's own diagnostics (degraded output paths,
// escalations) to logger. The default discards them.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Subsystem) { s.logger = logger }
}

// WithConsole sets the preferred error-stream writer. Without it, lines go
// straight to os.Stderr.
func WithConsole(console func(line string)) Option {
	return func(s *Subsystem) { s.console = console }
}

// WithNotifier adds a notifier that is called after the registered listeners.
func WithNotifier(n Notifier) Option {
	return func(s *Subsystem) { s.notifier = n }
}

// WithShutdownRegistrar hands the sink's close hook to an external process
// lifecycle instead of the subsystem's own Close.
func WithShutdownRegistrar(register func(hook func())) Option {
	return func(s *Subsystem) { s.register = register }
}

func withOpener(open openFunc) Option {
	return func(s *Subsystem) { s.open = open }
}
