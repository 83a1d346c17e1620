// Package warnings is a process-wide chokepoint for advisory conditions:
// deprecations, resource-limit notices and misuse warnings.
//
// Key features
//   - One entry point, Subsystem.Emit, accepting a message with optional
//     type/code/origin, an Options value, or a ready-made error
//   - Deprecations are reported once per code for the life of the Subsystem,
//     and can be suppressed or escalated into returned errors
//   - Synchronous, in-order listener notification before output
//   - Optional warning file, opened lazily in append mode and written off the
//     caller's goroutine, with rotation via lumberjack
//   - Output failures never reach the caller; lines fall back to the console
//     or os.Stderr
//
// Typical usage
//
//	w, err := warnings.New(warnings.Config{Enabled: true, OutputPath: "warnings.log"})
//	if err != nil { panic(err) }
//	defer w.Close()
//
//	w.On(func(x *warnings.Warning) { metrics.Inc(x.Name()) })
//	_ = w.Emit("disk quota low", "ResourceWarning", "RES001")
//	if err := w.Deprecation("Frob() is deprecated, use Twiddle()", "DEP0001"); err != nil {
//		return err // escalated by ThrowDeprecation
//	}
package warnings
