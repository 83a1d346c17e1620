package warnings

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// openFunc acquires the warning file handle.
type openFunc func(path string) (io.WriteCloser, error)

// appendOpener opens path for appending, creating it if needed. When rotation
// is configured the probe handle is swapped for a rolling lumberjack logger;
// the probe guarantees lumberjack never sees a path it would have to replace.
func (c Config) appendOpener() openFunc {
	return func(path string) (io.WriteCloser, error) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		if c.FileMaxSizeMB <= 0 {
			return f, nil
		}
		_ = f.Close()
		return c.initializeRollingFileLogger(path), nil
	}
}

func (c Config) initializeRollingFileLogger(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxBackups: c.FileMaxBackups,
		MaxAge:     c.FileMaxAgeDays,
		MaxSize:    c.FileMaxSizeMB,
		Compress:   c.FileCompress,
	}
}

// stderrWriter is the last-resort output: one raw line on the process
// error stream.
func stderrWriter(line string) {
	_, _ = fmt.Fprintln(os.Stderr, line)
}

// fallbackWriter prefers the console func when one was supplied.
func fallbackWriter(console func(string)) func(string) {
	if console == nil {
		return stderrWriter
	}
	return func(line string) {
		defer func() {
			if r := recover(); r != nil {
				stderrWriter(line)
			}
		}()
		console(line)
	}
}
