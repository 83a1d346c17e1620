package warnings

import (
	"io"
	"sync"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

type sinkState int

const (
	sinkUnopened sinkState = iota
	sinkOpen
	sinkFailed
	sinkClosed
)

// sink owns the single warning file handle. The handle is acquired on the
// first write; a failed acquisition is never retried.
type sink struct {
	path     string
	open     openFunc
	fallback func(string)
	register func(func())
	logger   zerolog.Logger

	mu     sync.Mutex
	state  sinkState
	handle io.WriteCloser
	queue  chan string
	done   chan struct{}

	closeOnce sync.Once
	closed    atomic.Bool
}

func newSink(path string, queueSize int, open openFunc, fallback func(string), register func(func()), logger zerolog.Logger) *sink {
	return &sink{
		path:     path,
		open:     open,
		fallback: fallback,
		register: register,
		logger:   logger,
		queue:    make(chan string, queueSize),
		done:     make(chan struct{}),
	}
}

// Write hands line to the file writer without waiting for it to land.
// Every failure degrades to the fallback writer.
func (s *sink) Write(line string) {
	if s.closed.Load() {
		s.fallback(line)
		return
	}

	opened := false
	s.mu.Lock()
	switch s.state {
	case sinkUnopened:
		h, err := s.acquire()
		if err != nil {
			s.state = sinkFailed
			s.mu.Unlock()
			s.logger.Warn().Err(err).Str("path", s.path).Msg("warning file unavailable, using fallback writer")
			s.fallback(line)
			return
		}
		s.handle = h
		s.state = sinkOpen
		opened = true
		go s.run()
	case sinkFailed, sinkClosed:
		s.mu.Unlock()
		s.fallback(line)
		return
	}

	var queued bool
	select {
	case s.queue <- line:
		queued = true
	default:
	}
	s.mu.Unlock()

	if opened {
		s.register(s.Close)
	}
	if !queued {
		s.logger.Debug().Int("queue_size", cap(s.queue)).Msg("warning file queue full, using fallback writer")
		s.fallback(line)
	}
}

func (s *sink) acquire() (h io.WriteCloser, err error) {
	defer func() {
		if r := recover(); r != nil {
			h, err = nil, &filePanicError{op: "open", value: r}
		}
	}()
	return s.open(s.path)
}

func (s *sink) run() {
	defer close(s.done)
	for line := range s.queue {
		if err := s.appendLine(line); err != nil {
			s.logger.Debug().Err(err).Str("path", s.path).Msg("warning file append failed")
			s.fallback(line)
		}
	}
}

func (s *sink) appendLine(line string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &filePanicError{op: "append", value: r}
		}
	}()
	_, err = io.WriteString(s.handle, line+"\n")
	return err
}

// Close drains pending appends and releases the handle. It runs at most once
// and never reports an error.
func (s *sink) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		wasOpen := s.state == sinkOpen
		s.state = sinkClosed
		if wasOpen {
			close(s.queue)
		}
		s.mu.Unlock()
		s.closed.Store(true)

		if !wasOpen {
			return
		}
		<-s.done
		if s.handle == nil {
			return
		}
		if err := s.handle.Close(); err != nil {
			s.logger.Debug().Err(err).Str("path", s.path).Msg("warning file close failed")
		}
	})
}

type filePanicError struct {
	op    string
	value any
}

func (e *filePanicError) Error() string {
	return "warning file " + e.op + " panicked: " + safeString(e.value)
}
