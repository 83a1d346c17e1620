package warnings

import (
	"strconv"
	"strings"
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Subsystem is the process-wide warning chokepoint. Construct one at startup
// and share it; its mode is fixed by the Config passed to New.
type Subsystem struct {
	cfg     Config
	enabled atomic.Bool
	prefix  string

	logger    zerolog.Logger
	listeners Listeners
	notifier  Notifier
	console   func(string)
	fallback  func(string)
	write     func(string)
	open      openFunc
	sink      *sink

	seenMu sync.Mutex
	seen   map[string]struct{}

	register  func(func())
	hooksMu   sync.Mutex
	hooks     []func()
	closed    atomic.Bool
	closeOnce sync.Once
}

// New validates cfg and builds a Subsystem. A disabled subsystem is still
// returned; its Emit does nothing.
func New(cfg Config, opts ...Option) (*Subsystem, error) {
	const op errors.Op = "warnings.New"
	if err := validateConfig(&cfg); err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	s := &Subsystem{
		cfg:    cfg,
		logger: zerolog.Nop(),
		open:   cfg.appendOpener(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.register == nil {
		s.register = s.addHook
	}
	s.fallback = fallbackWriter(s.console)
	s.prefix = "(" + cfg.ReleaseLabel + ":" + strconv.Itoa(cfg.PID) + ") "

	if cfg.OutputPath != emptyString {
		s.sink = newSink(cfg.OutputPath, cfg.QueueSize, s.open, s.fallback, s.register, s.logger)
		s.write = s.sink.Write
	} else {
		s.write = s.fallback
	}

	s.enabled.Store(cfg.Enabled)
	return s, nil
}

func (s *Subsystem) Enabled() bool { return s != nil && s.enabled.Load() }

// Config returns the policy the subsystem was built with, defaults applied.
func (s *Subsystem) Config() Config { return s.cfg }

// Listeners exposes the built-in listener registry.
func (s *Subsystem) Listeners() *Listeners { return &s.listeners }

// On registers fn for every delivered warning and returns its remover.
func (s *Subsystem) On(fn Listener) (remove func()) { return s.listeners.Add(fn) }

// Emit reports a warning. Accepted shapes:
//
//	Emit(err)
//	Emit(msg[, type[, code]][, origin])
//	Emit(msg, Options{...}) or Emit(msg, map[string]any{...})
//
// The only errors returned are *ArgTypeError for malformed calls and the
// *Warning itself when deprecations are escalated. Output failures are
// never returned.
func (s *Subsystem) Emit(warning any, args ...any) error {
	if !s.Enabled() {
		return nil
	}

	w, err := normalize(warning, args, s.cfg.TraceWarnings || s.cfg.TraceDeprecation)
	if err != nil {
		return err
	}

	trace := s.cfg.TraceWarnings
	if w.IsDeprecation() {
		if s.cfg.NoDeprecation {
			return nil
		}
		if s.cfg.ThrowDeprecation {
			s.logEscalation(w)
			return w
		}
		if !s.markSeen(w.code) {
			return nil
		}
		trace = trace || s.cfg.TraceDeprecation
	}

	s.listeners.Notify(w)
	if s.notifier != nil {
		s.notifier.Notify(w)
	}

	s.deliver(w, trace)
	return nil
}

// Deprecation emits a DeprecationWarning whose trace starts at the caller.
func (s *Subsystem) Deprecation(message, code string) error {
	return s.Emit(message, Options{
		Type:   DeprecationName,
		Code:   code,
		Origin: (*Subsystem).Deprecation,
	})
}

// markSeen reports whether code is new. Uncoded deprecations are always new.
func (s *Subsystem) markSeen(code string) bool {
	if code == emptyString {
		return true
	}
	s.seenMu.Lock()
	defer s.seenMu.Unlock()
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[code]; ok {
		return false
	}
	s.seen[code] = struct{}{}
	return true
}

func (s *Subsystem) logEscalation(w *Warning) {
	evt := s.logger.Debug().Str("name", w.name).Str("code", w.code)
	if w.cause != nil {
		chain, _, _, _ := buildErrorChain(w.cause)
		evt = evt.Str("error_history", joinChain(chain))
	}
	evt.Msg("deprecation escalated")
}

// deliver formats and routes the line. Nothing raised here reaches the
// Emit caller.
func (s *Subsystem) deliver(w *Warning, trace bool) {
	var line string
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn().Interface("panic", r).Msg("warning delivery failed")
			if line != emptyString {
				stderrWriter(line)
			}
		}
	}()
	line = s.format(w, trace)
	s.write(line)
}

func (s *Subsystem) format(w *Warning, trace bool) string {
	var b strings.Builder
	b.WriteString(s.prefix)
	if w.code != emptyString {
		b.WriteByte('[')
		b.WriteString(w.code)
		b.WriteString("] ")
	}
	if trace && w.trace != emptyString {
		b.WriteString(w.trace)
	} else {
		b.WriteString(w.String())
	}
	if w.detail != emptyString {
		b.WriteByte('\n')
		b.WriteString(w.detail)
	}
	return b.String()
}

// addHook runs hook immediately when the subsystem is already closed, so a
// file opened after Close is still released.
func (s *Subsystem) addHook(hook func()) {
	s.hooksMu.Lock()
	if s.closed.Load() {
		s.hooksMu.Unlock()
		runHook(hook)
		return
	}
	s.hooks = append(s.hooks, hook)
	s.hooksMu.Unlock()
}

// Close runs the shutdown hooks, including the one closing the warning file,
// in reverse registration order. It is safe to call more than once.
func (s *Subsystem) Close() error {
	const op errors.Op = "warnings.Subsystem.Close"
	if s == nil {
		return errors.New(op).Msg(errMsgNilSubsystem)
	}
	s.closeOnce.Do(func() {
		s.hooksMu.Lock()
		s.closed.Store(true)
		hooks := s.hooks
		s.hooks = nil
		s.hooksMu.Unlock()
		for i := len(hooks) - 1; i >= 0; i-- {
			runHook(hooks[i])
		}
	})
	return nil
}

func runHook(hook func()) {
	defer func() { _ = recover() }()
	hook()
}
