package warnings

import "strings"

// Warning is the canonical record produced for every emitted condition.
// It satisfies error so that an escalated deprecation can be returned as-is.
type Warning struct {
	name    string
	message string
	code    string
	detail  string
	trace   string
	cause   error
}

// Name is the warning's category, such as "Warning" or "DeprecationWarning".
func (w *Warning) Name() string { return w.name }

// Message is the human-readable text.
func (w *Warning) Message() string { return w.message }

// Code is the stable identifier, empty when the warning carries none.
func (w *Warning) Code() string { return w.code }

// Detail is optional extra text printed on the line after the warning.
func (w *Warning) Detail() string { return w.detail }

// Trace is the captured call-site trace. It is empty unless trace capture
// was active when the warning was built.
func (w *Warning) Trace() string { return w.trace }

// Unwrap returns the adopted error, if the warning was built from one.
func (w *Warning) Unwrap() error { return w.cause }

// IsDeprecation reports whether the warning is named "DeprecationWarning".
func (w *Warning) IsDeprecation() bool { return w.name == DeprecationName }

// Error renders the warning the same way as String.
func (w *Warning) Error() string { return w.String() }

// String renders "name: message", dropping whichever side is empty.
func (w *Warning) String() string {
	switch {
	case w.name == emptyString:
		return w.message
	case w.message == emptyString:
		return w.name
	}
	var b strings.Builder
	b.Grow(len(w.name) + len(w.message) + 2)
	b.WriteString(w.name)
	b.WriteString(": ")
	b.WriteString(w.message)
	return b.String()
}

// adoptError wraps a caller-supplied error. Its own name and code are kept
// when it exposes them, and a multi-link cause chain stands in for a trace.
func adoptError(err error) *Warning {
	w := &Warning{
		name:    errorName,
		message: safeString(err),
		cause:   err,
	}
	if n, ok := err.(interface{ Name() string }); ok && n.Name() != emptyString {
		w.name = n.Name()
	}
	if c, ok := err.(interface{ Code() string }); ok {
		w.code = c.Code()
	}
	if d, ok := err.(interface{ Detail() string }); ok {
		w.detail = d.Detail()
	}

	w.trace = causeTrace(w.String(), err)
	return w
}

func causeTrace(head string, err error) (trace string) {
	defer func() {
		if r := recover(); r != nil {
			trace = emptyString
		}
	}()
	chain, ops, _, _ := buildErrorChain(err)
	if len(chain) > 1 {
		var b strings.Builder
		b.WriteString(head)
		for i, msg := range chain[1:] {
			b.WriteString("\n    caused by: ")
			if op := ops[i+1]; op != emptyString {
				b.WriteString(op)
				b.WriteString(": ")
			}
			b.WriteString(msg)
		}
		return b.String()
	}
	return emptyString
}
