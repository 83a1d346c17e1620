package warnings

import (
	"reflect"
	"runtime"
	"strconv"
	"strings"
)

const maxTraceFrames = 10

// emitMarker is the origin used when the caller names none, so traces start
// at whoever called Emit.
var emitMarker string

func init() {
	emitMarker = funcName((*Subsystem).Emit)
}

// funcName resolves a func value to its runtime symbol. Method values carry a
// "-fm" wrapper suffix which is removed so they match their stack frame.
func funcName(fn any) string {
	if fn == nil {
		return emptyString
	}
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return emptyString
	}
	f := runtime.FuncForPC(rv.Pointer())
	if f == nil {
		return emptyString
	}
	return strings.TrimSuffix(f.Name(), "-fm")
}

// captureTrace records the current stack and drops every frame at or above
// the origin marker. When the marker is not on the stack the whole captured
// stack is kept.
func captureTrace(head string, origin any) string {
	marker := funcName(origin)
	if marker == emptyString {
		marker = emitMarker
	}

	pcs := make([]uintptr, 64)
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return emptyString
	}

	var kept, all []runtime.Frame
	found := false
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		all = append(all, f)
		switch {
		case !found && f.Function == marker:
			found = true
		case found:
			kept = append(kept, f)
		}
		if !more {
			break
		}
	}
	if !found {
		kept = all
	}
	if len(kept) > maxTraceFrames {
		kept = kept[:maxTraceFrames]
	}

	var b strings.Builder
	b.WriteString(head)
	for _, f := range kept {
		b.WriteString("\n    at ")
		b.WriteString(f.Function)
		b.WriteString(" (")
		b.WriteString(f.File)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(f.Line))
		b.WriteByte(')')
	}
	return b.String()
}
