package warnings

import "reflect"

// Options is the structured form of the second Emit argument. When it is
// passed, any further positional arguments are ignored.
type Options struct {
	Type   string
	Code   string
	Detail string
	// Origin is a func whose frame, and everything above it, is cut from
	// the captured trace.
	Origin any
}

// argShape tags what a positional Emit argument turned out to be.
type argShape int

const (
	shapeAbsent argShape = iota
	shapeString
	shapeOptions
	shapeOrigin
	shapeInvalid
)

func classify(v any) argShape {
	switch t := v.(type) {
	case nil:
		return shapeAbsent
	case string:
		return shapeString
	case Options, map[string]any:
		return shapeOptions
	case *Options:
		if t == nil {
			return shapeAbsent
		}
		return shapeOptions
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func {
		if rv.IsNil() {
			return shapeAbsent
		}
		return shapeOrigin
	}
	return shapeInvalid
}

// request holds the resolved, still unvalidated, option values. A nil field
// means the caller did not supply it.
type request struct {
	typ    any
	code   any
	detail string
	origin any
}

// fromOptions flattens either options form into dynamic values so both are
// validated by the same rules.
func fromOptions(v any) request {
	var r request
	switch o := v.(type) {
	case *Options:
		return fromOptions(*o)
	case Options:
		if o.Type != emptyString {
			r.typ = o.Type
		}
		if o.Code != emptyString {
			r.code = o.Code
		}
		r.detail = o.Detail
		r.origin = o.Origin
	case map[string]any:
		r.typ = o["type"]
		r.code = o["code"]
		if s, ok := o["detail"].(string); ok {
			r.detail = s
		}
		r.origin = o["origin"]
		if r.origin == nil {
			r.origin = o["ctor"]
		}
	}
	if s, ok := r.typ.(string); ok && s == emptyString {
		r.typ = nil
	}
	if r.typ == nil {
		r.typ = DefaultName
	}
	if classify(r.origin) != shapeOrigin {
		r.origin = nil
	}
	return r
}

// resolve applies the call-shape precedence to the positional arguments
// following the warning itself.
func resolve(args []any) (request, error) {
	arg := func(i int) any {
		if i < len(args) {
			return args[i]
		}
		return nil
	}

	var r request
	var code any
	switch classify(arg(0)) {
	case shapeOptions:
		r = fromOptions(arg(0))
		code = r.code
	case shapeOrigin:
		r.origin = arg(0)
		r.typ = DefaultName
	default:
		if classify(arg(0)) != shapeAbsent {
			r.typ = arg(0)
		}
		code = arg(1)
		if classify(arg(2)) == shapeOrigin {
			r.origin = arg(2)
		}
	}

	if r.typ != nil {
		if _, ok := r.typ.(string); !ok {
			return request{}, newArgTypeError("type", r.typ, "string")
		}
	}

	r.code = nil
	switch classify(code) {
	case shapeAbsent:
	case shapeOrigin:
		r.origin = code
	case shapeString:
		if code.(string) != emptyString {
			r.code = code
		}
	default:
		return request{}, newArgTypeError("code", code, "string")
	}
	return r, nil
}

// normalize turns any accepted call shape into a Warning. capture controls
// whether a call-site trace is recorded for string warnings.
func normalize(warning any, args []any, capture bool) (*Warning, error) {
	r, err := resolve(args)
	if err != nil {
		return nil, err
	}

	switch v := warning.(type) {
	case string:
		w := &Warning{name: DefaultName, message: v, detail: r.detail}
		if s, _ := r.typ.(string); s != emptyString {
			w.name = s
		}
		if c, ok := r.code.(string); ok {
			w.code = c
		}
		if capture {
			w.trace = captureTrace(w.String(), r.origin)
		}
		return w, nil
	case *Warning:
		if v != nil {
			if v.name == emptyString {
				named := *v
				named.name = DefaultName
				return &named, nil
			}
			return v, nil
		}
	case error:
		if v != nil {
			return adoptError(v), nil
		}
	}
	return nil, newArgTypeError("warning", warning, "Error", "string")
}
