package warnings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func origin() {}

func TestNormalize_Shapes(t *testing.T) {
	tests := []struct {
		name       string
		args       []any
		wantName   string
		wantCode   string
		wantDetail string
	}{
		{name: "message only", wantName: DefaultName},
		{name: "type and code", args: []any{"ResourceWarning", "RES001"}, wantName: "ResourceWarning", wantCode: "RES001"},
		{name: "empty type defaults", args: []any{""}, wantName: DefaultName},
		{name: "origin in second slot drops code", args: []any{origin, "C1"}, wantName: DefaultName},
		{name: "origin in third slot clears code", args: []any{"T", origin}, wantName: "T"},
		{name: "type code origin", args: []any{"T", "C", origin}, wantName: "T", wantCode: "C"},
		{
			name:       "options struct ignores the rest",
			args:       []any{Options{Type: "T", Code: "C", Detail: "D"}, "ignored", "also"},
			wantName:   "T",
			wantCode:   "C",
			wantDetail: "D",
		},
		{name: "options pointer", args: []any{&Options{Code: "C"}}, wantName: DefaultName, wantCode: "C"},
		{
			name:       "options map",
			args:       []any{map[string]any{"type": "T", "code": "C", "detail": "D"}},
			wantName:   "T",
			wantCode:   "C",
			wantDetail: "D",
		},
		{name: "map detail must be a string", args: []any{map[string]any{"detail": 7}}, wantName: DefaultName},
		{name: "map code func becomes origin", args: []any{map[string]any{"code": origin}}, wantName: DefaultName},
		{name: "map falsy type defaults", args: []any{map[string]any{"type": ""}}, wantName: DefaultName},
		{name: "nil options pointer is absent", args: []any{(*Options)(nil), "C"}, wantName: DefaultName, wantCode: "C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := normalize("msg", tt.args, false)
			require.NoError(t, err)
			assert.Equal(t, "msg", w.Message())
			assert.Equal(t, tt.wantName, w.Name())
			assert.Equal(t, tt.wantCode, w.Code())
			assert.Equal(t, tt.wantDetail, w.Detail())
			assert.Empty(t, w.Trace())
		})
	}
}

func TestNormalize_InvalidArguments(t *testing.T) {
	tests := []struct {
		name      string
		warning   any
		args      []any
		wantParam string
	}{
		{name: "number warning", warning: 123, wantParam: "warning"},
		{name: "nil warning", warning: nil, wantParam: "warning"},
		{name: "nil *Warning", warning: (*Warning)(nil), wantParam: "warning"},
		{name: "numeric type in map", warning: "x", args: []any{map[string]any{"type": 42}}, wantParam: "type"},
		{name: "numeric positional type", warning: "x", args: []any{42}, wantParam: "type"},
		{name: "numeric code", warning: "x", args: []any{"T", 5}, wantParam: "code"},
		{name: "numeric code in map", warning: "x", args: []any{map[string]any{"code": 5}}, wantParam: "code"},
		{name: "type checked before warning", warning: 1, args: []any{true}, wantParam: "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := normalize(tt.warning, tt.args, false)
			require.Error(t, err)
			assert.Nil(t, w)
			assert.True(t, errors.Is(err, ErrInvalidArgType))

			var argErr *ArgTypeError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.wantParam, argErr.Param)
			assert.Equal(t, ArgTypeCode, argErr.Code())
		})
	}
}

func TestNormalize_WarningExpectedKinds(t *testing.T) {
	_, err := normalize(123, nil, false)
	var argErr *ArgTypeError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, []string{"Error", "string"}, argErr.Expected)
	assert.Equal(t, `The "warning" argument must be one of type Error or string. Received type int (123)`, err.Error())
}

func TestNormalize_PrebuiltWarningIsReused(t *testing.T) {
	orig := &Warning{name: "Custom", message: "m", code: "C"}
	w, err := normalize(orig, []any{"Ignored", "X"}, true)
	require.NoError(t, err)
	assert.Same(t, orig, w)
}

func TestNormalize_UnnamedWarningGetsDefaultName(t *testing.T) {
	orig := &Warning{message: "m", code: "C", detail: "d"}
	w, err := normalize(orig, nil, false)
	require.NoError(t, err)
	assert.NotSame(t, orig, w)
	assert.Equal(t, DefaultName, w.Name())
	assert.Equal(t, "m", w.Message())
	assert.Equal(t, "C", w.Code())
	assert.Equal(t, "d", w.Detail())
	assert.Empty(t, orig.Name())

	w, err = normalize(&Warning{}, nil, false)
	require.NoError(t, err)
	assert.Equal(t, DefaultName, w.Name())
}

func TestNormalize_CaptureRecordsTrace(t *testing.T) {
	w, err := normalize("traced", []any{"T"}, true)
	require.NoError(t, err)
	assert.Contains(t, w.Trace(), "T: traced\n    at ")
	assert.Contains(t, w.Trace(), "TestNormalize_CaptureRecordsTrace")
}

func TestClassify(t *testing.T) {
	var nilFn func()
	assert.Equal(t, shapeAbsent, classify(nil))
	assert.Equal(t, shapeAbsent, classify(nilFn))
	assert.Equal(t, shapeString, classify(""))
	assert.Equal(t, shapeOptions, classify(Options{}))
	assert.Equal(t, shapeOptions, classify(map[string]any{}))
	assert.Equal(t, shapeOrigin, classify(origin))
	assert.Equal(t, shapeOrigin, classify(func(int) error { return nil }))
	assert.Equal(t, shapeInvalid, classify([]string{"a"}))
	assert.Equal(t, shapeInvalid, classify(3.5))
}
