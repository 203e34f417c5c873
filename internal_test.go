package ilfmt

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type opLevel int

func TestRingReuse(t *testing.T) {
	t.Parallel()
	r := newRing(4)
	for _, s := range []string{"a", "b", "c", "d"} {
		r.put(s)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, r.slots)

	// The fifth put wraps and overwrites the oldest slot.
	r.put("e")
	assert.Equal(t, []string{"e", "b", "c", "d"}, r.slots)
	assert.Equal(t, 1, r.idx)
}

func TestRingPutReturnsSlotContents(t *testing.T) {
	t.Parallel()
	r := newRing(2)
	assert.Equal(t, "x", r.put("x"))
	assert.Equal(t, "y", r.put("y"))
}

func TestFixParameterPassThrough(t *testing.T) {
	t.Parallel()
	r := newRing(2)
	n := 7
	for name, v := range map[string]any{
		"int":     7,
		"bool":    true,
		"float":   3.5,
		"string":  "s",
		"pointer": &n,
		"enum":    opLevel(3),
		"nil":     nil,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, v, fixParameter(r, v))
		})
	}
	// No slot may have been consumed by pass-through arguments.
	assert.Equal(t, 0, r.idx)
}

func TestFixParameterStringifies(t *testing.T) {
	t.Parallel()
	r := newRing(4)

	// Durations do not pass through even though their kind is numeric.
	got := fixParameter(r, 1500*time.Millisecond)
	assert.Equal(t, "1.50sec", got)
	assert.Equal(t, "1.50sec", r.slots[0])

	got = fixParameter(r, []int{1, 2})
	assert.Equal(t, "{1, 2}", got)
	assert.Equal(t, "{1, 2}", r.slots[1])
	assert.Equal(t, 2, r.idx)
}

func TestFixParameterFallback(t *testing.T) {
	t.Parallel()
	r := newRing(2)
	got, ok := fixParameter(r, struct{ x int }{x: 1}).(string)
	require.True(t, ok)
	assert.Regexp(t, `^\[.+@0x[0-9a-f]+\]$`, got)
	assert.Equal(t, got, r.slots[0])
}

func TestTypeNameStripsPackagePrefix(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ring", typeName(reflect.TypeOf(ring{})))
	assert.Equal(t, "map[opLevel]bool", typeName(reflect.TypeOf(map[opLevel]bool{})))
}

func TestStripTypePrefixesSinglePass(t *testing.T) {
	t.Parallel()
	// One pass can expose another prefix; PrettifyTypeName loops to fixpoint.
	assert.Equal(t, "<struct x>", stripTypePrefixes("<class struct x>"))
	assert.Equal(t, "<x>", PrettifyTypeName("<class struct x>"))
}

func TestPadField(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		width int
		want  string
	}{
		"pads":     {input: "mov", width: 8, want: "mov     "},
		"exact":    {input: "vpmaddwd", width: 8, want: "vpmaddwd"},
		"overlong": {input: "vpmaddubsw", width: 8, want: "vpmaddubsw"},
		"zero":     {input: "x", width: 0, want: "x"},
		"wide":     {input: "你", width: 4, want: "你  "},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, padField(tt.input, tt.width))
		})
	}
}

func TestDurationStringUnitSelection(t *testing.T) {
	t.Parallel()
	// Coarsest strictly-greater unit wins; the terminal entry catches the rest.
	assert.Equal(t, "1.00ns", durationString(time.Nanosecond))
	assert.Equal(t, "1000.00ms", durationString(time.Second))
	assert.Equal(t, "60.00min", durationString(time.Hour))
	assert.Equal(t, "1.00hrs", durationString(time.Hour+time.Nanosecond))
}
