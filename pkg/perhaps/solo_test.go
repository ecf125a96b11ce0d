package perhaps

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_ChangesType(t *testing.T) {
	t.Parallel()
	e := errors.New("E")

	out := Map(Of(42), func(v int) (string, error) { return strconv.Itoa(v), nil })
	if !out.IsPresent() || out.MustUnwrap() != "42" {
		t.Fatalf("expected Present(\"42\"), got %s", out)
	}

	called := false
	fn := func(v int) (string, error) {
		called = true
		return "x", nil
	}
	if out := Map(Fail[int](e), fn); out.Err() != e {
		t.Fatalf("expected failure to pass through, got %s", out)
	}
	if out := Map(Empty[int](), fn); !out.IsEmpty() {
		t.Fatalf("expected Empty to pass through, got %s", out)
	}
	if called {
		t.Fatalf("fn must not be called for Empty or Failure")
	}
}

func TestMap_ParseFailure(t *testing.T) {
	t.Parallel()
	out := Map(Of("nope"), strconv.Atoi)
	var numErr *strconv.NumError
	if !errors.As(out.Err(), &numErr) {
		t.Fatalf("expected *strconv.NumError, got %v", out.Err())
	}
}

func TestThen(t *testing.T) {
	t.Parallel()
	e := errors.New("E")

	half := func(v int) Perhaps[int] {
		if v%2 != 0 {
			return Fail[int](e)
		}
		return Of(v / 2)
	}

	assert.Equal(t, Of(4), Then(Of(8), half))
	assert.Equal(t, Fail[int](e), Then(Of(7), half))
	assert.True(t, Then(Empty[int](), half).IsEmpty())
	assert.True(t, Then(Of(1), func(int) Perhaps[string] { panic("boom") }).IsFailure())
}

func TestEach(t *testing.T) {
	t.Parallel()
	e := errors.New("E")

	sum := 0
	in := Of([]int{1, 2, 3})
	out := Each(in, func(v int) error {
		sum += v
		return nil
	})
	assert.Equal(t, 6, sum)
	assert.Equal(t, in, out)

	visited := 0
	failed := Each(in, func(v int) error {
		visited++
		if v == 2 {
			return e
		}
		return nil
	})
	assert.Same(t, e, failed.Err())
	assert.Equal(t, 2, visited)
}

func TestMapEach_Filtering(t *testing.T) {
	t.Parallel()

	out := MapEach(Of([]int{1, 2, 3}), func(x int) (*int, error) {
		if x > 1 {
			v := x * 10
			return &v, nil
		}
		return nil, nil
	})
	require.True(t, out.IsPresent())

	got := make([]int, 0, 2)
	for _, p := range out.MustUnwrap() {
		got = append(got, *p)
	}
	assert.Equal(t, []int{20, 30}, got)
}

func TestMapEach_ShortCircuit(t *testing.T) {
	t.Parallel()
	e := errors.New("E")

	calls := 0
	out := MapEach(Of([]string{"1", "x", "3"}), func(s string) (int, error) {
		calls++
		if s == "x" {
			return 0, e
		}
		return strconv.Atoi(s)
	})
	assert.Same(t, e, out.Err())
	assert.Equal(t, 2, calls)
}

func TestMapEach_NothingCollected(t *testing.T) {
	t.Parallel()
	out := MapEach(Of([]int{1, 2}), func(int) (string, error) { return "", nil })
	assert.True(t, out.IsEmpty())
	assert.True(t, MapEach(Empty[[]int](), func(v int) (int, error) { return v, nil }).IsEmpty())
}

func TestMapEachThen(t *testing.T) {
	t.Parallel()
	e := errors.New("E")

	out := MapEachThen(Of([]int{1, 2, 3, 4}), func(v int) Perhaps[int] {
		if v%2 == 0 {
			return Empty[int]()
		}
		return Of(v)
	})
	assert.Equal(t, Of([]int{1, 3}), out)

	failed := MapEachThen(Of([]int{1, 2}), func(v int) Perhaps[int] { return Fail[int](e) })
	assert.Same(t, e, failed.Err())

	assert.Same(t, e, MapEachThen(Fail[[]int](e), func(v int) Perhaps[int] { return Of(v) }).Err())
}

func TestMatch(t *testing.T) {
	t.Parallel()

	describe := func(p Perhaps[int]) string {
		return Match(p,
			func(v int) string { return "value:" + strconv.Itoa(v) },
			func() string { return "empty" },
			func(err error) string { return "error:" + err.Error() },
		)
	}

	assert.Equal(t, "value:3", describe(Of(3)))
	assert.Equal(t, "empty", describe(Empty[int]()))
	assert.Equal(t, "error:boom", describe(Fail[int](errors.New("boom"))))
	assert.Equal(t, 0, Match[int, int](Of(3), nil, nil, nil))
}

func TestMap_ReturnedPerhapsKeepsVariant(t *testing.T) {
	t.Parallel()
	out := Map(Of(2), func(v int) (any, error) { return Empty[string](), nil })
	assert.True(t, out.IsEmpty())
}
