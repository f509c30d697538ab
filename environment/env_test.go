package environment

import (
	"errors"
	"testing"

	"github.com/bshepherdson/mal/go/types"
)

func sym(name string) *types.DSymbol {
	return &types.DSymbol{Name: name}
}

func num(n int64) *types.DNumber {
	return &types.DNumber{Num: n}
}

func TestGetSet(t *testing.T) {
	env := NewEnv(nil)
	env.Set(sym("x"), num(1))

	v, err := env.Get(sym("x"))
	if err != nil {
		t.Fatal(err)
	}
	if !types.Equal(v, num(1)) {
		t.Fatalf("expected 1, got %v", v)
	}

	env.Set(sym("x"), num(2))
	v, _ = env.Get(sym("x"))
	if !types.Equal(v, num(2)) {
		t.Fatalf("expected overwrite to 2, got %v", v)
	}
}

func TestOuterLookup(t *testing.T) {
	outer := NewEnv(nil)
	outer.Set(sym("a"), num(1))
	outer.Set(sym("b"), num(2))

	inner := NewEnv(outer)
	inner.Set(sym("b"), num(20))

	if inner.Outer() != outer {
		t.Fatal("expected inner to point at outer")
	}

	for _, tc := range []struct {
		env  *Env
		name string
		want int64
	}{
		{inner, "a", 1},
		{inner, "b", 20},
		{outer, "b", 2},
	} {
		v, err := tc.env.Get(sym(tc.name))
		if err != nil {
			t.Fatal(err)
		}
		if !types.Equal(v, num(tc.want)) {
			t.Fatalf("%s: expected %d, got %v", tc.name, tc.want, v)
		}
	}
}

func TestSetDoesNotTouchOuter(t *testing.T) {
	outer := NewEnv(nil)
	inner := NewEnv(outer)
	inner.Set(sym("only-inner"), num(1))

	if _, ok := outer.Find(sym("only-inner")); ok {
		t.Fatal("set leaked into the outer frame")
	}
}

func TestNotFound(t *testing.T) {
	env := NewEnv(NewEnv(nil))
	_, err := env.Get(sym("missing"))
	if !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err.Error() != "'missing' not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
