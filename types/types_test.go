package types

import (
	"errors"
	"testing"
)

func TestHashMapLastWriteWins(t *testing.T) {
	m, err := NewHashMap([]Entry{
		{&DKeyword{"a"}, &DNumber{1}},
		{&DKeyword{"b"}, &DNumber{2}},
		{&DKeyword{"a"}, &DNumber{3}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if m.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", m.Len())
	}

	entries := m.Entries()
	if entries[0].Key.(*DKeyword).Name != "a" || entries[0].Value.(*DNumber).Num != 3 {
		t.Fatalf("expected :a 3 first, got %v", entries[0])
	}
	if entries[1].Key.(*DKeyword).Name != "b" {
		t.Fatalf("expected :b second")
	}
}

func TestHashMapKeysByKind(t *testing.T) {
	m, err := NewHashMap([]Entry{
		{&DString{Str: "a", Display: `"a"`}, &DNumber{1}},
		{&DKeyword{"a"}, &DNumber{2}},
		{&DSymbol{"a"}, &DNumber{3}},
		{&DNumber{1}, &DNumber{4}},
		{Nil, &DNumber{5}},
		{True, &DNumber{6}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if m.Len() != 6 {
		t.Fatalf("keys of different kinds collided: %d entries", m.Len())
	}

	for _, tc := range []struct {
		key  Data
		want int64
	}{
		{NewString("a"), 1},
		{&DKeyword{"a"}, 2},
		{&DSymbol{"a"}, 3},
		{&DNumber{1}, 4},
		{Nil, 5},
		{Bool(true), 6},
	} {
		v, ok := m.Get(tc.key)
		if !ok || v.(*DNumber).Num != tc.want {
			t.Fatalf("lookup %s: expected %d", TypeName(tc.key), tc.want)
		}
	}
	if _, ok := m.Get(False); ok {
		t.Fatal("false should be absent")
	}
	if _, ok := m.Get(&DList{}); ok {
		t.Fatal("a list key can never be present")
	}
}

func TestHashMapInvalidKey(t *testing.T) {
	_, err := NewHashMap([]Entry{{&DVector{}, Nil}})
	if !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("expected invalid key, got %v", err)
	}
}

func TestHashMapEntriesIsCopy(t *testing.T) {
	m, _ := NewHashMap([]Entry{{&DNumber{1}, &DNumber{1}}})
	e := m.Entries()
	e[0].Value = Nil
	if v, _ := m.Get(&DNumber{1}); v == Nil {
		t.Fatal("mutating Entries() changed the map")
	}
}

func TestEqual(t *testing.T) {
	for _, tc := range []struct {
		a, b Data
		want bool
	}{
		{&DNumber{1}, &DNumber{1}, true},
		{&DNumber{1}, &DNumber{2}, false},
		{&DSymbol{"x"}, &DSymbol{"x"}, true},
		{&DSymbol{"x"}, &DKeyword{"x"}, false},
		{NewString("s"), &DString{Str: "s", Display: `"s"`}, true},
		{&DList{[]Data{&DNumber{1}}}, &DVector{[]Data{&DNumber{1}}}, true},
		{&DList{}, &DList{[]Data{Nil}}, false},
		{Nil, False, false},
		{True, Bool(true), true},
	} {
		if got := Equal(tc.a, tc.b); got != tc.want {
			t.Fatalf("Equal(%s, %s): expected %v", TypeName(tc.a), TypeName(tc.b), tc.want)
		}
	}
}

func TestEqualMaps(t *testing.T) {
	a, _ := NewHashMap([]Entry{{&DKeyword{"a"}, &DNumber{1}}, {&DKeyword{"b"}, &DNumber{2}}})
	b, _ := NewHashMap([]Entry{{&DKeyword{"b"}, &DNumber{2}}, {&DKeyword{"a"}, &DNumber{1}}})
	c, _ := NewHashMap([]Entry{{&DKeyword{"a"}, &DNumber{1}}})
	if !Equal(a, b) {
		t.Fatal("maps with the same pairs should be equal regardless of order")
	}
	if Equal(a, c) {
		t.Fatal("maps of different size should differ")
	}
}

func TestErrorKinds(t *testing.T) {
	err := Unbalancedf("expected ')', got EOF")
	if !errors.Is(err, ErrUnbalanced) {
		t.Fatal("Unbalancedf should match ErrUnbalanced")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatal("kinds should not cross-match")
	}
	if err.Error() != "unbalanced: expected ')', got EOF" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	var merr *Error
	if !errors.As(NotFoundf("x"), &merr) || merr.Kind != NotFound {
		t.Fatal("NotFoundf should produce a NotFound *Error")
	}
}
