package types

import (
	"strings"
)

// Data is any mal value. The set of variants is closed: only the types in
// this file implement it.
type Data interface {
	data()
}

type DNil struct{}

type DBool struct {
	Val bool
}

type DNumber struct {
	Num int64
}

// DString carries both the runtime string and the literal it was read from.
type DString struct {
	Str     string
	Display string
}

type DKeyword struct {
	Name string
}

type DSymbol struct {
	Name string
}

type DList struct {
	Members []Data
}

type DVector struct {
	Members []Data
}

// DNative is a function implemented in Go.
type DNative func(args []Data) (Data, error)

func (*DNil) data()     {}
func (*DBool) data()    {}
func (*DNumber) data()  {}
func (*DString) data()  {}
func (*DKeyword) data() {}
func (*DSymbol) data()  {}
func (*DList) data()    {}
func (*DVector) data()  {}
func (*DHashMap) data() {}
func (DNative) data()   {}

var (
	Nil   = &DNil{}
	True  = &DBool{true}
	False = &DBool{false}
)

func Bool(b bool) *DBool {
	if b {
		return True
	}
	return False
}

// NewString builds a string value whose display form is the escaped literal.
func NewString(s string) *DString {
	esc := strings.Replace(s, "\\", "\\\\", -1)
	esc = strings.Replace(esc, "\n", "\\n", -1)
	esc = strings.Replace(esc, "\"", "\\\"", -1)
	return &DString{Str: s, Display: "\"" + esc + "\""}
}

// Seq returns the members of a List or Vector.
func Seq(d Data) ([]Data, bool) {
	switch s := d.(type) {
	case *DList:
		return s.Members, true
	case *DVector:
		return s.Members, true
	}
	return nil, false
}

// Equal reports structural equality. Lists and vectors with equal members are
// equal to each other; functions are never equal.
func Equal(a, b Data) bool {
	if as, ok := Seq(a); ok {
		bs, ok := Seq(b)
		if !ok || len(as) != len(bs) {
			return false
		}
		for i := range as {
			if !Equal(as[i], bs[i]) {
				return false
			}
		}
		return true
	}

	switch x := a.(type) {
	case *DNil:
		_, ok := b.(*DNil)
		return ok
	case *DBool:
		y, ok := b.(*DBool)
		return ok && x.Val == y.Val
	case *DNumber:
		y, ok := b.(*DNumber)
		return ok && x.Num == y.Num
	case *DString:
		y, ok := b.(*DString)
		return ok && x.Str == y.Str
	case *DKeyword:
		y, ok := b.(*DKeyword)
		return ok && x.Name == y.Name
	case *DSymbol:
		y, ok := b.(*DSymbol)
		return ok && x.Name == y.Name
	case *DHashMap:
		y, ok := b.(*DHashMap)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for _, e := range x.entries {
			v, found := y.Get(e.Key)
			if !found || !Equal(e.Value, v) {
				return false
			}
		}
		return true
	}
	return false
}
