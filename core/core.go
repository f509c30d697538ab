// Package core holds the native functions bound in the top-level environment.
package core

import (
	"strings"

	"github.com/bshepherdson/mal/go/environment"
	"github.com/bshepherdson/mal/go/printer"
	. "github.com/bshepherdson/mal/go/types"
)

var NS = map[string]DNative{
	"+": plus,
	"-": minus,
	"*": times,
	"/": div,

	// Output
	"pr-str": prStr,
	"str":    str,

	// Lists
	"list":   list,
	"list?":  listQ,
	"empty?": emptyQ,
	"count":  count,

	// Comparisons
	"=":  equal,
	"<":  compare("<", func(x, y int64) bool { return x < y }),
	"<=": compare("<=", func(x, y int64) bool { return x <= y }),
	">":  compare(">", func(x, y int64) bool { return x > y }),
	">=": compare(">=", func(x, y int64) bool { return x >= y }),
}

// Install binds every function in NS into env.
func Install(env *environment.Env) {
	for name, fn := range NS {
		env.Set(&DSymbol{name}, fn)
	}
}

func numbers(name string, args []Data) ([]int64, error) {
	nums := make([]int64, len(args))
	for i, a := range args {
		n, ok := a.(*DNumber)
		if !ok {
			return nil, WrongTypef("%s expects integers; got %s", name, TypeName(a))
		}
		nums[i] = n.Num
	}
	return nums, nil
}

// fold applies op left to right from init.
func fold(name string, args []Data, init int64, op func(acc, n int64) int64) (Data, error) {
	nums, err := numbers(name, args)
	if err != nil {
		return nil, err
	}
	acc := init
	for _, n := range nums {
		acc = op(acc, n)
	}
	return &DNumber{acc}, nil
}

// foldFirst seeds the fold with the first argument. With no arguments the
// result is 0.
func foldFirst(name string, args []Data, op func(acc, n int64) int64) (Data, error) {
	if len(args) == 0 {
		return &DNumber{0}, nil
	}
	first, ok := args[0].(*DNumber)
	if !ok {
		return nil, WrongTypef("%s expects integers; got %s", name, TypeName(args[0]))
	}
	return fold(name, args[1:], first.Num, op)
}

func plus(args []Data) (Data, error) {
	return fold("+", args, 0, func(acc, n int64) int64 { return acc + n })
}

func minus(args []Data) (Data, error) {
	return foldFirst("-", args, func(acc, n int64) int64 { return acc - n })
}

func times(args []Data) (Data, error) {
	return fold("*", args, 1, func(acc, n int64) int64 { return acc * n })
}

// div panics on division by zero, like Go's own integer division.
func div(args []Data) (Data, error) {
	return foldFirst("/", args, func(acc, n int64) int64 { return acc / n })
}

// Output
func printList(args []Data, readable bool, sep string) string {
	strs := []string{}
	for _, expr := range args {
		strs = append(strs, printer.PrintStr(expr, readable))
	}

	return strings.Join(strs, sep)
}

func prStr(args []Data) (Data, error) {
	return NewString(printList(args, true, " ")), nil
}

func str(args []Data) (Data, error) {
	return NewString(printList(args, false, "")), nil
}

// Lists
func list(args []Data) (Data, error) {
	members := make([]Data, len(args))
	copy(members, args)
	return &DList{members}, nil
}

func listQ(args []Data) (Data, error) {
	if len(args) != 1 {
		return nil, WrongTypef("list? expects 1 argument")
	}
	_, ok := args[0].(*DList)
	return Bool(ok), nil
}

func size(name string, args []Data) (int, error) {
	if len(args) != 1 {
		return 0, WrongTypef("%s expects 1 argument", name)
	}
	switch x := args[0].(type) {
	case *DList:
		return len(x.Members), nil
	case *DVector:
		return len(x.Members), nil
	case *DHashMap:
		return x.Len(), nil
	case *DNil:
		return 0, nil
	}
	return 0, WrongTypef("%s expects a collection; got %s", name, TypeName(args[0]))
}

func emptyQ(args []Data) (Data, error) {
	n, err := size("empty?", args)
	if err != nil {
		return nil, err
	}
	return Bool(n == 0), nil
}

func count(args []Data) (Data, error) {
	n, err := size("count", args)
	if err != nil {
		return nil, err
	}
	return &DNumber{int64(n)}, nil
}

// Comparisons
func equal(args []Data) (Data, error) {
	if len(args) != 2 {
		return nil, WrongTypef("= expects exactly 2 arguments")
	}
	return Bool(Equal(args[0], args[1])), nil
}

func compare(name string, cmp func(x, y int64) bool) DNative {
	return func(args []Data) (Data, error) {
		if len(args) != 2 {
			return nil, WrongTypef("%s expects exactly 2 arguments", name)
		}
		nums, err := numbers(name, args)
		if err != nil {
			return nil, err
		}
		return Bool(cmp(nums[0], nums[1])), nil
	}
}
