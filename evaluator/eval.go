// Package evaluator reduces forms to values. It knows the special forms def!
// and let*; every other non-empty list is a function call.
package evaluator

import (
	"github.com/bshepherdson/mal/go/environment"
	"github.com/bshepherdson/mal/go/printer"
	. "github.com/bshepherdson/mal/go/types"
)

func Eval(ast Data, env *environment.Env) (Data, error) {
	form, ok := ast.(*DList)
	if !ok {
		return EvalAST(ast, env)
	}

	list := form.Members
	if len(list) == 0 {
		return ast, nil
	}

	if sym, ok := list[0].(*DSymbol); ok {
		switch sym.Name {
		case "def!":
			return evalDef(list, env)
		case "let*":
			return evalLet(list, env)
		}
	}

	evald, err := EvalAST(ast, env)
	if err != nil {
		return nil, err
	}

	elist := evald.(*DList).Members
	fun, ok := elist[0].(DNative)
	if !ok {
		return nil, NotAFunctionf("cannot call non-function %s", printer.PrintStr(elist[0], true))
	}
	return fun(elist[1:])
}

func evalDef(list []Data, env *environment.Env) (Data, error) {
	if len(list) != 3 {
		return nil, Malformedf("def! expects 2 arguments; found %d", len(list)-1)
	}
	name, ok := list[1].(*DSymbol)
	if !ok {
		return nil, Malformedf("First parameter for def! must be a symbol")
	}

	evald, err := Eval(list[2], env)
	if err != nil {
		return nil, err
	}

	env.Set(name, evald)
	return evald, nil
}

func evalLet(list []Data, env *environment.Env) (Data, error) {
	if len(list) != 3 {
		return nil, Malformedf("let* expects 2 arguments; found %d", len(list)-1)
	}

	// Second parameter should be a list of odd/even pairs.
	bindings, ok := Seq(list[1])
	if !ok {
		return nil, Malformedf("First parameter of let* must be a list")
	}
	if len(bindings)%2 != 0 {
		return nil, Malformedf("let* bindings must come in pairs; found %d", len(bindings))
	}

	letEnv := environment.NewEnv(env)
	for i := 0; i < len(bindings); i += 2 {
		sym, ok := bindings[i].(*DSymbol)
		if !ok {
			return nil, Malformedf("left-hand binding must be a symbol")
		}

		evald, err := Eval(bindings[i+1], letEnv)
		if err != nil {
			return nil, err
		}

		letEnv.Set(sym, evald)
	}

	return Eval(list[2], letEnv)
}

func evalAll(members []Data, env *environment.Env) ([]Data, error) {
	ret := make([]Data, 0, len(members))
	for _, expr := range members {
		evald, err := Eval(expr, env)
		if err != nil {
			return nil, err
		}

		ret = append(ret, evald)
	}
	return ret, nil
}

// EvalAST looks up symbols and evaluates the elements of collections. Map keys
// are left alone. Anything else evaluates to itself.
func EvalAST(ast Data, env *environment.Env) (Data, error) {
	switch x := ast.(type) {
	case *DSymbol:
		return env.Get(x)

	case *DList:
		members, err := evalAll(x.Members, env)
		if err != nil {
			return nil, err
		}
		return &DList{members}, nil

	case *DVector:
		members, err := evalAll(x.Members, env)
		if err != nil {
			return nil, err
		}
		return &DVector{members}, nil

	case *DHashMap:
		entries := x.Entries()
		for i := range entries {
			evald, err := Eval(entries[i].Value, env)
			if err != nil {
				return nil, err
			}
			entries[i].Value = evald
		}
		return NewHashMap(entries)

	default:
		return x, nil
	}
}
