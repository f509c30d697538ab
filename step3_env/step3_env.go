package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/bshepherdson/mal/go/core"
	"github.com/bshepherdson/mal/go/environment"
	"github.com/bshepherdson/mal/go/evaluator"
	"github.com/bshepherdson/mal/go/printer"
	"github.com/bshepherdson/mal/go/reader"
	"github.com/bshepherdson/mal/go/readline"
	"github.com/bshepherdson/mal/go/types"
)

func Read(raw string) (types.Data, error) {
	return reader.ReadStr(raw)
}

func Eval(ast types.Data, env *environment.Env) (types.Data, error) {
	return evaluator.Eval(ast, env)
}

func Print(form types.Data) string {
	return printer.PrintStr(form, true)
}

// rep returns ok=false when the line held no form. Runtime panics from
// primitives, such as division by zero, come back as errors.
func rep(input string, env *environment.Env) (s string, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			s, ok, err = "", false, fmt.Errorf("%v", r)
		}
	}()

	form, err := Read(input)
	if err != nil || form == nil {
		return "", false, err
	}

	evald, err := Eval(form, env)
	if err != nil {
		return "", false, err
	}

	return Print(evald), true, nil
}

func newReplEnv() *environment.Env {
	env := environment.NewEnv(nil)
	core.Install(env)
	return env
}

func main() {
	history := flag.String("history", readline.DefaultHistoryPath(), "history file; empty disables history")
	flag.Parse()

	readline.Open(*history)
	defer readline.Close()

	replEnv := newReplEnv()
	for {
		line, err := readline.Readline("user> ")
		if err != nil {
			break
		}
		line = strings.TrimRight(line, "\n")
		s, ok, err := rep(line, replEnv)
		if err != nil {
			fmt.Printf("%v\n", err)
		} else if ok {
			fmt.Println(s)
		}
	}
}
