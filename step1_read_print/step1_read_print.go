package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/bshepherdson/mal/go/printer"
	"github.com/bshepherdson/mal/go/reader"
	"github.com/bshepherdson/mal/go/readline"
	"github.com/bshepherdson/mal/go/types"
)

func Read(raw string) (types.Data, error) {
	return reader.ReadStr(raw)
}

func Eval(form types.Data) types.Data {
	return form
}

func Print(form types.Data) string {
	return printer.PrintStr(form, true)
}

// rep returns ok=false when the line held no form.
func rep(input string) (string, bool, error) {
	form, err := Read(input)
	if err != nil || form == nil {
		return "", false, err
	}

	return Print(Eval(form)), true, nil
}

func main() {
	history := flag.String("history", readline.DefaultHistoryPath(), "history file; empty disables history")
	flag.Parse()

	readline.Open(*history)
	defer readline.Close()

	for {
		line, err := readline.Readline("user> ")
		if err != nil {
			break
		}
		line = strings.TrimRight(line, "\n")
		s, ok, err := rep(line)
		if err != nil {
			fmt.Printf("%v\n", err)
		} else if ok {
			fmt.Println(s)
		}
	}
}
