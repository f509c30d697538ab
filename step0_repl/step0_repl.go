package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/bshepherdson/mal/go/readline"
)

func Read(raw string) string {
	return raw
}

func Eval(read string) string {
	return read
}

func Print(value string) string {
	return value
}

func rep(input string) string {
	return Print(Eval(Read(input)))
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
		fmt.Println(rep(line))
	}
}
