// Package readline is the line editor behind the REPL steps.
package readline

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const historyFile = ".mal_history"

var (
	state       *liner.State
	historyPath string
)

// DefaultHistoryPath is ~/.mal_history, or "" when there is no home directory.
func DefaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

// Open sets up the terminal and loads history from path. An empty path
// disables history.
func Open(path string) {
	state = liner.NewLiner()
	state.SetCtrlCAborts(true)

	historyPath = path
	if historyPath == "" {
		return
	}
	if f, err := os.Open(historyPath); err == nil {
		_, _ = state.ReadHistory(f)
		_ = f.Close()
	}
}

// Close saves history and restores the terminal.
func Close() error {
	if state == nil {
		return nil
	}
	if historyPath != "" {
		if f, err := os.Create(historyPath); err == nil {
			_, _ = state.WriteHistory(f)
			_ = f.Close()
		}
	}
	err := state.Close()
	state = nil
	return err
}

// Readline prompts for one line. Ctrl+C discards the line and returns "";
// Ctrl+D returns io.EOF.
func Readline(prompt string) (string, error) {
	if state == nil {
		Open(DefaultHistoryPath())
	}

	line, err := state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(line) != "" {
		state.AppendHistory(line)
	}
	return line, nil
}
