// Where: cli/internal/infra/ui/ui.go
// What: User interface abstraction for commands.
// Why: Provide a single output surface so the engine and commands stay UI-agnostic.
package ui

import (
	"fmt"
	"io"
)

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers used by commands.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Block(emoji, title string, rows []KeyValue)
}

// NewConsoleUI returns a UserInterface backed by the console helper.
func NewConsoleUI(out io.Writer, emojiEnabled, styled bool) UserInterface {
	console := NewWithEmoji(out, emojiEnabled)
	console.Styled = styled
	return consoleUI{console: console}
}

// NewPlainUI returns a UserInterface that writes bare lines.
// Used for machine-consumed output such as completion scripts and errors.
func NewPlainUI(out io.Writer) UserInterface {
	return plainUI{out: out, console: New(out)}
}

type consoleUI struct {
	console *Console
}

func (c consoleUI) Info(msg string) {
	c.console.Info(msg)
}

func (c consoleUI) Warn(msg string) {
	c.console.Warn(msg)
}

func (c consoleUI) Success(msg string) {
	c.console.Success(msg)
}

func (c consoleUI) Block(emoji, title string, rows []KeyValue) {
	c.console.BlockStart(emoji, title)
	for _, kv := range rows {
		c.console.Item(kv.Key, kv.Value)
	}
	c.console.BlockEnd()
}

type plainUI struct {
	out     io.Writer
	console *Console
}

func (p plainUI) Info(msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p plainUI) Warn(msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p plainUI) Success(msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p plainUI) Block(emoji, title string, rows []KeyValue) {
	p.console.BlockStart(emoji, title)
	for _, kv := range rows {
		p.console.Item(kv.Key, kv.Value)
	}
	p.console.BlockEnd()
}
