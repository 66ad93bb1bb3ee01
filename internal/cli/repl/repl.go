// Package repl provides the interactive mode for bt-admin.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Runner executes one parsed command line.
type Runner func(args []string) error

// REPL is the read-eval-print loop.
type REPL struct {
	input     io.Reader
	output    io.Writer
	prompt    string
	completer *Completer
	history   *History
	run       Runner
}

// New creates a REPL dispatching lines to run.
func New(run Runner, commands []string) *REPL {
	return &REPL{
		input:     os.Stdin,
		output:    os.Stdout,
		prompt:    "bt-admin> ",
		completer: NewCompleter(commands),
		history:   NewHistory(),
		run:       run,
	}
}

// SetIO overrides input and output, for tests.
func (r *REPL) SetIO(in io.Reader, out io.Writer) {
	r.input = in
	r.output = out
}

// Run starts the loop. It returns when the input ends or the user
// types exit/quit.
func (r *REPL) Run() error {
	_ = r.history.Load()
	defer func() { _ = r.history.Save() }()

	reader := bufio.NewReader(r.input)
	for {
		fmt.Fprint(r.output, r.prompt)

		line, err := reader.ReadString('\n')
		if err == io.EOF {
			fmt.Fprintln(r.output)
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.history.Add(line)

		switch line {
		case "exit", "quit":
			return nil
		case "help":
			r.printHelp()
			continue
		}

		if err := r.run(strings.Fields(line)); err != nil {
			fmt.Fprintf(r.output, "Error: %v\n", err)
		}
	}
}

func (r *REPL) printHelp() {
	fmt.Fprintln(r.output, "Available commands:")
	for _, cmd := range r.completer.Commands() {
		fmt.Fprintf(r.output, "  %s\n", cmd)
	}
	fmt.Fprintln(r.output, "  help")
	fmt.Fprintln(r.output, "  exit")
}
