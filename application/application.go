// Package application wires the automaton engine into console commands.
// Every command is a thin adapter: it loads a machine, calls one public
// engine operation, and renders the result.
package application

import (
	"log/slog"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	dfa "github.com/stateforward/go-dfa"
	"github.com/stateforward/go-dfa/factory"
	"github.com/stateforward/go-dfa/pkg/codec"
)

var AppCommands = []*commander.Command{
	ValidateCmd(),
	EvalCmd(),
	GenerateCmd(),
	DiagramCmd(),
	ExamplesCmd(),
}

func AllCommands() *commander.Commander {
	return &commander.Commander{
		Name:     os.Args[0],
		Commands: AppCommands,
		Flag:     flag.NewFlagSet("dfa", flag.ExitOnError),
	}
}

// machineFlags registers the two machine sources shared by every command:
// a definition file or a named factory example.
func machineFlags(cmd *commander.Command, file *string, example *string) {
	cmd.Flag.StringVar(file, "f", "", "Automaton definition file (JSON)")
	cmd.Flag.StringVar(example, "example", "", "Named example automaton (see the examples command)")
}

func loadMachine(file string, example string) (*dfa.Automaton, error) {
	if example != "" {
		return factory.New(example)
	}
	return codec.Load(file)
}

func fail(message string, err error) {
	slog.Error(message, "err", err)
	os.Exit(1)
}
