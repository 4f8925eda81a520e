package application

import (
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/stateforward/go-dfa/pkg/plantuml"
)

var (
	diagramFile    string
	diagramExample string
	diagramOut     string
)

func DiagramCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       diagramRun,
		UsageLine: "diagram [-o <file>] [-f <file> | -example <name>]",
		Short:     "renders an automaton as a PlantUML state diagram",
		Long: `
renders an automaton as a PlantUML state diagram

	$ dfa diagram -example even_length -o even_length.puml
`,
		Flag: *flag.NewFlagSet("diagram", flag.ExitOnError),
	}
	machineFlags(cmd, &diagramFile, &diagramExample)
	cmd.Flag.StringVar(&diagramOut, "o", "", "Output file (default stdout)")
	return cmd
}

func diagramRun(cmd *commander.Command, args []string) {
	machine, err := loadMachine(diagramFile, diagramExample)
	if err != nil {
		fail("loading automaton", err)
	}
	writer := os.Stdout
	if diagramOut != "" {
		writer, err = os.Create(diagramOut)
		if err != nil {
			fail("creating output file", err)
		}
		defer writer.Close()
	}
	if err := plantuml.Generate(writer, machine); err != nil {
		fail("rendering diagram", err)
	}
}
