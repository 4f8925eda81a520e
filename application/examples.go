package application

import (
	"fmt"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/stateforward/go-dfa/factory"
	"github.com/stateforward/go-dfa/pkg/codec"
)

var (
	examplesName string
	examplesOut  string
)

func ExamplesCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       examplesRun,
		UsageLine: "examples [-name <name> -o <file>]",
		Short:     "lists the built-in example automata or exports one as JSON",
		Long: `
lists the built-in example automata or exports one as JSON

	$ dfa examples
	$ dfa examples -name contains_ab -o contains_ab.json
`,
		Flag: *flag.NewFlagSet("examples", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&examplesName, "name", "", "Example to export")
	cmd.Flag.StringVar(&examplesOut, "o", "", "Output file for the exported example")
	return cmd
}

func examplesRun(cmd *commander.Command, args []string) {
	if examplesName == "" {
		for _, example := range factory.Examples() {
			fmt.Printf("%-20s %s\n", example.Name, example.Description)
		}
		return
	}
	machine, err := factory.New(examplesName)
	if err != nil {
		fail("building example", err)
	}
	if examplesOut == "" {
		data, err := codec.Encode(machine)
		if err != nil {
			fail("encoding example", err)
		}
		fmt.Println(string(data))
		return
	}
	if err := codec.Save(machine, examplesOut); err != nil {
		fail("saving example", err)
	}
}
