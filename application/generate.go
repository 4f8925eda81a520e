package application

import (
	"context"
	"fmt"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

var (
	generateFile    string
	generateExample string
	generateLimit   int
)

func GenerateCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       generateRun,
		UsageLine: "generate -n <count> [-f <file> | -example <name>]",
		Short:     "enumerates the shortest strings an automaton accepts",
		Long: `
enumerates the shortest strings an automaton accepts

	$ dfa generate -example ending_01 -n 10
`,
		Flag: *flag.NewFlagSet("generate", flag.ExitOnError),
	}
	machineFlags(cmd, &generateFile, &generateExample)
	cmd.Flag.IntVar(&generateLimit, "n", 10, "Maximum number of strings to generate")
	return cmd
}

func generateRun(cmd *commander.Command, args []string) {
	machine, err := loadMachine(generateFile, generateExample)
	if err != nil {
		fail("loading automaton", err)
	}
	accepted, err := machine.GenerateAccepted(context.Background(), generateLimit)
	if err != nil {
		fail("generating accepted strings", err)
	}
	if len(accepted) == 0 {
		fmt.Println("no accepted strings")
		return
	}
	for _, input := range accepted {
		fmt.Printf("%q\n", input)
	}
}
