package application

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

var (
	validateFile    string
	validateExample string
)

func ValidateCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       validateRun,
		UsageLine: "validate -f <file> | -example <name>",
		Short:     "checks an automaton definition and lists every violation",
		Long: `
checks an automaton definition and lists every violation

	$ dfa validate -f machine.json
`,
		Flag: *flag.NewFlagSet("validate", flag.ExitOnError),
	}
	machineFlags(cmd, &validateFile, &validateExample)
	return cmd
}

func validateRun(cmd *commander.Command, args []string) {
	machine, err := loadMachine(validateFile, validateExample)
	if err != nil {
		fail("loading automaton", err)
	}
	diagnostics := machine.Validate()
	if len(diagnostics) == 0 {
		fmt.Println("automaton is valid")
		return
	}
	for _, diagnostic := range diagnostics {
		fmt.Println(diagnostic.Message)
	}
	os.Exit(1)
}
