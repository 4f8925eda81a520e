package application

import (
	"context"
	"fmt"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

var (
	evalFile    string
	evalExample string
	evalInput   string
)

func EvalCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       evalRun,
		UsageLine: "eval -s <input> [-f <file> | -example <name>]",
		Short:     "runs a string through an automaton and prints the path taken",
		Long: `
runs a string through an automaton and prints the path taken

	$ dfa eval -example ending_01 -s 101
`,
		Flag: *flag.NewFlagSet("eval", flag.ExitOnError),
	}
	machineFlags(cmd, &evalFile, &evalExample)
	cmd.Flag.StringVar(&evalInput, "s", "", "Input string to evaluate")
	return cmd
}

func evalRun(cmd *commander.Command, args []string) {
	machine, err := loadMachine(evalFile, evalExample)
	if err != nil {
		fail("loading automaton", err)
	}
	result, err := machine.Evaluate(context.Background(), evalInput)
	if err != nil {
		fail("evaluating string", err)
	}
	fmt.Printf("evaluating %q\n", evalInput)
	for i, step := range result.Path {
		fmt.Printf("%d. (%s) --%s--> (%s)\n", i+1, step.From, step.Symbol, step.To)
	}
	if result.Accepted {
		fmt.Printf("%q is ACCEPTED (final state %s)\n", evalInput, result.Final)
	} else {
		fmt.Printf("%q is REJECTED (final state %s)\n", evalInput, result.Final)
	}
}
