package main

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"

	"github.com/stateforward/go-dfa/application"
)

var cmd *commander.Commander

func init() {
	cmd = application.AllCommands()
}

func main() {
	err := cmd.Flag.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("**err**: %v\n", err)
		os.Exit(1)
	}

	args := cmd.Flag.Args()
	err = cmd.Run(args)
	if err != nil {
		fmt.Printf("**err**: %v\n", err)
		os.Exit(1)
	}
}
