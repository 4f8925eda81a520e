// Package factory builds ready-made example automata. It has no
// privileged access to the engine: every machine is assembled through the
// same public mutators any caller would use.
package factory

import (
	"fmt"
	"sort"

	dfa "github.com/stateforward/go-dfa"
)

// Example pairs a registered machine with its description.
type Example struct {
	Name        string
	Description string
	Build       func() *dfa.Automaton
}

func build(states []string, symbols []string, initial string, accepting []string, transitions [][3]string) *dfa.Automaton {
	machine := dfa.New()
	machine.AddStates(states...)
	machine.AddSymbols(symbols...)
	// The definitions below are fixed and reference only their own states
	// and symbols, so the mutators cannot fail.
	if err := machine.SetInitial(initial); err != nil {
		panic(err)
	}
	for _, state := range accepting {
		if err := machine.AddAccepting(state); err != nil {
			panic(err)
		}
	}
	for _, transition := range transitions {
		if err := machine.AddTransition(transition[0], transition[1], transition[2]); err != nil {
			panic(err)
		}
	}
	return machine
}

// BinaryEndingInOne accepts binary strings ending with '1'.
func BinaryEndingInOne() *dfa.Automaton {
	return build(
		[]string{"q0", "q1"},
		[]string{"0", "1"},
		"q0",
		[]string{"q1"},
		[][3]string{
			{"q0", "0", "q0"},
			{"q0", "1", "q1"},
			{"q1", "0", "q1"},
			{"q1", "1", "q1"},
		},
	)
}

// EvenLength accepts strings of even length over {a, b}.
func EvenLength() *dfa.Automaton {
	return build(
		[]string{"q0", "q1"},
		[]string{"a", "b"},
		"q0",
		[]string{"q0"},
		[][3]string{
			{"q0", "a", "q1"},
			{"q0", "b", "q1"},
			{"q1", "a", "q0"},
			{"q1", "b", "q0"},
		},
	)
}

// EndsWith01 accepts binary strings ending with "01".
func EndsWith01() *dfa.Automaton {
	return build(
		[]string{"q0", "q1", "q2"},
		[]string{"0", "1"},
		"q0",
		[]string{"q2"},
		[][3]string{
			{"q0", "0", "q1"},
			{"q0", "1", "q0"},
			{"q1", "0", "q1"},
			{"q1", "1", "q2"},
			{"q2", "0", "q1"},
			{"q2", "1", "q0"},
		},
	)
}

// ExactlyTwoAs accepts strings over {a, b} with exactly two 'a's.
func ExactlyTwoAs() *dfa.Automaton {
	return build(
		[]string{"q0", "q1", "q2", "q3"},
		[]string{"a", "b"},
		"q0",
		[]string{"q2"},
		[][3]string{
			{"q0", "a", "q1"},
			{"q0", "b", "q0"},
			{"q1", "a", "q2"},
			{"q1", "b", "q1"},
			{"q2", "a", "q3"},
			{"q2", "b", "q2"},
			{"q3", "a", "q3"},
			{"q3", "b", "q3"},
		},
	)
}

// ContainsAB accepts strings over {a, b} containing the substring "ab".
func ContainsAB() *dfa.Automaton {
	return build(
		[]string{"q0", "q1", "q2"},
		[]string{"a", "b"},
		"q0",
		[]string{"q2"},
		[][3]string{
			{"q0", "a", "q1"},
			{"q0", "b", "q0"},
			{"q1", "a", "q1"},
			{"q1", "b", "q2"},
			{"q2", "a", "q2"},
			{"q2", "b", "q2"},
		},
	)
}

var registry = map[string]Example{
	"binary_ending_one": {
		Name:        "binary_ending_one",
		Description: "Binary strings ending with '1'",
		Build:       BinaryEndingInOne,
	},
	"even_length": {
		Name:        "even_length",
		Description: "Strings of even length",
		Build:       EvenLength,
	},
	"ending_01": {
		Name:        "ending_01",
		Description: "Binary strings ending with '01'",
		Build:       EndsWith01,
	},
	"exactly_two_as": {
		Name:        "exactly_two_as",
		Description: "Strings with exactly two 'a's",
		Build:       ExactlyTwoAs,
	},
	"contains_ab": {
		Name:        "contains_ab",
		Description: "Strings containing substring 'ab'",
		Build:       ContainsAB,
	},
}

// Examples lists the registered examples sorted by name.
func Examples() []Example {
	examples := make([]Example, 0, len(registry))
	for _, example := range registry {
		examples = append(examples, example)
	}
	sort.Slice(examples, func(i, j int) bool {
		return examples[i].Name < examples[j].Name
	})
	return examples
}

// New builds the named example.
func New(name string) (*dfa.Automaton, error) {
	example, ok := registry[name]
	if !ok {
		names := make([]string, 0, len(registry))
		for _, example := range Examples() {
			names = append(names, example.Name)
		}
		return nil, fmt.Errorf("example %q not found, available examples: %v", name, names)
	}
	return example.Build(), nil
}
