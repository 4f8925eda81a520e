// Package codec serializes automaton definitions to and from the JSON
// document format. Decoding rebuilds the automaton exclusively through the
// engine's public mutators, so a decoded automaton validates exactly like
// the one that was encoded.
package codec

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	dfa "github.com/stateforward/go-dfa"
	"github.com/stateforward/go-dfa/embedded"
)

// Document is the on-disk shape of an automaton definition.
type Document struct {
	States          []string      `json:"states"`
	Alphabet        []string      `json:"alphabet"`
	InitialState    string        `json:"initial_state,omitempty"`
	AcceptingStates []string      `json:"accepting_states"`
	Transitions     transitionSet `json:"transitions"`
}

type transitionSet []embedded.Transition

// UnmarshalJSON accepts the transition list form and the legacy map form
// keyed by "state,symbol". The legacy key splits on the LAST comma so
// state names may themselves contain commas.
func (transitions *transitionSet) UnmarshalJSON(data []byte) error {
	var records []embedded.Transition
	if err := json.Unmarshal(data, &records); err == nil {
		*transitions = records
		return nil
	}
	var legacy map[string]string
	if err := json.Unmarshal(data, &legacy); err != nil {
		return fmt.Errorf("transitions are neither a record list nor a legacy map: %w", err)
	}
	records = make([]embedded.Transition, 0, len(legacy))
	for pair, to := range legacy {
		comma := strings.LastIndex(pair, ",")
		if comma < 0 {
			return fmt.Errorf("legacy transition key %q has no comma separator", pair)
		}
		records = append(records, embedded.Transition{
			From:   pair[:comma],
			Symbol: pair[comma+1:],
			To:     to,
		})
	}
	*transitions = records
	return nil
}

// Snapshot captures a machine as a Document in canonical order.
func Snapshot(machine embedded.Machine) Document {
	return Document{
		States:          machine.States(),
		Alphabet:        machine.Alphabet(),
		InitialState:    machine.Initial(),
		AcceptingStates: machine.Accepting(),
		Transitions:     machine.Transitions(),
	}
}

// Encode writes the machine definition as indented JSON.
func Encode(machine embedded.Machine) ([]byte, error) {
	return json.MarshalIndent(Snapshot(machine), "", "  ")
}

// Decode parses a definition and rebuilds the automaton through the
// public mutators.
func Decode(data []byte) (*dfa.Automaton, error) {
	var document Document
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("parsing automaton definition: %w", err)
	}
	return Build(document)
}

// Build constructs an automaton from a Document. References are applied in
// dependency order (states and alphabet first) so a well-formed document
// never trips a reference check; a malformed one surfaces the engine's own
// error.
func Build(document Document) (*dfa.Automaton, error) {
	machine := dfa.New()
	machine.AddStates(document.States...)
	machine.AddSymbols(document.Alphabet...)
	if document.InitialState != "" {
		if err := machine.SetInitial(document.InitialState); err != nil {
			return nil, err
		}
	}
	for _, state := range document.AcceptingStates {
		if err := machine.AddAccepting(state); err != nil {
			return nil, err
		}
	}
	for _, transition := range document.Transitions {
		if err := machine.AddTransition(transition.From, transition.Symbol, transition.To); err != nil {
			return nil, err
		}
	}
	return machine, nil
}

// Save writes the machine definition to a file.
func Save(machine embedded.Machine, filename string) error {
	data, err := Encode(machine)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

// Load reads an automaton definition from a file.
func Load(filename string) (*dfa.Automaton, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}
