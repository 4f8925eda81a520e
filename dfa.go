// Package dfa implements a deterministic finite automaton: a 5-tuple of
// states, alphabet, initial state, accepting states, and a transition
// function. The automaton is built incrementally through mutators, checked
// with Validate, run with Evaluate, and enumerated with GenerateAccepted.
package dfa

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/stateforward/go-dfa/embedded"
	"github.com/stateforward/go-dfa/kinds"
	"github.com/stateforward/go-dfa/pkg/set"
	"github.com/stateforward/go-dfa/pkg/telemetry"
	"github.com/stateforward/go-dfa/queue"
)

type key struct {
	state  string
	symbol string
}

// Step is one move of an evaluation: the state before, the symbol
// consumed, and the state after.
type Step struct {
	From   string
	Symbol string
	To     string
}

// Result is the outcome of evaluating an input against an automaton.
type Result struct {
	Accepted bool
	Final    string
	Path     []Step
}

// Automaton is a mutable deterministic finite automaton. The zero value is
// not usable; construct with New. All operations are safe for concurrent
// use: mutators take the write lock, Validate/Evaluate/GenerateAccepted
// and the accessors take the read lock.
type Automaton struct {
	mutex       sync.RWMutex
	id          string
	states      set.Set[string]
	alphabet    set.Set[string]
	accepting   set.Set[string]
	initial     string
	transitions map[key]string
	tracer      trace.Tracer
}

type Option func(machine *Automaton)

// WithTracerProvider replaces the default no-op tracer provider.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(machine *Automaton) {
		machine.tracer = provider.Tracer("go-dfa")
	}
}

// New returns an empty automaton: no states, no alphabet, no initial
// state, no transitions.
func New(options ...Option) *Automaton {
	machine := &Automaton{
		id:          uuid.NewString(),
		states:      set.New[string](),
		alphabet:    set.New[string](),
		accepting:   set.New[string](),
		transitions: map[key]string{},
	}
	for _, option := range options {
		option(machine)
	}
	if machine.tracer == nil {
		machine.tracer = telemetry.NewProvider().Tracer("go-dfa")
	}
	return machine
}

var _ embedded.Machine = (*Automaton)(nil)

func (machine *Automaton) Id() string {
	if machine == nil {
		return ""
	}
	return machine.id
}

// States returns the state set in canonical (sorted) order.
func (machine *Automaton) States() []string {
	machine.mutex.RLock()
	defer machine.mutex.RUnlock()
	return set.Sorted(machine.states)
}

// Alphabet returns the alphabet in canonical (sorted) order.
func (machine *Automaton) Alphabet() []string {
	machine.mutex.RLock()
	defer machine.mutex.RUnlock()
	return set.Sorted(machine.alphabet)
}

// Initial returns the initial state, or "" when none is set.
func (machine *Automaton) Initial() string {
	machine.mutex.RLock()
	defer machine.mutex.RUnlock()
	return machine.initial
}

// Accepting returns the accepting states in canonical (sorted) order.
func (machine *Automaton) Accepting() []string {
	machine.mutex.RLock()
	defer machine.mutex.RUnlock()
	return set.Sorted(machine.accepting)
}

// Transitions returns every transition sorted by source state, then
// symbol.
func (machine *Automaton) Transitions() []embedded.Transition {
	machine.mutex.RLock()
	defer machine.mutex.RUnlock()
	transitions := make([]embedded.Transition, 0, len(machine.transitions))
	for pair, to := range machine.transitions {
		transitions = append(transitions, embedded.Transition{From: pair.state, Symbol: pair.symbol, To: to})
	}
	slices.SortFunc(transitions, func(a, b embedded.Transition) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.Symbol, b.Symbol)
	})
	return transitions
}

// Target returns the state the transition function maps (from, symbol) to.
func (machine *Automaton) Target(from string, symbol string) (string, bool) {
	machine.mutex.RLock()
	defer machine.mutex.RUnlock()
	to, ok := machine.transitions[key{state: from, symbol: symbol}]
	return to, ok
}

// AddStates unions the given identifiers into the state set. Duplicates
// are not an error.
func (machine *Automaton) AddStates(names ...string) {
	machine.mutex.Lock()
	defer machine.mutex.Unlock()
	machine.states.Add(names...)
}

// AddSymbols unions the given symbols into the alphabet. Duplicates are
// not an error.
func (machine *Automaton) AddSymbols(symbols ...string) {
	machine.mutex.Lock()
	defer machine.mutex.Unlock()
	machine.alphabet.Add(symbols...)
}

// SetInitial replaces the initial state. The state must already be a
// member of the state set.
func (machine *Automaton) SetInitial(name string) error {
	machine.mutex.Lock()
	defer machine.mutex.Unlock()
	if !machine.states.Contains(name) {
		return &UnknownStateError{State: name}
	}
	machine.initial = name
	return nil
}

// AddAccepting marks a state as accepting. Idempotent; the state must
// already be a member of the state set.
func (machine *Automaton) AddAccepting(name string) error {
	machine.mutex.Lock()
	defer machine.mutex.Unlock()
	if !machine.states.Contains(name) {
		return &UnknownStateError{State: name}
	}
	machine.accepting.Add(name)
	return nil
}

// RemoveAccepting unmarks an accepting state. Removing a known state that
// is not accepting is a no-op; an unknown state is an error.
func (machine *Automaton) RemoveAccepting(name string) error {
	machine.mutex.Lock()
	defer machine.mutex.Unlock()
	if !machine.states.Contains(name) {
		return &UnknownStateError{State: name}
	}
	machine.accepting.Remove(name)
	return nil
}

// AddTransition maps (from, symbol) to the target state. Every reference
// is checked before anything is written; an existing transition for the
// same pair is overwritten so editors can redefine without a delete step.
func (machine *Automaton) AddTransition(from string, symbol string, to string) error {
	machine.mutex.Lock()
	defer machine.mutex.Unlock()
	if !machine.states.Contains(from) {
		return &UnknownStateError{State: from}
	}
	if !machine.states.Contains(to) {
		return &UnknownStateError{State: to}
	}
	if !machine.alphabet.Contains(symbol) {
		return &UnknownSymbolError{Symbol: symbol}
	}
	machine.transitions[key{state: from, symbol: symbol}] = to
	return nil
}

// RemoveTransition deletes the transition for (from, symbol). Removing an
// absent transition is a no-op.
func (machine *Automaton) RemoveTransition(from string, symbol string) {
	machine.mutex.Lock()
	defer machine.mutex.Unlock()
	delete(machine.transitions, key{state: from, symbol: symbol})
}

// RemoveState deletes a state together with every transition referencing
// it, drops it from the accepting set, and clears the initial state if it
// pointed at it. Removing an unknown state is a no-op.
func (machine *Automaton) RemoveState(name string) {
	machine.mutex.Lock()
	defer machine.mutex.Unlock()
	if !machine.states.Contains(name) {
		return
	}
	machine.states.Remove(name)
	machine.accepting.Remove(name)
	if machine.initial == name {
		machine.initial = ""
	}
	for pair, to := range machine.transitions {
		if pair.state == name || to == name {
			delete(machine.transitions, pair)
		}
	}
}

// RemoveSymbol deletes a symbol together with every transition on it.
// Removing an unknown symbol is a no-op.
func (machine *Automaton) RemoveSymbol(symbol string) {
	machine.mutex.Lock()
	defer machine.mutex.Unlock()
	if !machine.alphabet.Contains(symbol) {
		return
	}
	machine.alphabet.Remove(symbol)
	for pair := range machine.transitions {
		if pair.symbol == symbol {
			delete(machine.transitions, pair)
		}
	}
}

// Validate reports every violated invariant in a fixed order: missing
// states, missing alphabet, initial state unset or unknown, accepting
// states outside the state set, and finally one diagnostic per missing
// (state, symbol) transition pair. An empty result means the automaton is
// valid. Validate never fails; its purpose is reporting, not gatekeeping.
func (machine *Automaton) Validate() []Diagnostic {
	machine.mutex.RLock()
	defer machine.mutex.RUnlock()
	return machine.validate()
}

func (machine *Automaton) validate() []Diagnostic {
	diagnostics := []Diagnostic{}
	if machine.states.Size() == 0 {
		diagnostics = append(diagnostics, Diagnostic{
			Kind:    kinds.NoStates,
			Message: "no states defined",
		})
	}
	if machine.alphabet.Size() == 0 {
		diagnostics = append(diagnostics, Diagnostic{
			Kind:    kinds.NoAlphabet,
			Message: "no alphabet defined",
		})
	}
	if machine.initial == "" {
		diagnostics = append(diagnostics, Diagnostic{
			Kind:    kinds.NoInitial,
			Message: "no initial state defined",
		})
	} else if !machine.states.Contains(machine.initial) {
		diagnostics = append(diagnostics, Diagnostic{
			Kind:    kinds.UnknownInitial,
			State:   machine.initial,
			Message: fmt.Sprintf("initial state %q is not in the set of states", machine.initial),
		})
	}
	for _, state := range set.Sorted(machine.accepting) {
		if !machine.states.Contains(state) {
			diagnostics = append(diagnostics, Diagnostic{
				Kind:    kinds.UnknownAccepting,
				State:   state,
				Message: fmt.Sprintf("accepting state %q is not in the set of states", state),
			})
		}
	}
	for _, state := range set.Sorted(machine.states) {
		for _, symbol := range set.Sorted(machine.alphabet) {
			if _, ok := machine.transitions[key{state: state, symbol: symbol}]; !ok {
				diagnostics = append(diagnostics, Diagnostic{
					Kind:    kinds.MissingTransition,
					State:   state,
					Symbol:  symbol,
					Message: fmt.Sprintf("no transition defined for state %q with symbol %q", state, symbol),
				})
			}
		}
	}
	return diagnostics
}

// Evaluate runs the input through the automaton one rune at a time. It is
// the convenience form of EvaluateSymbols for single-character alphabets.
func (machine *Automaton) Evaluate(ctx context.Context, input string) (Result, error) {
	symbols := make([]string, 0, len(input))
	for _, r := range input {
		symbols = append(symbols, string(r))
	}
	return machine.EvaluateSymbols(ctx, symbols)
}

// EvaluateSymbols simulates the automaton over the symbol sequence. The
// returned Result carries the full path taken; on an undefined transition
// the path covers the steps up to the failure and the error reports the
// exact state, symbol, and position. Empty input is valid: the path is
// empty and acceptance is whether the initial state is accepting. The
// automaton is not modified.
func (machine *Automaton) EvaluateSymbols(ctx context.Context, symbols []string) (Result, error) {
	machine.mutex.RLock()
	defer machine.mutex.RUnlock()
	_, span := machine.tracer.Start(ctx, "EvaluateSymbols")
	defer span.End()
	span.SetAttributes(attribute.Int("dfa.input_symbols", len(symbols)))
	current, err := machine.startState()
	if err != nil {
		span.RecordError(err)
		return Result{}, err
	}
	path := make([]Step, 0, len(symbols))
	for position, symbol := range symbols {
		next, ok := machine.transitions[key{state: current, symbol: symbol}]
		if !ok {
			undefined := &UndefinedTransitionError{State: current, Symbol: symbol, Position: position}
			span.RecordError(undefined)
			return Result{Final: current, Path: path}, undefined
		}
		path = append(path, Step{From: current, Symbol: symbol, To: next})
		current = next
	}
	result := Result{
		Accepted: machine.accepting.Contains(current),
		Final:    current,
		Path:     path,
	}
	span.SetAttributes(attribute.Bool("dfa.accepted", result.Accepted))
	return result, nil
}

func (machine *Automaton) startState() (string, error) {
	if machine.initial == "" {
		return "", &ValidationError{Diagnostics: []Diagnostic{{
			Kind:    kinds.NoInitial,
			Message: "no initial state defined",
		}}}
	}
	if !machine.states.Contains(machine.initial) {
		return "", &ValidationError{Diagnostics: []Diagnostic{{
			Kind:    kinds.UnknownInitial,
			State:   machine.initial,
			Message: fmt.Sprintf("initial state %q is not in the set of states", machine.initial),
		}}}
	}
	return machine.initial, nil
}

// blockingKinds are the diagnostics that make GenerateAccepted ill-defined.
// An empty alphabet is deliberately absent: totality over an empty
// alphabet holds vacuously and the search degenerates to checking the
// initial state.
var blockingKinds = []uint64{
	kinds.NoStates,
	kinds.NoInitial,
	kinds.UnknownInitial,
	kinds.UnknownAccepting,
	kinds.MissingTransition,
}

// GenerateAccepted returns up to limit accepted strings, shortest first
// and in alphabet order within a length. The search is a breadth-first
// walk over (string, state) pairs from the empty string at the initial
// state. It stops when limit strings are collected, when the frontier
// empties, or after as many consecutive hitless levels as there are states
// reachable from the initial state: a longer hitless stretch cannot
// produce a hit, because any longer path revisits a state and pumps down
// to a string the search already covered.
func (machine *Automaton) GenerateAccepted(ctx context.Context, limit int) ([]string, error) {
	machine.mutex.RLock()
	defer machine.mutex.RUnlock()
	_, span := machine.tracer.Start(ctx, "GenerateAccepted")
	defer span.End()
	span.SetAttributes(attribute.Int("dfa.limit", limit))
	var blocking []Diagnostic
	for _, diagnostic := range machine.validate() {
		if kinds.IsKind(diagnostic.Kind, blockingKinds...) {
			blocking = append(blocking, diagnostic)
		}
	}
	if len(blocking) > 0 {
		invalid := &ValidationError{Diagnostics: blocking}
		span.RecordError(invalid)
		return nil, invalid
	}
	accepted := []string{}
	if limit <= 0 {
		return accepted, nil
	}
	type node struct {
		input string
		state string
		depth int
	}
	symbols := set.Sorted(machine.alphabet)
	reachable := machine.reachable()
	frontier := queue.New[node]()
	frontier.Push(node{state: machine.initial})
	barren := 0
	depth := 0
	hit := false
	for {
		current, ok := frontier.Pop()
		if !ok {
			break
		}
		if current.depth != depth {
			if hit {
				barren = 0
			} else {
				barren++
			}
			hit = false
			depth = current.depth
			if barren >= reachable {
				break
			}
		}
		if machine.accepting.Contains(current.state) {
			accepted = append(accepted, current.input)
			hit = true
			if len(accepted) == limit {
				break
			}
		}
		for _, symbol := range symbols {
			next, ok := machine.transitions[key{state: current.state, symbol: symbol}]
			if !ok {
				continue
			}
			frontier.Push(node{input: current.input + symbol, state: next, depth: current.depth + 1})
		}
	}
	span.SetAttributes(attribute.Int("dfa.accepted_strings", len(accepted)))
	return accepted, nil
}

// reachable counts the states reachable from the initial state. It bounds
// the generation search.
func (machine *Automaton) reachable() int {
	visited := set.New(machine.initial)
	frontier := queue.New[string]()
	frontier.Push(machine.initial)
	for {
		state, ok := frontier.Pop()
		if !ok {
			break
		}
		for symbol := range machine.alphabet.Items() {
			next, ok := machine.transitions[key{state: state, symbol: symbol}]
			if ok && !visited.Contains(next) {
				visited.Add(next)
				frontier.Push(next)
			}
		}
	}
	return visited.Size()
}

// String renders the 5-tuple definition, one component per line.
func (machine *Automaton) String() string {
	machine.mutex.RLock()
	defer machine.mutex.RUnlock()
	var builder strings.Builder
	fmt.Fprintf(&builder, "states: %s\n", strings.Join(set.Sorted(machine.states), " "))
	fmt.Fprintf(&builder, "alphabet: %s\n", strings.Join(set.Sorted(machine.alphabet), " "))
	fmt.Fprintf(&builder, "initial: %s\n", machine.initial)
	fmt.Fprintf(&builder, "accepting: %s\n", strings.Join(set.Sorted(machine.accepting), " "))
	transitions := make([]key, 0, len(machine.transitions))
	for pair := range machine.transitions {
		transitions = append(transitions, pair)
	}
	slices.SortFunc(transitions, func(a, b key) int {
		if c := cmp.Compare(a.state, b.state); c != 0 {
			return c
		}
		return cmp.Compare(a.symbol, b.symbol)
	})
	for _, pair := range transitions {
		fmt.Fprintf(&builder, "(%s, %s) -> %s\n", pair.state, pair.symbol, machine.transitions[pair])
	}
	return builder.String()
}
