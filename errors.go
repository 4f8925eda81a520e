package dfa

import (
	"fmt"
	"strings"

	"github.com/stateforward/go-dfa/kinds"
)

// Diagnostic is a single validation finding. Kind is one of the diagnostic
// kinds in the kinds package; State and Symbol are set when the finding
// points at a specific pair.
type Diagnostic struct {
	Kind    uint64
	State   string
	Symbol  string
	Message string
}

func (d Diagnostic) String() string {
	return d.Message
}

// UnknownStateError reports a reference to a state that is not a member of
// the automaton's state set.
type UnknownStateError struct {
	State string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("state %q is not in the set of states", e.State)
}

// UnknownSymbolError reports a reference to a symbol that is not a member
// of the automaton's alphabet.
type UnknownSymbolError struct {
	Symbol string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("symbol %q is not in the alphabet", e.Symbol)
}

// UndefinedTransitionError reports that evaluation reached a (state,
// symbol) pair the transition function does not cover. Position is the
// zero-based index of the offending symbol in the input.
type UndefinedTransitionError struct {
	State    string
	Symbol   string
	Position int
}

func (e *UndefinedTransitionError) Error() string {
	return fmt.Sprintf("no transition defined for state %q with symbol %q at position %d", e.State, e.Symbol, e.Position)
}

// ValidationError aggregates every invariant violation found on an
// automaton. Operations that require a well-defined automaton return it
// instead of guessing.
type ValidationError struct {
	Diagnostics []Diagnostic
}

func (e *ValidationError) Error() string {
	if len(e.Diagnostics) == 0 {
		return "automaton is not valid"
	}
	messages := make([]string, len(e.Diagnostics))
	for i, diagnostic := range e.Diagnostics {
		messages[i] = diagnostic.Message
	}
	return fmt.Sprintf("automaton is not valid: %s", strings.Join(messages, "; "))
}

// HasKind reports whether any diagnostic matches one of the given kinds.
func (e *ValidationError) HasKind(bases ...uint64) bool {
	for _, diagnostic := range e.Diagnostics {
		if kinds.IsKind(diagnostic.Kind, bases...) {
			return true
		}
	}
	return false
}
