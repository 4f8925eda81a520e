// Package embedded holds the read-only view of an automaton consumed by
// collaborators (persistence, diagram generation) so they never depend on
// the mutable engine.
package embedded

// Transition is a single entry of the transition function.
type Transition struct {
	From   string `json:"from_state"`
	Symbol string `json:"symbol"`
	To     string `json:"to_state"`
}

// Machine is the immutable view of a deterministic finite automaton.
// All slices are in canonical (sorted) order.
type Machine interface {
	Id() string
	States() []string
	Alphabet() []string
	Initial() string
	Accepting() []string
	Transitions() []Transition
}
