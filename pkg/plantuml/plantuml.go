// Package plantuml renders an automaton as a PlantUML state diagram.
package plantuml

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/stateforward/go-dfa/embedded"
)

func idFromName(name string) string {
	return strings.ReplaceAll(strings.ReplaceAll(name, "-", "_"), " ", "_")
}

type edge struct {
	from string
	to   string
}

// Generate writes the machine as a PlantUML state diagram. Accepting
// states carry an <<accepting>> stereotype, the initial state gets the
// [*] entry arrow, and transitions sharing a (from, to) edge are merged
// into one arrow with a "|"-joined symbol label. Output order is the
// machine's canonical order, so the diagram is reproducible.
func Generate(writer io.Writer, machine embedded.Machine) error {
	var builder strings.Builder
	fmt.Fprintf(&builder, "@startuml %s\n", machine.Id())

	accepting := machine.Accepting()
	for _, state := range machine.States() {
		tag := ""
		if slices.Contains(accepting, state) {
			tag = " <<accepting>>"
		}
		fmt.Fprintf(&builder, "state %s%s\n", idFromName(state), tag)
	}

	if initial := machine.Initial(); initial != "" {
		fmt.Fprintf(&builder, "[*] --> %s\n", idFromName(initial))
	}

	labels := map[edge][]string{}
	order := []edge{}
	for _, transition := range machine.Transitions() {
		key := edge{from: transition.From, to: transition.To}
		if _, ok := labels[key]; !ok {
			order = append(order, key)
		}
		labels[key] = append(labels[key], transition.Symbol)
	}
	for _, key := range order {
		fmt.Fprintf(&builder, "%s --> %s : %s\n", idFromName(key.from), idFromName(key.to), strings.Join(labels[key], "|"))
	}

	fmt.Fprintln(&builder, "@enduml")
	_, err := writer.Write([]byte(builder.String()))
	return err
}
