package plantuml_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stateforward/go-dfa/factory"
	"github.com/stateforward/go-dfa/pkg/plantuml"
)

func TestGenerate(t *testing.T) {
	machine := factory.EvenLength()
	var builder strings.Builder
	require.NoError(t, plantuml.Generate(&builder, machine))
	diagram := builder.String()

	assert.True(t, strings.HasPrefix(diagram, "@startuml "+machine.Id()+"\n"))
	assert.True(t, strings.HasSuffix(diagram, "@enduml\n"))
	assert.Contains(t, diagram, "state q0 <<accepting>>\n")
	assert.Contains(t, diagram, "state q1\n")
	assert.Contains(t, diagram, "[*] --> q0\n")
	// symbols sharing an edge are merged into one labeled arrow
	assert.Contains(t, diagram, "q0 --> q1 : a|b\n")
	assert.Contains(t, diagram, "q1 --> q0 : a|b\n")
}

func TestGenerateDeterministic(t *testing.T) {
	machine := factory.EndsWith01()
	var first, again strings.Builder
	require.NoError(t, plantuml.Generate(&first, machine))
	require.NoError(t, plantuml.Generate(&again, machine))
	assert.Equal(t, first.String(), again.String())
}

func TestGenerateSanitizesNames(t *testing.T) {
	machine := factory.EvenLength()
	machine.AddStates("dead state")
	var builder strings.Builder
	require.NoError(t, plantuml.Generate(&builder, machine))
	assert.Contains(t, builder.String(), "state dead_state\n")
}
