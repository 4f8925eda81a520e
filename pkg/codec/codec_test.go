package codec_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dfa "github.com/stateforward/go-dfa"
	"github.com/stateforward/go-dfa/factory"
	"github.com/stateforward/go-dfa/pkg/codec"
)

func TestRoundTrip(t *testing.T) {
	machine := factory.EndsWith01()
	data, err := codec.Encode(machine)
	require.NoError(t, err)

	decoded, err := codec.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, machine.States(), decoded.States())
	assert.Equal(t, machine.Alphabet(), decoded.Alphabet())
	assert.Equal(t, machine.Initial(), decoded.Initial())
	assert.Equal(t, machine.Accepting(), decoded.Accepting())
	assert.Equal(t, machine.Transitions(), decoded.Transitions())
	assert.Equal(t, machine.Validate(), decoded.Validate())
}

func TestRoundTripPreservesDiagnostics(t *testing.T) {
	machine := dfa.New()
	machine.AddStates("q0", "q1")
	machine.AddSymbols("0")
	require.NoError(t, machine.SetInitial("q0"))
	require.NoError(t, machine.AddTransition("q0", "0", "q1"))
	// (q1, 0) is deliberately missing

	data, err := codec.Encode(machine)
	require.NoError(t, err)
	decoded, err := codec.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, machine.Validate(), decoded.Validate())
	assert.Len(t, decoded.Validate(), 1)
}

func TestDecodeWithoutInitialState(t *testing.T) {
	decoded, err := codec.Decode([]byte(`{
		"states": ["q0"],
		"alphabet": ["a"],
		"accepting_states": [],
		"transitions": [{"from_state": "q0", "symbol": "a", "to_state": "q0"}]
	}`))
	require.NoError(t, err)
	assert.Empty(t, decoded.Initial())
}

func TestDecodeLegacyTransitionMap(t *testing.T) {
	decoded, err := codec.Decode([]byte(`{
		"states": ["q0", "q1"],
		"alphabet": ["0", "1"],
		"initial_state": "q0",
		"accepting_states": ["q1"],
		"transitions": {
			"q0,0": "q0",
			"q0,1": "q1",
			"q1,0": "q1",
			"q1,1": "q1"
		}
	}`))
	require.NoError(t, err)
	assert.Empty(t, decoded.Validate())

	result, err := decoded.Evaluate(context.Background(), "01")
	require.NoError(t, err)
	assert.True(t, result.Accepted)
}

func TestDecodeLegacyKeyWithCommaInStateName(t *testing.T) {
	decoded, err := codec.Decode([]byte(`{
		"states": ["a,b"],
		"alphabet": ["x"],
		"initial_state": "a,b",
		"accepting_states": ["a,b"],
		"transitions": {"a,b,x": "a,b"}
	}`))
	require.NoError(t, err)
	to, ok := decoded.Target("a,b", "x")
	require.True(t, ok)
	assert.Equal(t, "a,b", to)
}

func TestDecodeRejectsDanglingReferences(t *testing.T) {
	_, err := codec.Decode([]byte(`{
		"states": ["q0"],
		"alphabet": ["a"],
		"initial_state": "q0",
		"accepting_states": [],
		"transitions": [{"from_state": "q0", "symbol": "a", "to_state": "qX"}]
	}`))
	require.Error(t, err)
	var unknown *dfa.UnknownStateError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "qX", unknown.State)
}

func TestSaveLoad(t *testing.T) {
	machine := factory.ExactlyTwoAs()
	filename := filepath.Join(t.TempDir(), "machine.json")
	require.NoError(t, codec.Save(machine, filename))

	loaded, err := codec.Load(filename)
	require.NoError(t, err)
	assert.Equal(t, machine.Validate(), loaded.Validate())
	assert.Equal(t, machine.Transitions(), loaded.Transitions())

	accepted, err := loaded.GenerateAccepted(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"aa", "aab", "aba"}, accepted)
}
