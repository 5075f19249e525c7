package animated

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BVE-Reborn/bve-reborn-sub001/kvp"
)

const sample = `[Include]
Position = 0, 1.5, 0
body.csv
roof.csv

[Object]
States = door_closed.csv, door_open.csv
StateFunction = leftdoors
TranslateXFunction = leftdoors * 0.6

[Object]
Position = 1, 0, 0
RotateZDirection = 0, 0, -1
RotateZFunction = value
RotateZDamping = 2, 0.5

[Sound]
FileName = motor.wav
Volume = 0.8

[StateChangeSound]
FileNames = close.wav, open.wav
PlayOnShow = 1
`

func TestParse_Sample(t *testing.T) {
	a, diags := Parse(sample)

	require.Empty(t, diags, diags.Report())

	// THEN the include keeps its bare file list and position
	require.Len(t, a.Includes, 1)
	assert.Equal(t, []string{"body.csv", "roof.csv"}, a.Includes[0].Files)
	assert.Equal(t, kvp.Vector3{Y: 1.5}, a.Includes[0].Position)

	// AND both objects are kept in order with per-axis defaults
	require.Len(t, a.Objects, 2)
	assert.Equal(t, []string{"door_closed.csv", "door_open.csv"}, a.Objects[0].States)
	assert.Equal(t, "leftdoors * 0.6", a.Objects[0].TranslateX.Function)
	assert.Equal(t, kvp.Vector3{X: 1}, a.Objects[0].TranslateX.Direction)
	assert.Equal(t, kvp.Vector3{Z: -1}, a.Objects[1].RotateZ.Direction)
	require.NotNil(t, a.Objects[1].RotateZDamping)
	assert.Equal(t, kvp.Vector2{X: 2, Y: 0.5}, *a.Objects[1].RotateZDamping)
	assert.Nil(t, a.Objects[0].RotateZDamping)

	require.Len(t, a.Sounds, 1)
	assert.Equal(t, 0.8, a.Sounds[0].Volume)
	assert.Equal(t, 30.0, a.Sounds[0].Radius)

	require.Len(t, a.StateChangeSounds, 1)
	assert.Equal(t, []string{"close.wav", "open.wav"}, a.StateChangeSounds[0].FileNames)
	assert.True(t, a.StateChangeSounds[0].PlayOnShow)
}

func TestParse_SoundWithoutFileName(t *testing.T) {
	a, diags := Parse("[Sound]\nVolume = 2\n")

	require.Len(t, a.Sounds, 1)
	require.Len(t, diags, 1)
	assert.Equal(t, kvp.MissingRequired, diags[0].Category)
	assert.Equal(t, "filename", diags[0].Key)
}

func TestParse_StateChangeSoundSingularKey(t *testing.T) {
	a, diags := Parse("[StateChangeSound]\nFileName = one.wav\n")

	require.Empty(t, diags)
	assert.Equal(t, []string{"one.wav"}, a.StateChangeSounds[0].FileNames)
}

func TestDefaults_RoundTrip(t *testing.T) {
	want := Defaults()

	got, diags := Parse(Marshal(want))

	require.Empty(t, diags)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("defaults round trip (-want +got):\n%s", diff)
	}
}

func TestParse_PopulatedRoundTrip(t *testing.T) {
	a, _ := Parse(sample)

	again, diags := Parse(Marshal(a))

	require.Empty(t, diags)
	if diff := cmp.Diff(a, again); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}
