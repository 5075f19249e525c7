package sound

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BVE-Reborn/bve-reborn-sub001/kvp"
)

func TestParse_Sample(t *testing.T) {
	input := `[Run]
0 = run0.wav
1 = run1.wav

[Brake]
BC Release High = bc_high.wav
Emergency = eb.wav

[Pilot Lamp]
On = lamp_on.wav

[Master Controller]
Up = ignored.wav
Min = mc_min.wav
`
	s, diags := Parse(input)

	// THEN "[Pilot Lamp]" is a section name, not an indexed "pilot"
	assert.Equal(t, "lamp_on.wav", s.PilotLamp.On)
	assert.Equal(t, map[int]string{0: "run0.wav", 1: "run1.wav"}, s.Run.Sounds)
	assert.Equal(t, "bc_high.wav", s.Brake.BcReleaseHigh)
	assert.Equal(t, "eb.wav", s.Brake.Emergency)
	assert.Equal(t, "mc_min.wav", s.MasterController.Min)

	// AND the one unknown key is reported
	require.Len(t, diags, 1)
	assert.Equal(t, kvp.UnknownKey, diags[0].Category)
	assert.Equal(t, "master controller", diags[0].Section)
}

func TestParse_JapaneseNames(t *testing.T) {
	s, diags := Parse("[走行音]\n0 = 走行.wav\n[ドア]\n左開 = open_l.wav\n[知らせ灯]\n入 = on.wav\n")

	require.Empty(t, diags, diags.Report())
	assert.Equal(t, "走行.wav", s.Run.Sounds[0])
	assert.Equal(t, "open_l.wav", s.Door.OpenLeft)
	assert.Equal(t, "on.wav", s.PilotLamp.On)
}

func TestParse_NumberedSectionRejectsWords(t *testing.T) {
	// GIVEN a numbered section with a word key
	s, diags := Parse("[Motor]\n0 = m0.wav\nfast = m1.wav\n")

	assert.Equal(t, map[int]string{0: "m0.wav"}, s.Motor.Sounds)
	require.Len(t, diags, 1)
	assert.Equal(t, kvp.UnknownKey, diags[0].Category)
	assert.Equal(t, "fast", diags[0].Key)
}

func TestParse_VersionLine(t *testing.T) {
	// GIVEN a sound.cfg opening with its version line
	s, diags := Parse("Version 1.0\n[Run]\n0 = run0.wav\n")

	// THEN the line is kept as the version, not reported as stray content
	require.Empty(t, diags, diags.Report())
	assert.Equal(t, "Version 1.0", s.Version)
	assert.Equal(t, map[int]string{0: "run0.wav"}, s.Run.Sounds)

	again, diags := Parse(Marshal(s))
	require.Empty(t, diags)
	assert.Equal(t, s, again)
}

func TestParse_UnknownSection(t *testing.T) {
	_, diags := Parse("[Windscreen]\nrain = rain.wav\n[Horn]\nPrimary = horn.wav\n")

	require.Len(t, diags, 1)
	assert.Equal(t, kvp.UnknownSection, diags[0].Category)
	assert.Equal(t, 1, diags[0].Line)
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
	s, _ := Parse("[Switch]\n3 = sw.wav\n[Pilot Lamp]\nOff = off.wav\n[Brake Handle]\nMax = max.wav\n")

	again, diags := Parse(Marshal(s))

	require.Empty(t, diags)
	if diff := cmp.Diff(s, again); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}
