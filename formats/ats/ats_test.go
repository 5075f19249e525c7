package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BVE-Reborn/bve-reborn-sub001/kvp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantPath string
		wantCats []kvp.Category
	}{
		{name: "plain path", input: "plugin\\ats.dll\n", wantPath: "plugin\\ats.dll"},
		{name: "leading comment and BOM", input: "\ufeff; plugin\r\nats.dll\r\n", wantPath: "ats.dll"},
		{name: "empty file", input: ""},
		{name: "second line is stray", input: "a.dll\nb.dll\n", wantPath: "a.dll", wantCats: []kvp.Category{kvp.UnknownKey}},
		{name: "section header is unknown", input: "a.dll\n[ats]\nb.dll\n", wantPath: "a.dll", wantCats: []kvp.Category{kvp.UnknownSection}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, diags := Parse(tt.input)

			assert.Equal(t, tt.wantPath, a.Path)
			var cats []kvp.Category
			for _, d := range diags {
				cats = append(cats, d.Category)
			}
			assert.Equal(t, tt.wantCats, cats)
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	a := &ATS{Path: "safety/ats.dll"}

	got, diags := Parse(Marshal(a))

	require.Empty(t, diags)
	assert.Equal(t, a, got)
}

func TestDefaults_RoundTrip(t *testing.T) {
	// GIVEN the default record, which has no plugin path
	got, diags := Parse(Marshal(Defaults()))

	// THEN it reads back unchanged and clean
	require.Empty(t, diags)
	assert.Equal(t, Defaults(), got)
}
