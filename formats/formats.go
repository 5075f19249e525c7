// Package formats registers every configuration format and maps file names
// onto them.
package formats

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/BVE-Reborn/bve-reborn-sub001/formats/animated"
	"github.com/BVE-Reborn/bve-reborn-sub001/formats/ats"
	"github.com/BVE-Reborn/bve-reborn-sub001/formats/extensions"
	"github.com/BVE-Reborn/bve-reborn-sub001/formats/panel1"
	"github.com/BVE-Reborn/bve-reborn-sub001/formats/panel2"
	"github.com/BVE-Reborn/bve-reborn-sub001/formats/sound"
	"github.com/BVE-Reborn/bve-reborn-sub001/formats/traindat"
	"github.com/BVE-Reborn/bve-reborn-sub001/kvp"
)

// Format is one registered format with its record type erased.
type Format struct {
	Name     string
	File     string // file name, or "*.ext" for extension matches
	Dialect  kvp.Dialect
	Sections []string

	Parse    func(text string) (any, kvp.Diagnostics)
	Defaults func() any
	// Marshal panics when v is not the format's record type.
	Marshal func(v any) string
}

// Match reports whether base (a file name without directory) belongs to f.
// Comparison ignores case.
func (f Format) Match(base string) bool {
	if ext, ok := strings.CutPrefix(f.File, "*"); ok {
		return strings.HasSuffix(strings.ToLower(base), ext)
	}
	return strings.EqualFold(base, f.File)
}

type schema interface {
	Dialect() kvp.Dialect
	SectionNames() []string
}

func register[F any](name, file string, s schema, parse func(string) (*F, kvp.Diagnostics), defaults func() *F, marshal func(*F) string) Format {
	return Format{
		Name:     name,
		File:     file,
		Dialect:  s.Dialect(),
		Sections: s.SectionNames(),
		Parse: func(text string) (any, kvp.Diagnostics) {
			return parse(text)
		},
		Defaults: func() any { return defaults() },
		Marshal:  func(v any) string { return marshal(v.(*F)) },
	}
}

// registry is unexported so callers cannot add or replace formats.
var registry = []Format{
	register("traindat", "train.dat", traindat.Schema, traindat.Parse, traindat.Defaults, traindat.Marshal),
	register("extensions", "extensions.cfg", extensions.Schema, extensions.Parse, extensions.Defaults, extensions.Marshal),
	register("panel1", "panel.cfg", panel1.Schema, panel1.Parse, panel1.Defaults, panel1.Marshal),
	register("panel2", "panel2.cfg", panel2.Schema, panel2.Parse, panel2.Defaults, panel2.Marshal),
	register("sound", "sound.cfg", sound.Schema, sound.Parse, sound.Defaults, sound.Marshal),
	register("animated", "*.animated", animated.Schema, animated.Parse, animated.Defaults, animated.Marshal),
	register("ats", "ats.cfg", ats.Schema, ats.Parse, ats.Defaults, ats.Marshal),
}

// All returns the registered formats in registration order.
func All() []Format {
	return append([]Format(nil), registry...)
}

// Lookup finds a format by name.
func Lookup(name string) (Format, bool) {
	for _, f := range registry {
		if f.Name == strings.ToLower(name) {
			return f, true
		}
	}
	return Format{}, false
}

// IsValidFormat returns true if name is a registered format.
func IsValidFormat(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// ValidFormatNames returns sorted format names.
func ValidFormatNames() []string {
	names := make([]string, 0, len(registry))
	for _, f := range registry {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

// Detect picks the format for path from its base name.
func Detect(path string) (Format, bool) {
	base := filepath.Base(path)
	for _, f := range registry {
		if f.Match(base) {
			return f, true
		}
	}
	return Format{}, false
}
