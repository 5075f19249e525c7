// Package ats binds ats.cfg, a single line naming the safety system plugin.
package ats

import "github.com/BVE-Reborn/bve-reborn-sub001/kvp"

type ATS struct {
	// Path is relative to the train folder.
	Path string `yaml:"path"`
}

// Schema is the ats.cfg file schema: one root section, no headers.
var Schema = kvp.NewFile(kvp.IndexedDialect,
	kvp.Single(kvp.NewRecord("",
		kvp.Scalar("path", kvp.String, func(a *ATS) *string { return &a.Path }, kvp.Bare(), kvp.Default("")),
	), func(a *ATS) *ATS { return a }),
)

// Parse binds an ats.cfg file.
func Parse(text string) (*ATS, kvp.Diagnostics) {
	a, diags := Schema.Parse(text)
	return &a, diags
}

// Defaults returns an ats.cfg without a plugin path, the same record an
// empty file binds to.
func Defaults() *ATS {
	return &ATS{}
}

// Marshal writes a back in ats.cfg syntax.
func Marshal(a *ATS) string {
	return Schema.Marshal(a)
}
