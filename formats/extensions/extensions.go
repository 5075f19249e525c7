// Package extensions binds extensions.cfg, which attaches exterior objects,
// couplers and bogies to the cars of a train.
package extensions

import "github.com/BVE-Reborn/bve-reborn-sub001/kvp"

type Extensions struct {
	Exterior Exterior           `yaml:"exterior"`
	Cars     map[uint64]Car     `yaml:"cars,omitempty"`
	Couplers map[uint64]Coupler `yaml:"couplers,omitempty"`
	Bogies   map[uint64]Bogie   `yaml:"bogies,omitempty"`
}

// Exterior lists one object file per car index.
type Exterior struct {
	Objects map[int]string `yaml:"objects,omitempty"`
}

// Car overrides the train.dat geometry of one car. Nil fields and a zero
// Length fall back to train.dat.
type Car struct {
	Object      *string      `yaml:"object,omitempty"`
	Length      float64      `yaml:"length"`
	Axles       *kvp.Vector2 `yaml:"axles,omitempty"`
	Reversed    bool         `yaml:"reversed"`
	LoadingSway bool         `yaml:"loading_sway"`
}

// Coupler sits between car N and car N+1.
type Coupler struct {
	Distances kvp.Vector2 `yaml:"distances"`
	Object    *string     `yaml:"object,omitempty"`
}

// Bogie 2N is the front bogie of car N and 2N+1 the rear one.
type Bogie struct {
	Object   *string      `yaml:"object,omitempty"`
	Axles    *kvp.Vector2 `yaml:"axles,omitempty"`
	Reversed bool         `yaml:"reversed"`
}

var optionalPath = kvp.Optional(kvp.String)

// Schema is the extensions.cfg file schema.
var Schema = kvp.NewFile(kvp.IndexedDialect,
	kvp.Single(kvp.NewRecord("exterior",
		kvp.Numbered("object", kvp.String, func(x *Exterior) *map[int]string { return &x.Objects }),
	), func(e *Extensions) *Exterior { return &e.Exterior }),

	kvp.Indexed(kvp.NewRecord("car",
		kvp.Scalar("object", optionalPath, func(c *Car) **string { return &c.Object }),
		kvp.Scalar("length", kvp.LooseFloat64, func(c *Car) *float64 { return &c.Length }, kvp.Default(0.0)),
		kvp.Scalar("axles", kvp.Optional(kvp.Vector2Codec), func(c *Car) **kvp.Vector2 { return &c.Axles }),
		kvp.Scalar("reversed", kvp.Bool, func(c *Car) *bool { return &c.Reversed }, kvp.Default(false)),
		kvp.Scalar("loadingsway", kvp.Bool, func(c *Car) *bool { return &c.LoadingSway }, kvp.Default(false)),
	), func(e *Extensions) *map[uint64]Car { return &e.Cars }),

	kvp.Indexed(kvp.NewRecord("coupler",
		kvp.Scalar("distances", kvp.Vector2Codec, func(c *Coupler) *kvp.Vector2 { return &c.Distances },
			kvp.Default(kvp.Vector2{X: 0.3, Y: 0.35})),
		kvp.Scalar("object", optionalPath, func(c *Coupler) **string { return &c.Object }),
	), func(e *Extensions) *map[uint64]Coupler { return &e.Couplers }),

	kvp.Indexed(kvp.NewRecord("bogie",
		kvp.Scalar("object", optionalPath, func(b *Bogie) **string { return &b.Object }),
		kvp.Scalar("axles", kvp.Optional(kvp.Vector2Codec), func(b *Bogie) **kvp.Vector2 { return &b.Axles }),
		kvp.Scalar("reversed", kvp.Bool, func(b *Bogie) *bool { return &b.Reversed }, kvp.Default(false)),
	), func(e *Extensions) *map[uint64]Bogie { return &e.Bogies }),
)

// Parse binds an extensions.cfg file.
func Parse(text string) (*Extensions, kvp.Diagnostics) {
	e, diags := Schema.Parse(text)
	return &e, diags
}

// Defaults returns an extensions.cfg with no cars, couplers or bogies.
func Defaults() *Extensions {
	e, _ := Schema.Parse("")
	return &e
}

// Marshal writes e back in extensions.cfg syntax.
func Marshal(e *Extensions) string {
	return Schema.Marshal(e)
}
