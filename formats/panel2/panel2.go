// Package panel2 binds panel2.cfg, the free-form cab panel: a background
// section followed by any number of lamps, needles, digital readouts, gauges
// and timetable slots.
package panel2

import "github.com/BVE-Reborn/bve-reborn-sub001/kvp"

type Panel2 struct {
	Version        string          `yaml:"version,omitempty"`
	This           This            `yaml:"this"`
	PilotLamps     []PilotLamp     `yaml:"pilot_lamps,omitempty"`
	Needles        []Needle        `yaml:"needles,omitempty"`
	DigitalNumbers []DigitalNumber `yaml:"digital_numbers,omitempty"`
	DigitalGauges  []DigitalGauge  `yaml:"digital_gauges,omitempty"`
	LinearGauges   []LinearGauge   `yaml:"linear_gauges,omitempty"`
	Timetables     []Timetable     `yaml:"timetables,omitempty"`
}

// This describes the panel background and its mapping onto the cab view.
type This struct {
	Resolution       float64     `yaml:"resolution"`
	Left             float64     `yaml:"left"`
	Right            float64     `yaml:"right"`
	Top              float64     `yaml:"top"`
	Bottom           float64     `yaml:"bottom"`
	DaytimeImage     string      `yaml:"daytime_image"`
	NighttimeImage   string      `yaml:"nighttime_image"`
	TransparentColor kvp.Color   `yaml:"transparent_color"`
	Center           kvp.Vector2 `yaml:"center"`
	Origin           kvp.Vector2 `yaml:"origin"`
}

type PilotLamp struct {
	Subject          string      `yaml:"subject"`
	Location         kvp.Vector2 `yaml:"location"`
	DaytimeImage     string      `yaml:"daytime_image"`
	NighttimeImage   string      `yaml:"nighttime_image"`
	TransparentColor kvp.Color   `yaml:"transparent_color"`
	Layer            int         `yaml:"layer"`
}

// Needle angles are in degrees; InitialAngle maps to Minimum and LastAngle
// to Maximum.
type Needle struct {
	Subject          string       `yaml:"subject"`
	Location         kvp.Vector2  `yaml:"location"`
	Radius           *float64     `yaml:"radius,omitempty"`
	DaytimeImage     string       `yaml:"daytime_image"`
	NighttimeImage   string       `yaml:"nighttime_image"`
	Color            kvp.Color    `yaml:"color"`
	TransparentColor kvp.Color    `yaml:"transparent_color"`
	Origin           *kvp.Vector2 `yaml:"origin,omitempty"`
	InitialAngle     float64      `yaml:"initial_angle"`
	LastAngle        float64      `yaml:"last_angle"`
	Minimum          float64      `yaml:"minimum"`
	Maximum          float64      `yaml:"maximum"`
	NaturalFreq      *float64     `yaml:"natural_freq,omitempty"`
	DampingRatio     *float64     `yaml:"damping_ratio,omitempty"`
	Backstop         bool         `yaml:"backstop"`
	Smoothed         bool         `yaml:"smoothed"`
	Layer            int          `yaml:"layer"`
}

type DigitalNumber struct {
	Subject          string      `yaml:"subject"`
	Location         kvp.Vector2 `yaml:"location"`
	DaytimeImage     string      `yaml:"daytime_image"`
	NighttimeImage   string      `yaml:"nighttime_image"`
	TransparentColor kvp.Color   `yaml:"transparent_color"`
	Interval         int         `yaml:"interval"`
	Layer            int         `yaml:"layer"`
}

type DigitalGauge struct {
	Subject      string      `yaml:"subject"`
	Location     kvp.Vector2 `yaml:"location"`
	Radius       float64     `yaml:"radius"`
	Color        kvp.Color   `yaml:"color"`
	InitialAngle float64     `yaml:"initial_angle"`
	LastAngle    float64     `yaml:"last_angle"`
	Minimum      float64     `yaml:"minimum"`
	Maximum      float64     `yaml:"maximum"`
	Step         float64     `yaml:"step"`
	Layer        int         `yaml:"layer"`
}

type LinearGauge struct {
	Subject          string      `yaml:"subject"`
	Location         kvp.Vector2 `yaml:"location"`
	Minimum          float64     `yaml:"minimum"`
	Maximum          float64     `yaml:"maximum"`
	Direction        kvp.Vector2 `yaml:"direction"`
	Width            int         `yaml:"width"`
	DaytimeImage     string      `yaml:"daytime_image"`
	NighttimeImage   string      `yaml:"nighttime_image"`
	TransparentColor kvp.Color   `yaml:"transparent_color"`
	Layer            int         `yaml:"layer"`
}

type Timetable struct {
	Location         kvp.Vector2 `yaml:"location"`
	Width            float64     `yaml:"width"`
	Height           float64     `yaml:"height"`
	TransparentColor kvp.Color   `yaml:"transparent_color"`
	Layer            int         `yaml:"layer"`
}

var (
	blue  = kvp.Color{B: 255, A: 255}
	white = kvp.Color{R: 255, G: 255, B: 255, A: 255}
)

func str[R any](key string, ptr func(*R) *string, opts ...kvp.FieldOption) kvp.Field[R] {
	return kvp.Scalar(key, kvp.String, ptr, opts...)
}

func number[R any](key string, ptr func(*R) *float64, def float64) kvp.Field[R] {
	return kvp.Scalar(key, kvp.LooseFloat64, ptr, kvp.Default(def))
}

func integer[R any](key string, ptr func(*R) *int, def int) kvp.Field[R] {
	return kvp.Scalar(key, kvp.LooseInt, ptr, kvp.Default(def))
}

func color[R any](key string, ptr func(*R) *kvp.Color, def kvp.Color) kvp.Field[R] {
	return kvp.Scalar(key, kvp.ColorCodec, ptr, kvp.Default(def))
}

func point[R any](key string, ptr func(*R) *kvp.Vector2) kvp.Field[R] {
	return kvp.Scalar(key, kvp.Vector2Codec, ptr, kvp.Default(kvp.Vector2{}))
}

// Schema is the panel2.cfg file schema.
var Schema = kvp.NewFile(kvp.IndexedDialect,
	kvp.VersionLine(func(p *Panel2) *string { return &p.Version }),
	kvp.Single(kvp.NewRecord("this",
		number("resolution", func(t *This) *float64 { return &t.Resolution }, 1024),
		number("left", func(t *This) *float64 { return &t.Left }, 0),
		number("right", func(t *This) *float64 { return &t.Right }, 1024),
		number("top", func(t *This) *float64 { return &t.Top }, 0),
		number("bottom", func(t *This) *float64 { return &t.Bottom }, 1024),
		str("daytimeimage", func(t *This) *string { return &t.DaytimeImage }),
		str("nighttimeimage", func(t *This) *string { return &t.NighttimeImage }),
		color("transparentcolor", func(t *This) *kvp.Color { return &t.TransparentColor }, blue),
		kvp.Scalar("center", kvp.Vector2Codec, func(t *This) *kvp.Vector2 { return &t.Center }, kvp.Default(kvp.Vector2{Y: 512})),
		kvp.Scalar("origin", kvp.Vector2Codec, func(t *This) *kvp.Vector2 { return &t.Origin }, kvp.Default(kvp.Vector2{Y: 512})),
	), func(p *Panel2) *This { return &p.This }),

	kvp.Repeated(kvp.NewRecord("pilotlamp",
		str("subject", func(l *PilotLamp) *string { return &l.Subject }, kvp.Required()),
		point("location", func(l *PilotLamp) *kvp.Vector2 { return &l.Location }),
		str("daytimeimage", func(l *PilotLamp) *string { return &l.DaytimeImage }),
		str("nighttimeimage", func(l *PilotLamp) *string { return &l.NighttimeImage }),
		color("transparentcolor", func(l *PilotLamp) *kvp.Color { return &l.TransparentColor }, blue),
		integer("layer", func(l *PilotLamp) *int { return &l.Layer }, 0),
	), func(p *Panel2) *[]PilotLamp { return &p.PilotLamps }),

	kvp.Repeated(kvp.NewRecord("needle",
		str("subject", func(n *Needle) *string { return &n.Subject }, kvp.Required()),
		point("location", func(n *Needle) *kvp.Vector2 { return &n.Location }),
		kvp.Scalar("radius", kvp.Optional(kvp.LooseFloat64), func(n *Needle) **float64 { return &n.Radius }),
		str("daytimeimage", func(n *Needle) *string { return &n.DaytimeImage }),
		str("nighttimeimage", func(n *Needle) *string { return &n.NighttimeImage }),
		color("color", func(n *Needle) *kvp.Color { return &n.Color }, white),
		color("transparentcolor", func(n *Needle) *kvp.Color { return &n.TransparentColor }, blue),
		kvp.Scalar("origin", kvp.Optional(kvp.Vector2Codec), func(n *Needle) **kvp.Vector2 { return &n.Origin }),
		number("initialangle", func(n *Needle) *float64 { return &n.InitialAngle }, -120),
		number("lastangle", func(n *Needle) *float64 { return &n.LastAngle }, 120),
		number("minimum", func(n *Needle) *float64 { return &n.Minimum }, 0),
		number("maximum", func(n *Needle) *float64 { return &n.Maximum }, 1000),
		kvp.Scalar("naturalfreq", kvp.Optional(kvp.LooseFloat64), func(n *Needle) **float64 { return &n.NaturalFreq }),
		kvp.Scalar("dampingratio", kvp.Optional(kvp.LooseFloat64), func(n *Needle) **float64 { return &n.DampingRatio }),
		kvp.Scalar("backstop", kvp.Bool, func(n *Needle) *bool { return &n.Backstop }, kvp.Default(false)),
		kvp.Scalar("smoothed", kvp.Bool, func(n *Needle) *bool { return &n.Smoothed }, kvp.Default(false)),
		integer("layer", func(n *Needle) *int { return &n.Layer }, 0),
	), func(p *Panel2) *[]Needle { return &p.Needles }),

	kvp.Repeated(kvp.NewRecord("digitalnumber",
		str("subject", func(d *DigitalNumber) *string { return &d.Subject }, kvp.Required()),
		point("location", func(d *DigitalNumber) *kvp.Vector2 { return &d.Location }),
		str("daytimeimage", func(d *DigitalNumber) *string { return &d.DaytimeImage }),
		str("nighttimeimage", func(d *DigitalNumber) *string { return &d.NighttimeImage }),
		color("transparentcolor", func(d *DigitalNumber) *kvp.Color { return &d.TransparentColor }, blue),
		integer("interval", func(d *DigitalNumber) *int { return &d.Interval }, 0),
		integer("layer", func(d *DigitalNumber) *int { return &d.Layer }, 0),
	), func(p *Panel2) *[]DigitalNumber { return &p.DigitalNumbers }),

	kvp.Repeated(kvp.NewRecord("digitalgauge",
		str("subject", func(g *DigitalGauge) *string { return &g.Subject }, kvp.Required()),
		point("location", func(g *DigitalGauge) *kvp.Vector2 { return &g.Location }),
		number("radius", func(g *DigitalGauge) *float64 { return &g.Radius }, 0),
		color("color", func(g *DigitalGauge) *kvp.Color { return &g.Color }, white),
		number("initialangle", func(g *DigitalGauge) *float64 { return &g.InitialAngle }, -120),
		number("lastangle", func(g *DigitalGauge) *float64 { return &g.LastAngle }, 120),
		number("minimum", func(g *DigitalGauge) *float64 { return &g.Minimum }, 0),
		number("maximum", func(g *DigitalGauge) *float64 { return &g.Maximum }, 1000),
		number("step", func(g *DigitalGauge) *float64 { return &g.Step }, 0),
		integer("layer", func(g *DigitalGauge) *int { return &g.Layer }, 0),
	), func(p *Panel2) *[]DigitalGauge { return &p.DigitalGauges }),

	kvp.Repeated(kvp.NewRecord("lineargauge",
		str("subject", func(g *LinearGauge) *string { return &g.Subject }, kvp.Required()),
		point("location", func(g *LinearGauge) *kvp.Vector2 { return &g.Location }),
		number("minimum", func(g *LinearGauge) *float64 { return &g.Minimum }, 0),
		number("maximum", func(g *LinearGauge) *float64 { return &g.Maximum }, 0),
		point("direction", func(g *LinearGauge) *kvp.Vector2 { return &g.Direction }),
		integer("width", func(g *LinearGauge) *int { return &g.Width }, 0),
		str("daytimeimage", func(g *LinearGauge) *string { return &g.DaytimeImage }),
		str("nighttimeimage", func(g *LinearGauge) *string { return &g.NighttimeImage }),
		color("transparentcolor", func(g *LinearGauge) *kvp.Color { return &g.TransparentColor }, blue),
		integer("layer", func(g *LinearGauge) *int { return &g.Layer }, 0),
	), func(p *Panel2) *[]LinearGauge { return &p.LinearGauges }),

	kvp.Repeated(kvp.NewRecord("timetable",
		point("location", func(t *Timetable) *kvp.Vector2 { return &t.Location }),
		number("width", func(t *Timetable) *float64 { return &t.Width }, 0),
		number("height", func(t *Timetable) *float64 { return &t.Height }, 0),
		color("transparentcolor", func(t *Timetable) *kvp.Color { return &t.TransparentColor }, blue),
		integer("layer", func(t *Timetable) *int { return &t.Layer }, 0),
	), func(p *Panel2) *[]Timetable { return &p.Timetables }),
)

// Parse binds a panel2.cfg file.
func Parse(text string) (*Panel2, kvp.Diagnostics) {
	p, diags := Schema.Parse(text)
	return &p, diags
}

// Defaults returns a panel2.cfg with the default background and no elements.
func Defaults() *Panel2 {
	p, _ := Schema.Parse("")
	return &p
}

// Marshal writes p back in panel2.cfg syntax.
func Marshal(p *Panel2) string {
	return Schema.Marshal(p)
}
