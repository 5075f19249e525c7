// Package panel1 binds panel.cfg, the fixed-layout cab panel of the older
// format: one background, a handful of predefined instruments and lamps.
package panel1

import (
	"fmt"

	"github.com/BVE-Reborn/bve-reborn-sub001/kvp"
)

type Panel1 struct {
	Panel            Panel            `yaml:"panel"`
	View             View             `yaml:"view"`
	PressureGauge    PressureGauge    `yaml:"pressure_gauge"`
	Speedometer      Speedometer      `yaml:"speedometer"`
	DigitalIndicator DigitalIndicator `yaml:"digital_indicator"`
	PilotLamp        PilotLamp        `yaml:"pilot_lamp"`
	Watch            Watch            `yaml:"watch"`
	BrakeIndicator   BrakeIndicator   `yaml:"brake_indicator"`
}

type Panel struct {
	Background string      `yaml:"background"`
	Center     kvp.Vector2 `yaml:"center"`
	Origin     kvp.Vector2 `yaml:"origin"`
}

// View is the initial camera direction in degrees.
type View struct {
	Yaw   float64 `yaml:"yaw"`
	Pitch float64 `yaml:"pitch"`
}

type GaugeType int

const (
	NeedleGauge GaugeType = iota
	LEDGauge
)

var gaugeTypes = kvp.NewEnum("gauge type",
	kvp.Variant[GaugeType]{Value: NeedleGauge, Name: "Needle", Aliases: "針", Default: true},
	kvp.Variant[GaugeType]{Value: LEDGauge, Name: "LED"},
)

// Subject is the pressure a needle follows.
type Subject int

const (
	BrakeCylinder Subject = iota
	StraightAirPipe
	BrakePipe
	EqualizingReservoir
	MainReservoir
)

var subjects = kvp.NewEnum("needle subject",
	kvp.Variant[Subject]{Value: BrakeCylinder, Name: "bc", Aliases: "ブレーキシリンダ", Default: true},
	kvp.Variant[Subject]{Value: StraightAirPipe, Name: "sap", Aliases: "直通管"},
	kvp.Variant[Subject]{Value: BrakePipe, Name: "bp", Aliases: "ブレーキ管;制動管"},
	kvp.Variant[Subject]{Value: EqualizingReservoir, Name: "er", Aliases: "釣り合い空気溜め"},
	kvp.Variant[Subject]{Value: MainReservoir, Name: "mr", Aliases: "元空気溜め"},
)

func (s Subject) MarshalYAML() (any, error) { return subjects.Name(s), nil }

type PressureUnit int

const (
	KPa PressureUnit = iota
	KgfPerCm2
)

var pressureUnits = kvp.NewEnum("pressure unit",
	kvp.Variant[PressureUnit]{Value: KPa, Name: "kpa", Default: true},
	kvp.Variant[PressureUnit]{Value: KgfPerCm2, Name: "kgf/cm2", Aliases: "kgf/cm²"},
)

// Needle is "subject, #RRGGBB".
type Needle struct {
	Subject Subject   `yaml:"subject"`
	Color   kvp.Color `yaml:"color"`
}

// hexColor writes colors as "#RRGGBB[AA]" so they can share a comma-separated
// value with other parts.
var hexColor = kvp.CodecFunc(kvp.ColorCodec.Decode, func(c kvp.Color) (string, bool) {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B), true
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A), true
})

var needle = kvp.NewComposite(',',
	kvp.Component(subjects, func(n *Needle) *Subject { return &n.Subject }, BrakeCylinder),
	kvp.Component(hexColor, func(n *Needle) *kvp.Color { return &n.Color }, kvp.Color{A: 255}),
)

type PressureGauge struct {
	Type        GaugeType    `yaml:"type"`
	LowerNeedle *Needle      `yaml:"lower_needle,omitempty"`
	UpperNeedle *Needle      `yaml:"upper_needle,omitempty"`
	Center      kvp.Vector2  `yaml:"center"`
	Radius      float64      `yaml:"radius"`
	Background  string       `yaml:"background"`
	Cover       string       `yaml:"cover"`
	Unit        PressureUnit `yaml:"unit"`
	Minimum     float64      `yaml:"minimum"`
	Maximum     float64      `yaml:"maximum"`
	Angle       float64      `yaml:"angle"`
}

type Speedometer struct {
	Type       GaugeType   `yaml:"type"`
	Needle     kvp.Color   `yaml:"needle"`
	Atc        string      `yaml:"atc"`
	AtcRadius  float64     `yaml:"atc_radius"`
	Center     kvp.Vector2 `yaml:"center"`
	Radius     float64     `yaml:"radius"`
	Background string      `yaml:"background"`
	Cover      string      `yaml:"cover"`
	Angle      float64     `yaml:"angle"`
	Maximum    float64     `yaml:"maximum"`
}

type DigitalIndicator struct {
	Number string      `yaml:"number"`
	Corner kvp.Vector2 `yaml:"corner"`
	Size   kvp.Vector2 `yaml:"size"`
	Unit   string      `yaml:"unit"`
}

type PilotLamp struct {
	TurnOn  string      `yaml:"turn_on"`
	TurnOff string      `yaml:"turn_off"`
	Corner  kvp.Vector2 `yaml:"corner"`
}

type Watch struct {
	Background string      `yaml:"background"`
	Center     kvp.Vector2 `yaml:"center"`
	Radius     float64     `yaml:"radius"`
	Needle     kvp.Color   `yaml:"needle"`
}

type BrakeIndicator struct {
	Image  string      `yaml:"image"`
	Corner kvp.Vector2 `yaml:"corner"`
	Width  float64     `yaml:"width"`
}

var white = kvp.Color{R: 255, G: 255, B: 255, A: 255}

// Schema is the panel.cfg file schema. Japanese section and key names are
// accepted as aliases.
var Schema = kvp.NewFile(kvp.IndexedDialect,
	kvp.Single(kvp.NewRecord("panel",
		kvp.Scalar("background", kvp.String, func(p *Panel) *string { return &p.Background }, kvp.Alias("背景")),
		kvp.Scalar("center", kvp.Vector2Codec, func(p *Panel) *kvp.Vector2 { return &p.Center }, kvp.Alias("中心"), kvp.Default(kvp.Vector2{})),
		kvp.Scalar("origin", kvp.Vector2Codec, func(p *Panel) *kvp.Vector2 { return &p.Origin }, kvp.Alias("原点"), kvp.Default(kvp.Vector2{})),
	).Alias("パネル"), func(f *Panel1) *Panel { return &f.Panel }),

	kvp.Single(kvp.NewRecord("view",
		kvp.Scalar("yaw", kvp.LooseFloat64, func(v *View) *float64 { return &v.Yaw }, kvp.Default(0.0)),
		kvp.Scalar("pitch", kvp.LooseFloat64, func(v *View) *float64 { return &v.Pitch }, kvp.Default(0.0)),
	).Alias("視点"), func(f *Panel1) *View { return &f.View }),

	kvp.Single(kvp.NewRecord("pressuregauge",
		kvp.Scalar("type", gaugeTypes, func(g *PressureGauge) *GaugeType { return &g.Type }, kvp.Alias("形態"), kvp.Default(NeedleGauge)),
		kvp.Scalar("lowerneedle", kvp.Optional[Needle](needle), func(g *PressureGauge) **Needle { return &g.LowerNeedle }, kvp.Alias("短針")),
		kvp.Scalar("upperneedle", kvp.Optional[Needle](needle), func(g *PressureGauge) **Needle { return &g.UpperNeedle }, kvp.Alias("長針")),
		kvp.Scalar("center", kvp.Vector2Codec, func(g *PressureGauge) *kvp.Vector2 { return &g.Center }, kvp.Alias("中心"), kvp.Default(kvp.Vector2{})),
		kvp.Scalar("radius", kvp.LooseFloat64, func(g *PressureGauge) *float64 { return &g.Radius }, kvp.Alias("半径"), kvp.Default(16.0)),
		kvp.Scalar("background", kvp.String, func(g *PressureGauge) *string { return &g.Background }, kvp.Alias("背景")),
		kvp.Scalar("cover", kvp.String, func(g *PressureGauge) *string { return &g.Cover }, kvp.Alias("ふた")),
		kvp.Scalar("unit", pressureUnits, func(g *PressureGauge) *PressureUnit { return &g.Unit }, kvp.Alias("単位"), kvp.Default(KPa)),
		kvp.Scalar("minimum", kvp.LooseFloat64, func(g *PressureGauge) *float64 { return &g.Minimum }, kvp.Alias("最小"), kvp.Default(0.0)),
		kvp.Scalar("maximum", kvp.LooseFloat64, func(g *PressureGauge) *float64 { return &g.Maximum }, kvp.Alias("最大"), kvp.Default(1000.0)),
		kvp.Scalar("angle", kvp.LooseFloat64, func(g *PressureGauge) *float64 { return &g.Angle }, kvp.Alias("角度"), kvp.Default(45.0)),
	).Alias("圧力計"), func(f *Panel1) *PressureGauge { return &f.PressureGauge }),

	kvp.Single(kvp.NewRecord("speedometer",
		kvp.Scalar("type", gaugeTypes, func(s *Speedometer) *GaugeType { return &s.Type }, kvp.Alias("形態"), kvp.Default(NeedleGauge)),
		kvp.Scalar("needle", kvp.ColorCodec, func(s *Speedometer) *kvp.Color { return &s.Needle }, kvp.Alias("針"), kvp.Default(white)),
		kvp.Scalar("atc", kvp.String, func(s *Speedometer) *string { return &s.Atc }),
		kvp.Scalar("atcradius", kvp.LooseFloat64, func(s *Speedometer) *float64 { return &s.AtcRadius }, kvp.Alias("atc半径"), kvp.Default(0.0)),
		kvp.Scalar("center", kvp.Vector2Codec, func(s *Speedometer) *kvp.Vector2 { return &s.Center }, kvp.Alias("中心"), kvp.Default(kvp.Vector2{})),
		kvp.Scalar("radius", kvp.LooseFloat64, func(s *Speedometer) *float64 { return &s.Radius }, kvp.Alias("半径"), kvp.Default(16.0)),
		kvp.Scalar("background", kvp.String, func(s *Speedometer) *string { return &s.Background }, kvp.Alias("背景")),
		kvp.Scalar("cover", kvp.String, func(s *Speedometer) *string { return &s.Cover }, kvp.Alias("ふた")),
		kvp.Scalar("angle", kvp.LooseFloat64, func(s *Speedometer) *float64 { return &s.Angle }, kvp.Alias("角度"), kvp.Default(45.0)),
		kvp.Scalar("maximum", kvp.LooseFloat64, func(s *Speedometer) *float64 { return &s.Maximum }, kvp.Alias("最大"), kvp.Default(100.0)),
	).Alias("速度計"), func(f *Panel1) *Speedometer { return &f.Speedometer }),

	kvp.Single(kvp.NewRecord("digitalindicator",
		kvp.Scalar("number", kvp.String, func(d *DigitalIndicator) *string { return &d.Number }, kvp.Alias("数字")),
		kvp.Scalar("corner", kvp.Vector2Codec, func(d *DigitalIndicator) *kvp.Vector2 { return &d.Corner }, kvp.Alias("左上"), kvp.Default(kvp.Vector2{})),
		kvp.Scalar("size", kvp.Vector2Codec, func(d *DigitalIndicator) *kvp.Vector2 { return &d.Size }, kvp.Alias("サイズ"), kvp.Default(kvp.Vector2{})),
		kvp.Scalar("unit", kvp.String, func(d *DigitalIndicator) *string { return &d.Unit }, kvp.Alias("単位")),
	).Alias("デジタル速度計"), func(f *Panel1) *DigitalIndicator { return &f.DigitalIndicator }),

	kvp.Single(kvp.NewRecord("pilotlamp",
		kvp.Scalar("turnon", kvp.String, func(p *PilotLamp) *string { return &p.TurnOn }, kvp.Alias("点灯")),
		kvp.Scalar("turnoff", kvp.String, func(p *PilotLamp) *string { return &p.TurnOff }, kvp.Alias("消灯")),
		kvp.Scalar("corner", kvp.Vector2Codec, func(p *PilotLamp) *kvp.Vector2 { return &p.Corner }, kvp.Alias("左上"), kvp.Default(kvp.Vector2{})),
	).Alias("知らせ灯"), func(f *Panel1) *PilotLamp { return &f.PilotLamp }),

	kvp.Single(kvp.NewRecord("watch",
		kvp.Scalar("background", kvp.String, func(w *Watch) *string { return &w.Background }, kvp.Alias("背景")),
		kvp.Scalar("center", kvp.Vector2Codec, func(w *Watch) *kvp.Vector2 { return &w.Center }, kvp.Alias("中心"), kvp.Default(kvp.Vector2{})),
		kvp.Scalar("radius", kvp.LooseFloat64, func(w *Watch) *float64 { return &w.Radius }, kvp.Alias("半径"), kvp.Default(16.0)),
		kvp.Scalar("needle", kvp.ColorCodec, func(w *Watch) *kvp.Color { return &w.Needle }, kvp.Alias("針"), kvp.Default(white)),
	).Alias("時計"), func(f *Panel1) *Watch { return &f.Watch }),

	kvp.Single(kvp.NewRecord("brakeindicator",
		kvp.Scalar("image", kvp.String, func(b *BrakeIndicator) *string { return &b.Image }, kvp.Alias("画像")),
		kvp.Scalar("corner", kvp.Vector2Codec, func(b *BrakeIndicator) *kvp.Vector2 { return &b.Corner }, kvp.Alias("左上"), kvp.Default(kvp.Vector2{})),
		kvp.Scalar("width", kvp.LooseFloat64, func(b *BrakeIndicator) *float64 { return &b.Width }, kvp.Alias("幅"), kvp.Default(0.0)),
	).Alias("ブレーキ表示灯"), func(f *Panel1) *BrakeIndicator { return &f.BrakeIndicator }),
)

// Parse binds a panel.cfg file.
func Parse(text string) (*Panel1, kvp.Diagnostics) {
	p, diags := Schema.Parse(text)
	return &p, diags
}

// Defaults returns a panel.cfg with every field at its default.
func Defaults() *Panel1 {
	p, _ := Schema.Parse("")
	return &p
}

// Marshal writes p back in panel.cfg syntax.
func Marshal(p *Panel1) string {
	return Schema.Marshal(p)
}
