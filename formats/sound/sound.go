// Package sound binds sound.cfg, which maps train events to sound files.
// Section and key names may be given in English or Japanese.
package sound

import "github.com/BVE-Reborn/bve-reborn-sub001/kvp"

type Sound struct {
	Version          string     `yaml:"version,omitempty"`
	Run              Table      `yaml:"run"`
	Flange           Table      `yaml:"flange"`
	Motor            Table      `yaml:"motor"`
	Switch           Table      `yaml:"switch"`
	Brake            Brake      `yaml:"brake"`
	Compressor       Compressor `yaml:"compressor"`
	Suspension       Suspension `yaml:"suspension"`
	Horn             Horn       `yaml:"horn"`
	Door             Door       `yaml:"door"`
	Ats              Table      `yaml:"ats"`
	Buzzer           Buzzer     `yaml:"buzzer"`
	PilotLamp        OnOff      `yaml:"pilot_lamp"`
	BrakeHandle      Handle     `yaml:"brake_handle"`
	MasterController Handle     `yaml:"master_controller"`
	Reverser         OnOff      `yaml:"reverser"`
	Breaker          OnOff      `yaml:"breaker"`
	Others           Others     `yaml:"others"`
}

// Table maps a numeric slot (rail type, motor sound index, ATS sound) to a
// file.
type Table struct {
	Sounds map[int]string `yaml:"sounds,omitempty"`
}

type Brake struct {
	BcReleaseHigh string `yaml:"bc_release_high"`
	BcRelease     string `yaml:"bc_release"`
	BcReleaseFull string `yaml:"bc_release_full"`
	Emergency     string `yaml:"emergency"`
	BpDecomp      string `yaml:"bp_decomp"`
}

type Compressor struct {
	Attack  string `yaml:"attack"`
	Loop    string `yaml:"loop"`
	Release string `yaml:"release"`
}

type Suspension struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

type Horn struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Music     string `yaml:"music"`
}

type Door struct {
	OpenLeft   string `yaml:"open_left"`
	OpenRight  string `yaml:"open_right"`
	CloseLeft  string `yaml:"close_left"`
	CloseRight string `yaml:"close_right"`
}

type Buzzer struct {
	Correct string `yaml:"correct"`
}

type OnOff struct {
	On  string `yaml:"on"`
	Off string `yaml:"off"`
}

type Handle struct {
	Apply   string `yaml:"apply"`
	Release string `yaml:"release"`
	Min     string `yaml:"min"`
	Max     string `yaml:"max"`
}

type Others struct {
	Noise string `yaml:"noise"`
	Shoe  string `yaml:"shoe"`
	Halt  string `yaml:"halt"`
}

func file[R any](key string, ptr func(*R) *string, aliases ...string) kvp.Field[R] {
	return kvp.Scalar(key, kvp.String, ptr, kvp.Alias(aliases...))
}

func table(name string, ptr func(*Sound) *Table, aliases ...string) kvp.SectionBinding[Sound] {
	return kvp.Single(kvp.NewRecord(name,
		kvp.Numbered("sound", kvp.String, func(t *Table) *map[int]string { return &t.Sounds }),
	).Alias(aliases...), ptr)
}

func onOff(name string, ptr func(*Sound) *OnOff, aliases ...string) kvp.SectionBinding[Sound] {
	return kvp.Single(kvp.NewRecord(name,
		file("on", func(o *OnOff) *string { return &o.On }, "入"),
		file("off", func(o *OnOff) *string { return &o.Off }, "切"),
	).Alias(aliases...), ptr)
}

func handle(name string, ptr func(*Sound) *Handle, aliases ...string) kvp.SectionBinding[Sound] {
	return kvp.Single(kvp.NewRecord(name,
		file("apply", func(h *Handle) *string { return &h.Apply }, "入"),
		file("release", func(h *Handle) *string { return &h.Release }, "切"),
		file("min", func(h *Handle) *string { return &h.Min }, "最小"),
		file("max", func(h *Handle) *string { return &h.Max }, "最大"),
	).Alias(aliases...), ptr)
}

// Schema is the sound.cfg file schema.
var Schema = kvp.NewFile(kvp.IndexedDialect,
	kvp.VersionLine(func(s *Sound) *string { return &s.Version }),
	table("run", func(s *Sound) *Table { return &s.Run }, "走行音"),
	table("flange", func(s *Sound) *Table { return &s.Flange }, "フランジ"),
	table("motor", func(s *Sound) *Table { return &s.Motor }, "モーター"),
	table("switch", func(s *Sound) *Table { return &s.Switch }, "分岐器"),

	kvp.Single(kvp.NewRecord("brake",
		file("bc release high", func(b *Brake) *string { return &b.BcReleaseHigh }, "bc排気(高)"),
		file("bc release", func(b *Brake) *string { return &b.BcRelease }, "bc排気"),
		file("bc release full", func(b *Brake) *string { return &b.BcReleaseFull }, "bc排気(緩め)"),
		file("emergency", func(b *Brake) *string { return &b.Emergency }, "非常"),
		file("bp decomp", func(b *Brake) *string { return &b.BpDecomp }, "bp減圧"),
	).Alias("ブレーキ"), func(s *Sound) *Brake { return &s.Brake }),

	kvp.Single(kvp.NewRecord("compressor",
		file("attack", func(c *Compressor) *string { return &c.Attack }, "始動"),
		file("loop", func(c *Compressor) *string { return &c.Loop }, "ループ"),
		file("release", func(c *Compressor) *string { return &c.Release }, "停止"),
	).Alias("圧縮機"), func(s *Sound) *Compressor { return &s.Compressor }),

	kvp.Single(kvp.NewRecord("suspension",
		file("left", func(x *Suspension) *string { return &x.Left }, "左"),
		file("right", func(x *Suspension) *string { return &x.Right }, "右"),
	).Alias("空気ばね"), func(s *Sound) *Suspension { return &s.Suspension }),

	kvp.Single(kvp.NewRecord("horn",
		file("primary", func(h *Horn) *string { return &h.Primary }, "警笛"),
		file("secondary", func(h *Horn) *string { return &h.Secondary }, "電子警笛"),
		file("music", func(h *Horn) *string { return &h.Music }, "ミュージックホーン"),
	).Alias("警笛"), func(s *Sound) *Horn { return &s.Horn }),

	kvp.Single(kvp.NewRecord("door",
		file("open left", func(d *Door) *string { return &d.OpenLeft }, "左開"),
		file("open right", func(d *Door) *string { return &d.OpenRight }, "右開"),
		file("close left", func(d *Door) *string { return &d.CloseLeft }, "左閉"),
		file("close right", func(d *Door) *string { return &d.CloseRight }, "右閉"),
	).Alias("ドア"), func(s *Sound) *Door { return &s.Door }),

	table("ats", func(s *Sound) *Table { return &s.Ats }),

	kvp.Single(kvp.NewRecord("buzzer",
		file("correct", func(b *Buzzer) *string { return &b.Correct }, "正解"),
	).Alias("ブザー"), func(s *Sound) *Buzzer { return &s.Buzzer }),

	onOff("pilot lamp", func(s *Sound) *OnOff { return &s.PilotLamp }, "知らせ灯"),
	handle("brake handle", func(s *Sound) *Handle { return &s.BrakeHandle }, "ブレーキハンドル"),
	handle("master controller", func(s *Sound) *Handle { return &s.MasterController }, "マスコン"),
	onOff("reverser", func(s *Sound) *OnOff { return &s.Reverser }, "レバーサー"),
	onOff("breaker", func(s *Sound) *OnOff { return &s.Breaker }, "ブレーカー"),

	kvp.Single(kvp.NewRecord("others",
		file("noise", func(o *Others) *string { return &o.Noise }, "ノイズ"),
		file("shoe", func(o *Others) *string { return &o.Shoe }, "制輪子"),
		file("halt", func(o *Others) *string { return &o.Halt }, "停車"),
	).Alias("その他"), func(s *Sound) *Others { return &s.Others }),
)

// Parse binds a sound.cfg file.
func Parse(text string) (*Sound, kvp.Diagnostics) {
	s, diags := Schema.Parse(text)
	return &s, diags
}

// Defaults returns a sound.cfg with no sounds assigned.
func Defaults() *Sound {
	s, _ := Schema.Parse("")
	return &s
}

// Marshal writes s back in sound.cfg syntax.
func Marshal(s *Sound) string {
	return Schema.Marshal(s)
}
