// Package animated binds *.animated files: includes of static objects plus
// animated objects and sounds driven by function scripts. Function scripts
// are kept as text.
package animated

import "github.com/BVE-Reborn/bve-reborn-sub001/kvp"

type Animated struct {
	Includes          []Include          `yaml:"includes,omitempty"`
	Objects           []Object           `yaml:"objects,omitempty"`
	Sounds            []Sound            `yaml:"sounds,omitempty"`
	StateChangeSounds []StateChangeSound `yaml:"state_change_sounds,omitempty"`
}

// Include places a set of static object files at Position.
type Include struct {
	Position kvp.Vector3 `yaml:"position"`
	Files    []string    `yaml:"files"`
}

// Axis is a direction and the function that scales movement along it.
type Axis struct {
	Direction kvp.Vector3 `yaml:"direction"`
	Function  string      `yaml:"function,omitempty"`
}

// Damping is a natural frequency and damping ratio pair.
type Damping = kvp.Vector2

type Object struct {
	Position              kvp.Vector3 `yaml:"position"`
	States                []string    `yaml:"states,omitempty"`
	StateFunction         string      `yaml:"state_function,omitempty"`
	TranslateX            Axis        `yaml:"translate_x"`
	TranslateY            Axis        `yaml:"translate_y"`
	TranslateZ            Axis        `yaml:"translate_z"`
	RotateX               Axis        `yaml:"rotate_x"`
	RotateY               Axis        `yaml:"rotate_y"`
	RotateZ               Axis        `yaml:"rotate_z"`
	RotateXDamping        *Damping    `yaml:"rotate_x_damping,omitempty"`
	RotateYDamping        *Damping    `yaml:"rotate_y_damping,omitempty"`
	RotateZDamping        *Damping    `yaml:"rotate_z_damping,omitempty"`
	TextureShiftX         kvp.Vector2 `yaml:"texture_shift_x_direction"`
	TextureShiftY         kvp.Vector2 `yaml:"texture_shift_y_direction"`
	TextureShiftXFunction string      `yaml:"texture_shift_x_function,omitempty"`
	TextureShiftYFunction string      `yaml:"texture_shift_y_function,omitempty"`
	TrackFollowerFunction string      `yaml:"track_follower_function,omitempty"`
	RefreshRate           float64     `yaml:"refresh_rate"`
}

type Sound struct {
	FileName              string      `yaml:"file_name"`
	Position              kvp.Vector3 `yaml:"position"`
	Volume                float64     `yaml:"volume"`
	Pitch                 float64     `yaml:"pitch"`
	Radius                float64     `yaml:"radius"`
	VolumeFunction        string      `yaml:"volume_function,omitempty"`
	PitchFunction         string      `yaml:"pitch_function,omitempty"`
	TrackFollowerFunction string      `yaml:"track_follower_function,omitempty"`
}

// StateChangeSound plays FileNames[i] when the object enters state i.
type StateChangeSound struct {
	FileNames  []string    `yaml:"file_names"`
	Position   kvp.Vector3 `yaml:"position"`
	Volume     float64     `yaml:"volume"`
	Pitch      float64     `yaml:"pitch"`
	Radius     float64     `yaml:"radius"`
	PlayOnShow bool        `yaml:"play_on_show"`
	PlayOnHide bool        `yaml:"play_on_hide"`
}

var (
	unitX = kvp.Vector3{X: 1}
	unitY = kvp.Vector3{Y: 1}
	unitZ = kvp.Vector3{Z: 1}
)

func axis(name string, ptr func(*Object) *Axis, def kvp.Vector3) []kvp.Field[Object] {
	return []kvp.Field[Object]{
		kvp.Scalar(name+"direction", kvp.Vector3Codec, func(o *Object) *kvp.Vector3 { return &ptr(o).Direction }, kvp.Default(def)),
		kvp.Scalar(name+"function", kvp.String, func(o *Object) *string { return &ptr(o).Function }),
	}
}

func objectFields() []kvp.Field[Object] {
	fields := []kvp.Field[Object]{
		kvp.Scalar("position", kvp.Vector3Codec, func(o *Object) *kvp.Vector3 { return &o.Position }, kvp.Default(kvp.Vector3{})),
		kvp.Scalar("states", kvp.List(kvp.String), func(o *Object) *[]string { return &o.States }),
		kvp.Scalar("statefunction", kvp.String, func(o *Object) *string { return &o.StateFunction }),
	}
	fields = append(fields, axis("translatex", func(o *Object) *Axis { return &o.TranslateX }, unitX)...)
	fields = append(fields, axis("translatey", func(o *Object) *Axis { return &o.TranslateY }, unitY)...)
	fields = append(fields, axis("translatez", func(o *Object) *Axis { return &o.TranslateZ }, unitZ)...)
	fields = append(fields, axis("rotatex", func(o *Object) *Axis { return &o.RotateX }, unitX)...)
	fields = append(fields, axis("rotatey", func(o *Object) *Axis { return &o.RotateY }, unitY)...)
	fields = append(fields, axis("rotatez", func(o *Object) *Axis { return &o.RotateZ }, unitZ)...)
	return append(fields,
		kvp.Scalar("rotatexdamping", kvp.Optional(kvp.Vector2Codec), func(o *Object) **Damping { return &o.RotateXDamping }),
		kvp.Scalar("rotateydamping", kvp.Optional(kvp.Vector2Codec), func(o *Object) **Damping { return &o.RotateYDamping }),
		kvp.Scalar("rotatezdamping", kvp.Optional(kvp.Vector2Codec), func(o *Object) **Damping { return &o.RotateZDamping }),
		kvp.Scalar("textureshiftxdirection", kvp.Vector2Codec, func(o *Object) *kvp.Vector2 { return &o.TextureShiftX }, kvp.Default(kvp.Vector2{X: 1})),
		kvp.Scalar("textureshiftydirection", kvp.Vector2Codec, func(o *Object) *kvp.Vector2 { return &o.TextureShiftY }, kvp.Default(kvp.Vector2{Y: 1})),
		kvp.Scalar("textureshiftxfunction", kvp.String, func(o *Object) *string { return &o.TextureShiftXFunction }),
		kvp.Scalar("textureshiftyfunction", kvp.String, func(o *Object) *string { return &o.TextureShiftYFunction }),
		kvp.Scalar("trackfollowerfunction", kvp.String, func(o *Object) *string { return &o.TrackFollowerFunction }),
		kvp.Scalar("refreshrate", kvp.LooseFloat64, func(o *Object) *float64 { return &o.RefreshRate }, kvp.Default(0.0)),
	)
}

// Schema is the *.animated file schema.
var Schema = kvp.NewFile(kvp.IndexedDialect,
	kvp.Repeated(kvp.NewRecord("include",
		kvp.Scalar("position", kvp.Vector3Codec, func(i *Include) *kvp.Vector3 { return &i.Position }, kvp.Default(kvp.Vector3{})),
		kvp.Variadic("file", kvp.String, func(i *Include) *[]string { return &i.Files }, kvp.Bare()),
	), func(a *Animated) *[]Include { return &a.Includes }),

	kvp.Repeated(kvp.NewRecord("object", objectFields()...),
		func(a *Animated) *[]Object { return &a.Objects }),

	kvp.Repeated(kvp.NewRecord("sound",
		kvp.Scalar("filename", kvp.String, func(s *Sound) *string { return &s.FileName }, kvp.Required()),
		kvp.Scalar("position", kvp.Vector3Codec, func(s *Sound) *kvp.Vector3 { return &s.Position }, kvp.Default(kvp.Vector3{})),
		kvp.Scalar("volume", kvp.LooseFloat64, func(s *Sound) *float64 { return &s.Volume }, kvp.Default(1.0)),
		kvp.Scalar("pitch", kvp.LooseFloat64, func(s *Sound) *float64 { return &s.Pitch }, kvp.Default(1.0)),
		kvp.Scalar("radius", kvp.LooseFloat64, func(s *Sound) *float64 { return &s.Radius }, kvp.Default(30.0)),
		kvp.Scalar("volumefunction", kvp.String, func(s *Sound) *string { return &s.VolumeFunction }),
		kvp.Scalar("pitchfunction", kvp.String, func(s *Sound) *string { return &s.PitchFunction }),
		kvp.Scalar("trackfollowerfunction", kvp.String, func(s *Sound) *string { return &s.TrackFollowerFunction }),
	), func(a *Animated) *[]Sound { return &a.Sounds }),

	kvp.Repeated(kvp.NewRecord("statechangesound",
		kvp.Scalar("filenames", kvp.List(kvp.String), func(s *StateChangeSound) *[]string { return &s.FileNames }, kvp.Alias("filename"), kvp.Required()),
		kvp.Scalar("position", kvp.Vector3Codec, func(s *StateChangeSound) *kvp.Vector3 { return &s.Position }, kvp.Default(kvp.Vector3{})),
		kvp.Scalar("volume", kvp.LooseFloat64, func(s *StateChangeSound) *float64 { return &s.Volume }, kvp.Default(1.0)),
		kvp.Scalar("pitch", kvp.LooseFloat64, func(s *StateChangeSound) *float64 { return &s.Pitch }, kvp.Default(1.0)),
		kvp.Scalar("radius", kvp.LooseFloat64, func(s *StateChangeSound) *float64 { return &s.Radius }, kvp.Default(30.0)),
		kvp.Scalar("playonshow", kvp.Bool, func(s *StateChangeSound) *bool { return &s.PlayOnShow }, kvp.Default(false)),
		kvp.Scalar("playonhide", kvp.Bool, func(s *StateChangeSound) *bool { return &s.PlayOnHide }, kvp.Default(false)),
	), func(a *Animated) *[]StateChangeSound { return &a.StateChangeSounds }),
)

// Parse binds a *.animated file.
func Parse(text string) (*Animated, kvp.Diagnostics) {
	a, diags := Schema.Parse(text)
	return &a, diags
}

// Defaults returns an empty animated object.
func Defaults() *Animated {
	a, _ := Schema.Parse("")
	return &a
}

// Marshal writes a back in *.animated syntax.
func Marshal(a *Animated) string {
	return Schema.Marshal(a)
}
