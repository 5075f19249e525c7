package kvp

// Dialect describes one of the two header/section syntaxes shared by the
// configuration formats. Dialects are values; formats pick one when their
// FileSchema is built and never change it.
type Dialect struct {
	Name string

	// Comment truncates a line at its first occurrence. There is no escaping.
	Comment byte

	// Indexed selects bracketed headers ("[car0]", "[coupler 1]").
	// Otherwise headers are bare keywords from the schema, optionally
	// prefixed with HeaderMarker, and the first bare line is a version marker.
	Indexed bool

	HeaderOpen   byte
	HeaderClose  byte
	HeaderMarker byte

	KeySeparator byte
	SubDelimiter byte
}

var (
	// IndexedDialect is the bracketed family: extensions.cfg, panel.cfg,
	// panel2.cfg, sound.cfg, *.animated and ats.cfg.
	IndexedDialect = Dialect{
		Name:         "indexed",
		Comment:      ';',
		Indexed:      true,
		HeaderOpen:   '[',
		HeaderClose:  ']',
		KeySeparator: '=',
		SubDelimiter: ',',
	}

	// OrderedDialect is the plain ordered-block family used by train.dat.
	OrderedDialect = Dialect{
		Name:         "ordered",
		Comment:      ';',
		HeaderMarker: '#',
		KeySeparator: '=',
		SubDelimiter: ',',
	}
)

// String returns the dialect name.
func (d Dialect) String() string {
	return d.Name
}
