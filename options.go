package minilang

// Options holds configuration for parsing MiniLang source code.
type Options struct {
	// Filename is the name reported in diagnostic positions.
	// Empty means positions carry no filename.
	Filename string
}

// normalize returns a usable Options value, substituting defaults
// for a nil receiver.
func (o *Options) normalize() Options {
	if o == nil {
		return Options{}
	}
	return *o
}
