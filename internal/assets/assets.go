package assets

// DefaultStyle is the style applied when none is configured.
const DefaultStyle = "default"

var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads an embedded style by name.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// StyleNames lists the embedded styles.
func StyleNames() []string {
	return defaultLoader.Names()
}
