package assets

// StyleLoader loads a CSS style by name, without the .css extension.
// Implementations return ErrStyleNotFound for unknown styles and
// ErrInvalidAssetName for unsafe names.
type StyleLoader interface {
	LoadStyle(name string) (string, error)
}
