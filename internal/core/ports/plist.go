package ports

// PropertyListDecoder converts raw property-list bytes into a generic tree.
// Dictionaries decode to map[string]any, arrays to []any.
//
//go:generate mockgen -source=plist.go -destination=mocks/mock_plist.go -package=mocks
type PropertyListDecoder interface {
	Decode(data []byte) (any, error)
}
