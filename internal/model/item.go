package model

// ItemKind discriminates the two catalog entity kinds where a value, not a
// type, is needed (cache paths, favorites removal).
type ItemKind string

const (
	KindMap     ItemKind = "map"
	KindMappack ItemKind = "mappack"
)

// ListItem is the closed set of things a result list can hold. Only
// *MapRecord and *MappackRecord implement it; consumers type-switch on the
// concrete type rather than inspecting a side "kind" tag.
type ListItem interface {
	Label() string
	InfoText() string
	isListItem()
}
