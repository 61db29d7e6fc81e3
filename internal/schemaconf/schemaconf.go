// Package schemaconf defines the in-memory GraphQL schema configuration graph
// that transforms operate on: named types with fields and arguments, plus the
// schema's root operation types. All collections preserve insertion order so
// rendering the configuration back to SDL is deterministic.
package schemaconf

import "graphql-rename/internal/ordered"

// Config is the root of the configuration graph. Types is keyed by type name;
// iteration order is the order types were declared in.
type Config struct {
	Types  *ordered.Map[*Type]
	Schema RootSchema
}

// RootSchema names the root operation types. An empty string means the root
// is unset. A non-empty value must resolve to a key in Config.Types.
type RootSchema struct {
	Query        string
	Mutation     string
	Subscription string
}

// Type is a named object or input-object definition.
type Type struct {
	// Input marks the type as an input object rather than an output object.
	Input  bool
	Fields *ordered.Map[*Field]
}

// Field is a named, typed member of a Type. TypeOf holds the bare type name;
// List/Required/ListItemRequired carry the wrapping modifiers.
type Field struct {
	TypeOf           string
	List             bool
	Required         bool
	ListItemRequired bool
	Args             *ordered.Map[*Arg]
}

// Arg is a named, typed argument of a Field, with the same type reference
// shape as a Field.
type Arg struct {
	TypeOf           string
	List             bool
	Required         bool
	ListItemRequired bool
}

// New returns an empty configuration.
func New() *Config {
	return &Config{Types: ordered.NewMap[*Type]()}
}

// NewType returns an empty output type.
func NewType() *Type {
	return &Type{Fields: ordered.NewMap[*Field]()}
}

// NewInputType returns an empty input type.
func NewInputType() *Type {
	return &Type{Input: true, Fields: ordered.NewMap[*Field]()}
}

// NewField returns a field referencing typeName with no modifiers.
func NewField(typeName string) *Field {
	return &Field{TypeOf: typeName, Args: ordered.NewMap[*Arg]()}
}
