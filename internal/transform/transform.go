// Package transform contains rewrites over a schema configuration graph.
package transform

import (
	"graphql-rename/internal/schemaconf"
	"graphql-rename/internal/valid"
)

// Transform rewrites a configuration, producing either the rewritten value or
// an accumulated list of validation errors. A Transform takes ownership of
// the configuration for the duration of the call; callers must not hold other
// references to it while Apply runs. On failure the configuration is returned
// to the caller unmodified.
type Transform interface {
	Apply(cfg *schemaconf.Config) valid.Valid[*schemaconf.Config]
}
