package transform

import (
	"graphql-rename/internal/ordered"
	"graphql-rename/internal/schemaconf"
	"graphql-rename/internal/valid"
)

// RenamePair maps an existing type name to its replacement.
type RenamePair struct {
	From string
	To   string
}

// RenameTypes renames existing types throughout a configuration: the type
// definitions themselves, the schema root pointers, and every field and
// argument type reference. Every From name must exist in the configuration;
// missing names are reported together, one error per pair, and in that case
// the configuration is left untouched.
type RenameTypes struct {
	names *ordered.Map[string]
}

// NewRenameTypes builds the transform from (from, to) pairs. Pairs are kept
// in order; a duplicate From overwrites the earlier pair's target.
func NewRenameTypes(pairs []RenamePair) *RenameTypes {
	names := ordered.NewMap[string]()
	for _, p := range pairs {
		names.Set(p.From, p.To)
	}
	return &RenameTypes{names: names}
}

// Apply implements Transform.
func (r *RenameTypes) Apply(cfg *schemaconf.Config) valid.Valid[*schemaconf.Config] {
	// Check every pair before mutating anything, so a failed rename never
	// leaves the caller with a half-rewritten configuration.
	checked := valid.FromIter(r.names.Keys(), func(from string) valid.Valid[struct{}] {
		if !cfg.Types.Has(from) {
			return valid.Failf[struct{}]("Type '%s' not found in configuration.", from)
		}
		return valid.Succeed(struct{}{})
	})

	return valid.Map(checked, func([]struct{}) *schemaconf.Config {
		lookup := make(map[string]string, r.names.Len())
		r.names.Each(func(from, to string) bool {
			cfg.Types.ReplaceKey(from, to)
			lookup[from] = to

			// A root can equal the old name; query and mutation are
			// mutually exclusive for a single pair.
			if cfg.Schema.Query == from {
				cfg.Schema.Query = to
			} else if cfg.Schema.Mutation == from {
				cfg.Schema.Mutation = to
			}
			return true
		})

		cfg.Types.Each(func(_ string, typ *schemaconf.Type) bool {
			typ.Fields.Each(func(_ string, field *schemaconf.Field) bool {
				if to, ok := lookup[field.TypeOf]; ok {
					field.TypeOf = to
				}
				field.Args.Each(func(_ string, arg *schemaconf.Arg) bool {
					if to, ok := lookup[arg.TypeOf]; ok {
						arg.TypeOf = to
					}
					return true
				})
				return true
			})
			return true
		})

		return cfg
	})
}
