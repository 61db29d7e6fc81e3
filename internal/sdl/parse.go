// Package sdl converts between GraphQL schema definition language text and
// the schemaconf configuration graph.
package sdl

import (
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"github.com/graphql-go/graphql/language/source"

	"graphql-rename/internal/schemaconf"
	"graphql-rename/internal/valid"
)

// Parse reads an SDL document into a configuration. Object and input-object
// definitions are kept in document order; a schema block fills in the root
// operation types. Definition kinds the configuration graph does not model
// (interfaces, unions, enums, scalars, directives) are skipped.
func Parse(src string) valid.Valid[*schemaconf.Config] {
	doc, err := parser.Parse(parser.ParseParams{
		Source: source.NewSource(&source.Source{
			Body: []byte(src),
			Name: "sdl",
		}),
	})
	if err != nil {
		return valid.Failf[*schemaconf.Config]("failed to parse SDL: %s", err)
	}

	cfg := schemaconf.New()
	for _, def := range doc.Definitions {
		switch node := def.(type) {
		case *ast.ObjectDefinition:
			cfg.Types.Set(node.Name.Value, objectType(node))
		case *ast.InputObjectDefinition:
			cfg.Types.Set(node.Name.Value, inputType(node))
		case *ast.SchemaDefinition:
			applySchemaDefinition(cfg, node)
		}
	}
	return valid.Succeed(cfg)
}

func applySchemaDefinition(cfg *schemaconf.Config, node *ast.SchemaDefinition) {
	for _, op := range node.OperationTypes {
		if op == nil || op.Type == nil {
			continue
		}
		name := op.Type.Name.Value
		switch op.Operation {
		case "query":
			cfg.Schema.Query = name
		case "mutation":
			cfg.Schema.Mutation = name
		case "subscription":
			cfg.Schema.Subscription = name
		}
	}
}

func objectType(node *ast.ObjectDefinition) *schemaconf.Type {
	typ := schemaconf.NewType()
	for _, fieldDef := range node.Fields {
		if fieldDef == nil {
			continue
		}
		field := fieldFromType(fieldDef.Type)
		for _, argDef := range fieldDef.Arguments {
			if argDef == nil {
				continue
			}
			ref := typeRef(argDef.Type)
			field.Args.Set(argDef.Name.Value, &schemaconf.Arg{
				TypeOf:           ref.name,
				List:             ref.list,
				Required:         ref.required,
				ListItemRequired: ref.listItemRequired,
			})
		}
		typ.Fields.Set(fieldDef.Name.Value, field)
	}
	return typ
}

func inputType(node *ast.InputObjectDefinition) *schemaconf.Type {
	typ := schemaconf.NewInputType()
	for _, fieldDef := range node.Fields {
		if fieldDef == nil {
			continue
		}
		typ.Fields.Set(fieldDef.Name.Value, fieldFromType(fieldDef.Type))
	}
	return typ
}

func fieldFromType(t ast.Type) *schemaconf.Field {
	ref := typeRef(t)
	field := schemaconf.NewField(ref.name)
	field.List = ref.list
	field.Required = ref.required
	field.ListItemRequired = ref.listItemRequired
	return field
}

type ref struct {
	name             string
	list             bool
	required         bool
	listItemRequired bool
}

// typeRef unwraps NonNull and List nodes down to the named type.
func typeRef(t ast.Type) ref {
	var out ref
	if nonNull, ok := t.(*ast.NonNull); ok {
		out.required = true
		t = nonNull.Type
	}
	if list, ok := t.(*ast.List); ok {
		out.list = true
		t = list.Type
		if nonNull, ok := t.(*ast.NonNull); ok {
			out.listItemRequired = true
			t = nonNull.Type
		}
	}
	if named, ok := t.(*ast.Named); ok {
		out.name = named.Name.Value
	}
	return out
}
