package sdl

import (
	"fmt"
	"strings"

	"graphql-rename/internal/ordered"
	"graphql-rename/internal/schemaconf"
)

// Print renders a configuration back to SDL. The schema block (when any root
// is set) comes first, then every type in insertion order.
func Print(cfg *schemaconf.Config) string {
	var b strings.Builder
	blocks := 0

	if s := cfg.Schema; s.Query != "" || s.Mutation != "" || s.Subscription != "" {
		b.WriteString("schema {\n")
		if s.Query != "" {
			fmt.Fprintf(&b, "  query: %s\n", s.Query)
		}
		if s.Mutation != "" {
			fmt.Fprintf(&b, "  mutation: %s\n", s.Mutation)
		}
		if s.Subscription != "" {
			fmt.Fprintf(&b, "  subscription: %s\n", s.Subscription)
		}
		b.WriteString("}\n")
		blocks++
	}

	cfg.Types.Each(func(name string, typ *schemaconf.Type) bool {
		if blocks > 0 {
			b.WriteString("\n")
		}
		blocks++

		keyword := "type"
		if typ.Input {
			keyword = "input"
		}
		fmt.Fprintf(&b, "%s %s {\n", keyword, name)
		typ.Fields.Each(func(fieldName string, field *schemaconf.Field) bool {
			fmt.Fprintf(&b, "  %s%s: %s\n", fieldName, printArgs(field.Args), printRef(field.TypeOf, field.List, field.Required, field.ListItemRequired))
			return true
		})
		b.WriteString("}\n")
		return true
	})

	return b.String()
}

func printArgs(args *ordered.Map[*schemaconf.Arg]) string {
	if args == nil || args.Len() == 0 {
		return ""
	}
	parts := make([]string, 0, args.Len())
	args.Each(func(name string, arg *schemaconf.Arg) bool {
		parts = append(parts, fmt.Sprintf("%s: %s", name, printRef(arg.TypeOf, arg.List, arg.Required, arg.ListItemRequired)))
		return true
	})
	return "(" + strings.Join(parts, ", ") + ")"
}

func printRef(name string, list, required, listItemRequired bool) string {
	out := name
	if list {
		if listItemRequired {
			out += "!"
		}
		out = "[" + out + "]"
	}
	if required {
		out += "!"
	}
	return out
}
