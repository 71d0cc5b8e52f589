package graphql

import (
	"fmt"
	"io/ioutil"
	"strconv"

	sitter "github.com/alexarice/go-sitter"

	gql_ast "github.com/graphql-go/graphql/language/ast"
	gql_parser "github.com/graphql-go/graphql/language/parser"
	gql_source "github.com/graphql-go/graphql/language/source"
)

// Import reads a grammar schema written in GraphQL SDL. One document is one
// grammar group: union definitions are the nonterminals (a @root directive
// marks the entry symbol), the object types a union references are its
// productions, and object fields annotated @leaf(pattern: "...") are the leaf
// fields. Enum definitions are nonterminals whose values are productions with
// no fields.
func Import(path string, conf map[string]interface{}) (*sitter.Schema, error) {
	src, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := sitter.GetString(conf, "name")
	if name == "" {
		name = sitter.BaseFileName(path)
	}
	return ImportString(string(src), name)
}

// ImportString converts one SDL document into a schema tree holding a single
// grammar-marked module.
func ImportString(src, name string) (*sitter.Schema, error) {
	doc, err := gql_parser.Parse(gql_parser.ParseParams{
		Source: &gql_source.Source{
			Body: []byte(src),
			Name: "GraphQL",
		},
		Options: gql_parser.ParseOptions{
			NoLocation: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("cannot parse GraphQL: %v", err)
	}
	mod, err := gqlModule(doc, name)
	if err != nil {
		return nil, err
	}
	return &sitter.Schema{Name: name, Items: []*sitter.Item{{Module: mod}}}, nil
}

func gqlModule(doc *gql_ast.Document, name string) (*sitter.Module, error) {
	objects := make(map[string]*gql_ast.ObjectDefinition)
	referenced := make(map[string]bool)
	for _, def := range doc.Definitions {
		if obj, ok := def.(*gql_ast.ObjectDefinition); ok {
			objects[obj.Name.Value] = obj
		}
	}

	mod := &sitter.Module{Name: name, Grammar: true}
	for _, def := range doc.Definitions {
		switch tdef := def.(type) {
		case *gql_ast.ObjectDefinition:
			// becomes a production of whichever union references it
		case *gql_ast.UnionDefinition:
			nt, err := gqlUnion(tdef, objects, referenced)
			if err != nil {
				return nil, err
			}
			mod.Items = append(mod.Items, &sitter.Item{Nonterminal: nt})
		case *gql_ast.EnumDefinition:
			mod.Items = append(mod.Items, &sitter.Item{Nonterminal: gqlEnum(tdef)})
		default:
			return nil, fmt.Errorf("unsupported definition in grammar schema: %v", def.GetKind())
		}
	}
	for oname := range objects {
		if !referenced[oname] {
			return nil, fmt.Errorf("object type %s is not a member of any union", oname)
		}
	}
	return mod, nil
}

// gqlUnion converts one union definition into a nonterminal whose productions
// are the union's member object types, in declaration order.
func gqlUnion(def *gql_ast.UnionDefinition, objects map[string]*gql_ast.ObjectDefinition, referenced map[string]bool) (*sitter.Nonterminal, error) {
	nt := &sitter.Nonterminal{
		Name: def.Name.Value,
		Root: hasDirective(def.Directives, "root"),
	}
	for _, member := range def.Types {
		mname := member.Name.Value
		obj, ok := objects[mname]
		if !ok {
			return nil, fmt.Errorf("union %s references undefined object type %s", nt.Name, mname)
		}
		referenced[mname] = true
		nt.Productions = append(nt.Productions, gqlProduction(obj))
	}
	return nt, nil
}

// gqlEnum converts a plain enum into a nonterminal of empty productions, one
// per enum value.
func gqlEnum(def *gql_ast.EnumDefinition) *sitter.Nonterminal {
	nt := &sitter.Nonterminal{
		Name: def.Name.Value,
		Root: hasDirective(def.Directives, "root"),
	}
	for _, v := range def.Values {
		nt.Productions = append(nt.Productions, &sitter.Production{Name: v.Name.Value})
	}
	return nt
}

func gqlProduction(def *gql_ast.ObjectDefinition) *sitter.Production {
	prod := &sitter.Production{Name: def.Name.Value}
	for _, fnode := range def.Fields {
		f := (*gql_ast.FieldDefinition)(fnode)
		field := &sitter.Field{Name: f.Name.Value}
		if d := findDirective(f.Directives, "leaf"); d != nil {
			field.Leaf = directiveArgs(d)
		}
		prod.Fields = append(prod.Fields, field)
	}
	return prod
}

func hasDirective(directives []*gql_ast.Directive, name string) bool {
	return findDirective(directives, name) != nil
}

func findDirective(directives []*gql_ast.Directive, name string) *gql_ast.Directive {
	for _, d := range directives {
		if d.Name.Value == name {
			return d
		}
	}
	return nil
}

// directiveArgs converts a directive's arguments into the annotation
// parameter bag of a leaf field. Values keep their SDL type: a non-string
// pattern stays non-string, so the compiler rejects it.
func directiveArgs(d *gql_ast.Directive) map[string]interface{} {
	args := make(map[string]interface{}, len(d.Arguments))
	for _, arg := range d.Arguments {
		args[arg.Name.Value] = argValue(arg.Value)
	}
	return args
}

func argValue(v gql_ast.Value) interface{} {
	switch av := v.(type) {
	case *gql_ast.StringValue:
		return av.Value
	case *gql_ast.IntValue:
		n, err := strconv.Atoi(av.Value)
		if err != nil {
			return av.Value
		}
		return n
	case *gql_ast.FloatValue:
		n, err := strconv.ParseFloat(av.Value, 64)
		if err != nil {
			return av.Value
		}
		return n
	case *gql_ast.BooleanValue:
		return av.Value
	default:
		return nil
	}
}
