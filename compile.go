package sitter

import (
	"fmt"
	"strings"
)

// compiler accumulates the rules of one grammar group. Rule maps are scoped
// per group; symbol references never cross group boundaries.
type compiler struct {
	rules map[string]Rule
}

func newCompiler() *compiler {
	return &compiler{rules: make(map[string]Rule)}
}

// define inserts one rule, rejecting identifier collisions.
func (c *compiler) define(name string, rule Rule) *Error {
	if _, ok := c.rules[name]; ok {
		return FormatError(DuplicateRuleError, name, "duplicate rule name %q", name)
	}
	c.rules[name] = rule
	return nil
}

// compileLeaf extracts the pattern rule of one leaf field. The caller routes
// only fields carrying a leaf annotation here.
func (c *compiler) compileLeaf(path string, field *Field) *Error {
	pattern, ok := field.Leaf["pattern"]
	if !ok {
		return NewError(MalformedLeafError, path, "leaf annotation is missing the pattern parameter")
	}
	text, ok := pattern.(string)
	if !ok {
		return FormatError(MalformedLeafError, path, "leaf pattern must be a string, have %v", pattern)
	}
	return c.define(path, NewPattern(text))
}

// fieldIdent derives a field's rule identifier from its production's identity
// and the field name, falling back to the declaration position for unnamed
// tuple-style fields.
func fieldIdent(path string, i int, field *Field) string {
	if field.Name != "" {
		return path + "_" + field.Name
	}
	return fmt.Sprintf("%s_%d", path, i)
}

// compileProduction emits one pattern rule per field of the production, then
// the sequence rule stringing the fields together. Member order is the
// field declaration order; it defines the production's concrete syntax.
func (c *compiler) compileProduction(path string, prod *Production) *Error {
	members := make([]*SymbolRef, 0, len(prod.Fields))
	for i, field := range prod.Fields {
		ident := fieldIdent(path, i, field)
		if !field.IsLeaf() {
			// only leaf fields are supported so far; a plain field would
			// leave its symbol reference dangling
			return NewError(MalformedLeafError, ident, "field has no leaf annotation")
		}
		if err := c.compileLeaf(ident, field); err != nil {
			return err
		}
		members = append(members, NewSymbol(ident))
	}
	return c.define(path, NewSeq(members))
}

// compileNonterminal compiles every production of the nonterminal, then the
// choice rule spanning them, keyed by the nonterminal's name. Member order is
// the production declaration order.
func (c *compiler) compileNonterminal(nt *Nonterminal) *Error {
	if len(nt.Productions) == 0 {
		return FormatError(EmptyNonterminalError, nt.Name, "nonterminal %q has no productions", nt.Name)
	}
	members := make([]*SymbolRef, 0, len(nt.Productions))
	for _, prod := range nt.Productions {
		path := nt.Name + "_" + prod.Name
		if err := c.compileProduction(path, prod); err != nil {
			return err
		}
		members = append(members, NewSymbol(path))
	}
	return c.define(nt.Name, NewChoice(members))
}

// compileRoot scans the module for its root-marked nonterminal and emits the
// source_file alias binding the external entry symbol to it. Anything other
// than exactly one root is a schema defect.
func (c *compiler) compileRoot(mod *Module) *Error {
	var roots []string
	for _, item := range mod.Items {
		if item.Nonterminal != nil && item.Nonterminal.Root {
			roots = append(roots, item.Nonterminal.Name)
		}
	}
	switch len(roots) {
	case 0:
		return FormatError(MissingRootError, mod.Name, "grammar %q has no root-marked nonterminal", mod.Name)
	case 1:
		return c.define(SourceFileRule, NewAlias(roots[0]))
	default:
		return FormatError(AmbiguousRootError, mod.Name, "grammar %q has more than one root-marked nonterminal: %s",
			mod.Name, strings.Join(roots, ", "))
	}
}

func itemKind(item *Item) string {
	switch {
	case item.Module != nil:
		return "module " + item.Module.Name
	case item.Nonterminal != nil:
		return "nonterminal " + item.Nonterminal.Name
	case item.Unknown != "":
		return item.Unknown
	default:
		return "empty item"
	}
}

// compileModule compiles one grammar-marked module into its grammar object.
// The compile is atomic: on any defect no grammar is returned for the module.
func compileModule(mod *Module) (*Grammar, *Error) {
	c := newCompiler()
	if err := c.compileRoot(mod); err != nil {
		return nil, err
	}
	for _, item := range mod.Items {
		switch {
		case item.Nonterminal != nil:
			if err := c.compileNonterminal(item.Nonterminal); err != nil {
				return nil, err
			}
		case item.Module != nil:
			// a nested module is its own scope, discovered by the tree walk
			// in Compile; it contributes nothing to the enclosing grammar
		default:
			return nil, FormatError(UnsupportedItemError, mod.Name, "unsupported schema item in grammar %q: %s",
				mod.Name, itemKind(item))
		}
	}
	return &Grammar{Name: "grammar", Rules: c.rules}, nil
}

// CompileModule compiles a single grammar-marked module.
func CompileModule(mod *Module) (*Grammar, error) {
	g, err := compileModule(mod)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Compile walks the schema tree and compiles every grammar-marked module it
// finds, at any nesting depth, in depth-first order (a nested grammar
// precedes the module enclosing it). Groups compile independently: a broken
// group does not stop the others, and all group errors come back together as
// an ErrorList alongside the grammars that did compile.
func Compile(schema *Schema) ([]*Grammar, error) {
	var grammars []*Grammar
	var errs ErrorList
	var walk func(items []*Item)
	walk = func(items []*Item) {
		for _, item := range items {
			if item.Module == nil {
				continue
			}
			walk(item.Module.Items)
			if !item.Module.Grammar {
				continue
			}
			Debug("compiling grammar module", item.Module.Name)
			g, err := compileModule(item.Module)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			grammars = append(grammars, g)
		}
	}
	walk(schema.Items)
	if len(errs) > 0 {
		return grammars, errs
	}
	return grammars, nil
}
