package graphql

import (
	"strings"
	"testing"

	sitter "github.com/alexarice/go-sitter"
)

const calcSDL = `
union Expression @root = Number | Variable

type Number {
  value: String @leaf(pattern: "\\d+", transform: "parseInt")
}

type Variable {
  name: String @leaf(pattern: "[a-z]+")
}
`

func importAndCompile(test *testing.T, src string) []*sitter.Grammar {
	test.Helper()
	schema, err := ImportString(src, "calc")
	if err != nil {
		test.Fatalf("%v", err)
	}
	grammars, err := sitter.Compile(schema)
	if err != nil {
		test.Fatalf("%v", err)
	}
	return grammars
}

func TestImportUnions(test *testing.T) {
	schema, err := ImportString(calcSDL, "calc")
	if err != nil {
		test.Fatalf("%v", err)
	}
	if len(schema.Items) != 1 || schema.Items[0].Module == nil {
		test.Fatalf("expected one grammar module: %s", sitter.Pretty(schema))
	}
	mod := schema.Items[0].Module
	if !mod.Grammar || mod.Name != "calc" {
		test.Errorf("bad module: %s", sitter.Pretty(mod))
	}
	nt := mod.Items[0].Nonterminal
	if nt == nil || nt.Name != "Expression" || !nt.Root {
		test.Fatalf("bad nonterminal: %s", sitter.Pretty(mod))
	}
	if len(nt.Productions) != 2 || nt.Productions[0].Name != "Number" || nt.Productions[1].Name != "Variable" {
		test.Fatalf("bad productions: %s", sitter.Pretty(nt))
	}
	field := nt.Productions[0].Fields[0]
	if field.Name != "value" || sitter.GetString(field.Leaf, "pattern") != `\d+` {
		test.Errorf("bad leaf field: %s", sitter.Pretty(field))
	}

	grammars := importAndCompile(test, calcSDL)
	if len(grammars) != 1 {
		test.Fatalf("expected 1 grammar, have %d", len(grammars))
	}
	g := grammars[0]
	for _, ident := range []string{"source_file", "Expression", "Expression_Number", "Expression_Number_value", "Expression_Variable", "Expression_Variable_name"} {
		if _, ok := g.Rules[ident]; !ok {
			test.Errorf("missing rule %s: %s", ident, sitter.Pretty(g))
		}
	}
}

func TestImportEnum(test *testing.T) {
	grammars := importAndCompile(test, `
enum Keyword @root {
  IF
  ELSE
}
`)
	g := grammars[0]
	choice, ok := g.Rules["Keyword"].(*sitter.ChoiceRule)
	if !ok || len(choice.Members) != 2 {
		test.Fatalf("bad Keyword choice: %s", sitter.Pretty(g))
	}
	seq, ok := g.Rules["Keyword_IF"].(*sitter.SeqRule)
	if !ok || len(seq.Members) != 0 {
		test.Errorf("enum values should compile to empty sequences: %s", sitter.Pretty(g))
	}
}

func TestImportNonStringPattern(test *testing.T) {
	schema, err := ImportString(`
union Expression @root = Number

type Number {
  value: String @leaf(pattern: 42)
}
`, "bad")
	if err != nil {
		test.Fatalf("the importer passes pattern values through: %v", err)
	}
	_, err = sitter.Compile(schema)
	if err == nil {
		test.Fatalf("expected a malformed-leaf error")
	}
	list, ok := err.(sitter.ErrorList)
	if !ok || list[0].Code != sitter.MalformedLeafError {
		test.Errorf("expected MalformedLeafError, have %v", err)
	}
}

func TestImportMissingRoot(test *testing.T) {
	schema, err := ImportString(`
union Expression = Number

type Number {
  value: String @leaf(pattern: "\\d+")
}
`, "rootless")
	if err != nil {
		test.Fatalf("%v", err)
	}
	_, err = sitter.Compile(schema)
	list, ok := err.(sitter.ErrorList)
	if !ok || list[0].Code != sitter.MissingRootError {
		test.Errorf("expected MissingRootError, have %v", err)
	}
}

func TestImportErrors(test *testing.T) {
	for src, want := range map[string]string{
		`union E @root = Missing`: "undefined object type",
		`type Orphan { x: String @leaf(pattern: "a") }
union E @root = Orphan
type Stray { y: String }`: "not a member of any union",
		`input Bad { x: String }`: "unsupported definition",
	} {
		_, err := ImportString(src, "bad")
		if err == nil {
			test.Errorf("expected failure for:\n%s", src)
			continue
		}
		if !strings.Contains(err.Error(), want) {
			test.Errorf("expected error containing %q, have: %v", want, err)
		}
	}
}
