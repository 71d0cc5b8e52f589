package sitter

// Schema is one fully assembled schema tree: the ordered items of a single
// compilation run, with all includes already resolved. The compiler treats it
// as read-only.
type Schema struct {
	Name  string  `json:"name,omitempty"`
	Items []*Item `json:"items,omitempty"`
}

// Item is one schema item. Exactly one of Module or Nonterminal is set for a
// recognized item; the loader records the kind tag of anything it did not
// recognize in Unknown so the compiler can name it when reporting.
type Item struct {
	Module      *Module      `json:"module,omitempty"`
	Nonterminal *Nonterminal `json:"nonterminal,omitempty"`
	Unknown     string       `json:"-"`
}

// Module is a named container of schema items. Modules nest arbitrarily; a
// module marked Grammar defines one grammar group, compiled independently of
// every other group.
type Module struct {
	Name        string            `json:"name"`
	Grammar     bool              `json:"grammar,omitempty"`
	Comment     string            `json:"comment,omitempty"`
	Annotations map[string]string `json:"annotations,omitempty"`
	Items       []*Item           `json:"items,omitempty"`
}

// Nonterminal is one grammar symbol, defined by its alternative productions.
// Exactly one nonterminal per grammar module must carry the Root marker; that
// nonterminal is the grammar's entry symbol.
type Nonterminal struct {
	Name        string        `json:"name"`
	Root        bool          `json:"root,omitempty"`
	Comment     string        `json:"comment,omitempty"`
	Productions []*Production `json:"productions,omitempty"`
}

// Production is one concrete alternative of a nonterminal: an ordered
// sequence of fields. Its identity in the compiled grammar is
// <NonterminalName>_<ProductionName>.
type Production struct {
	Name    string   `json:"name"`
	Comment string   `json:"comment,omitempty"`
	Fields  []*Field `json:"fields,omitempty"`
}

// Field is one member of a production. A leaf field carries its annotation
// parameters in Leaf; the compiler consumes the "pattern" parameter and
// preserves everything else untouched (a "transform" parameter, for example,
// only matters to the consumer of the parse result). A field with Leaf == nil
// is a plain field. Name may be empty for tuple-style productions, in which
// case the field's position supplies its identity.
type Field struct {
	Name string                 `json:"name,omitempty"`
	Leaf map[string]interface{} `json:"leaf,omitempty"`
}

// IsLeaf reports whether the field carries a leaf annotation.
func (f *Field) IsLeaf() bool {
	return f.Leaf != nil
}
