package sitter

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/ghodss/yaml"
)

// Render returns the canonical document for one grammar: the JSON wire format
// the downstream parser generator consumes, or its YAML rendering when asYAML
// is set.
func Render(g *Grammar, asYAML bool) (string, error) {
	if asYAML {
		b, err := yaml.Marshal(g)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return Pretty(g), nil
}

// Exporter writes the documents of one compilation run to an output
// directory.
type Exporter struct {
	Generator
	Grammars []*Grammar
}

func NewExporter(grammars []*Grammar, outdir string, conf map[string]interface{}) *Exporter {
	ex := &Exporter{Grammars: grammars}
	ex.OutDir = outdir
	ex.Config = conf
	return ex
}

// ExportFiles writes one grammar document per compiled group. The first group
// is named grammar.json (or .yaml); later groups get a numeric suffix, in
// compile order.
func (ex *Exporter) ExportFiles(asYAML bool) error {
	ext := ".json"
	if asYAML {
		ext = ".yaml"
	}
	for i, g := range ex.Grammars {
		content, err := Render(g, asYAML)
		if err != nil {
			return err
		}
		fname := g.Name + ext
		if i > 0 {
			fname = fmt.Sprintf("%s%d%s", g.Name, i+1, ext)
		}
		path := filepath.Join(ex.OutDir, fname)
		Debug("writing", path)
		ex.WriteFile(path, content)
	}
	return ex.Err
}

const listingTemplate = `grammar {{.Name}} ({{len .Rules}} rules)
{{range .Rules}}  {{.Ident}}: {{.Desc}}
{{end}}`

type ruleListing struct {
	Ident string
	Desc  string
}

type grammarListing struct {
	Name  string
	Rules []ruleListing
}

// Listing renders a short human-readable summary of one grammar, one line per
// rule in identifier order.
func (ex *Exporter) Listing(g *Grammar) string {
	idents := make([]string, 0, len(g.Rules))
	for ident := range g.Rules {
		idents = append(idents, ident)
	}
	sort.Strings(idents)
	view := grammarListing{Name: g.Name}
	for _, ident := range idents {
		view.Rules = append(view.Rules, ruleListing{Ident: ident, Desc: describeRule(g.Rules[ident])})
	}
	ex.Begin()
	ex.EmitTemplate("listing", listingTemplate, view, nil)
	return ex.End()
}

func describeRule(rule Rule) string {
	switch r := rule.(type) {
	case *PatternRule:
		return fmt.Sprintf("pattern /%s/", r.Value)
	case *SeqRule:
		return "seq" + describeMembers(r.Members)
	case *ChoiceRule:
		return "choice" + describeMembers(r.Members)
	case *AliasRule:
		return fmt.Sprintf("alias -> %s", r.Value)
	default:
		return rule.RuleType()
	}
}

func describeMembers(members []*SymbolRef) string {
	if len(members) == 0 {
		return " (empty)"
	}
	s := ""
	for _, m := range members {
		s += " " + m.Name
	}
	return s
}
