package sitter

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ghodss/yaml"
)

// LoadFile reads a schema document in YAML or JSON and resolves every include
// item recursively, producing the single fully assembled schema tree the
// compiler consumes. Includes resolve relative to the including file; a file
// included more than once on any path is an IncludeCycleError, since inlining
// it again would duplicate its definitions.
func LoadFile(path string) (*Schema, error) {
	ld := &loader{seen: make(map[string]bool)}
	return ld.loadFile(path)
}

// LoadString parses a schema document from memory. Includes resolve relative
// to the current directory.
func LoadString(src string) (*Schema, error) {
	ld := &loader{seen: make(map[string]bool)}
	return ld.loadDocument("schema", ".", []byte(src), false)
}

type loader struct {
	seen map[string]bool
}

func (ld *loader) loadFile(path string) (*Schema, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if ld.seen[abs] {
		return nil, FormatError(IncludeCycleError, path, "schema file included more than once")
	}
	ld.seen[abs] = true
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ld.loadDocument(path, FileDir(path), raw, filepath.Ext(path) == ".json")
}

func (ld *loader) loadDocument(path, dir string, raw []byte, isJSON bool) (*Schema, error) {
	var doc map[string]interface{}
	var err error
	if isJSON {
		err = json.Unmarshal(raw, &doc)
	} else {
		err = yaml.Unmarshal(raw, &doc)
	}
	if err != nil {
		return nil, FormatError(BadDocumentError, path, "cannot parse schema document: %v", err)
	}
	name := GetString(doc, "name")
	if name == "" {
		name = BaseFileName(path)
	}
	items, lerr := ld.items(path, dir, GetArray(doc, "items"))
	if lerr != nil {
		return nil, lerr
	}
	return &Schema{Name: name, Items: items}, nil
}

func (ld *loader) items(context, dir string, raw []interface{}) ([]*Item, error) {
	var items []*Item
	for i, rv := range raw {
		m := AsMap(rv)
		if m == nil {
			return nil, FormatError(BadDocumentError, fmt.Sprintf("%s.items[%d]", context, i),
				"schema item must be a mapping")
		}
		switch {
		case Has(m, "include"):
			sub, err := ld.loadFile(filepath.Join(dir, GetString(m, "include")))
			if err != nil {
				return nil, err
			}
			items = append(items, sub.Items...)
		case Has(m, "module"):
			mod, err := ld.module(context, dir, GetMap(m, "module"))
			if err != nil {
				return nil, err
			}
			items = append(items, &Item{Module: mod})
		case Has(m, "nonterminal"):
			nt, err := ld.nonterminal(context, GetMap(m, "nonterminal"))
			if err != nil {
				return nil, err
			}
			items = append(items, &Item{Nonterminal: nt})
		default:
			items = append(items, &Item{Unknown: itemTag(m)})
		}
	}
	return items, nil
}

// itemTag names an unrecognized item by its keys, so the compiler's report
// tells the author what it found.
func itemTag(m map[string]interface{}) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}

func (ld *loader) module(context, dir string, m map[string]interface{}) (*Module, error) {
	if m == nil {
		return nil, FormatError(BadDocumentError, context, "module item must be a mapping")
	}
	name := GetString(m, "name")
	if name == "" {
		return nil, FormatError(BadDocumentError, context, "module has no name")
	}
	mod := &Module{
		Name:        name,
		Grammar:     GetBool(m, "grammar"),
		Comment:     GetString(m, "comment"),
		Annotations: AsStringMap(Get(m, "annotations")),
	}
	items, err := ld.items(context+"."+name, dir, GetArray(m, "items"))
	if err != nil {
		return nil, err
	}
	mod.Items = items
	return mod, nil
}

func (ld *loader) nonterminal(context string, m map[string]interface{}) (*Nonterminal, error) {
	if m == nil {
		return nil, FormatError(BadDocumentError, context, "nonterminal item must be a mapping")
	}
	name := GetString(m, "name")
	if name == "" {
		return nil, FormatError(BadDocumentError, context, "nonterminal has no name")
	}
	nt := &Nonterminal{
		Name:    name,
		Root:    GetBool(m, "root"),
		Comment: GetString(m, "comment"),
	}
	for i, rv := range GetArray(m, "productions") {
		pm := AsMap(rv)
		pname := GetString(pm, "name")
		if pname == "" {
			return nil, FormatError(BadDocumentError, fmt.Sprintf("%s.%s.productions[%d]", context, name, i),
				"production has no name")
		}
		prod := &Production{Name: pname, Comment: GetString(pm, "comment")}
		for _, fv := range GetArray(pm, "fields") {
			fm := AsMap(fv)
			prod.Fields = append(prod.Fields, &Field{
				Name: GetString(fm, "name"),
				Leaf: GetMap(fm, "leaf"),
			})
		}
		nt.Productions = append(nt.Productions, prod)
	}
	return nt, nil
}
