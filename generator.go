package sitter

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"text/template"
)

// Generator is the output-emission scaffold shared by the grammar exporters:
// a buffered writer with sticky error handling, so emission code can run
// straight through and report the first failure at the end.
type Generator struct {
	Config map[string]interface{}
	OutDir string
	Err    error
	buf    bytes.Buffer
	writer *bufio.Writer
}

func (gen *Generator) GetConfigString(k string, defaultValue string) string {
	if !Has(gen.Config, k) {
		return defaultValue
	}
	return GetString(gen.Config, k)
}

func (gen *Generator) GetConfigBool(k string, defaultValue bool) bool {
	if !Has(gen.Config, k) {
		return defaultValue
	}
	return GetBool(gen.Config, k)
}

func (gen *Generator) Emit(s string) {
	if gen.Err == nil && gen.writer != nil {
		_, gen.Err = gen.writer.WriteString(s)
	}
}

func (gen *Generator) Begin() {
	if gen.Err != nil {
		return
	}
	gen.buf.Reset()
	gen.writer = bufio.NewWriter(&gen.buf)
}

func (gen *Generator) End() string {
	if gen.Err != nil || gen.writer == nil {
		return ""
	}
	gen.writer.Flush()
	return gen.buf.String()
}

func (gen *Generator) WriteFile(path string, content string) {
	if gen.Err != nil {
		return
	}
	if !gen.GetConfigBool("force-overwrite", true) && gen.FileExists(path) {
		fmt.Printf("[%s already exists, not overwriting]\n", path)
		return
	}
	f, err := os.Create(path)
	if err != nil {
		gen.Err = err
		return
	}
	defer f.Close()
	writer := bufio.NewWriter(f)
	_, gen.Err = writer.WriteString(content)
	writer.Flush()
}

func (gen *Generator) EmitTemplate(name string, tmplSource string, data interface{}, funcMap template.FuncMap) {
	if gen.Err != nil {
		return
	}
	var b bytes.Buffer
	writer := bufio.NewWriter(&b)
	tmpl, err := template.New(name).Funcs(funcMap).Parse(tmplSource)
	if err != nil {
		gen.Err = err
		return
	}
	err = tmpl.Execute(writer, data)
	if err != nil {
		gen.Err = err
		return
	}
	writer.Flush()
	gen.Emit(b.String())
}

func (gen *Generator) FileExists(path string) bool {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false
	}
	return true
}
