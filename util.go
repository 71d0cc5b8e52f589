package sitter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// Verbose enables Debug output. Set it from a tool's -v flag.
var Verbose bool

func Debug(args ...interface{}) {
	if Verbose {
		max := len(args) - 1
		for i := 0; i < max; i++ {
			fmt.Print(args[i], " ")
		}
		fmt.Println(args[max])
	}
}

// Pretty renders any value as indented JSON, for diagnostics and for the
// grammar documents themselves.
func Pretty(obj interface{}) string {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&obj); err != nil {
		return fmt.Sprint(obj)
	}
	return buf.String()
}

func FileName(path string) string {
	return filepath.Base(path)
}

func FileDir(path string) string {
	return filepath.Dir(path)
}

// BaseFileName returns the file name with its extension stripped; the default
// schema name for a loaded document.
func BaseFileName(path string) string {
	fname := FileName(path)
	n := strings.LastIndex(fname, ".")
	if n < 1 {
		return fname
	}
	return fname[:n]
}
