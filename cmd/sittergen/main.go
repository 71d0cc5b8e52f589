package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	sitter "github.com/alexarice/go-sitter"
	"github.com/alexarice/go-sitter/graphql"
)

func main() {
	pOut := flag.String("o", "", "write grammar documents to this directory instead of stdout")
	pYAML := flag.Bool("y", false, "render grammar documents as YAML instead of JSON")
	pList := flag.Bool("l", false, "print a rule listing per grammar instead of the document")
	pVerbose := flag.Bool("v", false, "set to true to enable verbose output")
	flag.Parse()
	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("usage: sittergen [options] schema.{yaml,json,graphql}")
		os.Exit(1)
	}
	sitter.Verbose = *pVerbose
	path := args[0]

	var schema *sitter.Schema
	var err error
	if strings.HasSuffix(path, ".graphql") {
		schema, err = graphql.Import(path, nil)
	} else {
		schema, err = sitter.LoadFile(path)
	}
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	grammars, err := sitter.Compile(schema)
	if err != nil {
		// one line per broken grammar group
		if list, ok := err.(sitter.ErrorList); ok {
			for _, e := range list {
				fmt.Println(e)
			}
		} else {
			fmt.Println(err)
		}
		os.Exit(3)
	}
	if len(grammars) == 0 {
		fmt.Printf("%s: no grammar modules found\n", path)
		return
	}

	ex := sitter.NewExporter(grammars, *pOut, nil)
	if *pOut != "" {
		if err := os.MkdirAll(*pOut, 0755); err != nil {
			fmt.Println(err)
			os.Exit(4)
		}
		if err := ex.ExportFiles(*pYAML); err != nil {
			fmt.Println(err)
			os.Exit(4)
		}
		return
	}
	for _, g := range grammars {
		if *pList {
			fmt.Print(ex.Listing(g))
			continue
		}
		doc, err := sitter.Render(g, *pYAML)
		if err != nil {
			fmt.Println(err)
			os.Exit(4)
		}
		fmt.Print(doc)
	}
}
