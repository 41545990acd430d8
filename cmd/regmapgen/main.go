// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/regmap/schema"
)

func main() {
	var input string
	var output string
	var pkg string
	var defines bool
	var verbose bool

	flag.StringVar(&input, "i", "", ".star schema to compile")
	flag.StringVar(&output, "o", "-", "generated .go output")
	flag.StringVar(&pkg, "p", "registers", "package name for generated code")
	flag.BoolVar(&defines, "D", false, "print the schema's defines, do not generate")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(input) == 0 {
		log.Fatalf("%v: no schema input (-i)", os.Args[0])
	}

	doc, err := schema.Load(input, nil)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	if verbose {
		log.Printf("%v: %v field sets, %v layouts", input, len(doc.Sets), len(doc.Layouts))
	}

	if defines {
		for key, value := range doc.Defines() {
			fmt.Printf("%s=%s\n", key, value)
		}
		return
	}

	code, err := schema.Generate(doc, pkg)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	if output == "-" {
		_, err = os.Stdout.Write(code)
	} else {
		err = os.WriteFile(output, code, 0o644)
	}
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
