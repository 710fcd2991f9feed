// github.com/oxpdf/pdf - a library for reading PDF files
// Copyright (C) 2025  The oxpdf authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Pdfdump prints the low-level structure of a PDF file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/oxpdf/pdf"
)

func main() {
	showTrailer := pflag.Bool("trailer", false, "print the trailer dictionary")
	showCatalog := pflag.Bool("catalog", false, "print the document catalog")
	showInfo := pflag.Bool("info", false, "print the document information dictionary")
	objNumber := pflag.Uint32("object", 0, "print the object with the given number")
	objGeneration := pflag.Uint16("generation", 0, "generation number for --object")
	pflag.Parse()

	if pflag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.pdf\n", os.Args[0])
		pflag.PrintDefaults()
		os.Exit(1)
	}

	doc, err := pdf.Open(pflag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading PDF file: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *showTrailer:
		fmt.Println(pdf.Format(doc.Trailer()))
	case *showCatalog:
		catalog := pdf.ExtractCatalog(doc, doc.Catalog(), printDiagnostic)
		fmt.Printf("%+v\n", catalog)
	case *showInfo:
		info := pdf.ExtractInfo(doc, doc.Info())
		fmt.Printf("%+v\n", info)
	case *objNumber != 0:
		ref := pdf.NewReference(*objNumber, *objGeneration)
		obj := doc.Get(ref)
		if obj == nil {
			fmt.Fprintf(os.Stderr, "Error: object %s not found\n", ref)
			os.Exit(1)
		}
		fmt.Println(pdf.Format(obj))
	default:
		fmt.Printf("PDF version: %s\n", doc.Version())
		fmt.Printf("Objects: %d\n", doc.NumObjects())
		for _, ref := range doc.References() {
			obj := doc.Get(ref)
			fmt.Printf("%s: %s\n", ref, describe(obj))
		}
	}
}

func describe(obj pdf.Object) string {
	switch x := obj.(type) {
	case pdf.Dict:
		if tp, ok := x["Type"].(pdf.Name); ok {
			return fmt.Sprintf("dictionary (/%s)", string(tp))
		}
		return "dictionary"
	case *pdf.Stream:
		if tp, ok := x.Dict["Type"].(pdf.Name); ok {
			return fmt.Sprintf("stream (/%s)", string(tp))
		}
		return "stream"
	default:
		return pdf.Format(obj)
	}
}

func printDiagnostic(d pdf.Diagnostic) {
	if d.Missing {
		fmt.Fprintf(os.Stderr, "warning: missing required field /%s\n", d.Field)
		return
	}
	fmt.Fprintf(os.Stderr, "warning: field /%s has type %s, expected %s\n",
		d.Field, d.Got, d.Expected)
}
