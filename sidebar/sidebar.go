// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

// Package sidebar builds the navigation index used by the generated API
// reference pages. The index groups top-level declarations of a package
// by kind and renders to the JSON shape the documentation front end
// expects.
package sidebar

import (
	"encoding/json"
	"go/ast"
	"go/doc"
	"go/parser"
	"go/token"
	"io/fs"
	"sort"
	"strings"

	"github.com/oneclickio/oneclick/pkg/errors"
)

// Kind is the declaration category an item is grouped under.
type Kind string

const (
	KindStruct    Kind = "struct"
	KindInterface Kind = "interface"
	KindFn        Kind = "fn"
	KindConstant  Kind = "constant"
	KindEnum      Kind = "enum"
)

// kindOrder fixes the section order in the rendered sidebar.
var kindOrder = []Kind{KindStruct, KindEnum, KindInterface, KindFn, KindConstant}

var (
	// ErrParseDir indicates that the package sources could not be parsed.
	ErrParseDir = errors.New("failed to parse package directory")

	// ErrPkgNotFound indicates that the named package is not present in
	// the parsed directory.
	ErrPkgNotFound = errors.New("package not found in directory")
)

// Item is a single sidebar entry: a declaration name and the first
// sentence of its doc comment.
type Item struct {
	Name    string
	Summary string
}

// Index is the complete sidebar for one package.
type Index struct {
	Package string
	Items   map[Kind][]Item
}

// Build parses the Go package rooted at dir and returns its sidebar
// index. Test files and unexported declarations are skipped.
func Build(dir, pkgName string) (Index, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, func(fi fs.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}, parser.ParseComments)
	if err != nil {
		return Index{}, errors.Wrap(ErrParseDir, err)
	}

	astPkg, ok := pkgs[pkgName]
	if !ok {
		return Index{}, ErrPkgNotFound
	}

	docPkg := doc.New(astPkg, dir, 0)

	idx := Index{
		Package: pkgName,
		Items:   make(map[Kind][]Item),
	}

	for _, t := range docPkg.Types {
		if !ast.IsExported(t.Name) {
			continue
		}
		kind := typeKind(t)
		idx.add(kind, Item{Name: t.Name, Summary: doc.Synopsis(t.Doc)})

		for _, f := range t.Funcs {
			if ast.IsExported(f.Name) {
				idx.add(KindFn, Item{Name: f.Name, Summary: doc.Synopsis(f.Doc)})
			}
		}
	}

	for _, f := range docPkg.Funcs {
		if ast.IsExported(f.Name) {
			idx.add(KindFn, Item{Name: f.Name, Summary: doc.Synopsis(f.Doc)})
		}
	}

	for _, c := range docPkg.Consts {
		for _, name := range c.Names {
			if ast.IsExported(name) {
				idx.add(KindConstant, Item{Name: name, Summary: doc.Synopsis(c.Doc)})
			}
		}
	}

	for kind := range idx.Items {
		items := idx.Items[kind]
		sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	}

	return idx, nil
}

func (idx *Index) add(kind Kind, item Item) {
	idx.Items[kind] = append(idx.Items[kind], item)
}

// typeKind classifies a documented type. A type whose declared constants
// enumerate its values is reported as an enum, matching how claim states
// and similar value sets are documented.
func typeKind(t *doc.Type) Kind {
	if len(t.Consts) > 0 {
		return KindEnum
	}

	for _, spec := range t.Decl.Specs {
		ts, ok := spec.(*ast.TypeSpec)
		if !ok {
			continue
		}
		switch ts.Type.(type) {
		case *ast.InterfaceType:
			return KindInterface
		case *ast.StructType:
			return KindStruct
		}
	}

	return KindStruct
}

// MarshalJSON renders the index in the initSidebarItems shape consumed
// by the documentation front end: each kind maps to a list of
// [name, summary] pairs in section order.
func (idx Index) MarshalJSON() ([]byte, error) {
	out := make(map[string][][2]string)
	for _, kind := range kindOrder {
		items, ok := idx.Items[kind]
		if !ok || len(items) == 0 {
			continue
		}
		pairs := make([][2]string, 0, len(items))
		for _, item := range items {
			pairs = append(pairs, [2]string{item.Name, item.Summary})
		}
		out[string(kind)] = pairs
	}

	return json.Marshal(out)
}
