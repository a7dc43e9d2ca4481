package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"uartpanic/config"
	"uartpanic/errcode"
	"uartpanic/types"
)

const (
	genFile   = "faultentry_gen.go"
	entryName = "faultEntry"
)

// Target is what faultgen found in the output directory.
type Target struct {
	Dir     string
	Package string // "" when the directory has no Go files yet
}

// CheckTarget parses the Go files in dir, other than tests and a previously
// generated entry point, and refuses a directory that already declares the
// fault entry point by hand.
func CheckTarget(dir string) (Target, error) {
	const op = "faultgen.target"
	tg := Target{Dir: dir}

	ents, err := os.ReadDir(dir)
	if err != nil {
		return tg, errcode.Wrap(errcode.InvalidParams, op, err)
	}
	fset := token.NewFileSet()
	for _, e := range ents {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") ||
			strings.HasSuffix(name, "_test.go") || name == genFile {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.SkipObjectResolution)
		if err != nil {
			return tg, errcode.Wrap(errcode.InvalidParams, op, err)
		}
		if tg.Package == "" {
			tg.Package = f.Name.Name
		}
		for _, d := range f.Decls {
			fn, ok := d.(*ast.FuncDecl)
			if ok && fn.Recv == nil && fn.Name.Name == entryName {
				pos := fset.Position(fn.Pos())
				return tg, errcode.New(errcode.Conflict, op,
					entryName+" already declared at "+filepath.Base(pos.Filename)+":"+itoa(pos.Line))
			}
		}
	}
	return tg, nil
}

// Compose picks the single registration that targets pkg. An empty pkg
// accepts the default package. No registration, or more than one, is an
// error: a program has exactly one fault entry point.
func Compose(fc types.FaultConfig, pkg string) (config.Resolved, error) {
	const op = "faultgen.compose"
	if pkg == "" {
		pkg = config.DefaultPackage
	}
	var (
		picked config.Resolved
		found  int
	)
	for _, reg := range fc.Faults {
		res, err := config.Resolve(reg)
		if err != nil {
			return res, err
		}
		if res.Reg.Package != pkg {
			continue
		}
		found++
		if found > 1 {
			return res, errcode.New(errcode.Conflict, op, "more than one registration for package "+pkg)
		}
		picked = res
	}
	if found == 0 {
		return picked, errcode.New(errcode.InvalidParams, op, "no registration for package "+pkg)
	}
	return picked, nil
}
