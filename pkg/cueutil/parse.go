// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/ast"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"
)

// ParseResult contains the result of a successful CUE parse operation.
type ParseResult[T any] struct {
	// Value is the decoded Go value.
	Value *T

	// Unified is the validated cue.Value the result was decoded from.
	Unified cue.Value
}

// Compile compiles data, optionally narrows it to dataPath, unifies it with
// the schemaPath definition of schema and validates the result.
//
// An empty dataPath unifies the whole document. A dataPath that does not exist
// in data yields a *MissingPathError so callers can tell "absent" apart from
// "malformed".
func Compile(schema, data []byte, schemaPath, dataPath string, opts ...Option) (cue.Value, error) {
	o := applyOptions(opts)

	if err := CheckFileSize(data, o.maxFileSize, o.filename); err != nil {
		return cue.Value{}, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}
	schemaRoot := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if !schemaRoot.Exists() {
		return cue.Value{}, fmt.Errorf("internal error: schema definition %s not found", schemaPath)
	}

	userValue, err := build(ctx, data, o)
	if err != nil {
		return cue.Value{}, err
	}
	if userValue.Err() != nil {
		return cue.Value{}, FormatError(userValue.Err(), o.filename)
	}

	target := userValue
	if dataPath != "" {
		path := cue.ParsePath(dataPath)
		if path.Err() != nil {
			return cue.Value{}, fmt.Errorf("invalid data path %q: %w", dataPath, path.Err())
		}
		target = userValue.LookupPath(path)
		if !target.Exists() {
			return cue.Value{}, &MissingPathError{FilePath: o.filename, Path: dataPath}
		}
	}

	unified := schemaRoot.Unify(target)
	if err := unified.Validate(cue.Concrete(o.concrete)); err != nil {
		return cue.Value{}, FormatError(err, o.filename)
	}

	return unified, nil
}

// ParseAndDecode compiles and validates data against schemaPath and decodes
// the unified value into T.
func ParseAndDecode[T any](schema, data []byte, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	unified, err := Compile(schema, data, schemaPath, "", opts...)
	if err != nil {
		return nil, err
	}

	var result T
	if err := unified.Decode(&result); err != nil {
		return nil, FormatError(err, applyOptions(opts).filename)
	}

	return &ParseResult[T]{
		Value:   &result,
		Unified: unified,
	}, nil
}

func build(ctx *cue.Context, data []byte, o parseOptions) (cue.Value, error) {
	if !o.json {
		return ctx.CompileBytes(data, cue.Filename(o.filename)), nil
	}
	expr, err := cuejson.Extract(o.filename, data)
	if err != nil {
		return cue.Value{}, FormatError(err, o.filename)
	}
	return ctx.BuildExpr(lastKeyWins(expr), cue.Filename(o.filename)), nil
}

// lastKeyWins folds repeated object keys the way encoding/json decodes
// them. CUE would unify the values instead and fail on any difference.
func lastKeyWins(expr ast.Expr) ast.Expr {
	switch x := expr.(type) {
	case *ast.StructLit:
		seen := make(map[string]*ast.Field, len(x.Elts))
		elts := x.Elts[:0]
		for _, decl := range x.Elts {
			f, ok := decl.(*ast.Field)
			if !ok {
				elts = append(elts, decl)
				continue
			}
			f.Value = lastKeyWins(f.Value)
			name, _, err := ast.LabelName(f.Label)
			if err != nil {
				elts = append(elts, f)
				continue
			}
			if first, dup := seen[name]; dup {
				first.Value = f.Value
				continue
			}
			seen[name] = f
			elts = append(elts, f)
		}
		x.Elts = elts
	case *ast.ListLit:
		for i, e := range x.Elts {
			x.Elts[i] = lastKeyWins(e)
		}
	}
	return expr
}
