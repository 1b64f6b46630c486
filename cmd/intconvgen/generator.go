// Copyright 2026 go-intconv Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
)

// IntType describes one fixed-width integer type in the conversion table.
type IntType struct {
	Suffix string // function-name suffix, e.g. "U8"
	Name   string // Go type name, e.g. "uint8" or "num.U128"
	Width  int    // width in bits; 0 for the pointer-width types
	Signed bool
}

var unsignedTypes = []IntType{
	{Suffix: "U8", Name: "uint8", Width: 8},
	{Suffix: "U16", Name: "uint16", Width: 16},
	{Suffix: "U32", Name: "uint32", Width: 32},
	{Suffix: "U64", Name: "uint64", Width: 64},
	{Suffix: "U128", Name: "num.U128", Width: 128},
}

var signedTypes = []IntType{
	{Suffix: "I8", Name: "int8", Width: 8, Signed: true},
	{Suffix: "I16", Name: "int16", Width: 16, Signed: true},
	{Suffix: "I32", Name: "int32", Width: 32, Signed: true},
	{Suffix: "I64", Name: "int64", Width: 64, Signed: true},
	{Suffix: "I128", Name: "num.I128", Width: 128, Signed: true},
}

// signednessPairs lists every (signed, unsigned) counterpart pair,
// including the pointer-width one, for the capability table.
var signednessPairs = [][2]IntType{
	{signedTypes[0], unsignedTypes[0]},
	{signedTypes[1], unsignedTypes[1]},
	{signedTypes[2], unsignedTypes[2]},
	{signedTypes[3], unsignedTypes[3]},
	{signedTypes[4], unsignedTypes[4]},
	{{Suffix: "Int", Name: "int", Signed: true}, {Suffix: "Uint", Name: "uint"}},
}

// halfPairs lists every unsigned type together with its half-width type,
// for the split/join capability entries.
var halfPairs = [][2]IntType{
	{unsignedTypes[1], unsignedTypes[0]},
	{unsignedTypes[2], unsignedTypes[1]},
	{unsignedTypes[3], unsignedTypes[2]},
	{unsignedTypes[4], unsignedTypes[3]},
}

// unsignedName returns the native unsigned type name for a width up to 64.
func unsignedName(width int) string {
	return fmt.Sprintf("uint%d", width)
}

// Generator orchestrates the code generation process.
type Generator struct {
	OutputDir string // Output directory
	Package   string // Output package name
}

// Run emits the generated files into OutputDir.
func (g *Generator) Run() error {
	files := []struct {
		name string
		emit func() []byte
	}{
		{"extend_gen.go", g.extendFile},
		{"trunc_gen.go", g.truncFile},
		{"caps_gen.go", g.capsFile},
	}

	for _, f := range files {
		src, err := format.Source(f.emit())
		if err != nil {
			return fmt.Errorf("format %s: %w", f.name, err)
		}
		path := filepath.Join(g.OutputDir, f.name)
		if err := os.WriteFile(path, src, 0644); err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
		fmt.Printf("Generated %s\n", path)
	}
	return nil
}

// header writes the generated-file preamble and the num import, which every
// generated file needs for the 128-bit entries.
func (g *Generator) header(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "// Code generated by intconvgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(buf, "package %s\n\n", g.Package)
	fmt.Fprintf(buf, "import (\n\tnum \"github.com/shabbyrobe/go-num\"\n)\n\n")
}

// emitFunc writes one conversion function with a one-line doc comment.
func emitFunc(buf *bytes.Buffer, name, doc string, s, d IntType, body string) {
	fmt.Fprintf(buf, "// %s %s\n", name, doc)
	fmt.Fprintf(buf, "func %s(v %s) %s {\n\t%s\n}\n\n",
		name, s.Name, d.Name, strings.ReplaceAll(body, "\n", "\n\t"))
}

// zeroExtendBody builds the body for a zero-extension from s to d.
//
// Non-identity signed cases route through the unsigned counterparts:
// reinterpret as unsigned, widen (which zero-fills), reinterpret back. For
// unsigned pairs the native widening conversion already zero-fills.
func zeroExtendBody(s, d IntType) string {
	switch {
	case s.Width == d.Width:
		return "return v"
	case d.Width == 128 && !s.Signed:
		return "return num.U128From64(uint64(v))"
	case d.Width == 128 && s.Width == 64:
		return "return num.U128From64(uint64(v)).AsI128()"
	case d.Width == 128:
		return fmt.Sprintf("return num.U128From64(uint64(%s(v))).AsI128()", unsignedName(s.Width))
	case s.Signed:
		return fmt.Sprintf("return %s(%s(%s(v)))", d.Name, unsignedName(d.Width), unsignedName(s.Width))
	default:
		return fmt.Sprintf("return %s(v)", d.Name)
	}
}

// signExtendBody builds the body for a sign-extension from s to d. The
// native signed widening conversion replicates the sign bit.
func signExtendBody(s, d IntType) string {
	switch {
	case s.Width == d.Width:
		return "return v"
	case d.Width == 128:
		return "return num.I128From64(int64(v))"
	default:
		return fmt.Sprintf("return %s(v)", d.Name)
	}
}

// truncateBody builds the body for a truncation from s to d. The native
// narrowing conversion keeps the low bits; 128-bit sources go through the
// raw low word.
func truncateBody(s, d IntType) string {
	switch {
	case s.Width == d.Width:
		return "return v"
	case s.Width == 128 && !s.Signed && d.Width == 64:
		return "_, lo := v.Raw()\nreturn lo"
	case s.Width == 128 && !s.Signed:
		return fmt.Sprintf("_, lo := v.Raw()\nreturn %s(lo)", d.Name)
	case s.Width == 128:
		return fmt.Sprintf("_, lo := v.AsU128().Raw()\nreturn %s(lo)", d.Name)
	default:
		return fmt.Sprintf("return %s(v)", d.Name)
	}
}

// extendFile emits extend_gen.go: zero-extension for both families,
// sign-extension for the signed family, and the generic extension that is
// fixed per pair to one or the other.
func (g *Generator) extendFile() []byte {
	var buf bytes.Buffer
	g.header(&buf)

	for _, fam := range [][]IntType{unsignedTypes, signedTypes} {
		for i, s := range fam {
			for _, d := range fam[i:] {
				name := fmt.Sprintf("ZeroExtend%sTo%s", s.Suffix, d.Suffix)
				doc := fmt.Sprintf("widens %s to %s, filling the new high bits with zero.", s.Name, d.Name)
				if s.Width == d.Width {
					doc = "returns v unchanged."
				}
				emitFunc(&buf, name, doc, s, d, zeroExtendBody(s, d))
			}
		}
	}

	for i, s := range signedTypes {
		for _, d := range signedTypes[i:] {
			name := fmt.Sprintf("SignExtend%sTo%s", s.Suffix, d.Suffix)
			doc := fmt.Sprintf("widens %s to %s, filling the new high bits with the sign bit.", s.Name, d.Name)
			if s.Width == d.Width {
				doc = "returns v unchanged."
			}
			emitFunc(&buf, name, doc, s, d, signExtendBody(s, d))
		}
	}

	for _, fam := range [][]IntType{unsignedTypes, signedTypes} {
		for i, s := range fam {
			for _, d := range fam[i:] {
				kind, how := "ZeroExtend", "zero-extension"
				if s.Signed {
					kind, how = "SignExtend", "sign-extension"
				}
				name := fmt.Sprintf("Extend%sTo%s", s.Suffix, d.Suffix)
				doc := fmt.Sprintf("widens %s to %s via %s.", s.Name, d.Name, how)
				if s.Width == d.Width {
					doc = "returns v unchanged."
				}
				body := fmt.Sprintf("return %s%sTo%s(v)", kind, s.Suffix, d.Suffix)
				emitFunc(&buf, name, doc, s, d, body)
			}
		}
	}

	return buf.Bytes()
}

// truncFile emits trunc_gen.go: truncation within each family.
func (g *Generator) truncFile() []byte {
	var buf bytes.Buffer
	g.header(&buf)

	for _, fam := range [][]IntType{unsignedTypes, signedTypes} {
		for i, s := range fam {
			for _, d := range fam[:i+1] {
				name := fmt.Sprintf("Truncate%sTo%s", s.Suffix, d.Suffix)
				doc := fmt.Sprintf("returns the low %d bits of v as %s.", d.Width, d.Name)
				if s.Width == d.Width {
					doc = "returns v unchanged."
				}
				emitFunc(&buf, name, doc, s, d, truncateBody(s, d))
			}
		}
	}

	return buf.Bytes()
}

// capsFile emits caps_gen.go: the compile-time capability table.
func (g *Generator) capsFile() []byte {
	var buf bytes.Buffer
	g.header(&buf)

	fmt.Fprintf(&buf, "// Every conversion capability the package provides, pinned with its exact\n")
	fmt.Fprintf(&buf, "// signature. A missing or mistyped instance is a build failure; the table\n")
	fmt.Fprintf(&buf, "// costs nothing at runtime.\n")

	entry := func(params, result, fn string) {
		fmt.Fprintf(&buf, "var _ func(%s) %s = %s\n", params, result, fn)
	}
	section := func(name string) {
		fmt.Fprintf(&buf, "\n// %s\n", name)
	}

	section("Zero extension")
	for _, fam := range [][]IntType{unsignedTypes, signedTypes} {
		for i, s := range fam {
			for _, d := range fam[i:] {
				entry(s.Name, d.Name, fmt.Sprintf("ZeroExtend%sTo%s", s.Suffix, d.Suffix))
			}
		}
	}

	section("Sign extension")
	for i, s := range signedTypes {
		for _, d := range signedTypes[i:] {
			entry(s.Name, d.Name, fmt.Sprintf("SignExtend%sTo%s", s.Suffix, d.Suffix))
		}
	}

	section("Generic extension")
	for _, fam := range [][]IntType{unsignedTypes, signedTypes} {
		for i, s := range fam {
			for _, d := range fam[i:] {
				entry(s.Name, d.Name, fmt.Sprintf("Extend%sTo%s", s.Suffix, d.Suffix))
			}
		}
	}

	section("Truncation")
	for _, fam := range [][]IntType{unsignedTypes, signedTypes} {
		for i, s := range fam {
			for _, d := range fam[:i+1] {
				entry(s.Name, d.Name, fmt.Sprintf("Truncate%sTo%s", s.Suffix, d.Suffix))
			}
		}
	}

	section("Signedness pairing")
	for _, p := range signednessPairs {
		st, ut := p[0], p[1]
		entry(st.Name, ut.Name, "AsUnsigned"+st.Suffix)
		entry(ut.Name, ut.Name, "AsUnsigned"+ut.Suffix)
		entry(ut.Name, st.Name, "AsSigned"+ut.Suffix)
		entry(st.Name, st.Name, "AsSigned"+st.Suffix)
		entry(st.Name, ut.Name, "AbsUnsigned"+st.Suffix)
		entry(ut.Name, ut.Name, "AbsUnsigned"+ut.Suffix)
	}

	section("Split/join")
	for _, p := range halfPairs {
		whole, half := p[0], p[1]
		entry(whole.Name, half.Name, "Lo"+whole.Suffix)
		entry(whole.Name, half.Name, "Hi"+whole.Suffix)
		entry(whole.Name, fmt.Sprintf("(%s, %s)", half.Name, half.Name), "LoHi"+whole.Suffix)
		entry(fmt.Sprintf("%s, %s", half.Name, half.Name), whole.Name, "Join"+whole.Suffix)
	}

	return buf.Bytes()
}
