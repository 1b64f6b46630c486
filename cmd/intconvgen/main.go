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

// Command intconvgen generates the exhaustive integer conversion table used
// by the intconv package.
//
// Usage:
//
//	intconvgen -output . -pkg intconv
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/intconvgen -output . -pkg intconv
//
// The generator enumerates every valid (source, destination) pair over the
// widths 8/16/32/64/128 in both signedness families and produces:
//  1. extend_gen.go - zero-extension, sign-extension and generic extension
//  2. trunc_gen.go  - truncation
//  3. caps_gen.go   - the compile-time capability table pinning every
//     conversion (including signedness pairing and split/join) to its exact
//     signature
//
// Invalid pairs are never emitted, so calling one is a compile error in user
// code rather than a runtime failure.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputDir = flag.String("output", ".", "Output directory (default: current directory)")
	pkgName   = flag.String("pkg", "intconv", "Output package name")
)

func main() {
	flag.Parse()

	gen := &Generator{
		OutputDir: *outputDir,
		Package:   *pkgName,
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
