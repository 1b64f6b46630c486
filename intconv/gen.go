package intconv

// The conversion table (extend_gen.go, trunc_gen.go, caps_gen.go) is emitted
// by cmd/intconvgen. Go generics cannot express "U is at least as wide as T",
// so the valid (source, destination) pairs are enumerated as concrete
// functions; a conversion outside the table is an undefined identifier and
// fails the build.

//go:generate go run ../cmd/intconvgen -output . -pkg intconv
