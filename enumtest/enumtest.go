// Package enumtest provides a small enumerable type for use in tests.
// Demo's generated file is checked in and doubles as the reference
// output of the enumgen tool.
package enumtest

//go:generate go run github.com/jnbooth/enumeration/cmd/enumgen -type Demo -opt -output demo_enum.go

// Demo is a ten-valued enumerable type.
type Demo uint8

const (
	A Demo = iota
	B
	C
	D
	E
	F
	G
	H
	I
	J
)
