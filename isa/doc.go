// Package isa defines the Iridium 16-bit instruction set: the register
// file, the fixed mnemonic table with its five encoding formats, and the
// packing and unpacking of single 16-bit instruction words.
//
// The instruction set is a closed enumeration fixed by the ISA
// specification. The tables in this package are static data; nothing in
// them may be registered or mutated at run time.
package isa
