// Package asm translates Iridium assembly text into a binary machine
// code image.
//
// Translation runs as five sequential stages, each a pure function over
// the previous stage's artifact: line validation, tokenization,
// pseudo-instruction expansion, label address assignment, and binary
// encoding. The first error aborts the whole assembly; no partial image
// is ever produced.
package asm
