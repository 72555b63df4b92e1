package asm

// DataBase is the word address of the first data item.
const DataBase = 0x0010_0000

// LabelTable maps label names to word addresses. It is built once from
// the expanded token stream and read-only thereafter.
type LabelTable map[string]uint32

// BuildLabelTable assigns instruction addresses 0..N-1 in program order
// and data addresses from DataBase in declaration order, each item
// advancing the address by its word length, and records every declared
// label. A label declared twice anywhere in the program fails.
func BuildLabelTable(tokens []Token) (table LabelTable, err error) {
	table = make(LabelTable, len(tokens))
	instrAddr := uint32(0)
	dataAddr := uint32(DataBase)

	for _, tok := range tokens {
		addr := &instrAddr
		if _, ok := tok.(*Datum); ok {
			addr = &dataAddr
		}

		if label := tok.TokenLabel(); len(label) != 0 {
			if _, ok := table[label]; ok {
				err = &LineError{LineNo: tok.TokenLine(), Err: ErrLabelTwice(label)}
				table = nil
				return
			}
			table[label] = *addr
		}

		*addr += uint32(tok.Words())
	}

	return
}
