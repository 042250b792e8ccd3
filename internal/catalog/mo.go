package catalog

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sort"

	"github.com/leonelquinteros/gotext"
)

const (
	moMagic      = 0x950412de
	moHeaderSize = 28 // 7 uint32 fields
)

// CompileMO parses PO source and emits a standard little-endian GNU MO
// binary without a hash table. Entries are sorted by msgid, so the
// same source always compiles to byte-identical output.
func CompileMO(source []byte) ([]byte, error) {
	if len(bytes.TrimSpace(source)) == 0 {
		return nil, errors.New("empty catalog source")
	}

	po := gotext.NewPo()
	po.Parse(source)

	translations := po.GetDomain().GetTranslations()

	entries := make([]Entry, 0, len(translations))
	if hdr, ok := translations[""]; ok {
		entries = append(entries, Entry{ID: "", Str: hdr.Get()})
		delete(translations, "")
	}
	for id, tr := range translations {
		entries = append(entries, Entry{ID: id, Str: tr.Get()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	return encodeMO(entries)
}

func encodeMO(entries []Entry) ([]byte, error) {
	count := uint32(len(entries))

	// msgid and msgstr tables hold a (length, offset) pair per entry.
	idTable := make([]byte, count*8)
	strTable := make([]byte, count*8)

	// String data follows the header and both tables.
	offset := uint32(moHeaderSize) + count*8*2
	var data bytes.Buffer

	for i, e := range entries {
		id := append([]byte(e.ID), 0x00)
		str := append([]byte(e.Str), 0x00)

		binary.LittleEndian.PutUint32(idTable[i*8:], uint32(len(id)-1))
		binary.LittleEndian.PutUint32(idTable[i*8+4:], offset)
		data.Write(id)
		offset += uint32(len(id))

		binary.LittleEndian.PutUint32(strTable[i*8:], uint32(len(str)-1))
		binary.LittleEndian.PutUint32(strTable[i*8+4:], offset)
		data.Write(str)
		offset += uint32(len(str))
	}

	out := bytes.NewBuffer(make([]byte, 0, int(offset)))
	header := []uint32{
		moMagic,
		0, // format revision
		count,
		moHeaderSize,
		moHeaderSize + count*8,
		0, // hash table size
		0, // hash table offset
	}
	for _, v := range header {
		if err := binary.Write(out, binary.LittleEndian, v); err != nil {
			return nil, fmt.Errorf("write mo header: %w", err)
		}
	}

	out.Write(idTable)
	out.Write(strTable)
	out.Write(data.Bytes())

	return out.Bytes(), nil
}
