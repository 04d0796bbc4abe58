package huffman

import (
	"encoding/binary"
	"fmt"
)

const (
	// fixedHeaderSize covers the paddedBits and tableSize fields.
	fixedHeaderSize = 8
	// entryOverhead is the symbol byte plus the code length field of an entry.
	entryOverhead = 5
)

// Header is the self-describing prefix of a compressed stream.
//
//	[paddedBits int32][tableSize int32]
//	tableSize x [symbol uint8][codeLen int32][codeLen ASCII '0'/'1' bytes]
//
// Integers are little-endian.
type Header struct {
	PaddedBits int
	Codes      CodeTable
}

// Size returns the encoded length of h in bytes.
func (h *Header) Size() int {
	size := fixedHeaderSize
	for _, code := range h.Codes {
		size += entryOverhead + len(code)
	}
	return size
}

// EncodeHeader serializes h, writing table entries in ascending symbol order.
func EncodeHeader(h *Header) ([]byte, error) {
	if h.PaddedBits < 0 || h.PaddedBits > 7 {
		return nil, fmt.Errorf("encode header: padding of %d bits is out of range", h.PaddedBits)
	}
	if len(h.Codes) > 256 {
		return nil, fmt.Errorf("encode header: %d codes: %w", len(h.Codes), ErrUnsupportedInput)
	}
	out := make([]byte, 0, h.Size())
	out = binary.LittleEndian.AppendUint32(out, uint32(h.PaddedBits))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(h.Codes)))
	for _, symbol := range h.Codes.Symbols() {
		code := h.Codes[symbol]
		out = append(out, symbol)
		out = binary.LittleEndian.AppendUint32(out, uint32(len(code)))
		out = append(out, code...)
	}
	return out, nil
}

// headerReader consumes little-endian fields from a buffer and reports a
// corrupt stream instead of reading past its end.
type headerReader struct {
	buf []byte
	pos int
}

func (hr *headerReader) remaining() int {
	return len(hr.buf) - hr.pos
}

func (hr *headerReader) readInt32(field string) (int, error) {
	if hr.remaining() < 4 {
		return 0, fmt.Errorf("%s: need 4 bytes at offset %d, have %d: %w", field, hr.pos, hr.remaining(), ErrCorruptStream)
	}
	v := int32(binary.LittleEndian.Uint32(hr.buf[hr.pos:]))
	hr.pos += 4
	return int(v), nil
}

func (hr *headerReader) readBytes(field string, n int) ([]byte, error) {
	if n < 0 || hr.remaining() < n {
		return nil, fmt.Errorf("%s: need %d bytes at offset %d, have %d: %w", field, n, hr.pos, hr.remaining(), ErrCorruptStream)
	}
	b := hr.buf[hr.pos : hr.pos+n]
	hr.pos += n
	return b, nil
}

// DecodeHeader parses the header at the start of data and returns it with the
// rest of data, which is the packed payload.
func DecodeHeader(data []byte) (*Header, []byte, error) {
	hr := &headerReader{buf: data}
	paddedBits, err := hr.readInt32("padded bits")
	if err != nil {
		return nil, nil, fmt.Errorf("decode header: %w", err)
	}
	if paddedBits < 0 || paddedBits > 7 {
		return nil, nil, fmt.Errorf("decode header: padding of %d bits: %w", paddedBits, ErrCorruptStream)
	}
	tableSize, err := hr.readInt32("table size")
	if err != nil {
		return nil, nil, fmt.Errorf("decode header: %w", err)
	}
	if tableSize < 0 || tableSize > 256 {
		return nil, nil, fmt.Errorf("decode header: table size %d: %w", tableSize, ErrCorruptStream)
	}
	// every entry takes at least entryOverhead+1 bytes
	if tableSize > hr.remaining()/(entryOverhead+1) {
		return nil, nil, fmt.Errorf("decode header: table size %d exceeds the %d bytes left: %w", tableSize, hr.remaining(), ErrCorruptStream)
	}

	codes := make(CodeTable, tableSize)
	for i := 0; i < tableSize; i++ {
		symbol, err := hr.readBytes("symbol", 1)
		if err != nil {
			return nil, nil, fmt.Errorf("decode header: entry %d: %w", i, err)
		}
		codeLen, err := hr.readInt32("code length")
		if err != nil {
			return nil, nil, fmt.Errorf("decode header: entry %d: %w", i, err)
		}
		if codeLen < 1 || codeLen > maxCodeLength {
			return nil, nil, fmt.Errorf("decode header: entry %d: code length %d: %w", i, codeLen, ErrCorruptStream)
		}
		code, err := hr.readBytes("code", codeLen)
		if err != nil {
			return nil, nil, fmt.Errorf("decode header: entry %d: %w", i, err)
		}
		if _, dup := codes[symbol[0]]; dup {
			return nil, nil, fmt.Errorf("decode header: symbol %d listed twice: %w", symbol[0], ErrCorruptStream)
		}
		codes[symbol[0]] = string(code)
	}
	if err := codes.Validate(); err != nil {
		return nil, nil, fmt.Errorf("decode header: %w", err)
	}
	return &Header{PaddedBits: paddedBits, Codes: codes}, data[hr.pos:], nil
}
