package huffman

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/icza/bitio"
)

// progressStep is how many input (Pack) or output (Unpack) bytes pass between
// two progress reports.
const progressStep = 64 * 1024

// ProgressFunc receives the number of bytes processed since the previous call.
type ProgressFunc func(n int)

func (p ProgressFunc) report(n int) {
	if p != nil && n > 0 {
		p(n)
	}
}

// bitCode is a code split into at most 64-bit chunks for bitio.Writer.WriteBits.
type bitCode struct {
	chunks []uint64
	widths []uint8
	length int
}

func compileCode(code string) (bitCode, error) {
	compiled := bitCode{length: len(code)}
	for len(code) > 0 {
		n := min(len(code), 64)
		chunk, err := strconv.ParseUint(code[:n], 2, 64)
		if err != nil {
			return bitCode{}, err
		}
		compiled.chunks = append(compiled.chunks, chunk)
		compiled.widths = append(compiled.widths, uint8(n))
		code = code[n:]
	}
	return compiled, nil
}

// Pack writes the code of every byte of content, in order, MSB-first, and
// zero-fills the last byte. It returns the packed bytes and the number of
// fill bits (0-7).
func Pack(content []byte, codes CodeTable, progress ProgressFunc) ([]byte, int, error) {
	var lookup [256]*bitCode
	for symbol, code := range codes {
		compiled, err := compileCode(code)
		if err != nil {
			return nil, 0, fmt.Errorf("pack: symbol %d: %w", symbol, err)
		}
		lookup[symbol] = &compiled
	}

	var out bytes.Buffer
	out.Grow(len(content))
	w := bitio.NewWriter(&out)
	var totalBits uint64
	pending := 0
	for i, symbol := range content {
		code := lookup[symbol]
		if code == nil {
			return nil, 0, fmt.Errorf("pack: byte %d at offset %d has no code: %w", symbol, i, ErrUnsupportedInput)
		}
		for c, chunk := range code.chunks {
			w.TryWriteBits(chunk, code.widths[c])
		}
		totalBits += uint64(code.length)
		if pending++; pending == progressStep {
			progress.report(pending)
			pending = 0
		}
	}
	if w.TryError != nil {
		return nil, 0, fmt.Errorf("pack: %w", w.TryError)
	}
	if err := w.Close(); err != nil {
		return nil, 0, fmt.Errorf("pack: flush: %w", err)
	}
	progress.report(pending)
	return out.Bytes(), paddingFor(totalBits), nil
}

// paddingFor returns how many zero bits complete the last byte of a
// totalBits-long stream.
func paddingFor(totalBits uint64) int {
	return int((8 - totalBits%8) % 8)
}

// Unpack reverses Pack. It reads len(payload)*8-paddedBits bits and emits a
// symbol each time the bits read since the last symbol spell a code.
func Unpack(payload []byte, codes CodeTable, paddedBits int, progress ProgressFunc) ([]byte, error) {
	if paddedBits < 0 || paddedBits > 7 {
		return nil, fmt.Errorf("unpack: padding of %d bits: %w", paddedBits, ErrCorruptStream)
	}
	if len(payload) == 0 {
		if paddedBits != 0 {
			return nil, fmt.Errorf("unpack: padding of %d bits with an empty payload: %w", paddedBits, ErrCorruptStream)
		}
		return []byte{}, nil
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("unpack: %d payload bytes but no codes: %w", len(payload), ErrCorruptStream)
	}
	if last := payload[len(payload)-1]; last&(1<<paddedBits-1) != 0 {
		return nil, fmt.Errorf("unpack: padding bits of last byte %08b are not zero: %w", last, ErrCorruptStream)
	}
	root, err := newDecodeTrie(codes)
	if err != nil {
		return nil, fmt.Errorf("unpack: %w", err)
	}

	totalBits := len(payload)*8 - paddedBits
	r := bitio.NewReader(bytes.NewReader(payload))
	out := make([]byte, 0, len(payload)*2)
	node := root
	pending := 0
	for i := 0; i < totalBits; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("unpack: bit %d: %v: %w", i, err, ErrCorruptStream)
		}
		next := node.children[0]
		if bit {
			next = node.children[1]
		}
		if next == nil {
			return nil, fmt.Errorf("unpack: bits ending at %d match no code: %w", i, ErrCorruptStream)
		}
		if !next.leaf {
			node = next
			continue
		}
		out = append(out, next.symbol)
		node = root
		if pending++; pending == progressStep {
			progress.report(pending)
			pending = 0
		}
	}
	if node != root {
		return nil, fmt.Errorf("unpack: stream ends inside a code: %w", ErrCorruptStream)
	}
	progress.report(pending)
	return out, nil
}
