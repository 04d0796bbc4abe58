// Package huffman implements a static Huffman codec over bytes.
//
// A compressed stream is a Header (padding count and code table) followed by
// the packed payload. Codes are built from the byte frequencies of the whole
// input, so the input must fit in memory.
package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when there is nothing to compress.
	ErrEmptyInput = errors.New("empty input")
	// ErrCorruptStream is returned when a compressed stream is inconsistent
	// with its own header or cannot be decoded with its code table.
	ErrCorruptStream = errors.New("corrupt compressed stream")
	// ErrUnsupportedInput is returned for inputs outside the 256-symbol alphabet.
	ErrUnsupportedInput = errors.New("unsupported input")
)

// Compress encodes content as header followed by packed payload.
func Compress(content []byte) ([]byte, error) {
	return CompressWithProgress(content, nil)
}

// CompressWithProgress is Compress with progress reported in input bytes.
func CompressWithProgress(content []byte, progress ProgressFunc) ([]byte, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("compress: %w", ErrEmptyInput)
	}
	symbolFreq := CountFrequencies(content)
	tree, err := BuildTree(symbolFreq)
	if err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	codes := AssignCodes(tree)
	payload, paddedBits, err := Pack(content, codes, progress)
	if err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	header, err := EncodeHeader(&Header{PaddedBits: paddedBits, Codes: codes})
	if err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	return append(header, payload...), nil
}

// Decompress decodes a stream produced by Compress.
func Decompress(content []byte) ([]byte, error) {
	return DecompressWithProgress(content, nil)
}

// DecompressWithProgress is Decompress with progress reported in output bytes.
func DecompressWithProgress(content []byte, progress ProgressFunc) ([]byte, error) {
	header, payload, err := DecodeHeader(content)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	decompressed, err := Unpack(payload, header.Codes, header.PaddedBits, progress)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	return decompressed, nil
}

// Inspect parses the header of a compressed stream without decoding the
// payload. It returns the header and the payload length in bytes.
func Inspect(content []byte) (*Header, int, error) {
	header, payload, err := DecodeHeader(content)
	if err != nil {
		return nil, 0, fmt.Errorf("inspect: %w", err)
	}
	return header, len(payload), nil
}
