package compression

import (
	"fmt"
	"io"
	"os"

	pb "github.com/cheggaaa/pb/v3"

	"github.com/adilg123/huffpack/internal/compression/huffman"
)

// Algorithm is the name reported in Stats and by the API.
const Algorithm = "huffman"

// Options contains compression/decompression options
type Options struct {
	ShowProgress   bool
	ProgressOutput io.Writer // defaults to os.Stderr
}

// Stats contains compression statistics
type Stats struct {
	OriginalSize     int     `json:"original_size"`
	ProcessedSize    int     `json:"processed_size"`
	CompressionRatio float64 `json:"compression_ratio"`
	Algorithm        string  `json:"algorithm"`
}

// HeaderInfo describes a compressed stream without decoding it.
type HeaderInfo struct {
	PaddedBits  int               `json:"padded_bits"`
	TableSize   int               `json:"table_size"`
	HeaderSize  int               `json:"header_size"`
	PayloadSize int               `json:"payload_size"`
	Codes       map[string]string `json:"codes"`
}

// Compress compresses data with the static Huffman codec
func Compress(data []byte, options Options) ([]byte, *Stats, error) {
	bar := newProgressBar(len(data), options)
	reader, writer := huffman.NewCompressionReaderAndWriter(bar.add)

	compressedData, err := processData(data, reader, writer)
	bar.finish()
	if err != nil {
		return nil, nil, fmt.Errorf("compression failed: %w", err)
	}

	stats := &Stats{
		OriginalSize:  len(data),
		ProcessedSize: len(compressedData),
		Algorithm:     Algorithm,
	}
	if len(data) > 0 {
		stats.CompressionRatio = float64(len(compressedData)) / float64(len(data)) * 100
	}
	return compressedData, stats, nil
}

// Decompress decompresses data produced by Compress
func Decompress(data []byte, options Options) ([]byte, *Stats, error) {
	// The output size is unknown until the payload is decoded, so the bar
	// counts up without a total.
	bar := newProgressBar(0, options)
	reader, writer := huffman.NewDecompressionReaderAndWriter(bar.add)

	decompressedData, err := processData(data, reader, writer)
	bar.finish()
	if err != nil {
		return nil, nil, fmt.Errorf("decompression failed: %w", err)
	}

	stats := &Stats{
		OriginalSize:  len(data),
		ProcessedSize: len(decompressedData),
		Algorithm:     Algorithm,
	}
	if len(decompressedData) > 0 {
		stats.CompressionRatio = float64(len(data)) / float64(len(decompressedData)) * 100
	}
	return decompressedData, stats, nil
}

// Inspect reports the header of a compressed stream
func Inspect(data []byte) (*HeaderInfo, error) {
	header, payloadSize, err := huffman.Inspect(data)
	if err != nil {
		return nil, err
	}
	info := &HeaderInfo{
		PaddedBits:  header.PaddedBits,
		TableSize:   len(header.Codes),
		HeaderSize:  header.Size(),
		PayloadSize: payloadSize,
		Codes:       make(map[string]string, len(header.Codes)),
	}
	for _, symbol := range header.Codes.Symbols() {
		info.Codes[fmt.Sprintf("0x%02x", symbol)] = header.Codes[symbol]
	}
	return info, nil
}

// processData writes the whole input, closes the writer to run the codec and
// reads back the result.
func processData(inputData []byte, reader io.ReadCloser, writer io.WriteCloser) ([]byte, error) {
	defer reader.Close()

	if _, err := writer.Write(inputData); err != nil {
		return nil, fmt.Errorf("failed to write data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	result, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read result: %w", err)
	}
	return result, nil
}

// progressBar wraps an optional pb bar; the zero value discards updates.
type progressBar struct {
	bar *pb.ProgressBar
}

func newProgressBar(total int, options Options) *progressBar {
	if !options.ShowProgress {
		return &progressBar{}
	}
	out := options.ProgressOutput
	if out == nil {
		out = os.Stderr
	}
	bar := pb.New(total)
	bar.Set(pb.Bytes, true)
	bar.SetWriter(out)
	bar.Start()
	return &progressBar{bar: bar}
}

func (p *progressBar) add(n int) {
	if p.bar != nil {
		p.bar.Add(n)
	}
}

func (p *progressBar) finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
