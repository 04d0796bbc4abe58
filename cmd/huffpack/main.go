// Command huffpack compresses and decompresses files with static Huffman
// coding. Without -mode it shows an interactive menu.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/adilg123/huffpack/internal/compression"
	"github.com/adilg123/huffpack/internal/config"
	"github.com/adilg123/huffpack/internal/fileio"
	"github.com/adilg123/huffpack/internal/textextract"
)

const (
	modeRoundTrip  = "roundtrip"
	modeCompress   = "compress"
	modeDecompress = "decompress"
)

var errInvalidChoice = errors.New("invalid choice")

type app struct {
	in        *bufio.Reader
	out       io.Writer
	extractor *textextract.Extractor
	options   compression.Options

	success *color.Color
	failure *color.Color
	prompt  *color.Color
}

func newApp(in io.Reader, out io.Writer, options compression.Options) *app {
	return &app{
		in:        bufio.NewReader(in),
		out:       out,
		extractor: textextract.New(),
		options:   options,
		success:   color.New(color.FgGreen),
		failure:   color.New(color.FgRed, color.Bold),
		prompt:    color.New(color.FgCyan),
	}
}

func main() {
	cfg := config.Load()
	mode := flag.String("mode", "", "roundtrip, compress or decompress (interactive menu when empty)")
	input := flag.String("in", "", "input file")
	output := flag.String("out", "", "output file of a compress or decompress run")
	progress := flag.Bool("progress", cfg.ShowProgress, "show a progress bar")
	flag.Parse()

	a := newApp(os.Stdin, color.Output, compression.Options{ShowProgress: *progress})
	if err := a.run(context.Background(), *mode, *input, *output); err != nil {
		a.failure.Fprintf(a.out, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, mode, input, output string) error {
	if mode == "" {
		var err error
		if mode, input, err = a.menu(); err != nil {
			return err
		}
	}
	if input == "" {
		return errors.New("no input file given")
	}

	switch mode {
	case modeRoundTrip:
		compressed, err := a.compressFile(ctx, input, "")
		if err != nil {
			return err
		}
		if _, err := a.decompressFile(compressed, input+"_decompressed"); err != nil {
			return err
		}
		a.success.Fprintln(a.out, "Compression and decompression completed successfully!")
	case modeCompress:
		if _, err := a.compressFile(ctx, input, output); err != nil {
			return err
		}
		a.success.Fprintln(a.out, "Compression completed successfully!")
	case modeDecompress:
		if _, err := a.decompressFile(input, output); err != nil {
			return err
		}
		a.success.Fprintln(a.out, "Decompression completed successfully!")
	default:
		return fmt.Errorf("%w: mode %q", errInvalidChoice, mode)
	}
	return nil
}

// menu asks for an operation and a file name.
func (a *app) menu() (string, string, error) {
	a.prompt.Fprintln(a.out, "Choose an option:")
	fmt.Fprintln(a.out, "1. Compress and Decompress")
	fmt.Fprintln(a.out, "2. Compress Only")
	fmt.Fprintln(a.out, "3. Decompress Only")
	choice, err := a.ask("Enter your choice (1/2/3): ")
	if err != nil {
		return "", "", err
	}

	var mode, question string
	switch choice {
	case "1":
		mode, question = modeRoundTrip, "Enter the input file name: "
	case "2":
		mode, question = modeCompress, "Enter the input file name: "
	case "3":
		mode, question = modeDecompress, "Enter the compressed file name: "
	default:
		return "", "", fmt.Errorf("%w: %q", errInvalidChoice, choice)
	}
	path, err := a.ask(question)
	if err != nil {
		return "", "", err
	}
	return mode, path, nil
}

func (a *app) ask(question string) (string, error) {
	a.prompt.Fprint(a.out, question)
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// compressFile compresses input into output (input+"_compressed" when empty)
// and returns the output path. Documents are converted to text first and
// the text is kept next to the input as input+".txt".
func (a *app) compressFile(ctx context.Context, input, output string) (string, error) {
	if output == "" {
		output = input + "_compressed"
	}

	var (
		content []byte
		err     error
	)
	if textextract.NeedsExtraction(input) {
		if content, err = a.extractor.Extract(ctx, input); err != nil {
			return "", err
		}
		if err = fileio.WriteAll(input+".txt", content, fileio.Truncate); err != nil {
			return "", err
		}
	} else if content, err = fileio.ReadAll(input); err != nil {
		return "", err
	}

	compressed, stats, err := compression.Compress(content, a.options)
	if err != nil {
		return "", err
	}
	if err := fileio.WriteAll(output, compressed, fileio.Truncate); err != nil {
		return "", err
	}
	fmt.Fprintf(a.out, "%s: %d -> %d bytes (%.2f%%)\n", output, stats.OriginalSize, stats.ProcessedSize, stats.CompressionRatio)
	return output, nil
}

// decompressFile decompresses input into output (input+"_decompressed" when
// empty) and returns the output path.
func (a *app) decompressFile(input, output string) (string, error) {
	if output == "" {
		output = input + "_decompressed"
	}
	content, err := fileio.ReadAll(input)
	if err != nil {
		return "", err
	}
	decompressed, stats, err := compression.Decompress(content, a.options)
	if err != nil {
		return "", err
	}
	if err := fileio.WriteAll(output, decompressed, fileio.Truncate); err != nil {
		return "", err
	}
	fmt.Fprintf(a.out, "%s: %d -> %d bytes\n", output, stats.OriginalSize, stats.ProcessedSize)
	return output, nil
}
