// Package fileio reads and writes whole files for the CLI.
package fileio

import (
	"fmt"
	"os"
)

// Mode selects how WriteAll treats an existing file.
type Mode int

const (
	Truncate Mode = iota
	Append
)

// IOError reports a failed file operation. It is never retried here.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ReadAll returns the whole content of path.
func ReadAll(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return data, nil
}

// WriteAll writes data to path, creating it if needed.
func WriteAll(path string, data []byte, mode Mode) error {
	flag := os.O_WRONLY | os.O_CREATE
	switch mode {
	case Truncate:
		flag |= os.O_TRUNC
	case Append:
		flag |= os.O_APPEND
	default:
		return &IOError{Op: "write", Path: path, Err: fmt.Errorf("unknown mode %d", mode)}
	}
	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	return nil
}
