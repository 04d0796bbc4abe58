package huffman

import (
	"bytes"
	"errors"
	"io"
	"sync"
)

// DecompressionWriter collects a compressed stream. Closing it decodes the
// stream and makes the result available on the paired DecompressionReader.
type DecompressionWriter struct {
	core *decompressionCore
}

// DecompressionReader yields the decompressed content once its writer is closed.
type DecompressionReader struct {
	core *decompressionCore
}

type decompressionCore struct {
	isInputBufferClosed bool
	lock                sync.Mutex
	inputBuffer         *bytes.Buffer
	outputBuffer        *bytes.Buffer
	progress            ProgressFunc
}

func (dr *DecompressionReader) Read(data []byte) (int, error) {
	dr.core.lock.Lock()
	defer dr.core.lock.Unlock()
	if !dr.core.isInputBufferClosed {
		return 0, errors.New("decompression content upload has not been signaled as complete")
	}
	return dr.core.outputBuffer.Read(data)
}

func (dr *DecompressionReader) Close() error {
	dr.core.lock.Lock()
	defer dr.core.lock.Unlock()
	dr.core.inputBuffer.Reset()
	dr.core.outputBuffer.Reset()
	return nil
}

func (dw *DecompressionWriter) Write(data []byte) (int, error) {
	dw.core.lock.Lock()
	defer dw.core.lock.Unlock()
	if dw.core.isInputBufferClosed {
		return 0, errors.New("write to closed decompression writer")
	}
	return dw.core.inputBuffer.Write(data)
}

func (dw *DecompressionWriter) Close() error {
	dw.core.lock.Lock()
	defer dw.core.lock.Unlock()
	if dw.core.isInputBufferClosed {
		return nil
	}
	dw.core.isInputBufferClosed = true
	decompressedData, err := DecompressWithProgress(dw.core.inputBuffer.Bytes(), dw.core.progress)
	dw.core.inputBuffer.Reset()
	if err != nil {
		return err
	}
	_, err = dw.core.outputBuffer.Write(decompressedData)
	return err
}

// NewDecompressionReaderAndWriter returns a connected writer/reader pair.
// progress may be nil.
func NewDecompressionReaderAndWriter(progress ProgressFunc) (io.ReadCloser, io.WriteCloser) {
	newDecompressionCore := &decompressionCore{
		inputBuffer:  new(bytes.Buffer),
		outputBuffer: new(bytes.Buffer),
		progress:     progress,
	}
	return &DecompressionReader{core: newDecompressionCore}, &DecompressionWriter{core: newDecompressionCore}
}
