package huffman

import (
	"bytes"
	"errors"
	"io"
	"sync"
)

// CompressionWriter collects the content to compress. Closing it runs the
// codec and makes the result available on the paired CompressionReader.
type CompressionWriter struct {
	core *compressionCore
}

// CompressionReader yields the compressed stream once its writer is closed.
type CompressionReader struct {
	core *compressionCore
}

type compressionCore struct {
	isInputBufferClosed bool
	lock                sync.Mutex
	inputBuffer         *bytes.Buffer
	outputBuffer        *bytes.Buffer
	progress            ProgressFunc
}

func (cr *CompressionReader) Read(data []byte) (int, error) {
	cr.core.lock.Lock()
	defer cr.core.lock.Unlock()
	if !cr.core.isInputBufferClosed {
		return 0, errors.New("compression content upload has not been signaled as complete")
	}
	return cr.core.outputBuffer.Read(data)
}

func (cr *CompressionReader) Close() error {
	cr.core.lock.Lock()
	defer cr.core.lock.Unlock()
	cr.core.inputBuffer.Reset()
	cr.core.outputBuffer.Reset()
	return nil
}

func (cw *CompressionWriter) Write(data []byte) (int, error) {
	cw.core.lock.Lock()
	defer cw.core.lock.Unlock()
	if cw.core.isInputBufferClosed {
		return 0, errors.New("write to closed compression writer")
	}
	return cw.core.inputBuffer.Write(data)
}

func (cw *CompressionWriter) Close() error {
	cw.core.lock.Lock()
	defer cw.core.lock.Unlock()
	if cw.core.isInputBufferClosed {
		return nil
	}
	cw.core.isInputBufferClosed = true
	compressedData, err := CompressWithProgress(cw.core.inputBuffer.Bytes(), cw.core.progress)
	cw.core.inputBuffer.Reset()
	if err != nil {
		return err
	}
	_, err = cw.core.outputBuffer.Write(compressedData)
	return err
}

// NewCompressionReaderAndWriter returns a connected writer/reader pair.
// progress may be nil.
func NewCompressionReaderAndWriter(progress ProgressFunc) (io.ReadCloser, io.WriteCloser) {
	newCompressionCore := &compressionCore{
		inputBuffer:  new(bytes.Buffer),
		outputBuffer: new(bytes.Buffer),
		progress:     progress,
	}
	return &CompressionReader{core: newCompressionCore}, &CompressionWriter{core: newCompressionCore}
}
