package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adilg123/huffpack/internal/compression"
	"github.com/adilg123/huffpack/internal/compression/huffman"
	"github.com/adilg123/huffpack/internal/config"
	"github.com/adilg123/huffpack/pkg/logger"
)

// CodecRequest represents the optional form fields of compress/decompress/inspect
type CodecRequest struct {
	Algorithm string `form:"algorithm"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// Handler serves the compression API
type Handler struct {
	cfg *config.Config
	log logger.Logger
}

func NewHandler(cfg *config.Config, log logger.Logger) *Handler {
	return &Handler{cfg: cfg, log: log}
}

// HandleCompress handles file compression requests
func (h *Handler) HandleCompress(c *gin.Context) {
	fileContent, filename, ok := h.readUpload(c)
	if !ok {
		return
	}

	compressedData, stats, err := compression.Compress(fileContent, compression.Options{})
	if err != nil {
		h.fail(c, "Compression failed", err)
		return
	}
	h.log.Infof("request %s: compressed %q %d -> %d bytes", requestID(c), filename, stats.OriginalSize, stats.ProcessedSize)

	h.sendFile(c, fmt.Sprintf("%s_compressed.huff", getBaseFilename(filename)), compressedData, stats)
}

// HandleDecompress handles file decompression requests
func (h *Handler) HandleDecompress(c *gin.Context) {
	fileContent, filename, ok := h.readUpload(c)
	if !ok {
		return
	}

	decompressedData, stats, err := compression.Decompress(fileContent, compression.Options{})
	if err != nil {
		h.fail(c, "Decompression failed", err)
		return
	}
	h.log.Infof("request %s: decompressed %q %d -> %d bytes", requestID(c), filename, stats.OriginalSize, stats.ProcessedSize)

	base := strings.TrimSuffix(getBaseFilename(filename), "_compressed")
	h.sendFile(c, fmt.Sprintf("%s_decompressed", base), decompressedData, stats)
}

// HandleInspect reports the header of an uploaded compressed file
func (h *Handler) HandleInspect(c *gin.Context) {
	fileContent, _, ok := h.readUpload(c)
	if !ok {
		return
	}

	info, err := compression.Inspect(fileContent)
	if err != nil {
		h.fail(c, "Inspection failed", err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// HandleInfo provides information about the service
func (h *Handler) HandleInfo(c *gin.Context) {
	info := map[string]interface{}{
		"service": "huffpack",
		"version": "1.0.0",
		"algorithms": map[string]interface{}{
			"supported": []string{compression.Algorithm},
			"descriptions": map[string]string{
				compression.Algorithm: "Static Huffman coding with a self-describing code table header",
			},
		},
		"limits": map[string]interface{}{
			"max_file_size": fmt.Sprintf("%d bytes (%.1f MB)", h.cfg.MaxFileSize, float64(h.cfg.MaxFileSize)/(1024*1024)),
		},
		"endpoints": map[string]interface{}{
			"compress":   "POST /api/v1/compress - Upload file for compression",
			"decompress": "POST /api/v1/decompress - Upload file for decompression",
			"inspect":    "POST /api/v1/inspect - Show the header of a compressed file",
			"info":       "GET /info - Get service information",
			"health":     "GET /health - Health check",
		},
	}

	c.JSON(http.StatusOK, info)
}

// HandleHealth provides a simple health check endpoint
func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "huffpack",
	})
}

// readUpload validates the request and returns the uploaded file. On failure
// the error response has already been written.
func (h *Handler) readUpload(c *gin.Context) ([]byte, string, bool) {
	var req CodecRequest
	if err := c.ShouldBind(&req); err != nil {
		h.abort(c, http.StatusBadRequest, "Invalid request", err.Error())
		return nil, "", false
	}
	if req.Algorithm != "" && req.Algorithm != compression.Algorithm {
		h.abort(c, http.StatusBadRequest, "Invalid algorithm",
			fmt.Sprintf("Supported algorithms: %v", []string{compression.Algorithm}))
		return nil, "", false
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.abort(c, http.StatusBadRequest, "File upload error", "No file provided or file upload failed")
		return nil, "", false
	}
	defer file.Close()

	if header.Size > h.cfg.MaxFileSize {
		h.abort(c, http.StatusRequestEntityTooLarge, "File too large",
			fmt.Sprintf("Maximum file size is %d bytes", h.cfg.MaxFileSize))
		return nil, "", false
	}

	fileContent, err := io.ReadAll(file)
	if err != nil {
		h.log.Errorf("request %s: read upload: %v", requestID(c), err)
		h.abort(c, http.StatusInternalServerError, "File read error", "Failed to read uploaded file")
		return nil, "", false
	}
	return fileContent, header.Filename, true
}

func (h *Handler) sendFile(c *gin.Context, filename string, data []byte, stats *compression.Stats) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("X-Original-Size", strconv.Itoa(stats.OriginalSize))
	c.Header("X-Processed-Size", strconv.Itoa(stats.ProcessedSize))
	c.Header("X-Compression-Ratio", strconv.FormatFloat(stats.CompressionRatio, 'f', 2, 64))
	c.Data(http.StatusOK, "application/octet-stream", data)
}

// fail maps codec errors to HTTP statuses
func (h *Handler) fail(c *gin.Context, title string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, huffman.ErrEmptyInput), errors.Is(err, huffman.ErrUnsupportedInput):
		status = http.StatusBadRequest
	case errors.Is(err, huffman.ErrCorruptStream):
		status = http.StatusUnprocessableEntity
	default:
		h.log.Errorf("request %s: %s: %v", requestID(c), title, err)
	}
	h.abort(c, status, title, err.Error())
}

func (h *Handler) abort(c *gin.Context, status int, title, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     title,
		Code:      status,
		Message:   message,
		RequestID: requestID(c),
	})
}

func getBaseFilename(filename string) string {
	filename = filepath.Base(filename)
	if filename == "" || filename == "." || filename == string(filepath.Separator) {
		return "file"
	}
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
