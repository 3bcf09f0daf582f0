package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"

	"github.com/walled99/Learn-Deutsch/internal/domain"
)

// ImageField is the multipart form field carrying the photo.
const ImageField = "image"

// multipartMemory is how much of the form is held in memory before spilling to disk.
const multipartMemory = 8 << 20

var safeExt = regexp.MustCompile(`^\.[A-Za-z0-9]{1,8}$`)

type extractor interface {
	Extract(ctx context.Context, imageRef string) domain.ExtractionOutcome
}

// ExtractionHandler accepts photo uploads and runs an extraction on each.
type ExtractionHandler struct {
	svc       extractor
	maxBytes  int64
	uploadDir string
	log       *slog.Logger
}

// NewExtractionHandler creates an ExtractionHandler. An empty uploadDir uses os.TempDir.
func NewExtractionHandler(svc extractor, maxBytes int64, uploadDir string, logger *slog.Logger) *ExtractionHandler {
	return &ExtractionHandler{
		svc:       svc,
		maxBytes:  maxBytes,
		uploadDir: uploadDir,
		log:       logger.With("handler", "extraction"),
	}
}

// Create handles POST /extractions. The upload is spooled to a temporary
// file that keeps the client's extension so MIME detection applies, then
// removed once the extraction finishes. The outcome is always returned with
// 200; only a missing or oversized upload is a 400/413.
func (h *ExtractionHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("image exceeds %d bytes", h.maxBytes))
			return
		}
		writeError(w, http.StatusBadRequest, "expected multipart/form-data with an image field")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile(ImageField)
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing image field")
		return
	}
	defer file.Close()

	path, err := h.spool(file, header.Filename)
	if err != nil {
		h.log.ErrorContext(r.Context(), "spool upload failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "could not store upload")
		return
	}
	defer os.Remove(path)

	outcome := h.svc.Extract(r.Context(), path)

	writeJSON(w, http.StatusOK, outcome)
}

func (h *ExtractionHandler) spool(src io.Reader, filename string) (string, error) {
	ext := filepath.Ext(filepath.Base(filename))
	if !safeExt.MatchString(ext) {
		ext = ""
	}

	tmp, err := os.CreateTemp(h.uploadDir, "upload-*"+ext)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return tmp.Name(), nil
}
