package imagefile

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/walled99/Learn-Deutsch/internal/provider"
)

// DefaultMIMEType is used for any extension not in the table.
const DefaultMIMEType = "image/jpeg"

var mimeBySuffix = []struct {
	suffix string
	mime   string
}{
	{".png", "image/png"},
	{".gif", "image/gif"},
	{".webp", "image/webp"},
	{".bmp", "image/bmp"},
	{".heic", "image/heic"},
	{".heif", "image/heic"},
}

// DetectMIMEType maps an image reference to a MIME type by its extension.
// Matching is a case-insensitive suffix check; unknown suffixes fall back to JPEG.
func DetectMIMEType(ref string) string {
	lower := strings.ToLower(ref)
	for _, m := range mimeBySuffix {
		if strings.HasSuffix(lower, m.suffix) {
			return m.mime
		}
	}
	return DefaultMIMEType
}

// Source resolves an image reference to its raw bytes.
type Source interface {
	ReadImage(ctx context.Context, ref string) ([]byte, error)
}

// FileSource reads images from the local filesystem.
type FileSource struct{}

// ReadImage reads the file at ref.
func (FileSource) ReadImage(ctx context.Context, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(ref)
}

// Encoder turns an image reference into a base64 payload with a MIME type.
type Encoder struct {
	src Source
	log *slog.Logger
}

// NewEncoder creates an Encoder that reads from the local filesystem.
func NewEncoder(logger *slog.Logger) *Encoder {
	return NewEncoderWithSource(FileSource{}, logger)
}

// NewEncoderWithSource creates an Encoder over a custom Source (for testing).
func NewEncoderWithSource(src Source, logger *slog.Logger) *Encoder {
	return &Encoder{
		src: src,
		log: logger.With("adapter", "imagefile"),
	}
}

// Encode reads the image at ref and returns it base64-encoded.
// An empty file is treated as unreadable.
func (e *Encoder) Encode(ctx context.Context, ref string) (provider.Image, error) {
	if strings.TrimSpace(ref) == "" {
		return provider.Image{}, fmt.Errorf("imagefile: empty image reference")
	}

	raw, err := e.src.ReadImage(ctx, ref)
	if err != nil {
		return provider.Image{}, fmt.Errorf("imagefile: read %s: %w", ref, err)
	}
	if len(raw) == 0 {
		return provider.Image{}, fmt.Errorf("imagefile: %s is empty", ref)
	}

	img := provider.Image{
		Data:     base64.StdEncoding.EncodeToString(raw),
		MIMEType: DetectMIMEType(ref),
	}

	e.log.DebugContext(ctx, "image encoded",
		slog.String("mime_type", img.MIMEType),
		slog.Int("bytes", len(raw)),
	)

	return img, nil
}
