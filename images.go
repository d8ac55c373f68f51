package postgen

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"net/http"

	"golang.org/x/image/draw"
)

const (
	jpegQuality   = 80
	maxUploadSize = 10 << 20 // 10MB

	// maxImagePixels bounds the decode buffer when scaling.
	maxImagePixels = 40_000_000
)

// ErrImageRead is returned when an attached image cannot be turned into a
// data URL.
var ErrImageRead = errors.New("image read failed")

// ImageOptions controls how LoadImage embeds a file.
type ImageOptions struct {
	MaxSize  int64 // Reject payloads larger than this, <= 0 means 10MB
	MaxWidth int   // Scale wider images down, 0 keeps the original bytes
	Quality  int   // JPEG quality used when scaling
}

// LoadImage reads src into a base64 data URL. contentType is the MIME type
// declared by the uploader; when it is empty or generic the type is sniffed.
// Every failure wraps ErrImageRead.
func LoadImage(ctx context.Context, src io.Reader, contentType string, opts ImageOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrImageRead, err)
	}
	limit := opts.MaxSize
	if limit <= 0 {
		limit = maxUploadSize
	}
	data, err := io.ReadAll(io.LimitReader(src, limit+1))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrImageRead, err)
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("%w: file larger than %d bytes", ErrImageRead, limit)
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrImageRead, err)
	}

	mediaType := detectMediaType(contentType, data)
	if opts.MaxWidth > 0 {
		scaled, ok, err := scaleImage(data, opts)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrImageRead, err)
		}
		if ok {
			data = scaled
			mediaType = "image/jpeg"
		}
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func detectMediaType(declared string, data []byte) string {
	if declared != "" {
		if mt, _, err := mime.ParseMediaType(declared); err == nil && mt != "application/octet-stream" {
			return mt
		}
	}
	mt, _, err := mime.ParseMediaType(http.DetectContentType(data))
	if err != nil {
		return "application/octet-stream"
	}
	return mt
}

// scaleImage shrinks data to opts.MaxWidth and re-encodes it as JPEG. It
// reports false when data is not a decodable image, is already narrow
// enough or exceeds maxImagePixels, in which case the caller keeps the
// original bytes.
func scaleImage(data []byte, opts ImageOptions) ([]byte, bool, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= opts.MaxWidth {
		return nil, false, nil
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxImagePixels {
		return nil, false, nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false, nil
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	newH := h * opts.MaxWidth / w
	if newH < 1 {
		newH = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, opts.MaxWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	quality := opts.Quality
	if quality <= 0 {
		quality = jpegQuality
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: quality}); err != nil {
		return nil, false, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), true, nil
}
