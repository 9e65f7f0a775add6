package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"penguinadmin/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	uploadsURL    = "/uploads"
	maxImageBytes = 2 << 20
	sniffLen      = 512
)

var (
	errImageTooLarge   = errs.NewValueIsInvalidErrorWithCause("image", errors.New("must be at most 2 MB"))
	errImageNotAllowed = errs.NewValueIsInvalidErrorWithCause("image", errors.New("must be a JPEG, PNG or WebP file"))
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// saveImage stores an uploaded product picture under a random name and returns
// its public path. The type is sniffed from the content, not taken from the
// client.
func (s *Server) saveImage(fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxImageBytes {
		return "", errImageTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(src, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]

	ext, ok := imageExtensions[http.DetectContentType(head)]
	if !ok {
		return "", errImageNotAllowed
	}

	if err = os.MkdirAll(s.cfg.UploadsPath, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	name := uuid.NewString() + ext
	content := io.MultiReader(bytes.NewReader(head), io.LimitReader(src, maxImageBytes-int64(len(head))+1))
	if err = writeImage(filepath.Join(s.cfg.UploadsPath, name), content); err != nil {
		return "", err
	}

	return uploadsURL + "/" + name, nil
}

// writeImage copies content to path. A partial file never survives a failed
// write.
func writeImage(path string, content io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}

	written, err := io.Copy(dst, content)
	if err == nil && written > maxImageBytes {
		err = errImageTooLarge
	}
	if err != nil {
		_ = dst.Close()
		_ = os.Remove(path)
		return err
	}

	if err = dst.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("close image file: %w", err)
	}
	return nil
}
