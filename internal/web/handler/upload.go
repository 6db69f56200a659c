package handler

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/GoFolio/GoFolio/internal/config"
)

var (
	// ErrUploadTooLarge is returned when an uploaded file exceeds the limit.
	ErrUploadTooLarge = errors.New("uploaded file is too large")

	// ErrUploadBadType is returned for disallowed file extensions.
	ErrUploadBadType = errors.New("uploaded file type is not allowed")

	// CVExtensions are the file extensions accepted for CV uploads.
	CVExtensions = map[string]bool{".pdf": true, ".doc": true, ".docx": true}

	// ImageExtensions are the file extensions accepted for image uploads.
	ImageExtensions = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true}
)

// SaveUpload stores a multipart upload below the media root and returns its
// media-relative path. An absent file field is not an error and returns "".
func SaveUpload(c *fiber.Ctx, media config.Media, field, subdir string, allowed map[string]bool) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		// field not submitted
		return "", nil
	}

	if err = CheckUpload(file, media, allowed); err != nil {
		return "", err
	}

	dir := filepath.Join(media.Root, subdir)
	if err = os.MkdirAll(dir, 0o750); err != nil {
		return "", err
	}

	name := SanitizeFilename(file.Filename)
	if err = c.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}

	return subdir + "/" + name, nil
}

// CheckUpload validates the size and extension of an uploaded file.
func CheckUpload(file *multipart.FileHeader, media config.Media, allowed map[string]bool) error {
	if media.MaxUploadSize > 0 && file.Size > media.MaxUploadSize {
		return ErrUploadTooLarge
	}

	if !allowed[strings.ToLower(filepath.Ext(file.Filename))] {
		return ErrUploadBadType
	}

	return nil
}

// SanitizeFilename keeps only the base name and replaces characters that
// are unsafe in a path or URL.
func SanitizeFilename(name string) string {
	base := filepath.Base(name)

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
}
