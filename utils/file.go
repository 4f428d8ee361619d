package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var (
	ErrFileRequired = errors.New("please select a file")
	ErrFileTooLarge = errors.New("file size exceeds maximum allowed size")
	ErrNotAnImage   = errors.New("invalid file type. Only jpg, jpeg, png, gif, webp allowed")
)

func ValidateImageFile(fileHeader *multipart.FileHeader, maxSize int64) error {
	if fileHeader == nil || fileHeader.Size == 0 {
		return ErrFileRequired
	}
	if maxSize > 0 && fileHeader.Size > maxSize {
		return ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return ErrNotAnImage
	}
	return nil
}

func ValidateUpload(fileHeader *multipart.FileHeader, maxSize int64) error {
	if fileHeader == nil || fileHeader.Size == 0 {
		return ErrFileRequired
	}
	if maxSize > 0 && fileHeader.Size > maxSize {
		return ErrFileTooLarge
	}
	return nil
}

// BlobName keeps the original extension behind a fresh uuid.
func BlobName(originalName string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
}

func TextFileName() string {
	return fmt.Sprintf("file-%s.txt", uuid.NewString())
}
