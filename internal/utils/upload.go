package utils

import (
	"mime/multipart" // Uploaded file headers
	"os"             // Directory creation
	"path/filepath"  // Path handling

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/google/uuid"   // Random filenames
)

// SaveUpload stores an uploaded file under a fresh UUID-based name inside dir
// and returns the stored filename. The random name keeps a failed database
// write from ever pointing at another user's file.
func SaveUpload(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filename := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}
