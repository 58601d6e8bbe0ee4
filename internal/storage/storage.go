package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage abstracts where uploaded media ends up. Handlers only ever persist
// the public URL returned by GetURL; the blob itself never passes through the
// database.
type Storage interface {
	// Save stores a blob at the given object path
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Delete removes a blob; deleting a missing blob is not an error
	Delete(ctx context.Context, path string) error

	// GetURL returns the public URL for a stored blob
	GetURL(ctx context.Context, path string) (string, error)
}

// Config holds storage configuration
type Config struct {
	Type      string // local, cloudflare_r2
	BasePath  string // for local storage
	BaseURL   string // public URL base
	Bucket    string // for R2
	Region    string // for R2
	AccessKey string // for R2
	SecretKey string // for R2
	Endpoint  string // for R2
}

// NewStorage creates a storage instance based on configuration
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "cloudflare_r2":
		return NewCloudflareR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
