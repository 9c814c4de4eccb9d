package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/QuangTung97/loyalty/config"
)

//go:generate moq -out storage_mocks.go . Storage

// Storage is an opaque blob store keyed by path
type Storage interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// ErrNotFound ...
var ErrNotFound = errors.New("storage: object not found")

// New selects the driver configured by conf
func New(ctx context.Context, conf config.StorageConfig) (Storage, error) {
	switch conf.Driver {
	case "", "local":
		return NewLocal(conf.Local.RootDir), nil
	case "s3":
		return NewS3(ctx, conf.S3)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", conf.Driver)
	}
}
