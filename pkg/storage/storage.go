// Package storage stores product images and other uploaded assets.
//
// Two drivers are available:
//   - "local" — local filesystem (default)
//   - "s3"    — S3-compatible object storage (AWS S3, MinIO, R2)
//
// Boot once in internal/server, then:
//
//	storage.Put(ctx, "products/1.jpg", data)
//	url := storage.URL("products/1.jpg")
package storage

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/shashiranjanraj/vendora/config"
	"github.com/shashiranjanraj/vendora/pkg/logger"
)

// Disk is the driver interface.
type Disk interface {
	Put(ctx context.Context, path string, content []byte) error
	PutStream(ctx context.Context, path string, r io.Reader) error
	Get(ctx context.Context, path string) ([]byte, error)
	GetStream(ctx context.Context, path string) (io.ReadCloser, error)
	Exists(ctx context.Context, path string) bool
	Delete(ctx context.Context, path string) error
	Files(ctx context.Context, directory string) ([]string, error)

	// URL returns the public URL for path.
	URL(path string) string
}

var (
	mu          sync.RWMutex
	disks       = map[string]Disk{}
	defaultDisk string
)

// Connect boots the storage manager. Call once at startup.
func Connect() {
	mu.Lock()
	defer mu.Unlock()

	defaultDisk = config.StorageDefault()
	disks["local"] = newLocalDisk()

	if config.StorageS3Bucket() != "" {
		d, err := newS3Disk()
		if err != nil {
			logger.Warn("s3 disk disabled", "error", err)
		} else {
			disks["s3"] = d
		}
	}

	if _, ok := disks[defaultDisk]; !ok {
		logger.Warn("default storage disk not configured, falling back to local", "disk", defaultDisk)
		defaultDisk = "local"
	}
}

// Use returns the named disk, "local" or "s3".
func Use(name string) Disk {
	mu.RLock()
	defer mu.RUnlock()

	d, ok := disks[name]
	if !ok {
		panic(fmt.Sprintf("storage: disk %q is not configured", name))
	}
	return d
}

// RegisterDisk plugs in a custom Disk implementation, mainly for tests.
func RegisterDisk(name string, d Disk) {
	mu.Lock()
	disks[name] = d
	mu.Unlock()
}

func defaultD() Disk { return Use(defaultDisk) }

// Put writes content to path on the default disk.
func Put(ctx context.Context, path string, content []byte) error {
	return defaultD().Put(ctx, path, content)
}

// PutStream writes from r to path on the default disk.
func PutStream(ctx context.Context, path string, r io.Reader) error {
	return defaultD().PutStream(ctx, path, r)
}

// Get returns file content from the default disk.
func Get(ctx context.Context, path string) ([]byte, error) {
	return defaultD().Get(ctx, path)
}

// Exists reports whether path exists on the default disk.
func Exists(ctx context.Context, path string) bool {
	return defaultD().Exists(ctx, path)
}

// Delete removes path from the default disk.
func Delete(ctx context.Context, path string) error {
	return defaultD().Delete(ctx, path)
}

// URL returns the public URL for path on the default disk.
func URL(path string) string { return defaultD().URL(path) }
