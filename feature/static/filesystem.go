package static

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"devserve/core/server"
	"devserve/core/storage"
)

// NewFileSystem resolves the configured root into an http.FileSystem.
// For the local source the root must be an existing directory; for the bucket
// source the bucket must exist and the root is used as a key prefix.
func NewFileSystem(ctx context.Context, cfg server.Config, store storage.Client, storageCfg storage.Config) (http.FileSystem, error) {
	switch cfg.Source {
	case server.SourceLocal:
		root, err := filepath.Abs(cfg.Root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root %q: %w", cfg.Root, err)
		}
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to open root: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("root %s is not a directory", root)
		}
		return http.Dir(root), nil

	case server.SourceBucket:
		if store == nil {
			return nil, fmt.Errorf("bucket source requires a storage client")
		}
		timeout := time.Duration(storageCfg.Timeout()) * time.Second
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		exists, err := store.BucketExists(ctx, storageCfg.Bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to check bucket %s: %w", storageCfg.Bucket, err)
		}
		if !exists {
			return nil, fmt.Errorf("bucket %s does not exist", storageCfg.Bucket)
		}

		prefix := cfg.Root
		if prefix == "." {
			prefix = ""
		}
		return NewBucketFS(store, storageCfg.Bucket, prefix, timeout), nil

	default:
		return nil, fmt.Errorf("unknown source %q", cfg.Source)
	}
}
