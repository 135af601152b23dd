package static

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"sort"
	"strings"
	"time"

	"devserve/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/samber/lo"
)

// BucketFS exposes a bucket prefix as a read-only http.FileSystem.
// Objects are files; key prefixes ending in "/" are directories.
type BucketFS struct {
	client  storage.Client
	bucket  string
	prefix  string
	timeout time.Duration
}

// NewBucketFS serves bucket starting at prefix.
func NewBucketFS(client storage.Client, bucket, prefix string, timeout time.Duration) *BucketFS {
	return &BucketFS{
		client:  client,
		bucket:  bucket,
		prefix:  strings.Trim(prefix, "/"),
		timeout: timeout,
	}
}

// Open implements http.FileSystem.
func (b *BucketFS) Open(name string) (http.File, error) {
	key := b.key(name)

	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	if key != b.prefix {
		info, err := b.client.StatObject(ctx, b.bucket, key, minio.StatObjectOptions{})
		if err == nil {
			return b.openObject(key, info)
		}
		if !storage.IsNotFound(err) {
			return nil, &fs.PathError{Op: "open", Path: name, Err: err}
		}
	}

	entries, err := b.list(ctx, key)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	if len(entries) == 0 && key != b.prefix {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	return &bucketDir{
		info:    bucketFileInfo{name: path.Base(key), dir: true},
		entries: entries,
	}, nil
}

func (b *BucketFS) openObject(key string, info minio.ObjectInfo) (http.File, error) {
	// The object outlives Open, so it must not inherit the metadata timeout.
	obj, err := b.client.GetObject(context.Background(), b.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: key, Err: err}
	}
	return &bucketObject{
		ReadSeekCloser: obj,
		info: bucketFileInfo{
			name:    path.Base(key),
			size:    info.Size,
			modTime: info.LastModified,
		},
	}, nil
}

func (b *BucketFS) list(ctx context.Context, key string) ([]fs.FileInfo, error) {
	prefix := ""
	if key != "" {
		prefix = key + "/"
	}

	var entries []fs.FileInfo
	for obj := range b.client.ListObjects(ctx, b.bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %q: %w", prefix, obj.Err)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(obj.Key, prefix), "/")
		if name == "" {
			// folder marker for the prefix itself
			continue
		}
		entries = append(entries, bucketFileInfo{
			name:    name,
			size:    obj.Size,
			modTime: obj.LastModified,
			dir:     strings.HasSuffix(obj.Key, "/"),
		})
	}

	entries = lo.UniqBy(entries, func(fi fs.FileInfo) string { return fi.Name() })
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (b *BucketFS) key(name string) string {
	return strings.TrimPrefix(path.Join(b.prefix, path.Clean("/"+name)), "/")
}

type bucketFileInfo struct {
	name    string
	size    int64
	modTime time.Time
	dir     bool
}

func (fi bucketFileInfo) Name() string       { return fi.name }
func (fi bucketFileInfo) Size() int64        { return fi.size }
func (fi bucketFileInfo) ModTime() time.Time { return fi.modTime }
func (fi bucketFileInfo) IsDir() bool        { return fi.dir }
func (fi bucketFileInfo) Sys() any           { return nil }

func (fi bucketFileInfo) Mode() fs.FileMode {
	if fi.dir {
		return fs.ModeDir | 0o555
	}
	return 0o444
}

type bucketObject struct {
	io.ReadSeekCloser
	info bucketFileInfo
}

func (o *bucketObject) Readdir(int) ([]fs.FileInfo, error) {
	return nil, &fs.PathError{Op: "readdir", Path: o.info.name, Err: errors.New("not a directory")}
}

func (o *bucketObject) Stat() (fs.FileInfo, error) {
	return o.info, nil
}

type bucketDir struct {
	info    bucketFileInfo
	entries []fs.FileInfo
	offset  int
}

func (d *bucketDir) Read([]byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.info.name, Err: errors.New("is a directory")}
}

func (d *bucketDir) Seek(int64, int) (int64, error) {
	return 0, &fs.PathError{Op: "seek", Path: d.info.name, Err: errors.New("is a directory")}
}

func (d *bucketDir) Close() error {
	return nil
}

func (d *bucketDir) Stat() (fs.FileInfo, error) {
	return d.info, nil
}

// Readdir follows os.File semantics: count <= 0 returns everything left.
func (d *bucketDir) Readdir(count int) ([]fs.FileInfo, error) {
	rest := d.entries[d.offset:]
	if count <= 0 {
		d.offset = len(d.entries)
		return rest, nil
	}
	if len(rest) == 0 {
		return nil, io.EOF
	}
	n := min(count, len(rest))
	d.offset += n
	return rest[:n], nil
}
