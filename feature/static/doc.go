// Package static serves a directory tree over HTTP.
//
// The root is either a local directory (http.Dir) or a prefix inside an object
// storage bucket (BucketFS). Requests are resolved against the root with standard
// static-file semantics:
//
//   - a file is served with its bytes and a MIME type inferred from its extension,
//     consulting the override table first;
//   - a directory is served through its index document when present, otherwise as a
//     generated listing;
//   - anything else is a 404 that leaves the server running.
//
// # HTTP Endpoints
//
//   - GET|HEAD /* : file, index document or directory listing.
package static
