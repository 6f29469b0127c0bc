// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

/*
Package storage provides the object-storage capability behind the document proxy.

It abstracts a bucket of opaque keys so that domain code never touches SDK
types, native URLs, or credentials. Clients of the API never see a storage
key or a presigned URL; every byte is streamed through the server.

Implementations:

  - S3Store: S3-compatible endpoint (Cloudflare R2 / MinIO) via aws-sdk-go-v2.
  - MemoryStore: in-process map, used by tests.
*/
package storage

import (
	"context"
	"io"
)

// ObjectStore is the capability contract for binary document storage.
//
// Keys are opaque strings generated by the caller. A failure of the backing
// service must be wrapped as [apperr.Upstream] by implementations so that it
// surfaces as a 502-class error, never as a success.
type ObjectStore interface {
	// Put writes the object under key. size is the exact content length.
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error

	// Get opens the object for streaming. The caller must close the reader.
	// A missing key is an upstream inconsistency (metadata exists without its
	// object) and is reported as an error, not as a not-found.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
