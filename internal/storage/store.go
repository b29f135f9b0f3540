// Package storage handles object persistence for uploaded files, findings
// documents, and generated report PDFs.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrNoFindingsDocument reports that no findings document exists under the
// configured prefix. Distinct from an empty-but-present document, which the
// assessment pipeline rejects with its own error.
var ErrNoFindingsDocument = errors.New("no findings document found")

// ErrObjectNotFound reports a missing object key.
var ErrObjectNotFound = errors.New("object not found")

// ObjectStore is the object persistence boundary. The pipeline and the HTTP
// surface receive an implementation explicitly; no package-level client
// state exists.
type ObjectStore interface {
	// Put stores an object, overwriting any existing object at key.
	Put(ctx context.Context, bucket, key string, body io.Reader, contentType string) error
	// Get retrieves an object's full contents.
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	// ListKeys returns object keys under prefix in lexical order.
	ListKeys(ctx context.Context, bucket, prefix string) ([]string, error)
	// PresignGet issues a time-limited download link for an object.
	PresignGet(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
}

// FetchFindingsDocument retrieves the first findings document under prefix.
// The classification service writes one export per job; when several keys
// match, the lexically first wins. Returns the document bytes and its key.
func FetchFindingsDocument(ctx context.Context, store ObjectStore, bucket, prefix string) ([]byte, string, error) {
	keys, err := store.ListKeys(ctx, bucket, prefix)
	if err != nil {
		return nil, "", fmt.Errorf("listing findings documents: %w", err)
	}
	if len(keys) == 0 {
		return nil, "", ErrNoFindingsDocument
	}

	key := keys[0]
	data, err := store.Get(ctx, bucket, key)
	if err != nil {
		return nil, "", fmt.Errorf("fetching findings document %q: %w", key, err)
	}
	return data, key, nil
}
