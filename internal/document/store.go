// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package document

import "context"

// Repository abstracts document metadata persistence, always filtered by
// the acting organization.
type Repository interface {
	ListDocuments(ctx context.Context, organizationID, candidateID string) ([]*Document, error)
	GetDocument(ctx context.Context, organizationID, id string) (*Document, error)
	CreateDocument(ctx context.Context, d *Document) error
	DeleteDocument(ctx context.Context, organizationID, id string) error
}
