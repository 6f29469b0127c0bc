// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

/*
Package document implements the candidate document storage proxy.

Clients upload, download, preview, and delete binary documents without ever
receiving credentials to, or identifiers within, the underlying object
store. The document id is the only handle a client holds; the storage key
exists solely inside this package and the metadata row.

# Failure Posture

The upload path writes the object first and the metadata row second. If the
metadata write fails, the stored object is orphaned: invisible to every
client (nothing references it) and harmless beyond the storage cost. The
orphan is logged and accepted; no compensating delete runs, because a
delete that itself fails would need its own compensation.
*/
package document

import "time"

// Document is the metadata record of one stored binary.
//
// StorageKey is deliberately unexported from every response: clients address
// documents by id only.
type Document struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	CandidateID    string    `json:"candidate_id"`
	DocType        string    `json:"doc_type"`
	FileName       string    `json:"file_name"`
	MimeType       string    `json:"mime_type"`
	SizeBytes      int64     `json:"size_bytes"`
	StorageKey     string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// Document types accepted at upload.
const (
	TypeResume      = "resume"
	TypeCoverLetter = "cover_letter"
	TypeOther       = "other"
)

// DocTypes lists the accepted document types, for validation messages.
var DocTypes = []string{TypeResume, TypeCoverLetter, TypeOther}

const (
	FieldDocType  = "doc_type"
	FieldFile     = "file"
	FieldFileName = "file_name"
)
