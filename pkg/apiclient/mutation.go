// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package apiclient

import (
	"errors"
	"fmt"
)

// Machine codes a write guard may return. Any 403 carrying one of these is a
// policy refusal, never a data problem.
const (
	CodeDemoReadOnly    = "DEMO_READ_ONLY"
	CodePreviewReadOnly = "PREVIEW_READ_ONLY"
)

// VetoError is returned by every mutating call that a server-side write guard
// refused. Call sites extract it with [AsVeto] and render Message as a notice;
// they never need to know which guard fired.
type VetoError struct {
	Code    string
	Message string
}

func (e *VetoError) Error() string {
	return fmt.Sprintf("operation vetoed (%s): %s", e.Code, e.Message)
}

// AsVeto reports whether err is (or wraps) a guard veto.
//
// Intended use is a single switch at the call boundary:
//
//	if veto, ok := apiclient.AsVeto(err); ok {
//	    notify(veto.Message)
//	    return
//	}
func AsVeto(err error) (*VetoError, bool) {
	var veto *VetoError
	if errors.As(err, &veto) {
		return veto, true
	}
	return nil, false
}

// APIError is any non-veto error response from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// isVetoCode reports whether a machine code belongs to the write-guard
// vocabulary rather than the general error taxonomy.
func isVetoCode(code string) bool {
	return code == CodeDemoReadOnly || code == CodePreviewReadOnly
}
