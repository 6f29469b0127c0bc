// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package guard

import (
	"context"
	"net/http"

	"github.com/hirevine/hirevine/internal/platform/sec"
)

const previewReadOnlyMessage = "This preview deployment does not accept changes."

// PreviewGuard vetoes every mutation when the process runs in a preview
// deployment. Unlike [DemoGuard] it is organization-agnostic: preview
// environments are read-only for everyone, authenticated or not.
type PreviewGuard struct {
	enabled bool
}

// NewPreviewGuard constructs a [PreviewGuard]. The enabled flag is fixed at
// process start from the deployment mode configuration.
func NewPreviewGuard(enabled bool) *PreviewGuard {
	return &PreviewGuard{enabled: enabled}
}

func (guard *PreviewGuard) Name() string { return "preview" }

func (guard *PreviewGuard) Evaluate(_ context.Context, _ *http.Request, _ *sec.Session) (Decision, error) {
	if !guard.enabled {
		return Allow(), nil
	}
	return Deny(CodePreviewReadOnly, previewReadOnlyMessage), nil
}
