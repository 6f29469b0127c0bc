// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package guard

import (
	"context"
	"net/http"
	"sync"

	"github.com/hirevine/hirevine/internal/platform/sec"
)

// Veto machine codes surfaced to clients.
const (
	CodeDemoReadOnly    = "DEMO_READ_ONLY"
	CodePreviewReadOnly = "PREVIEW_READ_ONLY"
)

const demoReadOnlyMessage = "This is a demonstration workspace. Changes are disabled."

// demoOrgNone marks a completed lookup that found no demo organization, so
// the cache can distinguish "resolved to nothing" from "not resolved yet".
const demoOrgNone = "\x00none"

// OrgLookup resolves an organization slug to its id. It must return
// ("", nil) when no organization carries the slug.
type OrgLookup func(ctx context.Context, slug string) (string, error)

// DemoOrgCache memoizes the demo organization id for the life of the process.
//
// # Semantics
//
// The configured slug is resolved at most once; the result (including the
// "no such organization" outcome) is held until the process exits. Lookup
// errors are NOT memoized, so a transient database failure at startup does
// not permanently disable the guard. If the organization behind the slug is
// later renamed or deleted, the cached id goes stale; that is an accepted
// property of demo deployments, which pin their workspace at provision time.
type DemoOrgCache struct {
	slug   string
	lookup OrgLookup

	mu       sync.Mutex
	resolved string
}

// NewDemoOrgCache constructs a cache for the configured demo slug. An empty
// slug means no demo workspace is configured and every lookup returns "".
func NewDemoOrgCache(slug string, lookup OrgLookup) *DemoOrgCache {
	return &DemoOrgCache{slug: slug, lookup: lookup}
}

// OrgID returns the demo organization id, resolving it on first use.
// Concurrent first calls race benignly: both resolve the same slug and the
// winner's identical result is stored.
func (cache *DemoOrgCache) OrgID(ctx context.Context) (string, error) {
	if cache.slug == "" {
		return "", nil
	}

	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cache.resolved == demoOrgNone {
		return "", nil
	}
	if cache.resolved != "" {
		return cache.resolved, nil
	}

	id, err := cache.lookup(ctx, cache.slug)
	if err != nil {
		return "", err
	}

	if id == "" {
		cache.resolved = demoOrgNone
		return "", nil
	}

	cache.resolved = id
	return id, nil
}

// DemoGuard vetoes mutations issued from within the demo organization.
//
// Requests from other organizations, anonymous requests, and requests
// without a tenant context all pass; the guard constrains exactly one
// workspace and nothing else.
type DemoGuard struct {
	cache *DemoOrgCache
}

// NewDemoGuard constructs a [DemoGuard] over the given cache.
func NewDemoGuard(cache *DemoOrgCache) *DemoGuard {
	return &DemoGuard{cache: cache}
}

func (guard *DemoGuard) Name() string { return "demo" }

func (guard *DemoGuard) Evaluate(ctx context.Context, _ *http.Request, session *sec.Session) (Decision, error) {
	if session == nil || session.ActiveOrganizationID == "" {
		return Allow(), nil
	}

	demoOrgID, err := guard.cache.OrgID(ctx)
	if err != nil {
		return Decision{}, err
	}
	if demoOrgID == "" {
		return Allow(), nil
	}

	if session.ActiveOrganizationID == demoOrgID {
		return Deny(CodeDemoReadOnly, demoReadOnlyMessage), nil
	}
	return Allow(), nil
}
