// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package guard

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoOrgCacheResolvesOnce(t *testing.T) {
	var calls int32
	cache := NewDemoOrgCache("demo", func(context.Context, string) (string, error) {
		atomic.AddInt32(&calls, 1)
		return demoOrgID, nil
	})

	for i := 0; i < 5; i++ {
		id, err := cache.OrgID(context.Background())
		require.NoError(t, err)
		assert.Equal(t, demoOrgID, id)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDemoOrgCacheConcurrentResolutionIsIdempotent(t *testing.T) {
	var calls int32
	cache := NewDemoOrgCache("demo", func(context.Context, string) (string, error) {
		atomic.AddInt32(&calls, 1)
		return demoOrgID, nil
	})

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := cache.OrgID(context.Background())
			require.NoError(t, err)
			results[i] = id
		}(i)
	}
	wg.Wait()

	for _, id := range results {
		assert.Equal(t, demoOrgID, id)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDemoOrgCacheUnconfiguredSlugNeverLooksUp(t *testing.T) {
	cache := NewDemoOrgCache("", func(context.Context, string) (string, error) {
		t.Fatal("lookup must not run without a configured slug")
		return "", nil
	})

	id, err := cache.OrgID(context.Background())
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestDemoOrgCacheMemoizesMissingOrganization(t *testing.T) {
	var calls int32
	cache := NewDemoOrgCache("gone", func(context.Context, string) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "", nil
	})

	for i := 0; i < 3; i++ {
		id, err := cache.OrgID(context.Background())
		require.NoError(t, err)
		assert.Empty(t, id)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "the no-demo outcome is memoized too")
}

func TestDemoOrgCacheDoesNotMemoizeErrors(t *testing.T) {
	var calls int32
	boom := errors.New("connection refused")
	cache := NewDemoOrgCache("demo", func(context.Context, string) (string, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return "", boom
		}
		return demoOrgID, nil
	})

	_, err := cache.OrgID(context.Background())
	require.ErrorIs(t, err, boom)

	id, err := cache.OrgID(context.Background())
	require.NoError(t, err, "a transient failure must not poison the cache")
	assert.Equal(t, demoOrgID, id)
}
