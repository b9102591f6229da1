package client

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCategory(t *testing.T) {
	t.Run("success triggers the refresh callback", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/category/delete/7", r.URL.Path)
			assert.Equal(t, "Bearer jeton", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		refreshed := false
		msg, ok := New(srv.URL, "jeton").DeleteCategory(7, func() { refreshed = true })

		assert.True(t, ok)
		assert.Equal(t, MsgDeleteSuccess, msg)
		assert.True(t, refreshed)
	})

	t.Run("status codes map to localized messages", func(t *testing.T) {
		cases := []struct {
			status int
			want   string
		}{
			{http.StatusForbidden, MsgDeleteForbidden},
			{http.StatusNotFound, MsgDeleteNotFound},
			{http.StatusInternalServerError, MsgDeleteError},
		}

		for _, tc := range cases {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))

			refreshed := false
			msg, ok := New(srv.URL, "jeton").DeleteCategory(1, func() { refreshed = true })

			assert.False(t, ok)
			assert.Equal(t, tc.want, msg)
			assert.False(t, refreshed)
			srv.Close()
		}
	})

	t.Run("network failure yields the generic message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused from here on

		msg, ok := New(srv.URL, "jeton").DeleteCategory(1, nil)

		assert.False(t, ok)
		assert.Equal(t, MsgDeleteError, msg)
	})

	t.Run("a second call during flight is a no-op", func(t *testing.T) {
		release := make(chan struct{})
		entered := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(entered)
			<-release
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c := New(srv.URL, "jeton")

		var wg sync.WaitGroup
		wg.Add(1)
		var firstMsg string
		var firstOK bool
		go func() {
			defer wg.Done()
			firstMsg, firstOK = c.DeleteCategory(1, nil)
		}()

		<-entered
		msg, ok := c.DeleteCategory(1, nil)
		assert.False(t, ok)
		assert.Empty(t, msg)

		close(release)
		wg.Wait()
		assert.True(t, firstOK)
		assert.Equal(t, MsgDeleteSuccess, firstMsg)
	})
}

func TestCountryCache(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"countries":[{"id":1,"name":"France","code":"FR"}]}`))
	}))
	defer srv.Close()

	cache := NewCountryCache(New(srv.URL, "jeton"))

	first, err := cache.Get()
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "France", first[0].Name)

	// Second read is served from memory.
	_, err = cache.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, hits)

	cache.Invalidate()
	_, err = cache.Get()
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
}
