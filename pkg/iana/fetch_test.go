package iana

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"gotest.tools/assert"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("registry body"))
		}))
	defer srv.Close()

	body, err := Fetch(context.Background(), srv.URL, 5*time.Second)
	assert.NilError(t, err)
	assert.Equal(t, string(body), "registry body")
}

func TestFetchRetriesTransientErrors(t *testing.T) {
	// First two attempts fail, the third succeeds; Fetch keeps trying.
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				http.Error(w, "try later", http.StatusServiceUnavailable)
				return
			}
			w.Write([]byte("eventually"))
		}))
	defer srv.Close()

	body, err := Fetch(context.Background(), srv.URL, 5*time.Second)
	assert.NilError(t, err)
	assert.Equal(t, string(body), "eventually")
	assert.Equal(t, atomic.LoadInt32(&calls), int32(3))
}

func TestFetchGivesUp(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.URL, 5*time.Second)
	assert.ErrorContains(t, err, "404")
}
