package storage

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImgBBStore_UploadSuccess(t *testing.T) {
	imageBytes := []byte("fake-png-bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		decoded, err := base64.StdEncoding.DecodeString(r.FormValue("image"))
		require.NoError(t, err)
		assert.Equal(t, imageBytes, decoded)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]string{"url": "https://i.ibb.co/abc/x.png"},
		})
	}))
	defer server.Close()

	store := NewImgBBStore(server.URL, "test-key")
	url, err := store.Upload(context.Background(), "x.png", "image/png", imageBytes)
	require.NoError(t, err)
	assert.Equal(t, "https://i.ibb.co/abc/x.png", url)
}

func TestImgBBStore_UploadAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   map[string]string{"message": "Invalid API key"},
		})
	}))
	defer server.Close()

	store := NewImgBBStore(server.URL, "bad-key")
	_, err := store.Upload(context.Background(), "x.png", "image/png", []byte("bytes"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestImgBBStore_UploadHostUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	store := NewImgBBStore(server.URL, "test-key")
	_, err := store.Upload(context.Background(), "x.png", "image/png", []byte("bytes"))
	assert.Error(t, err)
}
