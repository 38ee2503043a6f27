package pinning

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnabled(t *testing.T) {
	assert.False(t, NewClient("https://api.pinata.cloud", "").Enabled())
	assert.True(t, NewClient("https://api.pinata.cloud", "jwt").Enabled())
}

func TestPinFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pinning/pinFileToIPFS", r.URL.Path)
		require.Equal(t, "Bearer test-jwt", r.Header.Get("Authorization"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "thesis.pdf", header.Filename)
		assert.Equal(t, []byte("pdf bytes"), data)

		json.NewEncoder(w).Encode(pinResponse{IpfsHash: "QmPinned", PinSize: 9})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-jwt")
	hash, err := c.PinFile(context.Background(), "thesis.pdf", []byte("pdf bytes"))
	require.NoError(t, err)
	assert.Equal(t, "QmPinned", hash)
}

func TestPinJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pinning/pinJSONToIPFS", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		content, ok := body["pinataContent"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "My Project", content["title"])

		json.NewEncoder(w).Encode(pinResponse{IpfsHash: "QmMeta"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-jwt")
	hash, err := c.PinJSON(context.Background(), map[string]string{"title": "My Project"})
	require.NoError(t, err)
	assert.Equal(t, "QmMeta", hash)
}

func TestPinFile_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad-jwt")
	_, err := c.PinFile(context.Background(), "f", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestPinFile_EmptyHashRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(pinResponse{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "jwt")
	_, err := c.PinFile(context.Background(), "f", []byte("x"))
	require.Error(t, err)
}
