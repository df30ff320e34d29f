package classify

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteReady(t *testing.T) {
	assert.False(t, NewRemote("", "", "").Ready())
	assert.False(t, NewRemote("http://localhost", "", "").Ready())
	assert.True(t, NewRemote("http://localhost", "key", "secret").Ready())
}

func TestRemoteClassify(t *testing.T) {
	want := []float64{0, 0, 0, 0.9, 0.1, 0, 0, 0, 0, 0}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		assert.Equal(t, "appkey", r.Header.Get("applicationKey"))

		mac := hmac.New(sha512.New, []byte("appkey"+"secret"))
		mac.Write(body)
		assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), r.Header.Get("hmac"))

		var req remoteRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, 28, req.GridSize)
		assert.Len(t, req.Bitmap, 28*28)

		json.NewEncoder(w).Encode(remoteResponse{Probabilities: want})
	}))
	defer srv.Close()

	remote := NewRemote(srv.URL, "appkey", "secret")
	probs, err := remote.Classify(context.Background(), make([]float64, 28*28))
	require.NoError(t, err)
	assert.Equal(t, want, probs)
}

func TestRemoteClassifyServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no model deployed", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewRemote(srv.URL, "k", "s").Classify(context.Background(), make([]float64, 4))
	assert.Error(t, err)
}

func TestRemoteClassifyBadProbabilityCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(remoteResponse{Probabilities: []float64{1}})
	}))
	defer srv.Close()

	_, err := NewRemote(srv.URL, "k", "s").Classify(context.Background(), make([]float64, 4))
	assert.Error(t, err)
}
