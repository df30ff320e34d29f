package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkmath/inkmath/config"
	"github.com/inkmath/inkmath/ink"
	"github.com/inkmath/inkmath/pipeline"
	"github.com/inkmath/inkmath/version"
)

func newTestServer() *ApiServer {
	return NewApiServer(config.Default(), nil)
}

func doStrokes(s *ApiServer, method, target, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	s.handleStrokes(w, r)
	return w
}

func TestStrokesLifecycle(t *testing.T) {
	s := newTestServer()

	w := doStrokes(s, "POST", "/api/strokes", `{"points":[{"x":0,"y":9,"t":0},{"x":20,"y":11,"t":16}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doStrokes(s, "POST", "/api/strokes", `{"points":[{"x":10,"y":0,"t":32},{"x":10,"y":20,"t":48}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doStrokes(s, "GET", "/api/strokes", "")
	require.Equal(t, http.StatusOK, w.Code)
	var listed struct {
		Data []ink.Stroke `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Data, 2)
	assert.Len(t, listed.Data[0].Points, 2)

	w = doStrokes(s, "DELETE", "/api/strokes?last=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, s.session.StrokeCount())

	w = doStrokes(s, "DELETE", "/api/strokes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, s.session.StrokeCount())

	w = doStrokes(s, "DELETE", "/api/strokes?last=true", "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestStrokesRejectsBadInput(t *testing.T) {
	s := newTestServer()

	w := doStrokes(s, "POST", "/api/strokes", `{"points":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doStrokes(s, "POST", "/api/strokes", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doStrokes(s, "PUT", "/api/strokes", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRecognizeEmptyCanvas(t *testing.T) {
	s := newTestServer()

	r := httptest.NewRequest("POST", "/api/recognize", nil)
	w := httptest.NewRecorder()
	s.handleRecognize(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Data pipeline.Output `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "", res.Data.Expression)
	assert.False(t, res.Data.Valid)
	assert.Nil(t, res.Data.Result)
	assert.NotNil(t, res.Data.Characters)
}

func TestRecognizePlusCross(t *testing.T) {
	s := newTestServer()

	// A vertical and a horizontal stroke crossing at (10, 10).
	doStrokes(s, "POST", "/api/strokes", `{"points":[{"x":10,"y":0,"t":0},{"x":10,"y":20,"t":16}]}`)
	doStrokes(s, "POST", "/api/strokes", `{"points":[{"x":0,"y":9,"t":32},{"x":20,"y":11,"t":48}]}`)

	r := httptest.NewRequest("POST", "/api/recognize", nil)
	w := httptest.NewRecorder()
	s.handleRecognize(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Data pipeline.Output `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "+", res.Data.RawExpression)
	assert.False(t, res.Data.Valid, "a lone operator does not evaluate")
	require.Len(t, res.Data.Characters, 1)
	assert.Equal(t, "+", res.Data.Characters[0].Char)
}

func TestRecognizeMethodGuard(t *testing.T) {
	s := newTestServer()

	r := httptest.NewRequest("GET", "/api/recognize", nil)
	w := httptest.NewRecorder()
	s.handleRecognize(w, r)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRenderEmptyCanvas(t *testing.T) {
	s := newTestServer()

	r := httptest.NewRequest("GET", "/api/render", nil)
	w := httptest.NewRecorder()
	s.handleRender(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRenderReturnsPNG(t *testing.T) {
	s := newTestServer()

	doStrokes(s, "POST", "/api/strokes", `{"points":[{"x":0,"y":0,"t":0},{"x":30,"y":30,"t":16}]}`)

	r := httptest.NewRequest("GET", "/api/render", nil)
	w := httptest.NewRecorder()
	s.handleRender(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	require.True(t, w.Body.Len() > 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, w.Body.Bytes()[:4])
}

func TestVersionEndpoint(t *testing.T) {
	s := newTestServer()

	r := httptest.NewRequest("GET", "/api/version", nil)
	w := httptest.NewRecorder()
	s.handleVersion(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, version.Version, res.Data["version"])
}
