package plot

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/csviz/internal/core"
	"github.com/ukaji3/csviz/internal/parser"
)

func newTestHandler(t *testing.T, options ...Option) http.Handler {
	t.Helper()

	chart, err := NewChart(testLogger(), testData(), options...)
	require.NoError(t, err)

	server := NewStandardHTTPServer()
	chart.RegisterHandlers(server)
	return server.Handler()
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

func TestHandleIndex(t *testing.T) {
	response := get(t, newTestHandler(t), "/")

	require.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Header().Get("Content-Type"), "text/html")

	page := response.Body.String()
	assert.Contains(t, page, "Throughput")
	assert.Contains(t, page, "s1")
}

func TestHandleIndexUnknownPath(t *testing.T) {
	response := get(t, newTestHandler(t), "/nope")
	assert.Equal(t, http.StatusNotFound, response.Code)
}

func TestHandleData(t *testing.T) {
	response := get(t, newTestHandler(t), "/data")

	require.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Header().Get("Content-Type"), "application/json")

	var decoded core.ChartData
	require.NoError(t, json.NewDecoder(response.Body).Decode(&decoded))
	assert.Equal(t, *testData(), decoded)
}

func TestHandleDownloadRoundTrip(t *testing.T) {
	response := get(t, newTestHandler(t), "/download")

	require.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, response.Header().Get("Content-Disposition"), "attachment")

	decoded, err := parser.New().Parse(response.Body)
	require.NoError(t, err)
	assert.Equal(t, testData(), decoded)
}

func TestHandleHealth(t *testing.T) {
	response := get(t, newTestHandler(t), "/health")

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "ok", response.Body.String())
}

func TestLocalAssetsServed(t *testing.T) {
	dir := t.TempDir()
	script := []byte("// echarts runtime placeholder")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "echarts.min.js"), script, 0o644))

	handler := newTestHandler(t, WithLocalAssets(dir))
	response := get(t, handler, "/assets/echarts.min.js")

	require.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, script, response.Body.Bytes())
}
