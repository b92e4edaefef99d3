package plot

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/ukaji3/csviz/internal/parser"
)

// handleIndex renders the chart page.
func (c *Chart) handleIndex(w http.ResponseWriter, r *http.Request) {
	// The root pattern catches everything the mux has no better match for.
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	var buffer bytes.Buffer
	if err := c.renderChart(&buffer); err != nil {
		c.log.WithError(err).Error("Chart rendering failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buffer.Bytes()); err != nil {
		c.log.WithError(err).Error("Failed writing chart page")
	}
}

// handleData serves the parsed dataset as JSON.
func (c *Chart) handleData(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(c.data); err != nil {
		c.log.WithError(err).Error("Failed writing dataset JSON")
	}
}

// handleDownload re-exports the dataset as a CSV attachment in the same
// format the file was loaded from.
func (c *Chart) handleDownload(w http.ResponseWriter, _ *http.Request) {
	buffer := bytes.NewBuffer(nil)
	if err := parser.Encode(buffer, c.data, c.delimiter); err != nil {
		c.log.WithError(err).Error("Failed encoding dataset CSV")
		http.Error(w, "Failed to generate CSV", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment;filename=dataset.csv")

	if _, err := w.Write(buffer.Bytes()); err != nil {
		c.log.WithError(err).Error("Failed writing CSV response")
	}
}

// handleHealth handles liveness checks. The dataset is static, so the
// server is healthy as long as it answers.
func (c *Chart) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		c.log.WithError(err).Error("Failed to write health status")
	}
}
