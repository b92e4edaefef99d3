package plot

import (
	"net/http"
)

// HTTPServer defines the interface for an HTTP server that Chart will use
type HTTPServer interface {
	// RegisterHandler registers a handler for a specific route
	RegisterHandler(path string, handler http.HandlerFunc)

	// RegisterFileServer registers a handler to serve static files
	RegisterFileServer(path string, fs http.FileSystem)

	// Start starts the HTTP server on the specified address
	Start(addr string) error
}

// StandardHTTPServer implements the HTTPServer interface using the standard
// http package with its own mux.
type StandardHTTPServer struct {
	mux *http.ServeMux
}

// NewStandardHTTPServer creates a new instance of StandardHTTPServer
func NewStandardHTTPServer() *StandardHTTPServer {
	return &StandardHTTPServer{mux: http.NewServeMux()}
}

// RegisterHandler registers a handler for a specific route
func (s *StandardHTTPServer) RegisterHandler(path string, handler http.HandlerFunc) {
	s.mux.HandleFunc(path, handler)
}

// RegisterFileServer registers a handler to serve static files
func (s *StandardHTTPServer) RegisterFileServer(path string, fs http.FileSystem) {
	s.mux.Handle(path, http.StripPrefix(path, http.FileServer(fs)))
}

// Start starts the HTTP server on the specified address
func (s *StandardHTTPServer) Start(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}

// Handler exposes the underlying mux, mainly for tests.
func (s *StandardHTTPServer) Handler() http.Handler {
	return s.mux
}
