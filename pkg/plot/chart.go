// Package plot serves a parsed dataset as an interactive chart over HTTP.
package plot

import (
	"embed"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/ukaji3/csviz/internal/core"
	"github.com/ukaji3/csviz/internal/parser"
	"github.com/ukaji3/csviz/pkg/logger"
)

// Static assets embedded in the binary
var (
	//go:embed assets
	staticFiles embed.FS
)

// Defaults applied by NewChart before options run.
const (
	DefaultHost     = "0.0.0.0"
	DefaultPort     = 8050
	DefaultWidth    = 900
	DefaultHeight   = 500
	DefaultFontSize = 12
)

// localAssetsRoute is where offline chart assets are mounted.
const localAssetsRoute = "/assets/"

// Chart renders one ChartData instance as an interactive chart page.
type Chart struct {
	host          string
	port          int
	width         int
	height        int
	fontSize      int
	background    string
	pageTitle     string
	kind          Kind
	toolbar       bool
	debug         bool
	assetsDir     string
	delimiter     rune
	data          *core.ChartData
	scriptContent string
	log           logger.Logger
}

// Option defines a function type for configuring a Chart instance
type Option func(*Chart)

// WithBind sets the listen host and port.
func WithBind(host string, port int) Option {
	return func(chart *Chart) {
		chart.host = host
		chart.port = port
	}
}

// WithDimensions sets the chart pixel width and height.
func WithDimensions(width, height int) Option {
	return func(chart *Chart) {
		chart.width = width
		chart.height = height
	}
}

// WithFontSize sets the chart text size in pixels.
func WithFontSize(size int) Option {
	return func(chart *Chart) {
		chart.fontSize = size
	}
}

// WithBackground sets the chart background color (any CSS color value).
func WithBackground(color string) Option {
	return func(chart *Chart) {
		chart.background = color
	}
}

// WithPageTitle sets the browser page title.
func WithPageTitle(title string) Option {
	return func(chart *Chart) {
		chart.pageTitle = title
	}
}

// WithKind selects the chart type (line, bar, scatter).
func WithKind(kind Kind) Option {
	return func(chart *Chart) {
		chart.kind = kind
	}
}

// WithToolbar shows or hides the floating chart toolbar.
func WithToolbar(show bool) Option {
	return func(chart *Chart) {
		chart.toolbar = show
	}
}

// WithDebug enables debug mode (disables script minification).
func WithDebug() Option {
	return func(chart *Chart) {
		chart.debug = true
	}
}

// WithLocalAssets serves the chart runtime from dir instead of the default
// CDN host, for use on machines without internet access.
func WithLocalAssets(dir string) Option {
	return func(chart *Chart) {
		chart.assetsDir = dir
	}
}

// WithExportDelimiter sets the field delimiter used by the CSV download
// handler, so exports match the file the data came from.
func WithExportDelimiter(delimiter rune) Option {
	return func(chart *Chart) {
		chart.delimiter = delimiter
	}
}

// NewChart creates a new chart instance with the provided options.
func NewChart(log logger.Logger, data *core.ChartData, options ...Option) (*Chart, error) {
	chart := &Chart{
		host:      DefaultHost,
		port:      DefaultPort,
		width:     DefaultWidth,
		height:    DefaultHeight,
		fontSize:  DefaultFontSize,
		kind:      KindLine,
		toolbar:   true,
		delimiter: parser.DefaultDelimiter,
		data:      data,
		log:       log,
	}

	// Apply all options
	for _, option := range options {
		option(chart)
	}

	if chart.pageTitle == "" {
		chart.pageTitle = data.Title
	}

	// Read and transpile the page helper script
	helperJS, err := staticFiles.ReadFile("assets/js/main.js")
	if err != nil {
		return nil, fmt.Errorf("failed to read main.js: %w", err)
	}

	transpiled := api.Transform(string(helperJS), api.TransformOptions{
		Loader:            api.LoaderJS,
		Target:            api.ES2015,
		MinifySyntax:      !chart.debug,
		MinifyIdentifiers: !chart.debug,
		MinifyWhitespace:  !chart.debug,
	})

	if len(transpiled.Errors) > 0 {
		return nil, fmt.Errorf("helper script failed with: %v", transpiled.Errors)
	}

	chart.scriptContent = string(transpiled.Code)

	return chart, nil
}

// Addr returns the host:port the chart should be served on.
func (c *Chart) Addr() string {
	return net.JoinHostPort(c.host, strconv.Itoa(c.port))
}

// RegisterHandlers registers all necessary handlers on the HTTP server.
func (c *Chart) RegisterHandlers(server HTTPServer) {
	if c.assetsDir != "" {
		server.RegisterFileServer(localAssetsRoute, http.Dir(c.assetsDir))
	}

	server.RegisterHandler("/health", c.handleHealth)
	server.RegisterHandler("/data", c.handleData)
	server.RegisterHandler("/download", c.handleDownload)
	server.RegisterHandler("/", c.handleIndex)
}
