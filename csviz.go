// Package csviz wires the dataset parser to the chart server.
package csviz

import (
	"fmt"
	"os"

	"github.com/ukaji3/csviz/internal/config"
	"github.com/ukaji3/csviz/internal/parser"
	"github.com/ukaji3/csviz/internal/summary"
	"github.com/ukaji3/csviz/pkg/logger"
	"github.com/ukaji3/csviz/pkg/plot"
)

// App loads one dataset file and serves it as an interactive chart until the
// process exits. The dataset is parsed once at startup; editing the file
// requires a restart.
type App struct {
	datasetPath string
	cfg         config.Config
	log         logger.Logger
}

// New creates an App for the dataset at datasetPath.
func New(datasetPath string, cfg config.Config, log logger.Logger) *App {
	return &App{
		datasetPath: datasetPath,
		cfg:         cfg,
		log:         log,
	}
}

// Run parses the dataset and blocks serving the chart. Any parse or file
// error is terminal: the caller reports it and exits non-zero.
func (a *App) Run() error {
	delimiter, err := a.cfg.DelimiterRune()
	if err != nil {
		return err
	}

	kind, err := plot.ParseKind(a.cfg.Kind)
	if err != nil {
		return err
	}

	data, err := parser.New(parser.WithDelimiter(delimiter)).ParseFile(a.datasetPath)
	if err != nil {
		return fmt.Errorf("parse %s: %w", a.datasetPath, err)
	}

	a.log.WithFields(map[string]any{
		"series": len(data.Series),
		"points": data.Points(),
	}).Info("Dataset loaded")

	if a.cfg.Debug {
		if err := summary.Write(os.Stdout, data); err != nil {
			a.log.WithError(err).Warn("Failed to print dataset summary")
		}
	}

	options := []plot.Option{
		plot.WithBind(a.cfg.Bind, a.cfg.Port),
		plot.WithDimensions(a.cfg.Width, a.cfg.Height),
		plot.WithFontSize(a.cfg.FontSize),
		plot.WithBackground(a.cfg.Background),
		plot.WithPageTitle(a.cfg.PageTitle),
		plot.WithKind(kind),
		plot.WithToolbar(a.cfg.Toolbar),
		plot.WithExportDelimiter(delimiter),
	}
	if a.cfg.Debug {
		options = append(options, plot.WithDebug())
	}
	if a.cfg.AssetsDir != "" {
		options = append(options, plot.WithLocalAssets(a.cfg.AssetsDir))
	}

	chart, err := plot.NewChart(a.log, data, options...)
	if err != nil {
		return err
	}

	return plot.NewChartServer(chart, plot.NewStandardHTTPServer(), a.log).Start()
}
