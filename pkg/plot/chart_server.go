package plot

import (
	"github.com/ukaji3/csviz/pkg/logger"
)

// ChartServer is a wrapper that combines a Chart with an HTTP server
type ChartServer struct {
	chart  *Chart
	server HTTPServer
	log    logger.Logger
}

// NewChartServer creates a new ChartServer
func NewChartServer(chart *Chart, server HTTPServer, log logger.Logger) *ChartServer {
	return &ChartServer{
		chart:  chart,
		server: server,
		log:    log,
	}
}

// Start initializes the HTTP server for the chart and blocks serving it.
func (cs *ChartServer) Start() error {
	cs.chart.RegisterHandlers(cs.server)

	cs.log.Infof("Chart available at http://%s", cs.chart.Addr())
	return cs.server.Start(cs.chart.Addr())
}
