package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/csviz"
	"github.com/ukaji3/csviz/internal/config"
	"github.com/ukaji3/csviz/pkg/logger"
)

// Command line flags
var (
	configPath string
	bind       string
	port       int
	width      int
	height     int
	delimiter  string
	fontSize   int
	background string
	pageTitle  string
	kind       string
	toolbar    bool
	assetsDir  string
	debug      bool
)

func main() {
	rootCmd := buildRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "csviz <dataset.csv>",
		Short: "Serve a CSV dataset as an interactive chart",
		Long: "csviz reads a CSV file whose first four #-prefixed lines hold the chart\n" +
			"title, axis labels and series names, and serves the numeric rows as an\n" +
			"interactive chart on a local HTTP listener.",
		Version:      "1.0.0",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "Path to a TOML config file")
	flags.StringVarP(&bind, "bind", "b", "", "Network interface to listen on (default 0.0.0.0)")
	flags.IntVarP(&port, "port", "p", 0, "TCP port to listen on (default 8050)")
	flags.IntVar(&width, "width", 0, "Chart pixel width (default 900)")
	flags.IntVar(&height, "height", 0, "Chart pixel height (default 500)")
	flags.StringVarP(&delimiter, "delimiter", "d", "", "Field separator used for CSV parsing (default \",\")")
	flags.IntVar(&fontSize, "font-size", 0, "Chart text size in pixels (default 12)")
	flags.StringVar(&background, "background", "", "Chart background color (any CSS color)")
	flags.StringVarP(&pageTitle, "title", "t", "", "Browser page title (default: the chart title)")
	flags.StringVarP(&kind, "kind", "k", "", "Chart kind: line, bar or scatter (default line)")
	flags.BoolVar(&toolbar, "toolbar", true, "Show the floating chart toolbar")
	flags.StringVar(&assetsDir, "assets-dir", "", "Serve chart assets from this directory instead of the CDN")
	flags.BoolVar(&debug, "debug", false, "Enable verbose diagnostics")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	log := csviz.DefaultLog
	if cfg.Debug {
		log.SetLevel(logger.DebugLevel)
	}

	return csviz.New(args[0], cfg, log).Run()
}

// buildConfig layers the flag values over the config file over the defaults.
// Only flags the user actually set override the file.
func buildConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("bind") {
		cfg.Bind = bind
	}
	if flags.Changed("port") {
		cfg.Port = port
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("delimiter") {
		cfg.Delimiter = delimiter
	}
	if flags.Changed("font-size") {
		cfg.FontSize = fontSize
	}
	if flags.Changed("background") {
		cfg.Background = background
	}
	if flags.Changed("title") {
		cfg.PageTitle = pageTitle
	}
	if flags.Changed("kind") {
		cfg.Kind = kind
	}
	if flags.Changed("toolbar") {
		cfg.Toolbar = toolbar
	}
	if flags.Changed("assets-dir") {
		cfg.AssetsDir = assetsDir
	}
	if flags.Changed("debug") {
		cfg.Debug = debug
	}

	return cfg, nil
}
