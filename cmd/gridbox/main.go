// GridBox: drawer grid configurator
//
// A cross-platform desktop application for planning modular drawer bins
// on a 42 mm grid, pricing the result and sharing it as a link.
//
// Build:
//   go build -o gridbox ./cmd/gridbox
//
// Open a shared layout directly:
//   gridbox "http://localhost:8080/?layout=eyJkcmF3ZXIi..."
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"

	"github.com/piwi3910/GridBox/internal/catalog"
	"github.com/piwi3910/GridBox/internal/codec"
	"github.com/piwi3910/GridBox/internal/layout"
	"github.com/piwi3910/GridBox/internal/model"
	"github.com/piwi3910/GridBox/internal/project"
	"github.com/piwi3910/GridBox/internal/ui"
)

var version = "dev"

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "gridbox"})

	configPath := project.DefaultConfigPath()
	cfg, err := project.LoadAppConfig(configPath)
	if err != nil {
		logger.Warn("config not loaded, using defaults", "path", configPath, "err", err)
		cfg = model.DefaultAppConfig()
	}

	reg := catalog.Builtin()
	if cfg.CatalogPath != "" {
		loaded, warnings, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			logger.Warn("catalog not loaded, using built-in catalog", "path", cfg.CatalogPath, "err", err)
		} else {
			for _, w := range warnings {
				logger.Warn("catalog", "path", cfg.CatalogPath, "warning", w)
			}
			reg = loaded
		}
	}

	presets, err := project.AllPresets(project.PresetsPath(cfg))
	if err != nil {
		logger.Warn("user presets not loaded", "err", err)
	}

	initial := layout.NewState(cfg.DefaultDrawer)
	if len(os.Args) > 1 {
		res := codec.Decode(codec.TokenFromURL(os.Args[1]))
		if res.Ok() {
			initial = *res.State
		} else {
			logger.Warn("invalid layout link, starting with an empty drawer", "reason", res.Failure, "err", res.Err)
		}
	}

	application := app.NewWithID("com.piwi3910.gridbox")
	ui.ApplyTheme(application, cfg.Theme)

	window := application.NewWindow("GridBox: Drawer Grid Configurator")

	appUI := ui.NewApp(application, window, ui.Options{
		Config:     cfg,
		ConfigPath: configPath,
		Catalog:    reg,
		Presets:    presets,
		Initial:    initial,
		Logger:     logger,
		Version:    version,
	})
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1400, 800))
	window.CenterOnScreen()
	window.ShowAndRun()
}
