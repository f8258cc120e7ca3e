package main

import (
	"flag"

	"github.com/mogaika/gltf_browser/config"
	"github.com/mogaika/gltf_browser/inspect"
	"github.com/mogaika/gltf_browser/logger"
	"github.com/mogaika/gltf_browser/utils"
	"github.com/mogaika/gltf_browser/web"
)

func main() {
	var addr, model, configPath string
	var dump, noServe bool
	flag.StringVar(&addr, "i", "", "Address of server (overrides config)")
	flag.StringVar(&model, "f", "", "Path to .gltf/.glb model")
	flag.StringVar(&configPath, "config", "", "Path to yaml config file")
	flag.BoolVar(&dump, "dump", false, "Dump the geometry report to stdout")
	flag.BoolVar(&noServe, "noserve", false, "Exit after inspecting instead of serving")
	flag.Parse()

	if model == "" {
		flag.PrintDefaults()
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Init("info", "")
		logger.Sugar.Fatalf("%v", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	opts := inspect.Options{
		Saturation: cfg.Color.Saturation,
		Value:      cfg.Color.Value,
	}

	m, err := inspect.LoadModel(model, opts)
	if err != nil {
		logger.Sugar.Fatalf("Failed to inspect %q: %v", model, err)
	}

	logger.Sugar.Infof("model %q: %d meshes, bbox %v / %v, center translation %v",
		m.Name, len(m.Meshes), m.BBox.Min, m.BBox.Max, m.BBox.CenterTranslation)

	if dump {
		utils.Dump(m)
	}

	if noServe {
		return
	}

	if addr == "" {
		addr = cfg.Web.ListenAddr
	}
	if err := web.StartServer(addr, m); err != nil {
		logger.Sugar.Fatalf("%v", err)
	}
}
