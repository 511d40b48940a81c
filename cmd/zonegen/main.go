package main

import (
	"context"
	"flag"
	"log"
	"os"

	"dixis/shipzone/internal/app"
	"dixis/shipzone/internal/pipeline"
	"dixis/shipzone/internal/postal"
	"dixis/shipzone/internal/source"
	"dixis/shipzone/pkg/config"
)

var (
	configPath = flag.String("config", config.DefaultPath, "config file path, optional")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	// 1. 加载配置、初始化日志
	a, err := app.New(*configPath)
	if err != nil {
		log.Printf("Startup failed: %v", err)
		return 1
	}
	defer a.Close()

	ctx := context.Background()
	a.Logger.Infof(ctx, "[zonegen] Config loaded: %s, env: %s, output dir: %s", a.Config.App.Name, a.Config.App.Env, a.OutputDir)

	// 2. 初始化可选下游
	pub, err := a.Publisher(ctx)
	if err != nil {
		a.Logger.Errorf(ctx, "[zonegen] Failed to set up publishing: %v", err)
		return 1
	}

	// 3. 下载、分区、写文件
	src := a.Config.Source
	fetcher := source.NewFetcher(src.URL, src.Timeout, src.ColumnAliases, a.Logger)
	p := pipeline.NewPostalZones(fetcher, postal.DefaultRules(), a.Config.ZonesPath(a.OutputDir), src.ProgressInterval, pub, a.Logger)
	if _, err := p.Run(ctx); err != nil {
		return 1
	}

	return 0
}
