// @title Python Learning Tracker API
// @version 1.0
// @description 21天Python学习课程的进度追踪后端。

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"
	"path/filepath"

	"pylearn_tracker/internal/app"
	"pylearn_tracker/internal/config"
	"pylearn_tracker/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs", "配置文件目录")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go application.WatchConfig(filepath.Join(*configPath, "config.yaml"))

	application.Run()
}
