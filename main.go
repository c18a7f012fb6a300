package main

import (
	"concept_tutor_backend/internal/app"
	"concept_tutor_backend/internal/config"
	"concept_tutor_backend/pkg/configwatcher"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)

	// 监听配置文件变更，支持热更新
	go configwatcher.WatchConfig("configs/config.yaml", application.OnConfigReload)

	application.Run()
}
