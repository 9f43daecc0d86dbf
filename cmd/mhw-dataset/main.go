package main

import (
	"context"
	"log"
	"os"

	"github.com/KingTechnician/MHWorldData/internal/config"
	"github.com/KingTechnician/MHWorldData/internal/service"
)

func main() {
	// 加载配置，未设置 CONFIG_PATH 时使用默认值与 MHW_* 环境变量
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	services, err := service.NewServices(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to init services: %v", err)
	}
	defer services.Close()

	ds, err := services.Dataset.Run(context.Background())
	if err != nil {
		services.Close()
		log.Fatalf("Failed to generate dataset: %v", err)
	}

	log.Printf("Dataset %s generated: %d pairs (train=%d, val=%d, templates formatted=%d)",
		ds.ID, ds.RecordCount, ds.TrainCount, ds.ValCount, services.Callbacks.Formatted())
}
