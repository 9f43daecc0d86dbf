package service

import (
	"fmt"
	"io"
	"log"

	"github.com/KingTechnician/MHWorldData/internal/config"
	"github.com/KingTechnician/MHWorldData/internal/service/callback"
	"github.com/KingTechnician/MHWorldData/internal/service/dataset"
	"github.com/KingTechnician/MHWorldData/internal/service/file"
	"github.com/KingTechnician/MHWorldData/internal/service/table"
	"github.com/KingTechnician/MHWorldData/internal/service/template"
)

// Services 服务集合
type Services struct {
	Config    *config.Config
	Reader    *table.Reader
	Tables    *table.Loader
	Templates *template.Registry
	Callbacks *callback.Logger
	Storage   file.Storage
	Dataset   *dataset.Service
}

// NewServices 创建所有服务，out 接收数据集生成的进度输出
func NewServices(cfg *config.Config, out io.Writer) (*Services, error) {
	reader, err := table.NewReader()
	if err != nil {
		return nil, err
	}

	storage, err := file.NewStorage(file.StorageType(cfg.Output.Storage), cfg.StorageOptions())
	if err != nil {
		reader.Close()
		return nil, fmt.Errorf("failed to create storage: %w", err)
	}

	loader := table.NewLoader(cfg.Source.Dir, reader)
	logger := callback.NewLogger(cfg.App.Debug)
	registry := template.NewRegistry(logger)

	svc := dataset.NewService(loader, registry, storage, dataset.Options{
		Name:         cfg.App.Name,
		Source:       cfg.Source.Dir,
		TrainFile:    cfg.Output.TrainFile,
		ValFile:      cfg.Output.ValFile,
		TrainPercent: cfg.Split.TrainPercent,
		Seed:         cfg.Split.Seed,
	}, out)

	log.Printf("Services initialized: source=%s storage=%s templates=%d",
		cfg.Source.Dir, cfg.Output.Storage, len(registry.Names()))

	return &Services{
		Config:    cfg,
		Reader:    reader,
		Tables:    loader,
		Templates: registry,
		Callbacks: logger,
		Storage:   storage,
		Dataset:   svc,
	}, nil
}

// Close 释放资源
func (s *Services) Close() error {
	if s.Reader != nil {
		return s.Reader.Close()
	}
	return nil
}
