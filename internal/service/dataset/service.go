// Package dataset 提供微调数据集的生成、切分与保存
package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/KingTechnician/MHWorldData/internal/model"
	"github.com/KingTechnician/MHWorldData/internal/service/file"
	"github.com/KingTechnician/MHWorldData/internal/service/formatter"
	"github.com/KingTechnician/MHWorldData/internal/service/table"
	"github.com/google/uuid"
)

const contentTypeJSONL = "application/jsonl"

// TableLoader 加载全部领域表
type TableLoader interface {
	LoadAll(ctx context.Context) table.Tables
}

// PairBuilder 用格式字典填充模板
type PairBuilder interface {
	Build(ctx context.Context, name string, values map[string]any) (model.QAPair, error)
}

// Options 数据集生成选项
type Options struct {
	Name         string
	Source       string
	TrainFile    string
	ValFile      string
	TrainPercent int    // 训练集比例（百分比）
	Seed         uint64 // 0 表示不固定随机种子
}

// Service 数据集生成服务
type Service struct {
	loader  TableLoader
	builder PairBuilder
	storage file.Storage
	opts    Options
	out     io.Writer
}

// NewService 创建数据集生成服务，out 接收进度与汇总输出
func NewService(loader TableLoader, builder PairBuilder, storage file.Storage, opts Options, out io.Writer) *Service {
	if opts.TrainPercent <= 0 || opts.TrainPercent > 100 {
		opts.TrainPercent = 90
	}
	if opts.TrainFile == "" {
		opts.TrainFile = "mhw_train.jsonl"
	}
	if opts.ValFile == "" {
		opts.ValFile = "mhw_val.jsonl"
	}
	if out == nil {
		out = io.Discard
	}
	return &Service{
		loader:  loader,
		builder: builder,
		storage: storage,
		opts:    opts,
		out:     out,
	}
}

// Result 生成结果
type Result struct {
	Pairs          []model.QAPair
	TemplateCounts map[string]int
	DomainCounts   map[string]int
}

// Generate 按固定顺序运行六个领域的格式化器并构建全部 QA 对。
// 格式化或模板填充错误直接返回
func (s *Service) Generate(ctx context.Context, tables table.Tables) (*Result, error) {
	res := &Result{
		TemplateCounts: make(map[string]int),
		DomainCounts:   make(map[string]int),
	}

	for _, domain := range table.Domains {
		format, ok := formatter.For(domain)
		if !ok {
			return nil, fmt.Errorf("no formatter for domain %s", domain)
		}
		t := tables.Get(domain)
		res.DomainCounts[domain] = t.Len()

		records, err := format(t)
		if err != nil {
			return nil, fmt.Errorf("failed to format %s data: %w", domain, err)
		}
		for _, rec := range records {
			pair, err := s.builder.Build(ctx, rec.Template, rec.Values)
			if err != nil {
				return nil, fmt.Errorf("failed to build %s pair: %w", domain, err)
			}
			res.Pairs = append(res.Pairs, pair)
			res.TemplateCounts[rec.Template]++
		}
		fmt.Fprintf(s.out, "Generated %s questions: %d rows, %d pairs\n", domain, t.Len(), len(records))
	}

	return res, nil
}

// Split 打乱后按比例切分，训练集大小为 floor(N*percent/100)
func (s *Service) Split(pairs []model.QAPair) (train, val []model.QAPair) {
	shuffled := append([]model.QAPair(nil), pairs...)
	s.newRand().Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	idx := SplitIndex(len(shuffled), s.opts.TrainPercent)
	return shuffled[:idx], shuffled[idx:]
}

// SplitIndex 训练集大小：floor(n*percent/100)
func SplitIndex(n, percent int) int {
	return n * percent / 100
}

func (s *Service) newRand() *rand.Rand {
	if s.opts.Seed != 0 {
		return rand.New(rand.NewPCG(s.opts.Seed, s.opts.Seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Save 将训练集与验证集写入存储，返回两个文件路径。
// 验证集写入失败时删除已写入的训练集
func (s *Service) Save(ctx context.Context, train, val []model.QAPair) (string, string, error) {
	trainPath, err := s.write(ctx, s.opts.TrainFile, train)
	if err != nil {
		return "", "", err
	}
	valPath, err := s.write(ctx, s.opts.ValFile, val)
	if err != nil {
		if derr := s.storage.Delete(ctx, trainPath); derr != nil {
			log.Printf("Warning: failed to remove %s: %v", trainPath, derr)
		}
		return "", "", err
	}
	return trainPath, valPath, nil
}

func (s *Service) write(ctx context.Context, name string, pairs []model.QAPair) (string, error) {
	var buf bytes.Buffer
	if err := EncodeJSONL(&buf, pairs); err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", name, err)
	}
	p, err := s.storage.Save(ctx, &file.SaveRequest{
		FileName:    name,
		ContentType: contentTypeJSONL,
		Size:        int64(buf.Len()),
		Reader:      &buf,
	})
	if err != nil {
		return "", fmt.Errorf("failed to save %s: %w", name, err)
	}
	return p, nil
}

// EncodeJSONL 每行一个 JSON 对象，保留非 ASCII 字符，不转义 HTML
func EncodeJSONL(w io.Writer, pairs []model.QAPair) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, p := range pairs {
		if err := enc.Encode(p); err != nil {
			return err
		}
	}
	return nil
}

// Run 加载 -> 生成 -> 切分 -> 保存，返回数据集记录
func (s *Service) Run(ctx context.Context) (*model.Dataset, error) {
	fmt.Fprintln(s.out, "Loading data sources...")
	tables := s.loader.LoadAll(ctx)

	fmt.Fprintln(s.out, "Generating dataset...")
	res, err := s.Generate(ctx, tables)
	if err != nil {
		return nil, err
	}

	train, val := s.Split(res.Pairs)
	trainPath, valPath, err := s.Save(ctx, train, val)
	if err != nil {
		return nil, err
	}

	ds := &model.Dataset{
		ID:             uuid.New().String(),
		Name:           s.opts.Name,
		Source:         s.opts.Source,
		RecordCount:    len(res.Pairs),
		TrainCount:     len(train),
		ValCount:       len(val),
		TrainPath:      s.storage.GetURL(trainPath),
		ValPath:        s.storage.GetURL(valPath),
		TemplateCounts: res.TemplateCounts,
		DomainCounts:   res.DomainCounts,
		CreatedAt:      time.Now(),
	}

	fmt.Fprintf(s.out, "\nDataset split and saved:\n")
	fmt.Fprintf(s.out, "Training set (%d examples): %s\n", ds.TrainCount, ds.TrainPath)
	fmt.Fprintf(s.out, "Validation set (%d examples): %s\n", ds.ValCount, ds.ValPath)
	fmt.Fprintf(s.out, "Total generated: %d question-answer pairs\n", ds.RecordCount)

	return ds, nil
}
