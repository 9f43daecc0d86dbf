package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	App    AppConfig
	Source SourceConfig
	Output OutputConfig
	Split  SplitConfig
	MinIO  MinIOConfig
}

// AppConfig 应用配置
type AppConfig struct {
	Name  string
	Debug bool // 逐条记录模板填充
}

// SourceConfig 源数据配置
type SourceConfig struct {
	Dir string // 每个领域一个子目录
}

// OutputConfig 输出配置
type OutputConfig struct {
	Storage   string // local, minio
	Dir       string
	TrainFile string
	ValFile   string
}

// SplitConfig 数据集切分配置
type SplitConfig struct {
	TrainPercent int
	Seed         uint64 // 0 表示每次运行随机打乱
}

// MinIOConfig MinIO 配置
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Prefix    string
	UseSSL    bool
}

// Load 加载配置。path 为空时只使用默认值与环境变量
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// 环境变量，如 MHW_SOURCE_DIR
	v.SetEnvPrefix("MHW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Source.Dir) == "" {
		return fmt.Errorf("source.dir is required")
	}
	if c.Split.TrainPercent <= 0 || c.Split.TrainPercent > 100 {
		return fmt.Errorf("split.trainPercent must be in (0, 100], got %d", c.Split.TrainPercent)
	}
	if c.Output.TrainFile == "" || c.Output.ValFile == "" {
		return fmt.Errorf("output.trainFile and output.valFile are required")
	}
	if c.Output.TrainFile == c.Output.ValFile {
		return fmt.Errorf("output.trainFile and output.valFile must differ")
	}
	switch c.Output.Storage {
	case "local", "minio":
	default:
		return fmt.Errorf("unsupported output.storage: %s", c.Output.Storage)
	}
	return nil
}

// StorageOptions 转换为存储配置
func (c *Config) StorageOptions() map[string]string {
	return map[string]string{
		"base_path":  c.Output.Dir,
		"endpoint":   c.MinIO.Endpoint,
		"access_key": c.MinIO.AccessKey,
		"secret_key": c.MinIO.SecretKey,
		"bucket":     c.MinIO.Bucket,
		"region":     c.MinIO.Region,
		"prefix":     c.MinIO.Prefix,
		"use_ssl":    strconv.FormatBool(c.MinIO.UseSSL),
	}
}

func setDefaults(v *viper.Viper) {
	// App
	v.SetDefault("app.name", "mhw-dataset")
	v.SetDefault("app.debug", false)

	// Source
	v.SetDefault("source.dir", "source_data")

	// Output
	v.SetDefault("output.storage", "local")
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.trainFile", "mhw_train.jsonl")
	v.SetDefault("output.valFile", "mhw_val.jsonl")

	// Split
	v.SetDefault("split.trainPercent", 90)
	v.SetDefault("split.seed", 0)

	// MinIO
	v.SetDefault("minio.endpoint", "")
	v.SetDefault("minio.accessKey", "")
	v.SetDefault("minio.secretKey", "")
	v.SetDefault("minio.bucket", "mhw-dataset")
	v.SetDefault("minio.region", "")
	v.SetDefault("minio.prefix", "")
	v.SetDefault("minio.useSSL", false)
}
