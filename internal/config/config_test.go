package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KingTechnician/MHWorldData/internal/testutil"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Source.Dir != "source_data" {
		t.Errorf("Source.Dir = %s, want source_data", cfg.Source.Dir)
	}
	if cfg.Output.Storage != "local" || cfg.Output.Dir != "." {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Output.TrainFile != "mhw_train.jsonl" || cfg.Output.ValFile != "mhw_val.jsonl" {
		t.Errorf("output files = %s, %s", cfg.Output.TrainFile, cfg.Output.ValFile)
	}
	if cfg.Split.TrainPercent != 90 || cfg.Split.Seed != 0 {
		t.Errorf("Split = %+v, want 90 percent unseeded", cfg.Split)
	}
	if cfg.MinIO.Bucket != "mhw-dataset" {
		t.Errorf("MinIO.Bucket = %s, want mhw-dataset", cfg.MinIO.Bucket)
	}
	testutil.NewAssertHelper(t).True(!cfg.App.Debug, "app.debug should default to false")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MHW_SOURCE_DIR", "/data/mhw")
	t.Setenv("MHW_SPLIT_TRAINPERCENT", "80")
	t.Setenv("MHW_SPLIT_SEED", "7")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Source.Dir != "/data/mhw" {
		t.Errorf("Source.Dir = %s, want /data/mhw", cfg.Source.Dir)
	}
	if cfg.Split.TrainPercent != 80 || cfg.Split.Seed != 7 {
		t.Errorf("Split = %+v, want 80 percent seed 7", cfg.Split)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
source:
  dir: ./csv
output:
  storage: minio
  trainFile: train.jsonl
  valFile: val.jsonl
minio:
  endpoint: localhost:9000
  accessKey: key
  secretKey: secret
  prefix: runs
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	a := testutil.NewAssertHelper(t)
	cfg, err := Load(path)
	a.NoError(err)
	a.Equal("./csv", cfg.Source.Dir)
	a.Equal("minio", cfg.Output.Storage)
	a.Equal("train.jsonl", cfg.Output.TrainFile)
	a.Equal("val.jsonl", cfg.Output.ValFile)

	opts := cfg.StorageOptions()
	if opts["endpoint"] != "localhost:9000" || opts["bucket"] != "mhw-dataset" || opts["prefix"] != "runs" || opts["use_ssl"] != "false" {
		t.Errorf("StorageOptions() = %v", opts)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	testutil.NewAssertHelper(t).ErrorContains(err, "failed to read config")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Source: SourceConfig{Dir: "source_data"},
			Output: OutputConfig{Storage: "local", TrainFile: "a.jsonl", ValFile: "b.jsonl"},
			Split:  SplitConfig{TrainPercent: 90},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "empty source", mutate: func(c *Config) { c.Source.Dir = " " }, wantErr: "source.dir"},
		{name: "zero percent", mutate: func(c *Config) { c.Split.TrainPercent = 0 }, wantErr: "trainPercent"},
		{name: "over 100", mutate: func(c *Config) { c.Split.TrainPercent = 101 }, wantErr: "trainPercent"},
		{name: "same files", mutate: func(c *Config) { c.Output.ValFile = "a.jsonl" }, wantErr: "must differ"},
		{name: "missing file", mutate: func(c *Config) { c.Output.TrainFile = "" }, wantErr: "required"},
		{name: "bad storage", mutate: func(c *Config) { c.Output.Storage = "s3" }, wantErr: "unsupported"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
