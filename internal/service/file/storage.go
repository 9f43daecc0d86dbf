// Package file 提供数据集输出文件的存储
package file

import (
	"context"
	"fmt"
	"io"
)

// Storage 文件存储接口
type Storage interface {
	// Save 保存文件，返回文件路径
	Save(ctx context.Context, req *SaveRequest) (string, error)
	// Get 获取文件内容
	Get(ctx context.Context, filePath string) (io.ReadCloser, error)
	// Delete 删除文件
	Delete(ctx context.Context, filePath string) error
	// GetURL 获取文件的访问位置（本地路径或对象存储 URL）
	GetURL(filePath string) string
}

// SaveRequest 保存文件请求
type SaveRequest struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// StorageType 存储类型
type StorageType string

const (
	StorageTypeLocal StorageType = "local"
	StorageTypeMinIO StorageType = "minio"
)

// NewStorage 根据存储类型与配置创建存储
func NewStorage(storageType StorageType, cfg map[string]string) (Storage, error) {
	switch storageType {
	case StorageTypeLocal, "":
		basePath := cfg["base_path"]
		if basePath == "" {
			basePath = "."
		}
		return NewLocalStorage(basePath)

	case StorageTypeMinIO:
		if cfg["endpoint"] == "" || cfg["access_key"] == "" || cfg["secret_key"] == "" || cfg["bucket"] == "" {
			return nil, fmt.Errorf("missing required MinIO config")
		}
		useSSL := cfg["use_ssl"] == "true"
		urlPrefix := cfg["url_prefix"]
		if urlPrefix == "" {
			scheme := "http"
			if useSSL {
				scheme = "https"
			}
			urlPrefix = fmt.Sprintf("%s://%s", scheme, cfg["endpoint"])
		}
		return NewMinIOStorage(&MinIOConfig{
			Endpoint:   cfg["endpoint"],
			AccessKey:  cfg["access_key"],
			SecretKey:  cfg["secret_key"],
			BucketName: cfg["bucket"],
			Region:     cfg["region"],
			Prefix:     cfg["prefix"],
			UseSSL:     useSSL,
			URLPrefix:  urlPrefix,
		})

	default:
		return nil, fmt.Errorf("unsupported storage type: %s", storageType)
	}
}
