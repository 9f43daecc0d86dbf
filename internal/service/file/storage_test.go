package file

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// ========== LocalStorage 测试 ==========

func TestLocalStorage_SaveGetDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	storage, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}
	ctx := context.Background()

	content := `{"messages":[]}` + "\n"
	p, err := storage.Save(ctx, &SaveRequest{
		FileName:    "mhw_train.jsonl",
		ContentType: "application/jsonl",
		Size:        int64(len(content)),
		Reader:      strings.NewReader(content),
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if p != "mhw_train.jsonl" {
		t.Errorf("Save() = %s, want mhw_train.jsonl", p)
	}
	if got := storage.GetURL(p); got != filepath.Join(dir, "mhw_train.jsonl") {
		t.Errorf("GetURL() = %s", got)
	}

	rc, err := storage.Get(ctx, p)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	data, _ := io.ReadAll(rc)
	rc.Close()
	if string(data) != content {
		t.Errorf("Get() = %q, want %q", data, content)
	}

	if err := storage.Delete(ctx, p); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, p)); !os.IsNotExist(err) {
		t.Error("file should be removed")
	}
	if err := storage.Delete(ctx, p); err != nil {
		t.Errorf("Delete() on missing file error = %v", err)
	}
}

func TestLocalStorage_Overwrite(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}
	ctx := context.Background()

	for _, content := range []string{"first line\nsecond line\n", "new\n"} {
		if _, err := storage.Save(ctx, &SaveRequest{FileName: "mhw_val.jsonl", Reader: strings.NewReader(content)}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}
	data, err := os.ReadFile(filepath.Join(dir, "mhw_val.jsonl"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "new\n" {
		t.Errorf("file content = %q, want overwritten content", data)
	}
}

func TestLocalStorage_SaveRequiresName(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}
	if _, err := storage.Save(context.Background(), &SaveRequest{Reader: strings.NewReader("x")}); err == nil {
		t.Error("Save() expected error for empty file name")
	}
}

// ========== NewStorage 测试 ==========

func TestNewStorage(t *testing.T) {
	tests := []struct {
		name        string
		storageType StorageType
		cfg         map[string]string
		wantErr     bool
	}{
		{name: "local", storageType: StorageTypeLocal, cfg: map[string]string{"base_path": t.TempDir()}},
		{name: "default type", storageType: "", cfg: map[string]string{"base_path": t.TempDir()}},
		{name: "minio missing config", storageType: StorageTypeMinIO, cfg: map[string]string{"endpoint": "localhost:9000"}, wantErr: true},
		{name: "unsupported", storageType: "s3", cfg: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStorage(tt.storageType, tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewStorage() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// ========== MinIOStorage 测试 ==========

type recordedRequest struct {
	method string
	path   string
}

func TestMinIOStorage_Save(t *testing.T) {
	var (
		mu       sync.Mutex
		requests []recordedRequest
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.Copy(io.Discard, r.Body)
		mu.Lock()
		requests = append(requests, recordedRequest{method: r.Method, path: r.URL.Path})
		mu.Unlock()
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	endpoint := strings.TrimPrefix(server.URL, "http://")
	storage, err := NewStorage(StorageTypeMinIO, map[string]string{
		"endpoint":   endpoint,
		"access_key": "minioadmin",
		"secret_key": "minioadmin",
		"bucket":     "mhw-dataset",
		"region":     "us-east-1",
		"prefix":     "/runs/",
	})
	if err != nil {
		t.Fatalf("NewStorage() error = %v", err)
	}

	content := "{}\n"
	p, err := storage.Save(context.Background(), &SaveRequest{
		FileName:    "mhw_train.jsonl",
		ContentType: "application/jsonl",
		Size:        int64(len(content)),
		Reader:      strings.NewReader(content),
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if p != "runs/mhw_train.jsonl" {
		t.Errorf("Save() = %s, want runs/mhw_train.jsonl", p)
	}
	if got := storage.GetURL(p); got != server.URL+"/mhw-dataset/runs/mhw_train.jsonl" {
		t.Errorf("GetURL() = %s", got)
	}

	mu.Lock()
	defer mu.Unlock()
	var put bool
	for _, r := range requests {
		if r.method == http.MethodPut && r.path == "/mhw-dataset/runs/mhw_train.jsonl" {
			put = true
		}
	}
	if !put {
		t.Errorf("requests = %v, want PUT /mhw-dataset/runs/mhw_train.jsonl", requests)
	}
}
