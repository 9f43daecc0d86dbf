package table

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "github.com/duckdb/duckdb-go/v2"
)

// Reader 使用 DuckDB 内存库读取 CSV 文件
type Reader struct {
	db *sql.DB
	mu sync.Mutex
}

// NewReader 创建 CSV 读取器
func NewReader() (*Reader, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	return &Reader{db: db}, nil
}

// ReadCSV 读取 CSV 文件为表，所有列按文本读取，空单元格为 ""
func (r *Reader) ReadCSV(ctx context.Context, name, path string) (*Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := fmt.Sprintf(`SELECT * FROM read_csv('%s', header = true, all_varchar = true, delim = ',', quote = '"', escape = '"')`,
		strings.ReplaceAll(path, "'", "''"))

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", path, err)
	}

	t := &Table{Name: name, Columns: columns}
	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", path, err)
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			row[col] = values[i].String
		}
		t.Rows = append(t.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", path, err)
	}

	return t, nil
}

// Close 关闭连接
func (r *Reader) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}
