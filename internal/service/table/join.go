package table

import (
	"errors"
	"fmt"
)

// ErrMissingKey 连接键列不存在
var ErrMissingKey = errors.New("join key column not found")

// Join 描述一张补充表及其连接方式
type Join struct {
	Name     string         // 文件名（不含扩展名）
	LeftKey  string         // 基础表连接列
	RightKey string         // 补充表连接列
	Suffix   string         // 列名冲突时补充表列的后缀
	Require  []string       // 补充表必须包含的列
	Filter   func(Row) bool // 连接前的行过滤
}

// LeftJoin 以 left 为基础表左外连接 right。
// right 按 RightKey 预先建立索引；未匹配的基础行保留，补充列为 ""；
// 一个键匹配多行时按 right 中的顺序展开为多行。
func LeftJoin(left, right *Table, j Join) (*Table, error) {
	if !left.HasColumn(j.LeftKey) {
		return nil, fmt.Errorf("%s.%s: %w", left.Name, j.LeftKey, ErrMissingKey)
	}
	if !right.HasColumn(j.RightKey) {
		return nil, fmt.Errorf("%s.%s: %w", right.Name, j.RightKey, ErrMissingKey)
	}

	var extra []joinColumn
	columns := append([]string(nil), left.Columns...)
	for _, c := range right.Columns {
		if c == j.RightKey && j.LeftKey == j.RightKey {
			continue
		}
		name := c
		for containsString(columns, name) {
			name += suffixOrDefault(j.Suffix, right.Name)
		}
		extra = append(extra, joinColumn{from: c, to: name})
		columns = append(columns, name)
	}

	index := make(map[string][]Row, len(right.Rows))
	for _, row := range right.Rows {
		key := row.Get(j.RightKey)
		if key == "" {
			continue
		}
		index[key] = append(index[key], row)
	}

	out := &Table{Name: left.Name, Columns: columns}
	for _, base := range left.Rows {
		matches := index[base.Get(j.LeftKey)]
		if base.Get(j.LeftKey) == "" || len(matches) == 0 {
			out.Rows = append(out.Rows, merge(base, nil, extra))
			continue
		}
		for _, m := range matches {
			out.Rows = append(out.Rows, merge(base, m, extra))
		}
	}
	return out, nil
}

// joinColumn 补充表列 -> 输出列名
type joinColumn struct{ from, to string }

func merge(base, enrich Row, extra []joinColumn) Row {
	row := make(Row, len(base)+len(extra))
	for k, v := range base {
		row[k] = v
	}
	for _, c := range extra {
		row[c.to] = enrich.Get(c.from)
	}
	return row
}

func suffixOrDefault(suffix, name string) string {
	if suffix != "" {
		return suffix
	}
	return "_" + name
}

func containsString(items []string, value string) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}
