// Package formatter 将各领域的连接行转换为模板格式字典
package formatter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KingTechnician/MHWorldData/internal/service/table"
	"github.com/spf13/cast"
)

// ErrMissingColumn 行缺少格式化器必须读取的列
var ErrMissingColumn = errors.New("missing column")

// Values 格式字典：占位符名 -> 值
type Values map[string]any

// Record 一次模板填充：模板名 + 格式字典
type Record struct {
	Template string
	Values   Values
}

// Func 将一个领域的表转换为模板填充记录，不修改任何共享状态
type Func func(t *table.Table) ([]Record, error)

var byDomain = map[string]Func{
	table.Monster:  Monsters,
	table.Quest:    Quests,
	table.Item:     Items,
	table.Armor:    Armors,
	table.Weapon:   Weapons,
	table.Location: Locations,
}

// For 获取领域对应的格式化器
func For(domain string) (Func, bool) {
	f, ok := byDomain[domain]
	return f, ok
}

// require 检查行包含全部列
func require(domain string, index int, row table.Row, cols ...string) error {
	for _, col := range cols {
		if !row.Has(col) {
			return fmt.Errorf("%s row %d: %w %q", domain, index, ErrMissingColumn, col)
		}
	}
	return nil
}

// truthy 可选字段是否有值：空串、数值 0、布尔 false 视为无值
func truthy(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f != 0
	}
	if b, err := cast.ToBoolE(v); err == nil {
		return b
	}
	return true
}

// number 解析数值，空串为 0
func number(v string) (float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	return cast.ToFloat64E(v)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// bulletList 将逗号分隔的字符串转换为 "- x" 列表
func bulletList(csv string) string {
	parts := strings.Split(csv, ",")
	lines := make([]string, len(parts))
	for i, p := range parts {
		lines[i] = "- " + strings.TrimSpace(p)
	}
	return strings.Join(lines, "\n")
}
