// Package table 提供 CSV 表加载与左连接
package table

// 领域名称
const (
	Monster  = "monster"
	Quest    = "quest"
	Item     = "item"
	Armor    = "armor"
	Weapon   = "weapon"
	Location = "location"
)

// Domains 领域的固定处理顺序
var Domains = []string{Monster, Quest, Item, Armor, Weapon, Location}

// Row 表格行，列名 -> 值；表中每一列都有对应的键，空单元格为 ""
type Row map[string]string

// Has 判断行是否包含该列
func (r Row) Has(col string) bool {
	_, ok := r[col]
	return ok
}

// Get 获取列值，列不存在时返回 ""
func (r Row) Get(col string) string {
	return r[col]
}

// Lookup 获取列值及列是否存在
func (r Row) Lookup(col string) (string, bool) {
	v, ok := r[col]
	return v, ok
}

// Table 内存表
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// Empty 创建空表
func Empty(name string) *Table {
	return &Table{Name: name}
}

// Len 返回行数
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// HasColumn 判断表是否包含该列
func (t *Table) HasColumn(col string) bool {
	if t == nil {
		return false
	}
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// RenameColumn 重命名列，from 不存在时不做任何事
func (t *Table) RenameColumn(from, to string) {
	if !t.HasColumn(from) || from == to {
		return
	}
	for i, c := range t.Columns {
		if c == from {
			t.Columns[i] = to
		}
	}
	for _, row := range t.Rows {
		row[to] = row[from]
		delete(row, from)
	}
}

// Filter 返回仅保留 keep 为真的行的新表
func (t *Table) Filter(keep func(Row) bool) *Table {
	out := &Table{Name: t.Name, Columns: append([]string(nil), t.Columns...)}
	for _, row := range t.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// NormalizeName 缺少 name 列但存在 name_en 时，将 name_en 重命名为 name
func NormalizeName(t *Table) {
	if !t.HasColumn("name") && t.HasColumn("name_en") {
		t.RenameColumn("name_en", "name")
	}
}

// Tables 领域 -> 已连接的表
type Tables map[string]*Table

// Get 获取领域表，不存在时返回空表
func (ts Tables) Get(domain string) *Table {
	if t, ok := ts[domain]; ok && t != nil {
		return t
	}
	return Empty(domain)
}
