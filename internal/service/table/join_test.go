package table

import (
	"errors"
	"strings"
	"testing"
)

func newTable(name string, columns []string, rows ...[]string) *Table {
	t := &Table{Name: name, Columns: columns}
	for _, values := range rows {
		row := make(Row, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// ========== LeftJoin 测试 ==========

func TestLeftJoin_KeepsUnmatchedRows(t *testing.T) {
	left := newTable("item", []string{"id", "name"},
		[]string{"1", "Potion"},
		[]string{"2", "Antidote"},
	)
	right := newTable("item_combinations", []string{"id", "result"},
		[]string{"1", "Mega Potion"},
	)

	got, err := LeftJoin(left, right, Join{Name: "item_combinations", LeftKey: "id", RightKey: "id", Suffix: "_combo"})
	if err != nil {
		t.Fatalf("LeftJoin() error = %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("LeftJoin() rows = %d, want 2", got.Len())
	}
	if got.Rows[0].Get("result") != "Mega Potion" {
		t.Errorf("row 0 result = %q, want Mega Potion", got.Rows[0].Get("result"))
	}
	if !got.Rows[1].Has("result") || got.Rows[1].Get("result") != "" {
		t.Errorf("unmatched row should carry empty result, got %q (present=%v)", got.Rows[1].Get("result"), got.Rows[1].Has("result"))
	}
	if strings.Join(got.Columns, ",") != "id,name,result" {
		t.Errorf("Columns = %v, want [id name result]", got.Columns)
	}
}

func TestLeftJoin_SuffixOnCollision(t *testing.T) {
	left := newTable("armor", []string{"id", "name", "rarity"},
		[]string{"1", "Leather Headgear", "1"},
	)
	right := newTable("armor_craft", []string{"id", "rarity", "zenny"},
		[]string{"1", "2", "100"},
	)

	got, err := LeftJoin(left, right, Join{LeftKey: "id", RightKey: "id", Suffix: "_craft"})
	if err != nil {
		t.Fatalf("LeftJoin() error = %v", err)
	}
	row := got.Rows[0]
	if row.Get("rarity") != "1" {
		t.Errorf("base rarity = %q, want 1", row.Get("rarity"))
	}
	if row.Get("rarity_craft") != "2" {
		t.Errorf("rarity_craft = %q, want 2", row.Get("rarity_craft"))
	}
	if row.Has("id_craft") {
		t.Error("shared key column should not be duplicated")
	}
}

func TestLeftJoin_DifferentKeysKeepsRightKey(t *testing.T) {
	left := newTable("monster", []string{"name_en", "size"},
		[]string{"Rathalos", "large"},
	)
	right := newTable("monster_rewards", []string{"monster_name", "rewards"},
		[]string{"Rathalos", "Rathalos Scale"},
	)

	got, err := LeftJoin(left, right, Join{LeftKey: "name_en", RightKey: "monster_name", Suffix: "_rewards"})
	if err != nil {
		t.Fatalf("LeftJoin() error = %v", err)
	}
	if got.Rows[0].Get("monster_name") != "Rathalos" {
		t.Errorf("monster_name = %q, want Rathalos", got.Rows[0].Get("monster_name"))
	}
	if got.Rows[0].Get("rewards") != "Rathalos Scale" {
		t.Errorf("rewards = %q, want Rathalos Scale", got.Rows[0].Get("rewards"))
	}
}

func TestLeftJoin_FanOut(t *testing.T) {
	left := newTable("location", []string{"id", "name"},
		[]string{"1", "Ancient Forest"},
		[]string{"2", "Wildspire Waste"},
	)
	right := newTable("location_camps", []string{"id", "camp"},
		[]string{"1", "Southwest Camp"},
		[]string{"1", "Northwest Camp"},
	)

	got, err := LeftJoin(left, right, Join{LeftKey: "id", RightKey: "id"})
	if err != nil {
		t.Fatalf("LeftJoin() error = %v", err)
	}
	if got.Len() != 3 {
		t.Fatalf("LeftJoin() rows = %d, want 3", got.Len())
	}
	want := []string{"Southwest Camp", "Northwest Camp", ""}
	for i, w := range want {
		if got.Rows[i].Get("camp") != w {
			t.Errorf("row %d camp = %q, want %q", i, got.Rows[i].Get("camp"), w)
		}
	}
}

func TestLeftJoin_EmptyKeyNeverMatches(t *testing.T) {
	left := newTable("item", []string{"id", "name"}, []string{"", "Mystery"})
	right := newTable("item_combinations", []string{"id", "result"}, []string{"", "Nothing"})

	got, err := LeftJoin(left, right, Join{LeftKey: "id", RightKey: "id"})
	if err != nil {
		t.Fatalf("LeftJoin() error = %v", err)
	}
	if got.Len() != 1 || got.Rows[0].Get("result") != "" {
		t.Errorf("empty key should not match, got %v", got.Rows)
	}
}

func TestLeftJoin_MissingKey(t *testing.T) {
	left := newTable("item", []string{"name"}, []string{"Potion"})
	right := newTable("item_combinations", []string{"id"}, []string{"1"})

	_, err := LeftJoin(left, right, Join{LeftKey: "id", RightKey: "id"})
	if !errors.Is(err, ErrMissingKey) {
		t.Errorf("LeftJoin() error = %v, want ErrMissingKey", err)
	}
}

func TestLeftJoin_DoesNotMutateInputs(t *testing.T) {
	left := newTable("item", []string{"id", "name"}, []string{"1", "Potion"})
	right := newTable("item_combinations", []string{"id", "result"}, []string{"1", "Mega Potion"})

	if _, err := LeftJoin(left, right, Join{LeftKey: "id", RightKey: "id"}); err != nil {
		t.Fatalf("LeftJoin() error = %v", err)
	}
	if left.Rows[0].Has("result") {
		t.Error("LeftJoin() should not modify left rows")
	}
	if len(left.Columns) != 2 {
		t.Errorf("left columns = %v, want unchanged", left.Columns)
	}
}

// ========== Table 测试 ==========

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		want    string
	}{
		{name: "rename name_en", columns: []string{"id", "name_en"}, want: "id,name"},
		{name: "keep existing name", columns: []string{"name", "name_en"}, want: "name,name_en"},
		{name: "no name columns", columns: []string{"id"}, want: "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := make([]string, len(tt.columns))
			for i := range values {
				values[i] = "v"
			}
			tbl := newTable("quest", tt.columns, values)
			NormalizeName(tbl)
			if got := strings.Join(tbl.Columns, ","); got != tt.want {
				t.Errorf("Columns = %s, want %s", got, tt.want)
			}
			for _, col := range tbl.Columns {
				if !tbl.Rows[0].Has(col) {
					t.Errorf("row missing column %s", col)
				}
			}
		})
	}
}

func TestTable_Filter(t *testing.T) {
	tbl := newTable("monster_weaknesses", []string{"name_en", "form"},
		[]string{"Rathalos", "normal"},
		[]string{"Rathalos", "enraged"},
	)
	got := tbl.Filter(func(r Row) bool { return r.Get("form") == "normal" })
	if got.Len() != 1 {
		t.Errorf("Filter() rows = %d, want 1", got.Len())
	}
	if tbl.Len() != 2 {
		t.Error("Filter() should not modify the source table")
	}
}

func TestTables_GetMissing(t *testing.T) {
	ts := Tables{}
	if got := ts.Get(Monster); got == nil || got.Len() != 0 {
		t.Errorf("Get() on missing domain = %v, want empty table", got)
	}
}
