// Package testutil 提供测试辅助工具
package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteCSV 在 root 下写入 CSV 文件（rel 如 "monsters/monster_base.csv"）
func WriteCSV(t *testing.T, root, rel string, header []string, rows ...[]string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", rel, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		t.Fatalf("write header %s: %v", rel, err)
	}
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("write rows %s: %v", rel, err)
	}
	return path
}

// SourceTree 写入一套覆盖全部六个领域的最小源数据，返回根目录
func SourceTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	WriteCSV(t, root, "monsters/monster_base.csv",
		[]string{"id", "name_en", "size", "ecology_en"},
		[]string{"1", "Rathalos", "large", "Flying Wyvern"},
		[]string{"2", "Nergigante", "large", "Elder Dragon"},
		[]string{"3", "Kestodon", "small", ""},
	)
	WriteCSV(t, root, "monsters/monster_weaknesses.csv",
		[]string{"name_en", "form", "fire", "water", "thunder", "ice", "dragon", "poison", "sleep", "paralysis", "blast", "stun"},
		[]string{"Rathalos", "normal", "0", "1", "2", "1", "3", "2", "2", "2", "1", "2"},
		[]string{"Rathalos", "enraged", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0"},
		[]string{"Nergigante", "normal", "0", "0", "3", "0", "2", "1", "1", "2", "0", "1"},
	)
	WriteCSV(t, root, "quests/quest_base.csv",
		[]string{"id", "name_en", "category", "rank", "stars", "quest_type", "location_en", "zenny"},
		[]string{"101", "Fate of the Fiery King", "assigned", "HR", "9", "hunt", "Elder's Recess", "9600"},
		[]string{"102", "Sneak Attack", "optional", "LR", "2", "capture", "Ancient Forest", "1200"},
	)
	WriteCSV(t, root, "items/item_base.csv",
		[]string{"id", "name_en", "category", "rarity", "carry_limit", "buy_price", "points"},
		[]string{"1", "Potion", "item", "1", "10", "66", ""},
		[]string{"2", "Mega Potion", "item", "3", "10", "0", "30"},
	)
	WriteCSV(t, root, "armors/armor_base.csv",
		[]string{"id", "name_en", "type", "defense_base", "defense_fire", "defense_water", "defense_thunder", "defense_ice", "defense_dragon", "set_name", "set_pieces"},
		[]string{"1", "Leather Headgear", "head", "2", "2", "0", "0", "0", "0", "Leather", "Leather Headgear,Leather Mail"},
		[]string{"2", "Hunter's Gloves", "arms", "2", "0", "0", "0", "0", "0", "", ""},
	)
	WriteCSV(t, root, "armors/armor_skills.csv",
		[]string{"id", "skills", "skill_levels"},
		[]string{"1", "Attack Boost,Botanist", "1,2"},
	)
	WriteCSV(t, root, "weapons/weapon_base.csv",
		[]string{"id", "name_en", "weapon_type", "attack", "affinity", "slot_1", "slot_2", "slot_3", "element1", "element1_attack", "previous_en"},
		[]string{"1", "Buster Sword I", "great-sword", "480", "0", "0", "0", "0", "", "", ""},
		[]string{"2", "Flame Blade I", "great-sword", "528", "-20", "1", "0", "0", "Fire", "240", "Buster Sword I"},
	)
	WriteCSV(t, root, "locations/location_base.csv",
		[]string{"id", "name_en"},
		[]string{"1", "Ancient Forest"},
		[]string{"2", "Wildspire Waste"},
	)
	WriteCSV(t, root, "locations/location_camps.csv",
		[]string{"id", "name_en"},
		[]string{"1", "Southwest Camp"},
		[]string{"1", "Northwest Camp"},
	)

	return root
}

// AssertHelper 提供断言相关的测试辅助
type AssertHelper struct {
	t *testing.T
}

// NewAssertHelper 创建断言辅助器
func NewAssertHelper(t *testing.T) *AssertHelper {
	return &AssertHelper{t: t}
}

// NoError 断言没有错误
func (h *AssertHelper) NoError(err error, msgAndArgs ...interface{}) {
	h.t.Helper()
	if err != nil {
		h.t.Fatalf("Unexpected error: %v %v", err, msgAndArgs)
	}
}

// ErrorContains 断言错误包含指定字符串
func (h *AssertHelper) ErrorContains(err error, substr string, msgAndArgs ...interface{}) {
	h.t.Helper()
	if err == nil {
		h.t.Fatal("Expected error, got nil")
	}
	if !strings.Contains(err.Error(), substr) {
		h.t.Fatalf("Error %q does not contain %q %v", err.Error(), substr, msgAndArgs)
	}
}

// Equal 断言相等
func (h *AssertHelper) Equal(expected, actual interface{}, msgAndArgs ...interface{}) {
	h.t.Helper()
	if expected != actual {
		h.t.Fatalf("Expected %v, got %v %v", expected, actual, msgAndArgs)
	}
}

// True 断言为真
func (h *AssertHelper) True(condition bool, msgAndArgs ...interface{}) {
	h.t.Helper()
	if !condition {
		h.t.Fatalf("Expected true, got false %v", msgAndArgs)
	}
}
