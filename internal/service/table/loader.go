package table

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// CSVReader 读取单个 CSV 文件
type CSVReader interface {
	ReadCSV(ctx context.Context, name, path string) (*Table, error)
}

// Plan 单个领域的加载计划
type Plan struct {
	Domain        string
	Dir           string // source 目录下的子目录
	Base          string // 基础表文件名（不含扩展名）
	NormalizeName bool   // 是否将 name_en 规范为 name
	Joins         []Join
}

// Plans 返回六个领域的加载计划，顺序与 Domains 一致
func Plans() []Plan {
	return []Plan{
		{
			Domain: Monster,
			Dir:    "monsters",
			Base:   "monster_base",
			Joins: []Join{
				{
					Name:     "monster_weaknesses",
					LeftKey:  "name_en",
					RightKey: "name_en",
					Suffix:   "_weakness",
					Require:  []string{"form"},
					Filter:   func(r Row) bool { return r.Get("form") == "normal" },
				},
				{
					Name:     "monster_rewards",
					LeftKey:  "name_en",
					RightKey: "monster_name",
					Suffix:   "_rewards",
				},
			},
		},
		{
			Domain:        Quest,
			Dir:           "quests",
			Base:          "quest_base",
			NormalizeName: true,
		},
		{
			Domain:        Item,
			Dir:           "items",
			Base:          "item_base",
			NormalizeName: true,
			Joins: []Join{
				{Name: "item_combinations", LeftKey: "id", RightKey: "id", Suffix: "_combo"},
			},
		},
		{
			Domain:        Armor,
			Dir:           "armors",
			Base:          "armor_base",
			NormalizeName: true,
			Joins: []Join{
				{Name: "armor_skills", LeftKey: "id", RightKey: "id", Suffix: "_skills"},
				{Name: "armor_craft", LeftKey: "id", RightKey: "id", Suffix: "_craft"},
			},
		},
		{
			Domain:        Weapon,
			Dir:           "weapons",
			Base:          "weapon_base",
			NormalizeName: true,
			Joins: []Join{
				{Name: "weapon_craft", LeftKey: "id", RightKey: "id", Suffix: "_craft"},
			},
		},
		{
			Domain:        Location,
			Dir:           "locations",
			Base:          "location_base",
			NormalizeName: true,
			Joins: []Join{
				{Name: "location_camps", LeftKey: "id", RightKey: "id", Suffix: "_camps"},
				{Name: "location_monsters", LeftKey: "id", RightKey: "id", Suffix: "_monsters"},
				{Name: "location_items", LeftKey: "id", RightKey: "id", Suffix: "_items"},
			},
		},
	}
}

// Loader 按加载计划读取并连接各领域的表
type Loader struct {
	sourceDir string
	reader    CSVReader
	plans     []Plan
}

// NewLoader 创建表加载器
func NewLoader(sourceDir string, reader CSVReader) *Loader {
	return &Loader{
		sourceDir: sourceDir,
		reader:    reader,
		plans:     Plans(),
	}
}

// LoadAll 加载全部领域。任何领域加载失败都只记录日志并降级为空表
func (l *Loader) LoadAll(ctx context.Context) Tables {
	tables := make(Tables, len(l.plans))
	for _, plan := range l.plans {
		tables[plan.Domain] = l.Load(ctx, plan)
	}
	return tables
}

// Load 加载单个领域，失败时返回空表
func (l *Loader) Load(ctx context.Context, plan Plan) *Table {
	t, err := l.load(ctx, plan)
	if err != nil {
		log.Printf("Error loading %s data: %v", plan.Domain, err)
		return Empty(plan.Domain)
	}
	log.Printf("Loaded %s data: %d rows", plan.Domain, t.Len())
	return t
}

func (l *Loader) load(ctx context.Context, plan Plan) (*Table, error) {
	basePath := l.path(plan, plan.Base)
	if !fileExists(basePath) {
		log.Printf("Warning: %s data file not found at %s", plan.Domain, basePath)
		return Empty(plan.Domain), nil
	}

	t, err := l.reader.ReadCSV(ctx, plan.Domain, basePath)
	if err != nil {
		return nil, err
	}
	if plan.NormalizeName {
		NormalizeName(t)
	}

	for _, j := range plan.Joins {
		path := l.path(plan, j.Name)
		if !fileExists(path) {
			continue
		}

		right, err := l.reader.ReadCSV(ctx, j.Name, path)
		if err != nil {
			return nil, err
		}
		for _, col := range j.Require {
			if !right.HasColumn(col) {
				return nil, fmt.Errorf("%s: missing column %q", j.Name, col)
			}
		}
		if j.Filter != nil {
			right = right.Filter(j.Filter)
		}

		t, err = LeftJoin(t, right, j)
		if err != nil {
			return nil, fmt.Errorf("failed to join %s: %w", j.Name, err)
		}
	}

	return t, nil
}

func (l *Loader) path(plan Plan, stem string) string {
	return filepath.Join(l.sourceDir, plan.Dir, stem+".csv")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
