package formatter

import (
	"fmt"
	"sort"

	"github.com/KingTechnician/MHWorldData/internal/service/table"
	"github.com/KingTechnician/MHWorldData/internal/service/template"
)

// 元素与异常状态的固定枚举顺序，并列时取靠前者。
// 行带有 fire 列时生成弱点问答，空值按 0 计
var (
	elementColumns = []string{"fire", "water", "thunder", "ice", "dragon"}
	statusColumns  = []string{"poison", "sleep", "paralysis", "blast", "stun"}
)

// Monsters 生成 monster_basic，并按数据生成 monster_weakness / monster_rewards
func Monsters(t *table.Table) ([]Record, error) {
	var records []Record
	for i, row := range t.Rows {
		if err := require(table.Monster, i, row, "name_en", "size"); err != nil {
			return nil, err
		}
		name := row.Get("name_en")
		ecology := row.Get("ecology_en")

		records = append(records, Record{
			Template: template.MonsterBasic,
			Values: Values{
				"name":              name,
				"species":           orDefault(ecology, "Unknown"),
				"size":              row.Get("size"),
				"elder_dragon_text": speciesText(ecology),
			},
		})

		if row.Has("fire") {
			if err := require(table.Monster, i, row, elementColumns[1:]...); err != nil {
				return nil, err
			}
			if err := require(table.Monster, i, row, statusColumns...); err != nil {
				return nil, err
			}
			ranked, err := rankElements(row)
			if err != nil {
				return nil, fmt.Errorf("monster row %d: %w", i, err)
			}
			status, err := topStatus(row)
			if err != nil {
				return nil, fmt.Errorf("monster row %d: %w", i, err)
			}
			records = append(records, Record{
				Template: template.MonsterWeakness,
				Values: Values{
					"name":     name,
					"element1": ranked[0],
					"element2": ranked[1],
					"status1":  status,
				},
			})
		}

		if row.Has("rewards") {
			records = append(records, Record{
				Template: template.MonsterRewards,
				Values: Values{
					"name":               name,
					"material1":          orDefault(row.Get("common_reward"), "Various materials"),
					"drop_rate1":         orDefault(row.Get("common_rate"), "0"),
					"material2":          orDefault(row.Get("rare_reward"), "Rare materials"),
					"drop_rate2":         orDefault(row.Get("rare_rate"), "0"),
					"material3":          orDefault(row.Get("break_reward"), "Break part rewards"),
					"body_part":          orDefault(row.Get("break_part"), "various parts"),
					"rare_material_text": rareMaterialText(row),
				},
			})
		}
	}
	return records, nil
}

// speciesText 物种描述：古龙 / 所属类别 / 未知
func speciesText(ecology string) string {
	switch {
	case ecology == "Elder Dragon":
		return "an Elder Dragon"
	case ecology != "":
		return fmt.Sprintf("part of the %s category", ecology)
	default:
		return "an unknown type"
	}
}

// rankElements 按弱点值降序排列元素，值相同保持枚举顺序
func rankElements(row table.Row) ([]string, error) {
	type scored struct {
		name  string
		value float64
	}
	items := make([]scored, 0, len(elementColumns))
	for _, col := range elementColumns {
		v, err := number(row.Get(col))
		if err != nil {
			return nil, fmt.Errorf("element %s: %w", col, err)
		}
		items = append(items, scored{name: col, value: v})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].value > items[j].value
	})

	ranked := make([]string, len(items))
	for i, it := range items {
		ranked[i] = it.name
	}
	return ranked, nil
}

// topStatus 取值最高的异常状态，并列取先出现者
func topStatus(row table.Row) (string, error) {
	best := ""
	bestValue := 0.0
	for _, col := range statusColumns {
		v, err := number(row.Get(col))
		if err != nil {
			return "", fmt.Errorf("status %s: %w", col, err)
		}
		if best == "" || v > bestValue {
			best, bestValue = col, v
		}
	}
	return best, nil
}

func rareMaterialText(row table.Row) string {
	material := row.Get("rare_material")
	if material == "" {
		return ""
	}
	return fmt.Sprintf("The %s has a very low drop rate of %s%% and is best obtained through investigations.",
		material, orDefault(row.Get("rare_drop_rate"), "0"))
}
