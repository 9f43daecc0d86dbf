package formatter

import (
	"fmt"
	"strings"

	"github.com/KingTechnician/MHWorldData/internal/service/table"
	"github.com/KingTechnician/MHWorldData/internal/service/template"
)

const noSkills = "No skills available"

var armorColumns = []string{
	"name", "type", "defense_base",
	"defense_fire", "defense_water", "defense_thunder", "defense_ice", "defense_dragon",
}

// Armors 每行生成 armor_stats，属于套装的防具额外生成 armor_set
func Armors(t *table.Table) ([]Record, error) {
	var records []Record
	for i, row := range t.Rows {
		if err := require(table.Armor, i, row, armorColumns...); err != nil {
			return nil, err
		}
		name := row.Get("name")

		records = append(records, Record{
			Template: template.ArmorStats,
			Values: Values{
				"name":        name,
				"armor_type":  row.Get("type"),
				"defense":     row.Get("defense_base"),
				"fire_res":    row.Get("defense_fire"),
				"water_res":   row.Get("defense_water"),
				"thunder_res": row.Get("defense_thunder"),
				"ice_res":     row.Get("defense_ice"),
				"dragon_res":  row.Get("defense_dragon"),
				"skills_list": skillsList(row),
			},
		})

		if truthy(row.Get("set_name")) {
			if err := require(table.Armor, i, row, "set_pieces"); err != nil {
				return nil, err
			}
			records = append(records, Record{
				Template: template.ArmorSet,
				Values: Values{
					"name":              name,
					"pieces_list":       bulletList(row.Get("set_pieces")),
					"bonus_name":        orDefault(row.Get("set_bonus_name"), "None"),
					"bonus_description": orDefault(row.Get("set_bonus_description"), "No bonus"),
					"pieces_required":   orDefault(row.Get("set_pieces_required"), "3"),
				},
			})
		}
	}
	return records, nil
}

// skillsList 按位置配对 skills 与 skill_levels，两列缺一时返回默认文本
func skillsList(row table.Row) string {
	skills, ok := row.Lookup("skills")
	if !ok || skills == "" {
		return noSkills
	}
	levels, ok := row.Lookup("skill_levels")
	if !ok || levels == "" {
		return noSkills
	}

	names := strings.Split(skills, ",")
	lvls := strings.Split(levels, ",")
	n := min(len(names), len(lvls))
	lines := make([]string, n)
	for i := 0; i < n; i++ {
		lines[i] = fmt.Sprintf("- %s: Level %s", strings.TrimSpace(names[i]), strings.TrimSpace(lvls[i]))
	}
	return strings.Join(lines, "\n")
}
