package formatter

import (
	"github.com/KingTechnician/MHWorldData/internal/service/table"
	"github.com/KingTechnician/MHWorldData/internal/service/template"
)

// 基础表中没有的任务字段使用固定文本
const (
	questTarget      = "Various monsters"
	questRewardItems = "Various items"
	questTimeLimit   = "50"
)

var questColumns = []string{"name", "stars", "quest_type", "location_en", "zenny", "rank", "category"}

// Quests 每行生成 quest_info 与 quest_requirements
func Quests(t *table.Table) ([]Record, error) {
	var records []Record
	for i, row := range t.Rows {
		if err := require(table.Quest, i, row, questColumns...); err != nil {
			return nil, err
		}

		for _, name := range []string{template.QuestInfo, template.QuestRequirements} {
			records = append(records, Record{Template: name, Values: questValues(row)})
		}
	}
	return records, nil
}

func questValues(row table.Row) Values {
	return Values{
		"name":                     row.Get("name"),
		"rank":                     row.Get("stars"),
		"quest_type":               row.Get("quest_type"),
		"location":                 row.Get("location_en"),
		"target":                   questTarget,
		"zenny":                    row.Get("zenny"),
		"reward_items":             questRewardItems,
		"time_limit":               questTimeLimit,
		"conditions_text":          "",
		"required_rank":            row.Get("rank"),
		"prerequisites_text":       "",
		"special_requirement_text": specialRequirementText(row.Get("category")),
		"category":                 row.Get("category"),
	}
}

func specialRequirementText(category string) string {
	switch category {
	case "assigned":
		return "- This is a story progression quest"
	case "optional":
		return "- This is an optional quest"
	default:
		return ""
	}
}
