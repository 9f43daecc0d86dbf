package formatter

import (
	"fmt"

	"github.com/KingTechnician/MHWorldData/internal/service/table"
	"github.com/KingTechnician/MHWorldData/internal/service/template"
)

// Items 每行生成 item_info
func Items(t *table.Table) ([]Record, error) {
	var records []Record
	for i, row := range t.Rows {
		if err := require(table.Item, i, row, "name", "rarity", "carry_limit"); err != nil {
			return nil, err
		}
		records = append(records, Record{
			Template: template.ItemInfo,
			Values: Values{
				"name":          row.Get("name"),
				"rarity":        row.Get("rarity"),
				"item_type":     orDefault(row.Get("category"), "consumable"),
				"description":   fmt.Sprintf("It can be carried up to %s at a time.", row.Get("carry_limit")),
				"obtain_method": obtainMethod(row),
			},
		})
	}
	return records, nil
}

// obtainMethod 优先使用购买价格，其次是资源点数
func obtainMethod(row table.Row) string {
	if price := row.Get("buy_price"); truthy(price) {
		return fmt.Sprintf("It can be purchased for %s zenny.", price)
	}
	if points := row.Get("points"); truthy(points) {
		return fmt.Sprintf("It can be obtained for %s resource points.", points)
	}
	return ""
}
