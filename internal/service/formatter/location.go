package formatter

import (
	"github.com/KingTechnician/MHWorldData/internal/service/table"
	"github.com/KingTechnician/MHWorldData/internal/service/template"
)

// TODO: derive monsters_list, gathering_points and camps from the
// location_monsters, location_items and location_camps columns; the joined
// columns are loaded but the answer still uses fixed text.
const (
	locationMonsters  = "Various monsters can be found here"
	locationGathering = "Various gathering points available"
	locationCamps     = "Multiple camps available"
)

// Locations 每行生成 location_info
func Locations(t *table.Table) ([]Record, error) {
	var records []Record
	for i, row := range t.Rows {
		if err := require(table.Location, i, row, "name"); err != nil {
			return nil, err
		}
		records = append(records, Record{
			Template: template.LocationInfo,
			Values: Values{
				"name":             row.Get("name"),
				"monsters_list":    locationMonsters,
				"gathering_points": locationGathering,
				"camps":            locationCamps,
			},
		})
	}
	return records, nil
}
