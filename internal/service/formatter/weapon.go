package formatter

import (
	"fmt"
	"strings"

	"github.com/KingTechnician/MHWorldData/internal/service/table"
	"github.com/KingTechnician/MHWorldData/internal/service/template"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const materialsUnavailable = "Materials information not available in base data"

var weaponColumns = []string{"name", "weapon_type", "attack", "slot_1", "slot_2", "slot_3"}

// Weapons 每行生成 weapon_stats，有前置武器时额外生成 weapon_crafting
func Weapons(t *table.Table) ([]Record, error) {
	var records []Record
	for i, row := range t.Rows {
		if err := require(table.Weapon, i, row, weaponColumns...); err != nil {
			return nil, err
		}
		affinity, err := affinityText(row)
		if err != nil {
			return nil, fmt.Errorf("weapon row %d: %w", i, err)
		}
		name := row.Get("name")

		records = append(records, Record{
			Template: template.WeaponStats,
			Values: Values{
				"name":               name,
				"weapon_type":        weaponTypeText(row.Get("weapon_type")),
				"attack":             row.Get("attack"),
				"element_text":       elementText(row) + phialText(row),
				"affinity_text":      affinity,
				"sharpness_text":     shellingText(row),
				"bowgun_text":        ammoText(row),
				"bow_text":           notesText(row),
				"slot_configuration": fmt.Sprintf("%s-%s-%s", row.Get("slot_1"), row.Get("slot_2"), row.Get("slot_3")),
			},
		})

		if previous := row.Get("previous_en"); truthy(previous) {
			records = append(records, Record{
				Template: template.WeaponCrafting,
				Values: Values{
					"name":              name,
					"materials_list":    materialsUnavailable,
					"zenny":             "0",
					"prerequisite_text": "Requires previous weapon: " + previous,
				},
			})
		}
	}
	return records, nil
}

// weaponTypeText "charge-blade" -> "Charge Blade"
func weaponTypeText(weaponType string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(weaponType, "-", " "))
}

// elementText 主属性，可选副属性与隐藏标记
func elementText(row table.Row) string {
	element := row.Get("element1")
	if !truthy(element) {
		return ""
	}
	text := fmt.Sprintf("- Element: %s %s", element, row.Get("element1_attack"))
	if second := row.Get("element2"); truthy(second) {
		text += fmt.Sprintf("\n- Secondary Element: %s %s", second, row.Get("element2_attack"))
	}
	if truthy(row.Get("element_hidden")) {
		text += " (Hidden)"
	}
	return text
}

func phialText(row table.Row) string {
	phial := row.Get("phial")
	if !truthy(phial) {
		return ""
	}
	text := "\n- Phial Type: " + phial
	if power := row.Get("phial_power"); truthy(power) {
		text += fmt.Sprintf(" (%s)", power)
	}
	return text
}

// affinityText 会心率非 0 时输出
func affinityText(row table.Row) (string, error) {
	raw := strings.TrimSpace(row.Get("affinity"))
	v, err := number(raw)
	if err != nil {
		return "", fmt.Errorf("affinity %q: %w", raw, err)
	}
	if v == 0 {
		return "", nil
	}
	return fmt.Sprintf("- Affinity: %s%%", raw), nil
}

// shellingText 炮击类型写入 sharpness_text
func shellingText(row table.Row) string {
	shelling := row.Get("shelling")
	if !truthy(shelling) {
		return ""
	}
	return fmt.Sprintf("- Shelling Type: %s Lv%s", shelling, row.Get("shelling_level"))
}

func notesText(row table.Row) string {
	if notes := row.Get("notes"); truthy(notes) {
		return "- Notes: " + notes
	}
	return ""
}

func ammoText(row table.Row) string {
	if ammo := row.Get("ammo_config"); truthy(ammo) {
		return "- Ammo Configuration: " + ammo
	}
	return ""
}
