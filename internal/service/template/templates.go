package template

// 模板名称
const (
	MonsterBasic      = "monster_basic"
	MonsterWeakness   = "monster_weakness"
	MonsterRewards    = "monster_rewards"
	QuestInfo         = "quest_info"
	QuestRequirements = "quest_requirements"
	ItemInfo          = "item_info"
	CraftingInfo      = "crafting_info"
	ArmorStats        = "armor_stats"
	ArmorSet          = "armor_set"
	WeaponStats       = "weapon_stats"
	WeaponCrafting    = "weapon_crafting"
	LocationInfo      = "location_info"
)

const (
	monsterSystem   = "You are a Monster Hunter World expert who provides detailed information about monsters."
	questSystem     = "You are a Monster Hunter World quest advisor."
	itemSystem      = "You are a Monster Hunter World item expert."
	craftingSystem  = "You are a Monster Hunter World crafting expert."
	equipmentSystem = "You are a Monster Hunter World equipment expert."
	weaponSystem    = "You are a Monster Hunter World weapon expert."
	locationSystem  = "You are a Monster Hunter World location expert."
)

// definitions 内置模板。crafting_info 没有格式化器使用，仅保留定义
var definitions = []Template{
	{
		Name:     MonsterBasic,
		System:   monsterSystem,
		Question: "What kind of monster is {name}?",
		Answer:   "{name} is a {species} class monster. It is classified as a {size} monster and is {elder_dragon_text}.",
	},
	{
		Name:     MonsterWeakness,
		System:   monsterSystem,
		Question: "What are {name}'s weaknesses?",
		Answer:   "{name} is most vulnerable to {element1} (★★★) and {element2} (★★) attacks. For status effects, it's particularly susceptible to {status1}.",
	},
	{
		Name:     MonsterRewards,
		System:   monsterSystem,
		Question: "What materials can I get from {name}?",
		Answer:   "From {name}, you can obtain:\n- {material1} (Common reward, {drop_rate1}%)\n- {material2} (Rare reward, {drop_rate2}%)\n- {material3} (Break reward from {body_part})\n{rare_material_text}",
	},
	{
		Name:     QuestInfo,
		System:   questSystem,
		Question: "Tell me about the quest '{name}'",
		Answer:   "'{name}' is a {rank}★ {quest_type} quest. Location: {location}. Target: {target}. Reward: {zenny}z and {reward_items}. Time limit: {time_limit} minutes. {conditions_text}",
	},
	{
		Name:     QuestRequirements,
		System:   questSystem,
		Question: "What do I need to do to unlock '{name}'?",
		Answer:   "To unlock '{name}', you need:\n- Hunter Rank {required_rank} or higher\n{prerequisites_text}\n{special_requirement_text}",
	},
	{
		Name:     ItemInfo,
		System:   itemSystem,
		Question: "What is {name} used for?",
		Answer:   "{name} is a {rarity}-star {item_type}. {description} {obtain_method}",
	},
	{
		Name:     CraftingInfo,
		System:   craftingSystem,
		Question: "How do I craft {name}?",
		Answer:   "To craft {name}, you need:\n{materials_list}\nThis recipe produces {yield} {name}{alternative_recipe_text}",
	},
	{
		Name:     ArmorStats,
		System:   equipmentSystem,
		Question: "What are the stats of {name}?",
		Answer:   "{name} ({armor_type}) has:\n- Defense: {defense}\n- Resistances:\n  * Fire: {fire_res}\n  * Water: {water_res}\n  * Thunder: {thunder_res}\n  * Ice: {ice_res}\n  * Dragon: {dragon_res}\nSkills:\n{skills_list}",
	},
	{
		Name:     ArmorSet,
		System:   equipmentSystem,
		Question: "Tell me about the {name} armor set",
		Answer:   "The {name} set consists of:\n{pieces_list}\nSet Bonus: {bonus_name} ({bonus_description})\nRequired pieces for bonus: {pieces_required}",
	},
	{
		Name:     WeaponStats,
		System:   weaponSystem,
		Question: "What are the stats of {name}?",
		Answer:   "{name} ({weapon_type}):\n- Attack: {attack}\n{element_text}\n{affinity_text}\n{sharpness_text}\n{bowgun_text}\n{bow_text}\nSlots: {slot_configuration}",
	},
	{
		Name:     WeaponCrafting,
		System:   weaponSystem,
		Question: "How do I craft {name}?",
		Answer:   "To craft {name}, you need:\n{materials_list}\nCost: {zenny}z\n{prerequisite_text}",
	},
	{
		Name:     LocationInfo,
		System:   locationSystem,
		Question: "What can I find in {name}?",
		Answer:   "{name} features:\nMonsters:\n{monsters_list}\nGathering Points:\n{gathering_points}\nCamps: {camps}",
	},
}
