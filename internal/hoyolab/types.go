package hoyolab

import "encoding/json"

// Raw payload shapes returned in the "data" field of each endpoint. Field names
// follow the aggregator; scalars use the lenient types from flex.go.

type AccountList struct {
	List List[GameRole] `json:"list"`
}

type GameRole struct {
	GameBiz    String `json:"game_biz"`
	Region     String `json:"region"`
	GameUID    String `json:"game_uid"`
	Nickname   String `json:"nickname"`
	Level      Int    `json:"level"`
	RegionName String `json:"region_name"`
	IsChosen   Bool   `json:"is_chosen"`
}

type DetailsData struct {
	Role              *RoleInfo              `json:"role"`
	Avatars           List[Avatar]           `json:"avatars"`
	Stats             RawStats               `json:"stats"`
	WorldExplorations List[WorldExploration] `json:"world_explorations"`
	Homes             List[RawHome]          `json:"homes"`
}

type RoleInfo struct {
	Nickname  String `json:"nickname"`
	Region    String `json:"region"`
	Level     Int    `json:"level"`
	AvatarURL String `json:"AvatarUrl"`
	GameHead  String `json:"game_head_icon"`
}

type RawStats struct {
	ActiveDayNumber      Int    `json:"active_day_number"`
	AchievementNumber    Int    `json:"achievement_number"`
	AvatarNumber         Int    `json:"avatar_number"`
	WayPointNumber       Int    `json:"way_point_number"`
	DomainNumber         Int    `json:"domain_number"`
	SpiralAbyss          String `json:"spiral_abyss"`
	AnemoculusNumber     Int    `json:"anemoculus_number"`
	GeoculusNumber       Int    `json:"geoculus_number"`
	ElectroculusNumber   Int    `json:"electroculus_number"`
	DendroculusNumber    Int    `json:"dendroculus_number"`
	HydroculusNumber     Int    `json:"hydroculus_number"`
	PyroculusNumber      Int    `json:"pyroculus_number"`
	CommonChestNumber    Int    `json:"common_chest_number"`
	ExquisiteChestNumber Int    `json:"exquisite_chest_number"`
	PreciousChestNumber  Int    `json:"precious_chest_number"`
	LuxuriousChestNumber Int    `json:"luxurious_chest_number"`
	MagicChestNumber     Int    `json:"magic_chest_number"`
}

type Avatar struct {
	ID                      Int               `json:"id"`
	Name                    String            `json:"name"`
	Element                 String            `json:"element"`
	Fetter                  Int               `json:"fetter"`
	Level                   Int               `json:"level"`
	Rarity                  Int               `json:"rarity"`
	ActivedConstellationNum Int               `json:"actived_constellation_num"`
	Icon                    String            `json:"icon"`
	Image                   String            `json:"image"`
	WeaponType              Int               `json:"weapon_type"`
	Weapon                  *AvatarWeapon     `json:"weapon"`
	Reliquaries             List[AvatarRelic] `json:"reliquaries"`
}

type AvatarWeapon struct {
	ID         Int    `json:"id"`
	Name       String `json:"name"`
	Icon       String `json:"icon"`
	Type       Int    `json:"type"`
	Rarity     Int    `json:"rarity"`
	Level      Int    `json:"level"`
	AffixLevel Int    `json:"affix_level"`
}

type AvatarRelic struct {
	ID     Int      `json:"id"`
	Name   String   `json:"name"`
	Pos    Int      `json:"pos"`
	Rarity Int      `json:"rarity"`
	Level  Int      `json:"level"`
	Set    RelicSet `json:"set"`
}

type RelicSet struct {
	ID   Int    `json:"id"`
	Name String `json:"name"`
}

type WorldExploration struct {
	ID                    Int                   `json:"id"`
	ParentID              Int                   `json:"parent_id"`
	Name                  String                `json:"name"`
	Level                 Int                   `json:"level"`
	ExplorationPercentage Float                 `json:"exploration_percentage"`
	Icon                  String                `json:"icon"`
	InnerIcon             String                `json:"inner_icon"`
	BackgroundImage       String                `json:"background_image"`
	Cover                 String                `json:"cover"`
	Type                  String                `json:"type"`
	Offerings             List[RawOffering]     `json:"offerings"`
	AreaExplorationList   List[AreaExploration] `json:"area_exploration_list"`
	BossList              List[RawBoss]         `json:"boss_list"`
	SevenStatus           *RawOffering          `json:"seven_status"`
	// Some seasons report reputation separately from "level".
	ReputationLevel    Int `json:"reputation_level"`
	MaxReputationLevel Int `json:"max_reputation_level"`
	StatueLevel        Int `json:"statue_level"`
}

type RawOffering struct {
	Name  String `json:"name"`
	Level Int    `json:"level"`
	Icon  String `json:"icon"`
}

type AreaExploration struct {
	Name                  String `json:"name"`
	ExplorationPercentage Float  `json:"exploration_percentage"`
}

type RawBoss struct {
	Name    String `json:"name"`
	KillNum Int    `json:"kill_num"`
}

type RawHome struct {
	Level            Int    `json:"level"`
	VisitNum         Int    `json:"visit_num"`
	ComfortNum       Int    `json:"comfort_num"`
	ItemNum          Int    `json:"item_num"`
	Name             String `json:"name"`
	Icon             String `json:"icon"`
	ComfortLevelName String `json:"comfort_level_name"`
}

type AchievementList struct {
	List List[RawAchievement] `json:"list"`
}

type RawAchievement struct {
	ID          Int    `json:"id"`
	Name        String `json:"name"`
	Percentage  Int    `json:"percentage"`
	FinishNum   Int    `json:"finish_num"`
	ShowPercent Bool   `json:"show_percent"`
	Icon        String `json:"icon"`
}

// CharacterDetailBatch is the response of the batched character_detail call.
type CharacterDetailBatch struct {
	List        List[CharacterDetail] `json:"list"`
	PropertyMap Map[PropertyMeta]     `json:"property_map"`
}

type PropertyMeta struct {
	PropertyType Int    `json:"property_type"`
	Name         String `json:"name"`
	Icon         String `json:"icon"`
	FilterName   String `json:"filter_name"`
}

type CharacterDetail struct {
	Base               Avatar                 `json:"base"`
	Weapon             DetailWeapon           `json:"weapon"`
	Relics             List[DetailRelic]      `json:"relics"`
	Constellations     List[RawConstellation] `json:"constellations"`
	Skills             List[RawSkill]         `json:"skills"`
	SelectedProperties List[RawProperty]      `json:"selected_properties"`
	BaseProperties     List[RawProperty]      `json:"base_properties"`
	ExtraProperties    List[RawProperty]      `json:"extra_properties"`
	ElementProperties  List[RawProperty]      `json:"element_properties"`
}

type DetailWeapon struct {
	ID           Int          `json:"id"`
	Name         String       `json:"name"`
	Icon         String       `json:"icon"`
	Type         Int          `json:"type"`
	Rarity       Int          `json:"rarity"`
	Level        Int          `json:"level"`
	AffixLevel   Int          `json:"affix_level"`
	PromoteLevel Int          `json:"promote_level"`
	TypeName     String       `json:"type_name"`
	Desc         String       `json:"desc"`
	MainProperty RawProperty  `json:"main_property"`
	SubProperty  *RawProperty `json:"sub_property"`
}

type DetailRelic struct {
	ID              Int               `json:"id"`
	Name            String            `json:"name"`
	Icon            String            `json:"icon"`
	Pos             Int               `json:"pos"`
	PosName         String            `json:"pos_name"`
	Rarity          Int               `json:"rarity"`
	Level           Int               `json:"level"`
	Set             RelicSet          `json:"set"`
	MainProperty    RawProperty       `json:"main_property"`
	SubPropertyList List[RawProperty] `json:"sub_property_list"`
}

type RawConstellation struct {
	ID        Int    `json:"id"`
	Name      String `json:"name"`
	Icon      String `json:"icon"`
	Effect    String `json:"effect"`
	IsActived Bool   `json:"is_actived"`
	Pos       Int    `json:"pos"`
}

type RawSkill struct {
	SkillID   Int    `json:"skill_id"`
	SkillType Int    `json:"skill_type"`
	Level     Int    `json:"level"`
	Desc      String `json:"desc"`
	Name      String `json:"name"`
	Icon      String `json:"icon"`
}

// RawProperty is shared by character stats, weapon stats and relic stats. Relic
// substats use Value and Times; everything else uses Base/Add/Final.
type RawProperty struct {
	PropertyType Int    `json:"property_type"`
	Base         String `json:"base"`
	Add          String `json:"add"`
	Final        String `json:"final"`
	Value        String `json:"value"`
	Times        *Int   `json:"times"`
}

type SpiralAbyss struct {
	ScheduleID       Int             `json:"schedule_id"`
	StartTime        String          `json:"start_time"`
	EndTime          String          `json:"end_time"`
	TotalBattleTimes Int             `json:"total_battle_times"`
	TotalWinTimes    Int             `json:"total_win_times"`
	MaxFloor         String          `json:"max_floor"`
	TotalStar        Int             `json:"total_star"`
	IsUnlock         Bool            `json:"is_unlock"`
	RevealRank       List[RankItem]  `json:"reveal_rank"`
	DefeatRank       List[RankItem]  `json:"defeat_rank"`
	DamageRank       List[RankItem]  `json:"damage_rank"`
	TakeDamageRank   List[RankItem]  `json:"take_damage_rank"`
	NormalSkillRank  List[RankItem]  `json:"normal_skill_rank"`
	EnergySkillRank  List[RankItem]  `json:"energy_skill_rank"`
	Floors           json.RawMessage `json:"floors"`
}

type RankItem struct {
	AvatarID   Int    `json:"avatar_id"`
	AvatarIcon String `json:"avatar_icon"`
	Value      Int    `json:"value"`
	Rarity     Int    `json:"rarity"`
}

type Schedule struct {
	ScheduleID String `json:"schedule_id"`
	StartTime  String `json:"start_time"`
	EndTime    String `json:"end_time"`
	Name       String `json:"name"`
	IsValid    Bool   `json:"is_valid"`
}

type RoleCombat struct {
	Data     List[RoleCombatEntry] `json:"data"`
	IsUnlock Bool                  `json:"is_unlock"`
}

type RoleCombatEntry struct {
	Detail        json.RawMessage `json:"detail"`
	Stat          RoleCombatStat  `json:"stat"`
	Schedule      Schedule        `json:"schedule"`
	HasData       Bool            `json:"has_data"`
	HasDetailData Bool            `json:"has_detail_data"`
}

type RoleCombatStat struct {
	DifficultyID   Int `json:"difficulty_id"`
	MaxRoundID     Int `json:"max_round_id"`
	Heraldry       Int `json:"heraldry"`
	MedalNum       Int `json:"medal_num"`
	CoinNum        Int `json:"coin_num"`
	AvatarBonusNum Int `json:"avatar_bonus_num"`
	RentCnt        Int `json:"rent_cnt"`
}

type HardChallenge struct {
	Data     List[HardChallengeEntry] `json:"data"`
	IsUnlock Bool                     `json:"is_unlock"`
}

type HardChallengeEntry struct {
	Schedule Schedule          `json:"schedule"`
	Single   HardChallengeMode `json:"single"`
	Mp       json.RawMessage   `json:"mp"`
}

type HardChallengeMode struct {
	Best      *HardChallengeBest `json:"best"`
	Challenge json.RawMessage    `json:"challenge"`
	HasData   Bool               `json:"has_data"`
}

type HardChallengeBest struct {
	Difficulty Int    `json:"difficulty"`
	Second     Int    `json:"second"`
	Icon       String `json:"icon"`
}
