package domain

// CharacterDetailData is the per-character deep view. It is cached as JSON, so
// every field must round-trip through encoding/json.
type CharacterDetailData struct {
	Base           CharacterBase   `json:"base"`
	Weapon         WeaponDetail    `json:"weapon"`
	Relics         []Relic         `json:"relics"`
	Constellations []Constellation `json:"constellations"`
	Skills         []Skill         `json:"skills"`
	Properties     Properties      `json:"properties"`
}

type CharacterBase struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Element       Element    `json:"element"`
	Rarity        int        `json:"rarity"`
	Level         int        `json:"level"`
	Friendship    int        `json:"friendship"`
	Constellation int        `json:"constellation"`
	WeaponType    WeaponType `json:"weaponType"`
	Icon          string     `json:"icon"`
	Image         string     `json:"image"`
}

type StatLine struct {
	Type  int    `json:"type"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

type WeaponDetail struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Icon         string     `json:"icon"`
	Type         WeaponType `json:"type"`
	Rarity       int        `json:"rarity"`
	Level        int        `json:"level"`
	Refinement   int        `json:"refinement"`
	PromoteLevel int        `json:"promoteLevel"`
	Description  string     `json:"description"`
	MainStat     StatLine   `json:"mainStat"`
	SubStat      *StatLine  `json:"subStat,omitempty"`
}

// SubStat carries the roll count when the aggregator reports it.
type SubStat struct {
	StatLine
	Rolls *int `json:"rolls,omitempty"`
}

type Relic struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Icon     string    `json:"icon"`
	Pos      int       `json:"pos"`
	PosName  string    `json:"posName"`
	Rarity   int       `json:"rarity"`
	Level    int       `json:"level"`
	SetName  string    `json:"setName"`
	MainStat StatLine  `json:"mainStat"`
	SubStats []SubStat `json:"subStats"`
}

type Constellation struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Effect string `json:"effect"`
	Active bool   `json:"active"`
	Pos    int    `json:"pos"`
}

type Skill struct {
	ID          int    `json:"id"`
	Type        int    `json:"type"`
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Property values are kept as the aggregator formats them ("15552", "46.6%").
type Property struct {
	Type  int    `json:"type"`
	Name  string `json:"name"`
	Base  string `json:"base"`
	Add   string `json:"add"`
	Final string `json:"final"`
}

type Properties struct {
	HP       Property `json:"hp"`
	ATK      Property `json:"atk"`
	DEF      Property `json:"def"`
	EM       Property `json:"em"`
	ER       Property `json:"er"`
	CR       Property `json:"cr"`
	CD       Property `json:"cd"`
	Phys     Property `json:"phys"`
	Elem     Property `json:"elem"`
	Heal     Property `json:"heal"`
	InHeal   Property `json:"inHeal"`
	Cooldown Property `json:"cooldown"`
	Shield   Property `json:"shield"`
}
