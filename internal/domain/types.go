package domain

import (
	"encoding/json"
	"strings"
)

type Element string

const (
	ElementAnemo   Element = "Anemo"
	ElementGeo     Element = "Geo"
	ElementElectro Element = "Electro"
	ElementDendro  Element = "Dendro"
	ElementHydro   Element = "Hydro"
	ElementPyro    Element = "Pyro"
	ElementCryo    Element = "Cryo"
)

// Elements lists every element in display order. The first entry is the
// fallback for unknown values.
var Elements = []Element{
	ElementAnemo,
	ElementGeo,
	ElementElectro,
	ElementDendro,
	ElementHydro,
	ElementPyro,
	ElementCryo,
}

// ParseElement matches case-insensitively and falls back to Anemo.
func ParseElement(s string) Element {
	s = strings.TrimSpace(s)
	for _, e := range Elements {
		if strings.EqualFold(string(e), s) {
			return e
		}
	}
	return Elements[0]
}

type WeaponType string

const (
	WeaponSword    WeaponType = "Sword"
	WeaponClaymore WeaponType = "Claymore"
	WeaponPolearm  WeaponType = "Polearm"
	WeaponBow      WeaponType = "Bow"
	WeaponCatalyst WeaponType = "Catalyst"
)

var WeaponTypes = []WeaponType{
	WeaponSword,
	WeaponClaymore,
	WeaponPolearm,
	WeaponBow,
	WeaponCatalyst,
}

// ParseWeaponType returns ok=false for unknown names so filters can reject them.
func ParseWeaponType(s string) (WeaponType, bool) {
	s = strings.TrimSpace(s)
	for _, w := range WeaponTypes {
		if strings.EqualFold(string(w), s) {
			return w, true
		}
	}
	return WeaponTypes[0], false
}

type GameAccount struct {
	UID        string `json:"uid"`
	Server     string `json:"server"`
	ServerName string `json:"serverName"`
	Nickname   string `json:"nickname"`
	Level      int    `json:"level"`
	GameBiz    string `json:"gameBiz"`
}

type PlayerSummary struct {
	Nickname      string `json:"nickname"`
	UID           string `json:"uid"`
	Server        string `json:"server"`
	AdventureRank int    `json:"adventureRank"`
	Icon          string `json:"icon"`
	Stats         Stats  `json:"stats"`
}

type Stats struct {
	ActiveDays         int    `json:"activeDays"`
	Achievements       int    `json:"achievements"`
	CharactersObtained int    `json:"charactersObtained"`
	SpiralAbyss        string `json:"spiralAbyss"`
	Waypoints          int    `json:"waypoints"`
	Domains            int    `json:"domains"`
	OculiCollected     int    `json:"oculiCollected"`
	Oculi              Oculi  `json:"oculi"`
	ChestsOpened       int    `json:"chestsOpened"`
	Chests             Chests `json:"chests"`
}

type Oculi struct {
	Anemo   int `json:"anemo"`
	Geo     int `json:"geo"`
	Electro int `json:"electro"`
	Dendro  int `json:"dendro"`
	Hydro   int `json:"hydro"`
	Pyro    int `json:"pyro"`
}

func (o Oculi) Total() int {
	return o.Anemo + o.Geo + o.Electro + o.Dendro + o.Hydro + o.Pyro
}

type Chests struct {
	Common     int `json:"common"`
	Exquisite  int `json:"exquisite"`
	Precious   int `json:"precious"`
	Luxurious  int `json:"luxurious"`
	Remarkable int `json:"remarkable"`
}

func (c Chests) Total() int {
	return c.Common + c.Exquisite + c.Precious + c.Luxurious + c.Remarkable
}

type WeaponSummary struct {
	Name   string     `json:"name"`
	Rarity int        `json:"rarity"`
	Level  int        `json:"level"`
	Type   WeaponType `json:"type"`
}

type ArtifactSet struct {
	Name   string `json:"name"`
	Pieces int    `json:"pieces"`
}

// Character is a roster entry. Weapon and ArtifactSets may hold placeholder
// values until the roster is enriched with the batch detail call.
type Character struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Element       Element       `json:"element"`
	Rarity        int           `json:"rarity"`
	Level         int           `json:"level"`
	Friendship    int           `json:"friendship"`
	Constellation int           `json:"constellation"`
	Icon          string        `json:"icon"`
	Weapon        WeaponSummary `json:"weapon"`
	ArtifactSets  []ArtifactSet `json:"artifactSets"`
}

type Region struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	Element       Element     `json:"element"`
	Exploration   float64     `json:"exploration"`
	Reputation    int         `json:"reputation"`
	ReputationMax int         `json:"reputationMax"`
	StatueLevel   int         `json:"statueLevel"`
	Offerings     []Offering  `json:"offerings"`
	SubRegions    []SubRegion `json:"subRegions"`
	Bosses        []Boss      `json:"bosses"`
	ParentID      int         `json:"parentId"`
	Image         string      `json:"image"`
	Icon          string      `json:"icon"`
}

type Offering struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Icon  string `json:"icon"`
}

type SubRegion struct {
	Name        string  `json:"name"`
	Exploration float64 `json:"exploration"`
}

type Boss struct {
	Name  string `json:"name"`
	Kills int    `json:"kills"`
}

type Home struct {
	Name             string `json:"name"`
	Level            int    `json:"level"`
	Visits           int    `json:"visits"`
	Comfort          int    `json:"comfort"`
	ComfortLevelName string `json:"comfortLevelName"`
	Items            int    `json:"items"`
	Icon             string `json:"icon"`
}

type Achievement struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Percentage  int    `json:"percentage"`
	FinishNum   int    `json:"finishNum"`
	ShowPercent bool   `json:"showPercent"`
	Icon        string `json:"icon"`
}

func (a Achievement) Complete() bool {
	return a.Percentage >= 100
}

// Dashboard is everything a full account load produces.
type Dashboard struct {
	Account GameAccount   `json:"account"`
	Summary PlayerSummary `json:"summary"`
	Roster  []Character   `json:"roster"`
	Regions []Region      `json:"regions"`
	Homes   []Home        `json:"homes"`
	Enrich  EnrichResult  `json:"-"`
}

type EnrichOutcome int

// The zero value means enrichment was not attempted.
const (
	EnrichOutcomeSkipped EnrichOutcome = iota
	EnrichOutcomeEnriched
	EnrichOutcomeFallback
)

func (o EnrichOutcome) String() string {
	switch o {
	case EnrichOutcomeSkipped:
		return "skipped"
	case EnrichOutcomeEnriched:
		return "enriched"
	case EnrichOutcomeFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// EnrichResult reports which path the best-effort roster enrichment took.
// On fallback Roster is the phase-1 roster and Reason holds the swallowed error.
type EnrichResult struct {
	Roster  []Character
	Outcome EnrichOutcome
	Matched int
	Reason  error
}

func (r EnrichResult) Enriched() bool {
	return r.Outcome == EnrichOutcomeEnriched
}

// Challenge-mode payloads are kept close to the aggregator shape; only the
// fields the printers read are typed.

type AbyssRankItem struct {
	AvatarID   int    `json:"avatarId"`
	AvatarIcon string `json:"avatarIcon"`
	Value      int    `json:"value"`
	Rarity     int    `json:"rarity"`
}

type SpiralAbyssData struct {
	ScheduleID       int             `json:"scheduleId"`
	StartTime        string          `json:"startTime"`
	EndTime          string          `json:"endTime"`
	TotalBattleTimes int             `json:"totalBattleTimes"`
	TotalWinTimes    int             `json:"totalWinTimes"`
	MaxFloor         string          `json:"maxFloor"`
	TotalStar        int             `json:"totalStar"`
	IsUnlock         bool            `json:"isUnlock"`
	RevealRank       []AbyssRankItem `json:"revealRank"`
	DefeatRank       []AbyssRankItem `json:"defeatRank"`
	DamageRank       []AbyssRankItem `json:"damageRank"`
	TakeDamageRank   []AbyssRankItem `json:"takeDamageRank"`
	NormalSkillRank  []AbyssRankItem `json:"normalSkillRank"`
	EnergySkillRank  []AbyssRankItem `json:"energySkillRank"`
	Floors           json.RawMessage `json:"floors,omitempty"`
}

type ChallengeSchedule struct {
	ScheduleID string `json:"scheduleId"`
	Name       string `json:"name"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	IsValid    bool   `json:"isValid"`
}

type RoleCombatSeason struct {
	Schedule       ChallengeSchedule `json:"schedule"`
	HasData        bool              `json:"hasData"`
	HasDetailData  bool              `json:"hasDetailData"`
	DifficultyID   int               `json:"difficultyId"`
	MaxRoundID     int               `json:"maxRoundId"`
	Heraldry       int               `json:"heraldry"`
	MedalNum       int               `json:"medalNum"`
	CoinNum        int               `json:"coinNum"`
	AvatarBonusNum int               `json:"avatarBonusNum"`
	RentCount      int               `json:"rentCount"`
	Detail         json.RawMessage   `json:"detail,omitempty"`
}

type RoleCombatData struct {
	IsUnlock bool               `json:"isUnlock"`
	Seasons  []RoleCombatSeason `json:"seasons"`
}

type HardChallengeBest struct {
	Difficulty int    `json:"difficulty"`
	Seconds    int    `json:"seconds"`
	Icon       string `json:"icon"`
}

type HardChallengeSeason struct {
	Schedule  ChallengeSchedule `json:"schedule"`
	HasData   bool              `json:"hasData"`
	Best      HardChallengeBest `json:"best"`
	Challenge json.RawMessage   `json:"challenge,omitempty"`
	Multi     json.RawMessage   `json:"multi,omitempty"`
}

type HardChallengeData struct {
	IsUnlock bool                  `json:"isUnlock"`
	Seasons  []HardChallengeSeason `json:"seasons"`
}
