package normalize

import (
	"strconv"

	"github.com/aurceive/genshin-dashboard/internal/domain"
	"github.com/aurceive/genshin-dashboard/internal/hoyolab"
)

// Property type ids used by the aggregator for the fixed character stat panel.
const (
	PropHP       = 2000
	PropATK      = 2001
	PropDEF      = 2002
	PropEM       = 28
	PropER       = 23
	PropCR       = 20
	PropCD       = 22
	PropPhys     = 30
	PropHeal     = 26
	PropInHeal   = 27
	PropCooldown = 80
	PropShield   = 81

	propElemFirst = 40
	propElemLast  = 46

	maxSubStats   = 4
	genericStat   = "Stat"
	elemBonusName = "Elemental DMG Bonus"
)

// PropertyNames resolves property type ids through the server-supplied map.
type PropertyNames map[string]hoyolab.PropertyMeta

func (m PropertyNames) Name(propertyType int) string {
	if meta, ok := m[strconv.Itoa(propertyType)]; ok {
		if meta.Name != "" {
			return string(meta.Name)
		}
		if meta.FilterName != "" {
			return string(meta.FilterName)
		}
	}
	return genericStat
}

// CharacterDetail maps one entry of the batched character_detail response.
func CharacterDetail(d hoyolab.CharacterDetail, names PropertyNames) domain.CharacterDetailData {
	b := d.Base
	out := domain.CharacterDetailData{
		Base: domain.CharacterBase{
			ID:            characterID(b.ID),
			Name:          string(b.Name),
			Element:       domain.ParseElement(string(b.Element)),
			Rarity:        clampRarity(int(b.Rarity)),
			Level:         int(b.Level),
			Friendship:    int(b.Fetter),
			Constellation: int(b.ActivedConstellationNum),
			WeaponType:    WeaponTypeFromCode(int(b.WeaponType)),
			Icon:          string(b.Icon),
			Image:         string(b.Image),
		},
		Weapon:         weaponDetail(d.Weapon, names),
		Relics:         make([]domain.Relic, 0, len(d.Relics)),
		Constellations: make([]domain.Constellation, 0, len(d.Constellations)),
		Skills:         make([]domain.Skill, 0, len(d.Skills)),
		Properties:     Properties(d, names),
	}

	for _, r := range d.Relics {
		out.Relics = append(out.Relics, relic(r, names))
	}
	for _, c := range d.Constellations {
		out.Constellations = append(out.Constellations, domain.Constellation{
			ID:     int(c.ID),
			Name:   string(c.Name),
			Icon:   string(c.Icon),
			Effect: string(c.Effect),
			Active: bool(c.IsActived),
			Pos:    int(c.Pos),
		})
	}
	for _, s := range d.Skills {
		out.Skills = append(out.Skills, domain.Skill{
			ID:          int(s.SkillID),
			Type:        int(s.SkillType),
			Name:        string(s.Name),
			Level:       int(s.Level),
			Description: string(s.Desc),
			Icon:        string(s.Icon),
		})
	}
	return out
}

func weaponDetail(w hoyolab.DetailWeapon, names PropertyNames) domain.WeaponDetail {
	wd := domain.WeaponDetail{
		ID:           int(w.ID),
		Name:         string(w.Name),
		Icon:         string(w.Icon),
		Type:         WeaponTypeFromCode(int(w.Type)),
		Rarity:       clampRarity(int(w.Rarity)),
		Level:        int(w.Level),
		Refinement:   int(w.AffixLevel),
		PromoteLevel: int(w.PromoteLevel),
		Description:  string(w.Desc),
		MainStat:     statLine(w.MainProperty, names),
	}
	if wd.Name == "" {
		wd.Name = unknownWeapon
	}
	if w.SubProperty != nil && w.SubProperty.PropertyType != 0 {
		sub := statLine(*w.SubProperty, names)
		wd.SubStat = &sub
	}
	return wd
}

func relic(r hoyolab.DetailRelic, names PropertyNames) domain.Relic {
	out := domain.Relic{
		ID:       int(r.ID),
		Name:     string(r.Name),
		Icon:     string(r.Icon),
		Pos:      int(r.Pos),
		PosName:  string(r.PosName),
		Rarity:   clampRarity(int(r.Rarity)),
		Level:    int(r.Level),
		SetName:  string(r.Set.Name),
		MainStat: statLine(r.MainProperty, names),
		SubStats: make([]domain.SubStat, 0, maxSubStats),
	}
	for i, p := range r.SubPropertyList {
		if i == maxSubStats {
			break
		}
		sub := domain.SubStat{StatLine: statLine(p, names)}
		if p.Times != nil {
			n := int(*p.Times)
			sub.Rolls = &n
		}
		out.SubStats = append(out.SubStats, sub)
	}
	return out
}

// statLine prefers the explicit value (relic substats) and falls back to final.
func statLine(p hoyolab.RawProperty, names PropertyNames) domain.StatLine {
	v := string(p.Value)
	if v == "" {
		v = string(p.Final)
	}
	return domain.StatLine{
		Type:  int(p.PropertyType),
		Name:  names.Name(int(p.PropertyType)),
		Value: v,
	}
}

// Properties resolves the fixed stat panel. add and final come from the
// selected list with the extra list as fallback; base comes from the base list.
func Properties(d hoyolab.CharacterDetail, names PropertyNames) domain.Properties {
	prop := func(id int) domain.Property {
		return resolveProperty(d, names, id)
	}
	return domain.Properties{
		HP:       prop(PropHP),
		ATK:      prop(PropATK),
		DEF:      prop(PropDEF),
		EM:       prop(PropEM),
		ER:       prop(PropER),
		CR:       prop(PropCR),
		CD:       prop(PropCD),
		Phys:     prop(PropPhys),
		Elem:     ElementalDamage(elementalCandidates(d, names)),
		Heal:     prop(PropHeal),
		InHeal:   prop(PropInHeal),
		Cooldown: prop(PropCooldown),
		Shield:   prop(PropShield),
	}
}

func resolveProperty(d hoyolab.CharacterDetail, names PropertyNames, id int) domain.Property {
	p := domain.Property{Type: id, Name: names.Name(id), Final: "0"}
	sel, ok := findProperty(d.SelectedProperties, id)
	if !ok {
		sel, ok = findProperty(d.ExtraProperties, id)
	}
	if ok {
		p.Add = string(sel.Add)
		if sel.Final != "" {
			p.Final = string(sel.Final)
		}
	}
	if base, ok := findProperty(d.BaseProperties, id); ok {
		p.Base = string(base.Base)
	}
	return p
}

func findProperty(list []hoyolab.RawProperty, id int) (hoyolab.RawProperty, bool) {
	for _, p := range list {
		if int(p.PropertyType) == id {
			return p, true
		}
	}
	return hoyolab.RawProperty{}, false
}

func isElementalBonus(id int) bool {
	return id == PropPhys || (id >= propElemFirst && id <= propElemLast)
}

// elementalCandidates collects the damage-bonus properties from the selected
// list, then element_properties, skipping ids already seen.
func elementalCandidates(d hoyolab.CharacterDetail, names PropertyNames) []domain.Property {
	var out []domain.Property
	seen := map[int]bool{}
	for _, list := range [][]hoyolab.RawProperty{d.SelectedProperties, d.ElementProperties} {
		for _, p := range list {
			id := int(p.PropertyType)
			if !isElementalBonus(id) || seen[id] {
				continue
			}
			seen[id] = true
			final := string(p.Final)
			if final == "" {
				final = "0"
			}
			out = append(out, domain.Property{
				Type:  id,
				Name:  names.Name(id),
				Base:  string(p.Base),
				Add:   string(p.Add),
				Final: final,
			})
		}
	}
	return out
}

// ElementalDamage picks the first candidate with a positive final value, then
// the first candidate, then a zero stub. A character with several non-zero
// bonuses only reports the first one.
func ElementalDamage(candidates []domain.Property) domain.Property {
	for _, c := range candidates {
		if v, ok := hoyolab.ParseNumeric(c.Final); ok && v > 0 {
			return c
		}
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return domain.Property{Name: elemBonusName, Final: "0.0%"}
}
