package normalize

import (
	"strconv"

	"github.com/aurceive/genshin-dashboard/internal/domain"
	"github.com/aurceive/genshin-dashboard/internal/hoyolab"
)

const unknownWeapon = "Unknown"

// Roster builds the phase-1 roster from the details avatar list. Characters
// listed without a weapon get a placeholder typed from the avatar itself.
func Roster(avatars []hoyolab.Avatar) []domain.Character {
	out := make([]domain.Character, 0, len(avatars))
	for _, a := range avatars {
		c := domain.Character{
			ID:            characterID(a.ID),
			Name:          string(a.Name),
			Element:       domain.ParseElement(string(a.Element)),
			Rarity:        clampRarity(int(a.Rarity)),
			Level:         int(a.Level),
			Friendship:    int(a.Fetter),
			Constellation: int(a.ActivedConstellationNum),
			Icon:          string(a.Icon),
			ArtifactSets:  []domain.ArtifactSet{},
		}
		if w := a.Weapon; w != nil && (w.ID != 0 || w.Name != "") {
			c.Weapon = domain.WeaponSummary{
				Name:   string(a.Weapon.Name),
				Rarity: clampRarity(int(a.Weapon.Rarity)),
				Level:  int(a.Weapon.Level),
				Type:   WeaponTypeFromCode(int(a.Weapon.Type)),
			}
		} else {
			c.Weapon = placeholderWeapon(int(a.WeaponType))
		}
		if len(a.Reliquaries) > 0 {
			names := make([]string, 0, len(a.Reliquaries))
			for _, r := range a.Reliquaries {
				names = append(names, string(r.Set.Name))
			}
			c.ArtifactSets = artifactSets(names)
		}
		out = append(out, c)
	}
	return out
}

func placeholderWeapon(weaponType int) domain.WeaponSummary {
	return domain.WeaponSummary{
		Name:   unknownWeapon,
		Rarity: 1,
		Level:  1,
		Type:   WeaponTypeFromCode(weaponType),
	}
}

// MergeRosterDetails overlays weapon and artifact data from a batched detail
// response. The result always has len(roster) entries in the same order;
// characters missing from the batch keep their phase-1 values. roster itself is
// left untouched.
func MergeRosterDetails(roster []domain.Character, batch hoyolab.CharacterDetailBatch) ([]domain.Character, int) {
	byID := make(map[string]hoyolab.CharacterDetail, len(batch.List))
	for _, d := range batch.List {
		byID[characterID(d.Base.ID)] = d
	}

	merged := make([]domain.Character, len(roster))
	matched := 0
	for i, c := range roster {
		c.ArtifactSets = append([]domain.ArtifactSet(nil), c.ArtifactSets...)
		d, ok := byID[c.ID]
		if !ok {
			merged[i] = c
			continue
		}
		matched++

		w := d.Weapon
		c.Weapon = domain.WeaponSummary{
			Name:   string(w.Name),
			Rarity: clampRarity(int(w.Rarity)),
			Level:  int(w.Level),
			Type:   WeaponTypeFromCode(int(w.Type)),
		}
		if c.Weapon.Name == "" {
			c.Weapon.Name = unknownWeapon
		}

		names := make([]string, 0, len(d.Relics))
		for _, r := range d.Relics {
			names = append(names, string(r.Set.Name))
		}
		c.ArtifactSets = artifactSets(names)
		merged[i] = c
	}
	return merged, matched
}

// artifactSets counts pieces per set name, keeping first-seen order.
func artifactSets(setNames []string) []domain.ArtifactSet {
	sets := []domain.ArtifactSet{}
	index := map[string]int{}
	for _, name := range setNames {
		if name == "" {
			continue
		}
		if i, ok := index[name]; ok {
			sets[i].Pieces++
			continue
		}
		index[name] = len(sets)
		sets = append(sets, domain.ArtifactSet{Name: name, Pieces: 1})
	}
	return sets
}

func characterID(id hoyolab.Int) string {
	return strconv.Itoa(int(id))
}
