// Package view holds the presentation-side derivations over the normalized
// model: roster filtering and sorting, the region tree and achievement totals.
package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aurceive/genshin-dashboard/internal/domain"
)

// RosterFilter is a conjunction; zero-valued fields match everything.
type RosterFilter struct {
	Element    domain.Element
	Rarity     int
	WeaponType domain.WeaponType
	Query      string
}

func FilterRoster(roster []domain.Character, f RosterFilter) []domain.Character {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]domain.Character, 0, len(roster))
	for _, c := range roster {
		if f.Element != "" && c.Element != f.Element {
			continue
		}
		if f.Rarity > 0 && c.Rarity != f.Rarity {
			continue
		}
		if f.WeaponType != "" && c.Weapon.Type != f.WeaponType {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(c.Name), q) {
			continue
		}
		out = append(out, c)
	}
	return out
}

type SortKey string

const (
	SortLevel         SortKey = "level"
	SortRarity        SortKey = "rarity"
	SortName          SortKey = "name"
	SortConstellation SortKey = "constellation"
	SortFriendship    SortKey = "friendship"
	SortElement       SortKey = "element"
)

var SortKeys = []SortKey{SortLevel, SortRarity, SortName, SortConstellation, SortFriendship, SortElement}

func ParseSortKey(s string) (SortKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortLevel, nil
	}
	for _, k := range SortKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

func elementIndex(e domain.Element) int {
	for i, x := range domain.Elements {
		if x == e {
			return i
		}
	}
	return len(domain.Elements)
}

// SortRoster returns a sorted copy. Ties are broken by name ascending
// regardless of desc.
func SortRoster(roster []domain.Character, key SortKey, desc bool) []domain.Character {
	out := append([]domain.Character(nil), roster...)
	cmp := func(a, b domain.Character) int {
		switch key {
		case SortRarity:
			return a.Rarity - b.Rarity
		case SortName:
			return strings.Compare(a.Name, b.Name)
		case SortConstellation:
			return a.Constellation - b.Constellation
		case SortFriendship:
			return a.Friendship - b.Friendship
		case SortElement:
			return elementIndex(a.Element) - elementIndex(b.Element)
		default:
			return a.Level - b.Level
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if c == 0 {
			return out[i].Name < out[j].Name
		}
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}
