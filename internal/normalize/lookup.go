// Package normalize maps raw aggregator payloads onto the domain model.
//
// Every function here is pure. Malformed nested values degrade to zero values,
// "" or "Unknown"; nothing in this package returns an error.
package normalize

import (
	"strings"

	"github.com/aurceive/genshin-dashboard/internal/domain"
)

var serverNames = map[string]string{
	"os_usa":  "America",
	"os_euro": "Europe",
	"os_asia": "Asia",
	"os_cht":  "TW, HK, MO",
}

// ServerName returns the display name for a technical server code. Unknown
// codes are returned unchanged.
func ServerName(code string) string {
	if name, ok := serverNames[code]; ok {
		return name
	}
	return code
}

// ServerCode is the inverse of ServerName.
func ServerCode(name string) string {
	for code, n := range serverNames {
		if n == name {
			return code
		}
	}
	return name
}

var weaponTypeByCode = map[int]domain.WeaponType{
	1:  domain.WeaponSword,
	10: domain.WeaponCatalyst,
	11: domain.WeaponClaymore,
	12: domain.WeaponBow,
	13: domain.WeaponPolearm,
}

// WeaponTypeFromCode maps the aggregator's numeric weapon type. Unknown codes
// fall back to Sword.
func WeaponTypeFromCode(code int) domain.WeaponType {
	if wt, ok := weaponTypeByCode[code]; ok {
		return wt
	}
	return domain.WeaponSword
}

// Порядок важен: первое совпадение выигрывает.
var regionElements = []struct {
	fragment string
	element  domain.Element
}{
	{"Mondstadt", domain.ElementAnemo},
	{"Liyue", domain.ElementGeo},
	{"Inazuma", domain.ElementElectro},
	{"Sumeru", domain.ElementDendro},
	{"Fontaine", domain.ElementHydro},
	{"Natlan", domain.ElementPyro},
	{"Snezhnaya", domain.ElementCryo},
}

// RegionElement infers a region's element from its display name.
func RegionElement(name string) domain.Element {
	for _, re := range regionElements {
		if strings.Contains(name, re.fragment) {
			return re.element
		}
	}
	return domain.Elements[0]
}

func clampRarity(r int) int {
	if r > 5 {
		return 5
	}
	if r < 0 {
		return 0
	}
	return r
}
