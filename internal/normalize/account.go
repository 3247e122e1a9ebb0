package normalize

import (
	"strings"

	"github.com/aurceive/genshin-dashboard/internal/domain"
	"github.com/aurceive/genshin-dashboard/internal/hoyolab"
)

// IsGenshin reports whether a game role belongs to Genshin Impact.
func IsGenshin(r hoyolab.GameRole) bool {
	return strings.HasPrefix(string(r.GameBiz), "hk4e")
}

func Account(r hoyolab.GameRole) domain.GameAccount {
	code := string(r.Region)
	name := string(r.RegionName)
	if known := ServerName(code); known != code || name == "" {
		name = known
	}
	return domain.GameAccount{
		UID:        strings.TrimSpace(string(r.GameUID)),
		Server:     code,
		ServerName: name,
		Nickname:   string(r.Nickname),
		Level:      int(r.Level),
		GameBiz:    string(r.GameBiz),
	}
}

// Summary builds the player header from the discovered account and the details
// payload. Role info, when present, wins over the account list values.
func Summary(acct domain.GameAccount, d hoyolab.DetailsData) domain.PlayerSummary {
	s := domain.PlayerSummary{
		Nickname:      acct.Nickname,
		UID:           acct.UID,
		Server:        ServerName(acct.Server),
		AdventureRank: acct.Level,
		Stats:         Stats(d.Stats),
	}
	if r := d.Role; r != nil {
		if r.Nickname != "" {
			s.Nickname = string(r.Nickname)
		}
		if r.Level > 0 {
			s.AdventureRank = int(r.Level)
		}
		s.Icon = string(r.GameHead)
		if s.Icon == "" {
			s.Icon = string(r.AvatarURL)
		}
	}
	return s
}

func Stats(r hoyolab.RawStats) domain.Stats {
	oculi := domain.Oculi{
		Anemo:   int(r.AnemoculusNumber),
		Geo:     int(r.GeoculusNumber),
		Electro: int(r.ElectroculusNumber),
		Dendro:  int(r.DendroculusNumber),
		Hydro:   int(r.HydroculusNumber),
		Pyro:    int(r.PyroculusNumber),
	}
	chests := domain.Chests{
		Common:     int(r.CommonChestNumber),
		Exquisite:  int(r.ExquisiteChestNumber),
		Precious:   int(r.PreciousChestNumber),
		Luxurious:  int(r.LuxuriousChestNumber),
		Remarkable: int(r.MagicChestNumber),
	}
	return domain.Stats{
		ActiveDays:         int(r.ActiveDayNumber),
		Achievements:       int(r.AchievementNumber),
		CharactersObtained: int(r.AvatarNumber),
		SpiralAbyss:        string(r.SpiralAbyss),
		Waypoints:          int(r.WayPointNumber),
		Domains:            int(r.DomainNumber),
		OculiCollected:     oculi.Total(),
		Oculi:              oculi,
		ChestsOpened:       chests.Total(),
		Chests:             chests,
	}
}
