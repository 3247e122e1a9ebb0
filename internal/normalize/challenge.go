package normalize

import (
	"github.com/aurceive/genshin-dashboard/internal/domain"
	"github.com/aurceive/genshin-dashboard/internal/hoyolab"
)

// Challenge modes are mapped shallowly: top-level counters are typed, per-floor
// and per-round detail stays raw JSON.

func SpiralAbyss(r hoyolab.SpiralAbyss) domain.SpiralAbyssData {
	return domain.SpiralAbyssData{
		ScheduleID:       int(r.ScheduleID),
		StartTime:        string(r.StartTime),
		EndTime:          string(r.EndTime),
		TotalBattleTimes: int(r.TotalBattleTimes),
		TotalWinTimes:    int(r.TotalWinTimes),
		MaxFloor:         string(r.MaxFloor),
		TotalStar:        int(r.TotalStar),
		IsUnlock:         bool(r.IsUnlock),
		RevealRank:       rankItems(r.RevealRank),
		DefeatRank:       rankItems(r.DefeatRank),
		DamageRank:       rankItems(r.DamageRank),
		TakeDamageRank:   rankItems(r.TakeDamageRank),
		NormalSkillRank:  rankItems(r.NormalSkillRank),
		EnergySkillRank:  rankItems(r.EnergySkillRank),
		Floors:           r.Floors,
	}
}

func rankItems(raw []hoyolab.RankItem) []domain.AbyssRankItem {
	out := make([]domain.AbyssRankItem, 0, len(raw))
	for _, it := range raw {
		out = append(out, domain.AbyssRankItem{
			AvatarID:   int(it.AvatarID),
			AvatarIcon: string(it.AvatarIcon),
			Value:      int(it.Value),
			Rarity:     clampRarity(int(it.Rarity)),
		})
	}
	return out
}

func schedule(s hoyolab.Schedule) domain.ChallengeSchedule {
	return domain.ChallengeSchedule{
		ScheduleID: string(s.ScheduleID),
		Name:       string(s.Name),
		StartTime:  string(s.StartTime),
		EndTime:    string(s.EndTime),
		IsValid:    bool(s.IsValid),
	}
}

func RoleCombat(r hoyolab.RoleCombat) domain.RoleCombatData {
	out := domain.RoleCombatData{
		IsUnlock: bool(r.IsUnlock),
		Seasons:  make([]domain.RoleCombatSeason, 0, len(r.Data)),
	}
	for _, e := range r.Data {
		out.Seasons = append(out.Seasons, domain.RoleCombatSeason{
			Schedule:       schedule(e.Schedule),
			HasData:        bool(e.HasData),
			HasDetailData:  bool(e.HasDetailData),
			DifficultyID:   int(e.Stat.DifficultyID),
			MaxRoundID:     int(e.Stat.MaxRoundID),
			Heraldry:       int(e.Stat.Heraldry),
			MedalNum:       int(e.Stat.MedalNum),
			CoinNum:        int(e.Stat.CoinNum),
			AvatarBonusNum: int(e.Stat.AvatarBonusNum),
			RentCount:      int(e.Stat.RentCnt),
			Detail:         e.Detail,
		})
	}
	return out
}

func HardChallenge(r hoyolab.HardChallenge) domain.HardChallengeData {
	out := domain.HardChallengeData{
		IsUnlock: bool(r.IsUnlock),
		Seasons:  make([]domain.HardChallengeSeason, 0, len(r.Data)),
	}
	for _, e := range r.Data {
		s := domain.HardChallengeSeason{
			Schedule:  schedule(e.Schedule),
			HasData:   bool(e.Single.HasData),
			Challenge: e.Single.Challenge,
			Multi:     e.Mp,
		}
		if b := e.Single.Best; b != nil {
			s.Best = domain.HardChallengeBest{
				Difficulty: int(b.Difficulty),
				Seconds:    int(b.Second),
				Icon:       string(b.Icon),
			}
		}
		out.Seasons = append(out.Seasons, s)
	}
	return out
}
