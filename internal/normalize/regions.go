package normalize

import (
	"math"

	"github.com/aurceive/genshin-dashboard/internal/domain"
	"github.com/aurceive/genshin-dashboard/internal/hoyolab"
)

// ExplorationPercent converts the aggregator's per-mille value to percent.
func ExplorationPercent(raw float64) float64 {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0
	}
	return raw / 10
}

func Regions(raw []hoyolab.WorldExploration) []domain.Region {
	out := make([]domain.Region, 0, len(raw))
	for _, w := range raw {
		r := domain.Region{
			ID:            int(w.ID),
			Name:          string(w.Name),
			Element:       RegionElement(string(w.Name)),
			Exploration:   ExplorationPercent(float64(w.ExplorationPercentage)),
			Reputation:    int(w.Level),
			ReputationMax: int(w.MaxReputationLevel),
			StatueLevel:   int(w.StatueLevel),
			Offerings:     []domain.Offering{},
			SubRegions:    []domain.SubRegion{},
			Bosses:        []domain.Boss{},
			ParentID:      int(w.ParentID),
			Image:         string(w.BackgroundImage),
			Icon:          string(w.Icon),
		}
		if w.ReputationLevel > 0 {
			r.Reputation = int(w.ReputationLevel)
		}
		if r.Image == "" {
			r.Image = string(w.Cover)
		}
		if w.SevenStatus != nil && r.StatueLevel == 0 {
			r.StatueLevel = int(w.SevenStatus.Level)
		}
		for _, o := range w.Offerings {
			r.Offerings = append(r.Offerings, domain.Offering{
				Name:  string(o.Name),
				Level: int(o.Level),
				Icon:  string(o.Icon),
			})
		}
		for _, a := range w.AreaExplorationList {
			r.SubRegions = append(r.SubRegions, domain.SubRegion{
				Name:        string(a.Name),
				Exploration: ExplorationPercent(float64(a.ExplorationPercentage)),
			})
		}
		for _, b := range w.BossList {
			r.Bosses = append(r.Bosses, domain.Boss{Name: string(b.Name), Kills: int(b.KillNum)})
		}
		out = append(out, r)
	}
	return out
}

func Homes(raw []hoyolab.RawHome) []domain.Home {
	out := make([]domain.Home, 0, len(raw))
	for _, h := range raw {
		out = append(out, domain.Home{
			Name:             string(h.Name),
			Level:            int(h.Level),
			Visits:           int(h.VisitNum),
			Comfort:          int(h.ComfortNum),
			ComfortLevelName: string(h.ComfortLevelName),
			Items:            int(h.ItemNum),
			Icon:             string(h.Icon),
		})
	}
	return out
}

func Achievements(raw hoyolab.AchievementList) []domain.Achievement {
	out := make([]domain.Achievement, 0, len(raw.List))
	for _, a := range raw.List {
		pct := int(a.Percentage)
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		out = append(out, domain.Achievement{
			ID:          int(a.ID),
			Name:        string(a.Name),
			Percentage:  pct,
			FinishNum:   int(a.FinishNum),
			ShowPercent: bool(a.ShowPercent),
			Icon:        string(a.Icon),
		})
	}
	return out
}
