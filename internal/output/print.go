package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/aurceive/genshin-dashboard/internal/domain"
	"github.com/aurceive/genshin-dashboard/internal/view"
)

func PrintSummary(w io.Writer, s domain.PlayerSummary) {
	fmt.Fprintf(w, "%s (AR %d) uid=%s server=%s\n", s.Nickname, s.AdventureRank, s.UID, s.Server)
	st := s.Stats
	fmt.Fprintf(w, "  active days:   %d\n", st.ActiveDays)
	fmt.Fprintf(w, "  achievements:  %d\n", st.Achievements)
	fmt.Fprintf(w, "  characters:    %d\n", st.CharactersObtained)
	fmt.Fprintf(w, "  spiral abyss:  %s\n", dash(st.SpiralAbyss))
	fmt.Fprintf(w, "  waypoints:     %d, domains: %d\n", st.Waypoints, st.Domains)
	o := st.Oculi
	fmt.Fprintf(w, "  oculi:         %d (anemo=%d geo=%d electro=%d dendro=%d hydro=%d pyro=%d)\n",
		st.OculiCollected, o.Anemo, o.Geo, o.Electro, o.Dendro, o.Hydro, o.Pyro)
	c := st.Chests
	fmt.Fprintf(w, "  chests:        %d (common=%d exquisite=%d precious=%d luxurious=%d remarkable=%d)\n",
		st.ChestsOpened, c.Common, c.Exquisite, c.Precious, c.Luxurious, c.Remarkable)
}

// SummaryMessage is the short form posted to chat.
func SummaryMessage(s domain.PlayerSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** (AR %d, %s)\n", s.Nickname, s.AdventureRank, s.Server)
	fmt.Fprintf(&b, "Days active: %d | Achievements: %d | Characters: %d\n",
		s.Stats.ActiveDays, s.Stats.Achievements, s.Stats.CharactersObtained)
	fmt.Fprintf(&b, "Spiral Abyss: %s | Oculi: %d | Chests: %d",
		dash(s.Stats.SpiralAbyss), s.Stats.OculiCollected, s.Stats.ChestsOpened)
	return b.String()
}

func PrintRoster(w io.Writer, roster []domain.Character) {
	if len(roster) == 0 {
		fmt.Fprintln(w, "No characters")
		return
	}
	for _, c := range roster {
		sets := make([]string, 0, len(c.ArtifactSets))
		for _, s := range c.ArtifactSets {
			sets = append(sets, fmt.Sprintf("%dpc %s", s.Pieces, s.Name))
		}
		setsStr := ""
		if len(sets) > 0 {
			setsStr = " [" + strings.Join(sets, ", ") + "]"
		}
		fmt.Fprintf(w, "- %s %d* %s lv%d C%d f%d: %s (%d*, lv%d, %s)%s\n",
			c.Name, c.Rarity, c.Element, c.Level, c.Constellation, c.Friendship,
			c.Weapon.Name, c.Weapon.Rarity, c.Weapon.Level, c.Weapon.Type, setsStr)
	}
}

func PrintRegions(w io.Writer, tree []view.RegionNode) {
	if len(tree) == 0 {
		fmt.Fprintln(w, "No regions")
		return
	}
	view.WalkRegions(tree, func(n view.RegionNode, depth int) {
		printRegion(w, n, strings.Repeat("    ", depth))
	})
}

func printRegion(w io.Writer, n view.RegionNode, indent string) {
	r := n.Region
	fmt.Fprintf(w, "%s- %s [%s] %.1f%%", indent, r.Name, r.Element, n.DisplayExploration)
	if r.Reputation > 0 {
		fmt.Fprintf(w, " rep %d", r.Reputation)
		if r.ReputationMax > 0 {
			fmt.Fprintf(w, "/%d", r.ReputationMax)
		}
	}
	if r.StatueLevel > 0 {
		fmt.Fprintf(w, " statue %d", r.StatueLevel)
	}
	for _, o := range r.Offerings {
		fmt.Fprintf(w, " %s %d", o.Name, o.Level)
	}
	fmt.Fprintln(w)
}

func PrintHomes(w io.Writer, homes []domain.Home) {
	for _, h := range homes {
		fmt.Fprintf(w, "- %s lv%d comfort=%d (%s) items=%d visits=%d\n",
			h.Name, h.Level, h.Comfort, h.ComfortLevelName, h.Items, h.Visits)
	}
}

func PrintAchievements(w io.Writer, list []domain.Achievement) {
	done, total := view.AchievementProgress(list)
	fmt.Fprintf(w, "Categories completed: %d/%d\n", done, total)
	for _, a := range list {
		mark := " "
		if a.Complete() {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s] %s: %d%% (%d)\n", mark, a.Name, a.Percentage, a.FinishNum)
	}
}

func PrintCharacterDetail(w io.Writer, d domain.CharacterDetailData, fromCache bool) {
	b := d.Base
	src := "live"
	if fromCache {
		src = "cached"
	}
	fmt.Fprintf(w, "%s %d* %s lv%d C%d f%d (%s)\n", b.Name, b.Rarity, b.Element, b.Level, b.Constellation, b.Friendship, src)

	wd := d.Weapon
	fmt.Fprintf(w, "Weapon: %s r%d lv%d %s: %s %s", wd.Name, wd.Refinement, wd.Level, wd.Type, wd.MainStat.Name, wd.MainStat.Value)
	if wd.SubStat != nil {
		fmt.Fprintf(w, ", %s %s", wd.SubStat.Name, wd.SubStat.Value)
	}
	fmt.Fprintln(w)

	p := d.Properties
	fmt.Fprintln(w, "Stats:")
	for _, prop := range []domain.Property{p.HP, p.ATK, p.DEF, p.EM, p.ER, p.CR, p.CD, p.Elem, p.Phys, p.Heal, p.InHeal, p.Cooldown, p.Shield} {
		line := fmt.Sprintf("  %-22s %s", prop.Name, prop.Final)
		if prop.Base != "" || prop.Add != "" {
			line += fmt.Sprintf(" (%s + %s)", dash(prop.Base), dash(prop.Add))
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w, "Artifacts:")
	for _, r := range d.Relics {
		subs := make([]string, 0, len(r.SubStats))
		for _, s := range r.SubStats {
			txt := s.Name + " " + s.Value
			if s.Rolls != nil && *s.Rolls > 0 {
				txt += fmt.Sprintf(" (+%d)", *s.Rolls)
			}
			subs = append(subs, txt)
		}
		fmt.Fprintf(w, "  %s %s +%d: %s %s | %s\n", dash(r.PosName), r.SetName, r.Level, r.MainStat.Name, r.MainStat.Value, strings.Join(subs, ", "))
	}

	fmt.Fprintln(w, "Talents:")
	for _, s := range d.Skills {
		fmt.Fprintf(w, "  %s lv%d\n", s.Name, s.Level)
	}

	active := 0
	for _, c := range d.Constellations {
		if c.Active {
			active++
		}
	}
	fmt.Fprintf(w, "Constellations: %d/%d active\n", active, len(d.Constellations))
}

func PrintSpiralAbyss(w io.Writer, a domain.SpiralAbyssData) {
	if !a.IsUnlock {
		fmt.Fprintln(w, "Spiral Abyss locked")
		return
	}
	fmt.Fprintf(w, "Spiral Abyss #%d (%s - %s)\n", a.ScheduleID, dash(a.StartTime), dash(a.EndTime))
	fmt.Fprintf(w, "  deepest: %s, stars: %d, battles: %d/%d won\n", dash(a.MaxFloor), a.TotalStar, a.TotalWinTimes, a.TotalBattleTimes)
	printRank(w, "most used", a.RevealRank)
	printRank(w, "strongest hit", a.DamageRank)
	printRank(w, "most defeats", a.DefeatRank)
}

func printRank(w io.Writer, label string, items []domain.AbyssRankItem) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s: avatar %d (%d)\n", label, items[0].AvatarID, items[0].Value)
}

func PrintRoleCombat(w io.Writer, d domain.RoleCombatData) {
	if !d.IsUnlock {
		fmt.Fprintln(w, "Imaginarium Theater locked")
		return
	}
	for _, s := range d.Seasons {
		if !s.HasData {
			fmt.Fprintf(w, "- %s: no data\n", seasonName(s.Schedule))
			continue
		}
		fmt.Fprintf(w, "- %s: difficulty %d, round %d, medals %d\n", seasonName(s.Schedule), s.DifficultyID, s.MaxRoundID, s.MedalNum)
	}
}

func PrintHardChallenge(w io.Writer, d domain.HardChallengeData) {
	if !d.IsUnlock {
		fmt.Fprintln(w, "Stygian Onslaught locked")
		return
	}
	for _, s := range d.Seasons {
		if !s.HasData {
			fmt.Fprintf(w, "- %s: no data\n", seasonName(s.Schedule))
			continue
		}
		fmt.Fprintf(w, "- %s: difficulty %d, best %ds\n", seasonName(s.Schedule), s.Best.Difficulty, s.Best.Seconds)
	}
}

func seasonName(s domain.ChallengeSchedule) string {
	if s.Name != "" {
		return s.Name
	}
	return "season " + dash(s.ScheduleID)
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
