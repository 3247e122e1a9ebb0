package output

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/aurceive/genshin-dashboard/internal/domain"
	"github.com/aurceive/genshin-dashboard/internal/view"
)

const (
	sheetSummary      = "Summary"
	sheetRoster       = "Roster"
	sheetRegions      = "Regions"
	sheetAchievements = "Achievements"
)

func colName(n int) string {
	// 1-indexed: 1 -> A, 26 -> Z, 27 -> AA
	if n <= 0 {
		return ""
	}
	out := ""
	for n > 0 {
		n--
		out = string(rune('A'+(n%26))) + out
		n /= 26
	}
	return out
}

func cell(col, row int) string {
	return fmt.Sprintf("%s%d", colName(col), row)
}

var unsafeFileChars = regexp.MustCompile(`[^\p{L}\p{N}_-]+`)

// DefaultFileName is <yyyymmdd>_<nickname>.xlsx, falling back to the uid when
// the nickname has no file-safe characters.
func DefaultFileName(now time.Time, s domain.PlayerSummary) string {
	name := strings.Trim(unsafeFileChars.ReplaceAllString(s.Nickname, "_"), "_")
	if name == "" {
		name = s.UID
	}
	if name == "" {
		name = "dashboard"
	}
	return fmt.Sprintf("%s_%s.xlsx", now.Format("20060102"), name)
}

// ExportDashboardXLSX writes the loaded dashboard to path, creating parent
// directories as needed.
func ExportDashboardXLSX(path string, d domain.Dashboard, achievements []domain.Achievement) error {
	f := excelize.NewFile()
	defer f.Close()

	_ = f.SetSheetName("Sheet1", sheetSummary)
	for _, s := range []string{sheetRoster, sheetRegions, sheetAchievements} {
		if _, err := f.NewSheet(s); err != nil {
			return err
		}
	}

	headerStyleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	// 1.0 => 100%
	pctStyleID, err := f.NewStyle(&excelize.Style{NumFmt: 10})
	if err != nil {
		return err
	}

	if err := writeSummarySheet(f, d.Summary, headerStyleID); err != nil {
		return err
	}
	if err := writeRosterSheet(f, d.Roster, headerStyleID); err != nil {
		return err
	}
	if err := writeRegionsSheet(f, d.Regions, headerStyleID, pctStyleID); err != nil {
		return err
	}
	if err := writeAchievementsSheet(f, achievements, headerStyleID, pctStyleID); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func writeHeader(f *excelize.File, sheet string, styleID int, headers ...string) error {
	for i, h := range headers {
		if err := f.SetCellValue(sheet, cell(i+1, 1), h); err != nil {
			return err
		}
	}
	return f.SetCellStyle(sheet, "A1", cell(len(headers), 1), styleID)
}

func writeSummarySheet(f *excelize.File, s domain.PlayerSummary, headerStyleID int) error {
	if err := writeHeader(f, sheetSummary, headerStyleID, "Field", "Value"); err != nil {
		return err
	}
	st := s.Stats
	rows := [][2]any{
		{"Nickname", s.Nickname},
		{"UID", s.UID},
		{"Server", s.Server},
		{"Adventure Rank", s.AdventureRank},
		{"Active Days", st.ActiveDays},
		{"Achievements", st.Achievements},
		{"Characters", st.CharactersObtained},
		{"Spiral Abyss", st.SpiralAbyss},
		{"Waypoints", st.Waypoints},
		{"Domains", st.Domains},
		{"Oculi", st.OculiCollected},
		{"Anemoculi", st.Oculi.Anemo},
		{"Geoculi", st.Oculi.Geo},
		{"Electroculi", st.Oculi.Electro},
		{"Dendroculi", st.Oculi.Dendro},
		{"Hydroculi", st.Oculi.Hydro},
		{"Pyroculi", st.Oculi.Pyro},
		{"Chests", st.ChestsOpened},
		{"Common Chests", st.Chests.Common},
		{"Exquisite Chests", st.Chests.Exquisite},
		{"Precious Chests", st.Chests.Precious},
		{"Luxurious Chests", st.Chests.Luxurious},
		{"Remarkable Chests", st.Chests.Remarkable},
	}
	for i, r := range rows {
		row := i + 2
		_ = f.SetCellValue(sheetSummary, cell(1, row), r[0])
		_ = f.SetCellValue(sheetSummary, cell(2, row), r[1])
	}
	return f.SetColWidth(sheetSummary, "A", "B", 20)
}

func writeRosterSheet(f *excelize.File, roster []domain.Character, headerStyleID int) error {
	headers := []string{"ID", "Name", "Element", "Rarity", "Level", "Friendship", "Constellation", "Weapon", "Weapon Type", "Weapon Rarity", "Weapon Level", "Artifact Sets"}
	if err := writeHeader(f, sheetRoster, headerStyleID, headers...); err != nil {
		return err
	}
	for i, c := range roster {
		row := i + 2
		sets := make([]string, 0, len(c.ArtifactSets))
		for _, s := range c.ArtifactSets {
			sets = append(sets, fmt.Sprintf("%s (%d)", s.Name, s.Pieces))
		}
		values := []any{c.ID, c.Name, string(c.Element), c.Rarity, c.Level, c.Friendship, c.Constellation,
			c.Weapon.Name, string(c.Weapon.Type), c.Weapon.Rarity, c.Weapon.Level, strings.Join(sets, ", ")}
		for j, v := range values {
			_ = f.SetCellValue(sheetRoster, cell(j+1, row), v)
		}
	}
	if err := f.SetColWidth(sheetRoster, "B", "B", 18); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetRoster, "H", "H", 28); err != nil {
		return err
	}
	return f.SetColWidth(sheetRoster, "L", "L", 48)
}

func writeRegionsSheet(f *excelize.File, regions []domain.Region, headerStyleID, pctStyleID int) error {
	headers := []string{"Region", "Parent", "Element", "Exploration", "Reputation", "Statue", "Offerings"}
	if err := writeHeader(f, sheetRegions, headerStyleID, headers...); err != nil {
		return err
	}
	names := make(map[int]string, len(regions))
	for _, r := range regions {
		names[r.ID] = r.Name
	}

	row := 2
	view.WalkRegions(view.RegionTree(regions), func(node view.RegionNode, _ int) {
		r := node.Region
		offerings := make([]string, 0, len(r.Offerings))
		for _, o := range r.Offerings {
			offerings = append(offerings, fmt.Sprintf("%s %d", o.Name, o.Level))
		}
		_ = f.SetCellValue(sheetRegions, cell(1, row), r.Name)
		_ = f.SetCellValue(sheetRegions, cell(2, row), names[r.ParentID])
		_ = f.SetCellValue(sheetRegions, cell(3, row), string(r.Element))
		_ = f.SetCellValue(sheetRegions, cell(4, row), node.DisplayExploration/100)
		_ = f.SetCellValue(sheetRegions, cell(5, row), r.Reputation)
		_ = f.SetCellValue(sheetRegions, cell(6, row), r.StatueLevel)
		_ = f.SetCellValue(sheetRegions, cell(7, row), strings.Join(offerings, ", "))
		row++
	})
	if row > 2 {
		if err := f.SetCellStyle(sheetRegions, "D2", fmt.Sprintf("D%d", row-1), pctStyleID); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheetRegions, "A", "B", 30)
}

func writeAchievementsSheet(f *excelize.File, list []domain.Achievement, headerStyleID, pctStyleID int) error {
	if err := writeHeader(f, sheetAchievements, headerStyleID, "Category", "Progress", "Finished"); err != nil {
		return err
	}
	for i, a := range list {
		row := i + 2
		_ = f.SetCellValue(sheetAchievements, cell(1, row), a.Name)
		_ = f.SetCellValue(sheetAchievements, cell(2, row), float64(a.Percentage)/100)
		_ = f.SetCellValue(sheetAchievements, cell(3, row), a.FinishNum)
	}
	if len(list) > 0 {
		if err := f.SetCellStyle(sheetAchievements, "B2", fmt.Sprintf("B%d", len(list)+1), pctStyleID); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheetAchievements, "A", "A", 36)
}
