package view_test

import (
	"testing"

	"github.com/aurceive/genshin-dashboard/internal/domain"
	"github.com/aurceive/genshin-dashboard/internal/view"
)

func sampleRoster() []domain.Character {
	return []domain.Character{
		{ID: "1", Name: "Hu Tao", Element: domain.ElementPyro, Rarity: 5, Level: 90, Constellation: 1, Weapon: domain.WeaponSummary{Type: domain.WeaponPolearm}},
		{ID: "2", Name: "Bennett", Element: domain.ElementPyro, Rarity: 4, Level: 80, Constellation: 6, Weapon: domain.WeaponSummary{Type: domain.WeaponSword}},
		{ID: "3", Name: "Xiangling", Element: domain.ElementPyro, Rarity: 4, Level: 90, Constellation: 6, Weapon: domain.WeaponSummary{Type: domain.WeaponPolearm}},
		{ID: "4", Name: "Furina", Element: domain.ElementHydro, Rarity: 5, Level: 90, Weapon: domain.WeaponSummary{Type: domain.WeaponSword}},
	}
}

func TestFilterRoster(t *testing.T) {
	r := sampleRoster()
	got := view.FilterRoster(r, view.RosterFilter{Element: domain.ElementPyro, WeaponType: domain.WeaponPolearm})
	if len(got) != 2 || got[0].Name != "Hu Tao" || got[1].Name != "Xiangling" {
		t.Fatalf("unexpected filter result %#v", got)
	}
	got = view.FilterRoster(r, view.RosterFilter{Rarity: 5, Query: "fur"})
	if len(got) != 1 || got[0].Name != "Furina" {
		t.Fatalf("unexpected filter result %#v", got)
	}
	if got := view.FilterRoster(r, view.RosterFilter{}); len(got) != 4 {
		t.Fatalf("expected empty filter to match all, got %d", len(got))
	}
}

func TestSortRoster_TiesByName(t *testing.T) {
	r := sampleRoster()
	got := view.SortRoster(r, view.SortLevel, true)
	want := []string{"Furina", "Hu Tao", "Xiangling", "Bennett"}
	for i := range want {
		if got[i].Name != want[i] {
			t.Fatalf("expected[%d]=%q, got %q", i, want[i], got[i].Name)
		}
	}
	if r[0].Name != "Hu Tao" {
		t.Fatalf("expected input untouched")
	}

	got = view.SortRoster(r, view.SortElement, false)
	if got[0].Element != domain.ElementHydro {
		t.Fatalf("expected Hydro before Pyro in element order, got %s", got[0].Element)
	}
}

func TestParseSortKey(t *testing.T) {
	if k, err := view.ParseSortKey(""); err != nil || k != view.SortLevel {
		t.Fatalf("expected default level, got %q %v", k, err)
	}
	if _, err := view.ParseSortKey("power"); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestRegionTree_ContainerMean(t *testing.T) {
	regions := []domain.Region{
		{ID: 1, Name: "Mondstadt", Exploration: 100},
		{ID: 9, Name: "The Chasm", Exploration: 0},
		{ID: 10, Name: "Chasm Surface", ParentID: 9, Exploration: 100},
		{ID: 11, Name: "Chasm Underground", ParentID: 9, Exploration: 80},
		{ID: 12, Name: "Orphan", ParentID: 77, Exploration: 40},
	}
	tree := view.RegionTree(regions)
	if len(tree) != 3 {
		t.Fatalf("expected 3 roots, got %d", len(tree))
	}
	chasm := tree[1]
	if len(chasm.Children) != 2 || chasm.DisplayExploration != 90 {
		t.Fatalf("expected container mean 90, got %#v", chasm)
	}
	if chasm.Region.Exploration != 0 {
		t.Fatalf("expected underlying region value unchanged")
	}
	if tree[0].DisplayExploration != 100 || tree[2].Region.Name != "Orphan" {
		t.Fatalf("unexpected roots %#v", tree)
	}
}

func TestRegionTree_DeepChainAndCycleKeepEveryRegion(t *testing.T) {
	regions := []domain.Region{
		{ID: 2, Name: "Liyue", Exploration: 0},
		{ID: 9, Name: "The Chasm", ParentID: 2, Exploration: 0},
		{ID: 10, Name: "Mines", ParentID: 9, Exploration: 60},
		{ID: 20, Name: "X", ParentID: 21, Exploration: 10},
		{ID: 21, Name: "Y", ParentID: 20, Exploration: 30},
	}
	tree := view.RegionTree(regions)

	seen := map[int]int{}
	depths := map[int]int{}
	view.WalkRegions(tree, func(n view.RegionNode, depth int) {
		seen[n.Region.ID]++
		depths[n.Region.ID] = depth
	})
	if len(seen) != len(regions) {
		t.Fatalf("expected %d regions in tree, got %d (%v)", len(regions), len(seen), seen)
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("expected region %d exactly once, got %d", id, n)
		}
	}
	if depths[10] != 2 {
		t.Fatalf("expected Mines at depth 2, got %d", depths[10])
	}
	if tree[0].DisplayExploration != 60 || tree[0].Children[0].DisplayExploration != 60 {
		t.Fatalf("expected nested container means of 60, got %#v", tree[0])
	}
	if len(tree) != 2 || tree[1].Region.ID != 20 || len(tree[1].Children) != 1 || tree[1].Children[0].Region.ID != 21 {
		t.Fatalf("expected cycle promoted to one root, got %#v", tree)
	}
}

func TestAchievementProgress(t *testing.T) {
	done, total := view.AchievementProgress([]domain.Achievement{{Percentage: 100}, {Percentage: 99}, {Percentage: 100}})
	if done != 2 || total != 3 {
		t.Fatalf("expected 2/3, got %d/%d", done, total)
	}
}
