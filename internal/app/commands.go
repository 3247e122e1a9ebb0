package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/aurceive/genshin-dashboard/internal/discord"
	"github.com/aurceive/genshin-dashboard/internal/domain"
	"github.com/aurceive/genshin-dashboard/internal/hoyolab"
	"github.com/aurceive/genshin-dashboard/internal/output"
	"github.com/aurceive/genshin-dashboard/internal/session"
	"github.com/aurceive/genshin-dashboard/internal/view"
)

func newLoginCmd(rt *runtime) *cobra.Command {
	var creds session.Credentials
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save the ltoken_v2/ltuid_v2 session cookies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.sess.Save(creds); err != nil {
				if errors.Is(err, session.ErrNoCredentials) {
					return configError(errors.New("both --ltoken and --ltuid are required"))
				}
				return err
			}
			fmt.Fprintln(rt.stdout, "Credentials saved")
			return nil
		},
	}
	cmd.Flags().StringVar(&creds.LToken, "ltoken", "", "ltoken_v2 cookie value")
	cmd.Flags().StringVar(&creds.LTUID, "ltuid", "", "ltuid_v2 cookie value")
	return cmd
}

func newLogoutCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget stored credentials and the cached summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.sess.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(rt.stdout, "Logged out")
			return nil
		},
	}
}

func newSummaryCmd(rt *runtime) *cobra.Command {
	var cached bool
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the player summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cached {
				sum, ok, err := rt.sess.LoadSummary()
				if err != nil {
					return err
				}
				if !ok {
					return errors.New("no cached summary (run summary without --cached first)")
				}
				output.PrintSummary(rt.stdout, sum)
				return nil
			}

			svc, err := rt.service()
			if err != nil {
				return err
			}
			d, err := svc.Overview(cmd.Context())
			if err != nil {
				return err
			}
			rt.rememberSummary(d.Summary)
			output.PrintSummary(rt.stdout, d.Summary)
			if len(d.Homes) > 0 {
				fmt.Fprintln(rt.stdout, "Serenitea Pot:")
				output.PrintHomes(rt.stdout, d.Homes)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&cached, "cached", false, "print the last saved summary without a network call")
	return cmd
}

func (rt *runtime) rememberSummary(sum domain.PlayerSummary) {
	if err := rt.sess.SaveSummary(sum); err != nil {
		log.Warn().Err(err).Msg("saving summary snapshot")
	}
}

func newRosterCmd(rt *runtime) *cobra.Command {
	var (
		element string
		rarity  int
		weapon  string
		query   string
		sortBy  string
		desc    bool
	)
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "List characters with weapons and artifact sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := view.RosterFilter{Rarity: rarity, Query: query}
			if strings.TrimSpace(element) != "" {
				e, ok := parseElement(element)
				if !ok {
					return configError(fmt.Errorf("unknown element %q", element))
				}
				filter.Element = e
			}
			if strings.TrimSpace(weapon) != "" {
				w, ok := domain.ParseWeaponType(weapon)
				if !ok {
					return configError(fmt.Errorf("unknown weapon type %q", weapon))
				}
				filter.WeaponType = w
			}
			key, err := view.ParseSortKey(sortBy)
			if err != nil {
				return configError(err)
			}

			svc, err := rt.service()
			if err != nil {
				return err
			}
			d, err := svc.Load(cmd.Context())
			if err != nil {
				return err
			}
			rt.rememberSummary(d.Summary)
			if !d.Enrich.Enriched() {
				fmt.Fprintf(rt.stderr, "WARN: detailed weapon/artifact data unavailable (%v); showing summary data\n", d.Enrich.Reason)
			}

			roster := view.SortRoster(view.FilterRoster(d.Roster, filter), key, desc)
			fmt.Fprintf(rt.stdout, "Characters: %d/%d\n", len(roster), len(d.Roster))
			output.PrintRoster(rt.stdout, roster)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&element, "element", "", "filter by element")
	f.IntVar(&rarity, "rarity", 0, "filter by rarity (4 or 5)")
	f.StringVar(&weapon, "weapon", "", "filter by weapon type")
	f.StringVar(&query, "query", "", "filter by name substring")
	f.StringVar(&sortBy, "sort", "level", "sort key (level|rarity|name|constellation|friendship|element)")
	f.BoolVar(&desc, "desc", false, "sort descending")
	return cmd
}

func parseElement(s string) (domain.Element, bool) {
	for _, e := range domain.Elements {
		if strings.EqualFold(string(e), strings.TrimSpace(s)) {
			return e, true
		}
	}
	return "", false
}

func newCharacterCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "character <id>",
		Short: "Show one character's weapon, artifacts, stats and talents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			n, err := strconv.Atoi(id)
			if err != nil || n <= 0 {
				return configError(fmt.Errorf("invalid character id %q", id))
			}
			id = strconv.Itoa(n)
			svc, err := rt.service()
			if err != nil {
				return err
			}
			acct, err := svc.Discover(cmd.Context())
			if err != nil {
				return err
			}
			d, fromCache, err := svc.CharacterDetail(cmd.Context(), acct, id)
			if err != nil {
				return err
			}
			output.PrintCharacterDetail(rt.stdout, d, fromCache)
			return nil
		},
	}
}

func newRegionsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "Show exploration progress per region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.service()
			if err != nil {
				return err
			}
			d, err := svc.Overview(cmd.Context())
			if err != nil {
				return err
			}
			output.PrintRegions(rt.stdout, view.RegionTree(d.Regions))
			return nil
		},
	}
}

func newAchievementsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "Show achievement category progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.service()
			if err != nil {
				return err
			}
			acct, err := svc.Discover(cmd.Context())
			if err != nil {
				return err
			}
			list, err := svc.Achievements(cmd.Context(), acct)
			if err != nil {
				return err
			}
			output.PrintAchievements(rt.stdout, list)
			return nil
		},
	}
}

func newAbyssCmd(rt *runtime) *cobra.Command {
	var previous bool
	cmd := &cobra.Command{
		Use:   "abyss",
		Short: "Show the Spiral Abyss record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.service()
			if err != nil {
				return err
			}
			acct, err := svc.Discover(cmd.Context())
			if err != nil {
				return err
			}
			schedule := hoyolab.ScheduleCurrent
			if previous {
				schedule = hoyolab.SchedulePrevious
			}
			a, err := svc.SpiralAbyss(cmd.Context(), acct, schedule)
			if err != nil {
				return err
			}
			output.PrintSpiralAbyss(rt.stdout, a)
			return nil
		},
	}
	cmd.Flags().BoolVar(&previous, "previous", false, "show the previous cycle")
	return cmd
}

func newTheaterCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "theater",
		Short: "Show Imaginarium Theater seasons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.service()
			if err != nil {
				return err
			}
			acct, err := svc.Discover(cmd.Context())
			if err != nil {
				return err
			}
			d, err := svc.RoleCombat(cmd.Context(), acct)
			if err != nil {
				return err
			}
			output.PrintRoleCombat(rt.stdout, d)
			return nil
		},
	}
}

func newOnslaughtCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "onslaught",
		Short: "Show Stygian Onslaught seasons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.service()
			if err != nil {
				return err
			}
			acct, err := svc.Discover(cmd.Context())
			if err != nil {
				return err
			}
			d, err := svc.HardChallenge(cmd.Context(), acct)
			if err != nil {
				return err
			}
			output.PrintHardChallenge(rt.stdout, d)
			return nil
		},
	}
}

func newExportCmd(rt *runtime) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dashboard to an .xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.service()
			if err != nil {
				return err
			}
			d, err := svc.Load(cmd.Context())
			if err != nil {
				return err
			}
			rt.rememberSummary(d.Summary)

			achievements, err := svc.Achievements(cmd.Context(), d.Account)
			if err != nil {
				log.Warn().Err(err).Msg("achievements unavailable, exporting without them")
				achievements = nil
			}

			path := strings.TrimSpace(outPath)
			if path == "" {
				path = filepath.Join(rt.cfg.Output.Dir, output.DefaultFileName(rt.now(), d.Summary))
			}
			path = filepath.Clean(path)
			if err := output.ExportDashboardXLSX(path, d, achievements); err != nil {
				return fmt.Errorf("export xlsx: %w", err)
			}
			fmt.Fprintf(rt.stdout, "Wrote %d character(s) to %s\n", len(d.Roster), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "output .xlsx path (overrides output.dir)")
	return cmd
}

func newNotifyCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "notify",
		Short: "Post the player summary to the configured Discord channel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.cfg.RequireDiscord(); err != nil {
				return configError(err)
			}
			svc, err := rt.service()
			if err != nil {
				return err
			}
			d, err := svc.Overview(cmd.Context())
			if err != nil {
				return err
			}
			rt.rememberSummary(d.Summary)

			dc, err := discord.New(rt.cfg.Discord.Token)
			if err != nil {
				return err
			}
			defer dc.Close()
			if err := dc.PostText(rt.cfg.Discord.ChannelID, output.SummaryMessage(d.Summary)); err != nil {
				return err
			}
			fmt.Fprintf(rt.stdout, "Posted summary for %s to channel %s\n", d.Summary.UID, rt.cfg.Discord.ChannelID)
			return nil
		},
	}
}
