// Package account loads a player's dashboard through the gateway, normalizes
// it and keeps character details in the detail cache.
package account

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/aurceive/genshin-dashboard/internal/detailcache"
	"github.com/aurceive/genshin-dashboard/internal/domain"
	"github.com/aurceive/genshin-dashboard/internal/hoyolab"
	"github.com/aurceive/genshin-dashboard/internal/normalize"
)

const DefaultEnrichTimeout = 20 * time.Second

var (
	ErrNoGenshinAccount  = errors.New("no Genshin Impact account linked to these credentials")
	ErrCharacterNotFound = errors.New("character not found")
)

// Gateway is the subset of the HoYoLab client the service needs.
type Gateway interface {
	Accounts(ctx context.Context) (hoyolab.AccountList, error)
	Details(ctx context.Context, server, roleID string) (hoyolab.DetailsData, error)
	Achievements(ctx context.Context, server, roleID string) (hoyolab.AchievementList, error)
	CharacterDetails(ctx context.Context, server, roleID string, characterIDs []string) (hoyolab.CharacterDetailBatch, error)
	SpiralAbyss(ctx context.Context, server, roleID string, schedule hoyolab.ScheduleType) (hoyolab.SpiralAbyss, error)
	HardChallenge(ctx context.Context, server, roleID string) (hoyolab.HardChallenge, error)
	RoleCombat(ctx context.Context, server, roleID string) (hoyolab.RoleCombat, error)
}

type Service struct {
	gw            Gateway
	details       *detailcache.CharacterDetails
	enrichTimeout time.Duration
}

type Option func(*Service)

func WithEnrichTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.enrichTimeout = d
		}
	}
}

func New(gw Gateway, details *detailcache.CharacterDetails, opts ...Option) *Service {
	s := &Service{gw: gw, details: details, enrichTimeout: DefaultEnrichTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Discover returns the first Genshin account bound to the credentials.
// Gateway errors are returned as is so the aggregator message reaches the user.
func (s *Service) Discover(ctx context.Context) (domain.GameAccount, error) {
	list, err := s.gw.Accounts(ctx)
	if err != nil {
		return domain.GameAccount{}, err
	}
	for _, r := range list.List {
		if normalize.IsGenshin(r) && r.GameUID != "" {
			return normalize.Account(r), nil
		}
	}
	return domain.GameAccount{}, ErrNoGenshinAccount
}

// Overview is Load without roster enrichment: the roster holds phase-1 values
// and Dashboard.Enrich is left as EnrichOutcomeSkipped.
func (s *Service) Overview(ctx context.Context) (domain.Dashboard, error) {
	acct, err := s.Discover(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}

	details, err := s.gw.Details(ctx, acct.Server, acct.UID)
	if err != nil {
		return domain.Dashboard{}, err
	}

	roster := normalize.Roster(details.Avatars)
	return domain.Dashboard{
		Account: acct,
		Summary: normalize.Summary(acct, details),
		Roster:  roster,
		Regions: normalize.Regions(details.WorldExplorations),
		Homes:   normalize.Homes(details.Homes),
		Enrich:  domain.EnrichResult{Roster: roster},
	}, nil
}

// Load runs the full account fetch. Roster enrichment is best effort: its
// failure is recorded in Dashboard.Enrich and never fails Load.
func (s *Service) Load(ctx context.Context) (domain.Dashboard, error) {
	d, err := s.Overview(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}
	acct := d.Account

	d.Enrich = s.EnrichRoster(ctx, acct, d.Roster)
	d.Roster = d.Enrich.Roster

	log.Info().
		Str("uid", acct.UID).
		Str("server", acct.Server).
		Int("characters", len(d.Roster)).
		Int("regions", len(d.Regions)).
		Str("enrich", d.Enrich.Outcome.String()).
		Msg("dashboard loaded")
	return d, nil
}

// EnrichRoster issues the batched character_detail call and overlays weapon and
// artifact data. It can be called again on its own to retry. Any error yields a
// Fallback result carrying the phase-1 roster.
func (s *Service) EnrichRoster(ctx context.Context, acct domain.GameAccount, roster []domain.Character) domain.EnrichResult {
	if len(roster) == 0 {
		return domain.EnrichResult{Roster: roster, Outcome: domain.EnrichOutcomeEnriched}
	}

	ctx, cancel := context.WithTimeout(ctx, s.enrichTimeout)
	defer cancel()

	ids := make([]string, 0, len(roster))
	for _, c := range roster {
		ids = append(ids, c.ID)
	}

	batch, err := s.gw.CharacterDetails(ctx, acct.Server, acct.UID, ids)
	if err != nil {
		log.Warn().Err(err).Str("uid", acct.UID).Int("characters", len(ids)).Msg("roster enrichment failed, keeping summary data")
		return domain.EnrichResult{Roster: roster, Outcome: domain.EnrichOutcomeFallback, Reason: err}
	}

	merged, matched := normalize.MergeRosterDetails(roster, batch)
	s.seedCache(acct, batch)

	log.Debug().Str("uid", acct.UID).Int("matched", matched).Int("total", len(roster)).Msg("roster enriched")
	return domain.EnrichResult{Roster: merged, Outcome: domain.EnrichOutcomeEnriched, Matched: matched}
}

func (s *Service) seedCache(acct domain.GameAccount, batch hoyolab.CharacterDetailBatch) {
	if s.details == nil {
		return
	}
	names := normalize.PropertyNames(batch.PropertyMap)
	for _, raw := range batch.List {
		d := normalize.CharacterDetail(raw, names)
		if err := s.details.Put(acct.UID, d.Base.ID, d); err != nil {
			log.Warn().Err(err).Str("character", d.Base.ID).Msg("cache write failed")
		}
	}
}

// CharacterDetail returns the cached detail when fresh, otherwise fetches and
// caches it. fromCache reports which path was taken. Numeric ids are
// canonicalised, so "010000046" and "10000046" share a cache entry.
func (s *Service) CharacterDetail(ctx context.Context, acct domain.GameAccount, characterID string) (detail domain.CharacterDetailData, fromCache bool, err error) {
	characterID = strings.TrimSpace(characterID)
	if n, convErr := strconv.Atoi(characterID); convErr == nil {
		characterID = strconv.Itoa(n)
	}
	if s.details != nil {
		if d, ok := s.details.Get(acct.UID, characterID); ok {
			return d, true, nil
		}
	}

	batch, err := s.gw.CharacterDetails(ctx, acct.Server, acct.UID, []string{characterID})
	if err != nil {
		return domain.CharacterDetailData{}, false, err
	}

	names := normalize.PropertyNames(batch.PropertyMap)
	for _, raw := range batch.List {
		d := normalize.CharacterDetail(raw, names)
		if d.Base.ID != characterID {
			continue
		}
		if s.details != nil {
			if err := s.details.Put(acct.UID, characterID, d); err != nil {
				log.Warn().Err(err).Str("character", characterID).Msg("cache write failed")
			}
		}
		return d, false, nil
	}
	return domain.CharacterDetailData{}, false, fmt.Errorf("%w: %s", ErrCharacterNotFound, characterID)
}

func (s *Service) Achievements(ctx context.Context, acct domain.GameAccount) ([]domain.Achievement, error) {
	raw, err := s.gw.Achievements(ctx, acct.Server, acct.UID)
	if err != nil {
		return nil, err
	}
	return normalize.Achievements(raw), nil
}

func (s *Service) SpiralAbyss(ctx context.Context, acct domain.GameAccount, schedule hoyolab.ScheduleType) (domain.SpiralAbyssData, error) {
	raw, err := s.gw.SpiralAbyss(ctx, acct.Server, acct.UID, schedule)
	if err != nil {
		return domain.SpiralAbyssData{}, err
	}
	return normalize.SpiralAbyss(raw), nil
}

func (s *Service) RoleCombat(ctx context.Context, acct domain.GameAccount) (domain.RoleCombatData, error) {
	raw, err := s.gw.RoleCombat(ctx, acct.Server, acct.UID)
	if err != nil {
		return domain.RoleCombatData{}, err
	}
	return normalize.RoleCombat(raw), nil
}

func (s *Service) HardChallenge(ctx context.Context, acct domain.GameAccount) (domain.HardChallengeData, error) {
	raw, err := s.gw.HardChallenge(ctx, acct.Server, acct.UID)
	if err != nil {
		return domain.HardChallengeData{}, err
	}
	return normalize.HardChallenge(raw), nil
}
