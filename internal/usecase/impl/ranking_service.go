package impl

import (
	"context"
	"fmt"
	"math"
	"sort"

	"fellowpet/config"
	"fellowpet/internal/domain/entity"
	"fellowpet/internal/domain/repository"
	"fellowpet/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

type rankingService struct {
	feed   repository.BranchFeed
	config *config.Config
}

// NewRankingService creates a new ranking service instance
func NewRankingService(feed repository.BranchFeed, cfg *config.Config) usecase.RankingUsecase {
	// If Site is not configured, provide a default configuration
	if cfg.Site == nil {
		cfg.Site = &config.SiteConfig{
			CardLimit: 10,
		}
	}

	return &rankingService{
		feed:   feed,
		config: cfg,
	}
}

// measuredBranch pairs a branch with its distance from the caller.
type measuredBranch struct {
	service    *entity.Service
	distanceKm float64
}

// RankCards turns the flat branch set into one card per shop, nearest
// branch first. Branches without coordinates carry +Inf and therefore sort
// after every located branch, within their group and across groups. All
// sorts are stable so equal distances keep input order.
func (s *rankingService) RankCards(caller entity.GeoPoint, records []*entity.Service) []*entity.RankedCard {
	cards := make([]*entity.RankedCard, 0, len(records))
	if len(records) == 0 {
		return cards
	}

	// Group by shop name, keeping first-appearance order so cross-shop
	// distance ties stay deterministic.
	grouped := make(map[string][]measuredBranch, len(records))
	shopOrder := make([]string, 0, len(records))

	for _, record := range records {
		distanceKm := math.Inf(1)
		if record.Location != nil {
			distanceKm = haversineKm(caller, *record.Location)
		}

		if _, seen := grouped[record.ShopName]; !seen {
			shopOrder = append(shopOrder, record.ShopName)
		}
		grouped[record.ShopName] = append(grouped[record.ShopName], measuredBranch{
			service:    record,
			distanceKm: distanceKm,
		})
	}

	// Pick the closest branch per shop and attach the rest as references.
	for _, shopName := range shopOrder {
		branches := grouped[shopName]
		sort.SliceStable(branches, func(i, j int) bool {
			return branches[i].distanceKm < branches[j].distanceKm
		})

		closest := branches[0]
		otherBranchIDs := make([]string, 0, len(branches)-1)
		for _, branch := range branches[1:] {
			otherBranchIDs = append(otherBranchIDs, branch.service.ServiceID)
		}

		cards = append(cards, &entity.RankedCard{
			Service:        closest.service,
			DistanceKm:     closest.distanceKm,
			OtherBranchIDs: otherBranchIDs,
		})
	}

	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].DistanceKm < cards[j].DistanceKm
	})

	return cards
}

// NearbyCards ranks the current display-eligible snapshot and truncates it
// to the card limit. Every call is a full recomputation over a fresh
// snapshot; a newer call simply supersedes an older one.
func (s *rankingService) NearbyCards(ctx context.Context, caller entity.GeoPoint, limit int) ([]*entity.RankedCard, error) {
	branches, err := s.feed.EligibleBranches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch eligible branches: %w", err)
	}

	for _, branch := range branches {
		branch.MinPrice = branch.LowestPrice()
	}

	cards := s.RankCards(caller, branches)

	if limit <= 0 {
		limit = s.config.Site.CardLimit
	}
	if len(cards) > limit {
		cards = cards[:limit]
	}

	return cards, nil
}

// haversineKm calculates the great circle distance between two points in kilometers
func haversineKm(from, to entity.GeoPoint) float64 {
	fromPt := orb.Point{from.Longitude, from.Latitude}
	toPt := orb.Point{to.Longitude, to.Latitude}

	return geo.DistanceHaversine(fromPt, toPt) / 1000.0
}
