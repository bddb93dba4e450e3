package usecase

import (
	"context"

	"fellowpet/internal/domain/entity"
)

// RankingUsecase turns a flat set of service branches into the shop-level
// card list of the nearby listing.
type RankingUsecase interface {
	// RankCards groups branches by shop name, computes the great-circle
	// distance from caller to each branch (+Inf for branches without
	// coordinates), picks the nearest branch per shop as the card's
	// representative with the remaining branch ids attached in distance
	// order, and returns the cards sorted ascending by representative
	// distance. Ties keep input order. Pure; never fails.
	RankCards(caller entity.GeoPoint, records []*entity.Service) []*entity.RankedCard

	// NearbyCards runs RankCards over the current display-eligible branch
	// snapshot, derives each branch's minimum price, and truncates the
	// result to limit (the configured card limit when limit <= 0).
	NearbyCards(ctx context.Context, caller entity.GeoPoint, limit int) ([]*entity.RankedCard, error)
}
