package entity

// RankedCard is one shop-level card of the nearby listing. It wraps the
// nearest branch of a shop and references the shop's remaining branches.
type RankedCard struct {
	// Service is the representative (nearest) branch of the shop.
	Service *Service

	// DistanceKm is the great-circle distance from the caller to the
	// representative branch, in kilometers. Branches without coordinates
	// carry +Inf so they always sort last.
	DistanceKm float64

	// OtherBranchIDs lists the shop's remaining branch ids, ordered by
	// increasing distance from the caller.
	OtherBranchIDs []string
}
