package service

import (
	"errors"
	"math"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/internal/app/repository"
	"github.com/imocasa/imocasa-backend/pkg/logger"
)

const (
	similarLimit = 4

	// penalty applied per missing component so rows with unknown price,
	// surface or year sort behind fully comparable ones
	nullComponentPenalty = 1_000_000_000
)

type SimilarService interface {
	GetSimilarListings(id uuid.UUID) ([]model.Listing, error)
}

type similarService struct {
	listings repository.ListingRepository
}

func NewSimilarService(listings repository.ListingRepository) SimilarService {
	return &similarService{listings: listings}
}

// GetSimilarListings ranks active listings from the same city and category
// by closeness to the reference. Candidates in the same neighborhood are
// scored on combined price, usable-surface and construction-year distance;
// a reference without a neighborhood scores the whole city pool that way.
// When fewer than four qualify, the rest of the pool fills the gap ordered
// by price distance, then surface, then year. An unknown reference id
// yields an empty result, not an error.
func (s *similarService) GetSimilarListings(id uuid.UUID) ([]model.Listing, error) {
	reference, err := s.listings.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []model.Listing{}, nil
		}
		return nil, err
	}

	pool, err := s.listings.FindSimilarPool(reference.CityID, reference.CategoryID, reference.ID)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return []model.Listing{}, nil
	}

	var primary, rest []model.Listing
	if reference.NeighborhoodID == nil {
		primary = pool
	} else {
		for _, candidate := range pool {
			if candidate.NeighborhoodID != nil &&
				*candidate.NeighborhoodID == *reference.NeighborhoodID {
				primary = append(primary, candidate)
			} else {
				rest = append(rest, candidate)
			}
		}
	}

	sort.SliceStable(primary, func(i, j int) bool {
		return combinedScore(reference, &primary[i]) < combinedScore(reference, &primary[j])
	})

	selected := primary
	if len(selected) > similarLimit {
		selected = selected[:similarLimit]
	}

	if len(selected) < similarLimit {
		sort.SliceStable(rest, func(i, j int) bool {
			return lessByDistance(reference, &rest[i], &rest[j])
		})
		for _, candidate := range rest {
			if len(selected) == similarLimit {
				break
			}
			selected = append(selected, candidate)
		}
	}

	logger.Debug("Similar listings computed", map[string]interface{}{
		"listing_id": id,
		"pool_size":  len(pool),
		"selected":   len(selected),
	})
	return selected, nil
}

// combinedScore sums the absolute distances on price, usable surface and
// construction year. A component missing on either side contributes a
// fixed penalty instead.
func combinedScore(reference, candidate *model.Listing) float64 {
	return priceDistance(reference, candidate) +
		surfaceDistance(reference, candidate) +
		yearDistance(reference, candidate)
}

func lessByDistance(reference, a, b *model.Listing) bool {
	if pa, pb := priceDistance(reference, a), priceDistance(reference, b); pa != pb {
		return pa < pb
	}
	if sa, sb := surfaceDistance(reference, a), surfaceDistance(reference, b); sa != sb {
		return sa < sb
	}
	return yearDistance(reference, a) < yearDistance(reference, b)
}

func priceDistance(reference, candidate *model.Listing) float64 {
	return math.Abs(float64(reference.Price) - float64(candidate.Price))
}

func surfaceDistance(reference, candidate *model.Listing) float64 {
	if reference.UsableSurface == nil || candidate.UsableSurface == nil {
		return nullComponentPenalty
	}
	return math.Abs(*reference.UsableSurface - *candidate.UsableSurface)
}

func yearDistance(reference, candidate *model.Listing) float64 {
	if reference.ConstructionYear == nil || candidate.ConstructionYear == nil {
		return nullComponentPenalty
	}
	return math.Abs(float64(*reference.ConstructionYear - *candidate.ConstructionYear))
}
