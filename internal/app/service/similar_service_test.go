package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imocasa/imocasa-backend/internal/app/model"
)

func (env *listingTestEnv) seedListing(t *testing.T, title string, price uint, hood *uint, usable *float64, year *int) *model.Listing {
	t.Helper()
	listing := &model.Listing{
		Title:          title,
		Description:    "test",
		Price:          price,
		UserID:         env.user.ID,
		CountyID:       env.county.ID,
		CityID:         env.city.ID,
		NeighborhoodID: hood,
		CategoryID:     env.apartments.ID,
		Status:         model.StatusActive,
		IsActiveByUser: true,
		UsableSurface:  usable,
		ConstructionYear: year,
		Slug:           "slug-" + uuid.NewString(),
	}
	require.NoError(t, env.db.Create(listing).Error)
	return listing
}

func TestSimilarService_UnknownReferenceYieldsEmpty(t *testing.T) {
	env := setupListingTest(t)
	svc := NewSimilarService(env.listings)

	similar, err := svc.GetSimilarListings(uuid.New())
	require.NoError(t, err)
	assert.Empty(t, similar)
}

func TestSimilarService_NeighborhoodFirstByCombinedScore(t *testing.T) {
	env := setupListingTest(t)
	svc := NewSimilarService(env.listings)

	reference := env.seedListing(t, "Referință", 100000, &env.hood.ID, f64Ptr(60), intPtr(2010))

	// same neighborhood, increasing combined distance
	close1 := env.seedListing(t, "Aproape 1", 100500, &env.hood.ID, f64Ptr(61), intPtr(2010))
	close2 := env.seedListing(t, "Aproape 2", 102000, &env.hood.ID, f64Ptr(65), intPtr(2012))
	far := env.seedListing(t, "Departe", 150000, &env.hood.ID, f64Ptr(120), intPtr(1980))

	similar, err := svc.GetSimilarListings(reference.ID)
	require.NoError(t, err)
	require.Len(t, similar, 3)
	assert.Equal(t, close1.ID, similar[0].ID)
	assert.Equal(t, close2.ID, similar[1].ID)
	assert.Equal(t, far.ID, similar[2].ID)
}

func TestSimilarService_FallbackFillsFromCityPool(t *testing.T) {
	env := setupListingTest(t)
	svc := NewSimilarService(env.listings)

	reference := env.seedListing(t, "Referință", 100000, &env.hood.ID, f64Ptr(60), intPtr(2010))

	inHood := env.seedListing(t, "În cartier", 110000, &env.hood.ID, f64Ptr(70), intPtr(2015))

	// outside the neighborhood, ordered by price distance first
	cityNear := env.seedListing(t, "Oraș aproape", 101000, nil, f64Ptr(90), intPtr(1990))
	cityFar := env.seedListing(t, "Oraș departe", 140000, nil, f64Ptr(60), intPtr(2010))

	similar, err := svc.GetSimilarListings(reference.ID)
	require.NoError(t, err)
	require.Len(t, similar, 3)

	// neighborhood candidates keep priority over closer city-wide ones
	assert.Equal(t, inHood.ID, similar[0].ID)
	assert.Equal(t, cityNear.ID, similar[1].ID)
	assert.Equal(t, cityFar.ID, similar[2].ID)
}

func TestSimilarService_FallbackBreaksPriceTiesOnSurface(t *testing.T) {
	env := setupListingTest(t)
	svc := NewSimilarService(env.listings)

	reference := env.seedListing(t, "Referință", 100000, &env.hood.ID, f64Ptr(60), intPtr(2010))

	// outside the neighborhood, equal price distance
	surfaceFar := env.seedListing(t, "Suprafață departe", 105000, nil, f64Ptr(100), intPtr(2010))
	surfaceNear := env.seedListing(t, "Suprafață aproape", 105000, nil, f64Ptr(62), intPtr(2010))

	similar, err := svc.GetSimilarListings(reference.ID)
	require.NoError(t, err)
	require.Len(t, similar, 2)
	assert.Equal(t, surfaceNear.ID, similar[0].ID)
	assert.Equal(t, surfaceFar.ID, similar[1].ID)
}

func TestSimilarService_NoNeighborhoodScoresWholePool(t *testing.T) {
	env := setupListingTest(t)
	svc := NewSimilarService(env.listings)

	reference := env.seedListing(t, "Referință", 100000, nil, f64Ptr(50), intPtr(2000))

	// cheapestFirst wins on price alone but loses badly on surface; with no
	// neighborhood on the reference the whole pool is ranked by combined
	// score, so the balanced candidate comes first
	balanced := env.seedListing(t, "Echilibrat", 100010, nil, f64Ptr(50), intPtr(2000))
	cheapestFirst := env.seedListing(t, "Preț apropiat", 100005, nil, f64Ptr(150), intPtr(2000))

	similar, err := svc.GetSimilarListings(reference.ID)
	require.NoError(t, err)
	require.Len(t, similar, 2)
	assert.Equal(t, balanced.ID, similar[0].ID)
	assert.Equal(t, cheapestFirst.ID, similar[1].ID)
}

func TestSimilarService_MissingComponentsSortLast(t *testing.T) {
	env := setupListingTest(t)
	svc := NewSimilarService(env.listings)

	reference := env.seedListing(t, "Referință", 100000, &env.hood.ID, f64Ptr(60), intPtr(2010))

	complete := env.seedListing(t, "Complet", 130000, &env.hood.ID, f64Ptr(80), intPtr(2000))
	noSurface := env.seedListing(t, "Fără suprafață", 100100, &env.hood.ID, nil, intPtr(2010))

	similar, err := svc.GetSimilarListings(reference.ID)
	require.NoError(t, err)
	require.Len(t, similar, 2)

	// the missing usable surface costs more than any realistic distance
	assert.Equal(t, complete.ID, similar[0].ID)
	assert.Equal(t, noSurface.ID, similar[1].ID)
}

func TestSimilarService_CapsAtFour(t *testing.T) {
	env := setupListingTest(t)
	svc := NewSimilarService(env.listings)

	reference := env.seedListing(t, "Referință", 100000, &env.hood.ID, f64Ptr(60), intPtr(2010))
	for i := 0; i < 6; i++ {
		env.seedListing(t, "Candidat", uint(100000+i*1000), &env.hood.ID, f64Ptr(60), intPtr(2010))
	}

	similar, err := svc.GetSimilarListings(reference.ID)
	require.NoError(t, err)
	assert.Len(t, similar, 4)
}

func TestSimilarService_ExcludesInactiveAndOtherCities(t *testing.T) {
	env := setupListingTest(t)
	svc := NewSimilarService(env.listings)

	reference := env.seedListing(t, "Referință", 100000, &env.hood.ID, f64Ptr(60), intPtr(2010))

	hidden := env.seedListing(t, "Dezactivat", 100100, &env.hood.ID, f64Ptr(60), intPtr(2010))
	require.NoError(t, env.db.Model(hidden).Update("is_active_by_user", false).Error)

	pending := env.seedListing(t, "În moderare", 100200, &env.hood.ID, f64Ptr(60), intPtr(2010))
	require.NoError(t, env.db.Model(pending).Update("status", model.StatusInactive).Error)

	visible := env.seedListing(t, "Vizibil", 100300, &env.hood.ID, f64Ptr(60), intPtr(2010))

	similar, err := svc.GetSimilarListings(reference.ID)
	require.NoError(t, err)
	require.Len(t, similar, 1)
	assert.Equal(t, visible.ID, similar[0].ID)
}
