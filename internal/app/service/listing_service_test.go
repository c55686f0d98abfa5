package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/internal/app/repository"
	"github.com/imocasa/imocasa-backend/internal/db"
	"github.com/imocasa/imocasa-backend/pkg/util"
)

// fakeStorage records uploads and hands back deterministic URLs.
type fakeStorage struct {
	uploads map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploads: make(map[string][]byte)}
}

func (f *fakeStorage) Upload(key string, data []byte, contentType string) (string, error) {
	f.uploads[key] = data
	return "https://cdn.test/" + key, nil
}

type listingTestEnv struct {
	db         *gorm.DB
	svc        ListingService
	listings   repository.ListingRepository
	storage    *fakeStorage
	user       *model.User
	other      *model.User
	county     *model.County
	city       *model.City
	hood       *model.Neighborhood
	apartments *model.Category
	houses     *model.Category
	land       *model.Category
	tags       []model.Tag
}

func setupListingTest(t *testing.T) *listingTestEnv {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	env := &listingTestEnv{db: testDB, storage: newFakeStorage()}

	env.county = &model.County{Name: "Cluj"}
	require.NoError(t, testDB.Create(env.county).Error)
	env.city = &model.City{Name: "Cluj-Napoca", CountyID: env.county.ID}
	require.NoError(t, testDB.Create(env.city).Error)
	env.hood = &model.Neighborhood{Name: "Mărăști", CityID: env.city.ID}
	require.NoError(t, testDB.Create(env.hood).Error)

	apartmentsGroup := model.GroupApartments
	housesGroup := model.GroupHouses
	landGroup := model.GroupLand
	env.apartments = &model.Category{Name: "Apartamente de vânzare", Group: &apartmentsGroup}
	env.houses = &model.Category{Name: "Case de vânzare", Group: &housesGroup}
	env.land = &model.Category{Name: "Terenuri de vânzare", Group: &landGroup}
	require.NoError(t, testDB.Create(env.apartments).Error)
	require.NoError(t, testDB.Create(env.houses).Error)
	require.NoError(t, testDB.Create(env.land).Error)

	env.tags = []model.Tag{
		{Name: "Centrală proprie", Status: model.TagActive},
		{Name: "Parcare", Status: model.TagActive},
	}
	for i := range env.tags {
		require.NoError(t, testDB.Create(&env.tags[i]).Error)
	}

	env.user = &model.User{Email: "ana@example.com", PasswordHash: "x", FirstName: "Ana", LastName: "Pop"}
	env.other = &model.User{Email: "dan@example.com", PasswordHash: "x", FirstName: "Dan", LastName: "Ionescu"}
	require.NoError(t, testDB.Create(env.user).Error)
	require.NoError(t, testDB.Create(env.other).Error)

	listingRepo := repository.NewListingRepository(testDB)
	env.listings = listingRepo
	env.svc = NewListingService(
		listingRepo,
		repository.NewGeoRepository(testDB),
		repository.NewCategoryRepository(testDB),
		repository.NewTagRepository(testDB),
		repository.NewUserRepository(testDB),
		repository.NewImageHashRepository(testDB),
		repository.NewActivityLogRepository(testDB),
		env.storage,
	)
	return env
}

func intPtr(v int) *int             { return &v }
func i16Ptr(v int16) *int16         { return &v }
func f64Ptr(v float64) *float64     { return &v }

func (env *listingTestEnv) apartmentInput() ListingInput {
	return ListingInput{
		Title:         "Apartament 3 camere zona centrală",
		Description:   "Apartament luminos, renovat recent.",
		Price:         95000,
		CountyID:      env.county.ID,
		CityID:        env.city.ID,
		CategoryID:    env.apartments.ID,
		Rooms:         intPtr(3),
		UsableSurface: f64Ptr(64.5),
	}
}

func TestListingService_CreateApartment(t *testing.T) {
	env := setupListingTest(t)

	input := env.apartmentInput()
	input.NeighborhoodID = &env.hood.ID
	input.TagIDs = []uint{env.tags[0].ID, env.tags[1].ID}
	input.Partitioning = i16Ptr(0) // Decomandat

	listing, err := env.svc.Create(env.user.ID, input, nil)
	require.NoError(t, err)
	require.NotNil(t, listing)

	expectedSlug := util.Slugify(fmt.Sprintf("%s %s %s %s",
		input.Title, env.county.Name, env.city.Name, env.user.SlugHash()))
	assert.Equal(t, expectedSlug, listing.Slug)

	assert.Equal(t, input.Title+" ➤ Anunț Imobiliar Cluj-Napoca", listing.MetaTitle)
	assert.Contains(t, listing.MetaDescription, "➤ Apartamente de vânzare")
	assert.Contains(t, listing.MetaDescription, "➤ Caracteristici: Decomandat, 3 camere, Centrală proprie, Parcare")
	assert.Contains(t, listing.MetaDescription,
		fmt.Sprintf("➤ Anunț Imobiliar Cluj-Napoca %d", time.Now().Year()))

	assert.Equal(t, model.StatusInactive, listing.Status)
	require.NotNil(t, listing.ValabilityEndDate)
	assert.True(t, listing.ValabilityEndDate.After(time.Now()))
	assert.Len(t, listing.Tags, 2)
}

func TestListingService_UsableSurfaceRounded(t *testing.T) {
	env := setupListingTest(t)

	input := env.apartmentInput()
	input.UsableSurface = f64Ptr(55.555)

	listing, err := env.svc.Create(env.user.ID, input, nil)
	require.NoError(t, err)
	assert.InDelta(t, 55.56, *listing.UsableSurface, 0.001)
}

func TestListingService_CategoryGating(t *testing.T) {
	env := setupListingTest(t)

	tests := []struct {
		name      string
		input     func() ListingInput
		wantField string
	}{
		{
			name: "Apartment without rooms",
			input: func() ListingInput {
				in := env.apartmentInput()
				in.Rooms = nil
				return in
			},
			wantField: model.FieldRooms,
		},
		{
			name: "Apartment with land surface",
			input: func() ListingInput {
				in := env.apartmentInput()
				in.LandSurface = f64Ptr(500)
				return in
			},
			wantField: model.FieldLandSurface,
		},
		{
			name: "Land parcel with partitioning",
			input: func() ListingInput {
				return ListingInput{
					Title: "Teren intravilan", Description: "Parcelă dreaptă.",
					Price: 40000, CountyID: env.county.ID, CityID: env.city.ID,
					CategoryID:   env.land.ID,
					Zoning:       i16Ptr(0),
					LandSurface:  f64Ptr(500),
					Partitioning: i16Ptr(0),
				}
			},
			wantField: model.FieldPartitioning,
		},
		{
			name: "Land parcel without zoning",
			input: func() ListingInput {
				return ListingInput{
					Title: "Teren extravilan", Description: "Parcelă mare.",
					Price: 25000, CountyID: env.county.ID, CityID: env.city.ID,
					CategoryID:  env.land.ID,
					LandSurface: f64Ptr(2500),
				}
			},
			wantField: model.FieldZoning,
		},
		{
			name: "House without land surface",
			input: func() ListingInput {
				in := env.apartmentInput()
				in.CategoryID = env.houses.ID
				return in
			},
			wantField: model.FieldLandSurface,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.Create(env.user.ID, tt.input(), nil)
			require.Error(t, err)
			fieldErrs := AsFieldErrors(err)
			require.NotNil(t, fieldErrs)
			assert.Contains(t, fieldErrs, tt.wantField)
		})
	}
}

func TestListingService_CrossFieldRules(t *testing.T) {
	env := setupListingTest(t)

	tests := []struct {
		name      string
		mutate    func(*ListingInput)
		wantField string
	}{
		{
			name: "Usable equal to built is rejected",
			mutate: func(in *ListingInput) {
				in.UsableSurface = f64Ptr(80)
				in.BuiltSurface = f64Ptr(80)
			},
			wantField: model.FieldUsableSurface,
		},
		{
			name: "Usable above built is rejected",
			mutate: func(in *ListingInput) {
				in.UsableSurface = f64Ptr(90)
				in.BuiltSurface = f64Ptr(80)
			},
			wantField: model.FieldUsableSurface,
		},
		{
			name:      "Zero usable surface",
			mutate:    func(in *ListingInput) { in.UsableSurface = f64Ptr(0) },
			wantField: model.FieldUsableSurface,
		},
		{
			name: "More bedrooms than rooms",
			mutate: func(in *ListingInput) {
				in.Rooms = intPtr(2)
				in.Bedrooms = intPtr(3)
			},
			wantField: model.FieldBedrooms,
		},
		{
			name:      "Balconies without balcony surface",
			mutate:    func(in *ListingInput) { in.Balconies = intPtr(2) },
			wantField: model.FieldBalconySurface,
		},
		{
			name:      "Construction year in the future",
			mutate:    func(in *ListingInput) { in.ConstructionYear = intPtr(time.Now().Year() + 1) },
			wantField: model.FieldYear,
		},
		{
			name:      "Three-digit construction year",
			mutate:    func(in *ListingInput) { in.ConstructionYear = intPtr(999) },
			wantField: model.FieldYear,
		},
		{
			name: "Valability before tomorrow",
			mutate: func(in *ListingInput) {
				today := time.Now()
				in.ValabilityEndDate = &today
			},
			wantField: "valability_end_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := env.apartmentInput()
			tt.mutate(&input)
			_, err := env.svc.Create(env.user.ID, input, nil)
			require.Error(t, err)
			fieldErrs := AsFieldErrors(err)
			require.NotNil(t, fieldErrs)
			assert.Contains(t, fieldErrs, tt.wantField)
		})
	}
}

func TestListingService_UsableBelowBuiltAccepted(t *testing.T) {
	env := setupListingTest(t)

	input := env.apartmentInput()
	input.UsableSurface = f64Ptr(64.5)
	input.BuiltSurface = f64Ptr(72)

	_, err := env.svc.Create(env.user.ID, input, nil)
	assert.NoError(t, err)
}

func TestListingService_GeographyContainment(t *testing.T) {
	env := setupListingTest(t)

	otherCounty := &model.County{Name: "Bihor"}
	require.NoError(t, env.db.Create(otherCounty).Error)
	otherCity := &model.City{Name: "Oradea", CountyID: otherCounty.ID}
	require.NoError(t, env.db.Create(otherCity).Error)

	input := env.apartmentInput()
	input.CityID = otherCity.ID

	_, err := env.svc.Create(env.user.ID, input, nil)
	require.Error(t, err)
	fieldErrs := AsFieldErrors(err)
	require.NotNil(t, fieldErrs)
	assert.Contains(t, fieldErrs, "city_id")

	input = env.apartmentInput()
	input.NeighborhoodID = &env.hood.ID
	input.CityID = env.city.ID
	otherHood := &model.Neighborhood{Name: "Rogerius", CityID: otherCity.ID}
	require.NoError(t, env.db.Create(otherHood).Error)
	input.NeighborhoodID = &otherHood.ID

	_, err = env.svc.Create(env.user.ID, input, nil)
	require.Error(t, err)
	fieldErrs = AsFieldErrors(err)
	require.NotNil(t, fieldErrs)
	assert.Contains(t, fieldErrs, "neighborhood_id")
}

func TestListingService_SlugCollision(t *testing.T) {
	env := setupListingTest(t)

	input := env.apartmentInput()
	_, err := env.svc.Create(env.user.ID, input, nil)
	require.NoError(t, err)

	// same title, same owner: deterministic slug collides
	_, err = env.svc.Create(env.user.ID, input, nil)
	require.Error(t, err)
	fieldErrs := AsFieldErrors(err)
	require.NotNil(t, fieldErrs)
	assert.Contains(t, fieldErrs, "slug")

	// same title, different owner: owner hash diverges the slug
	_, err = env.svc.Create(env.other.ID, input, nil)
	assert.NoError(t, err)
}

func TestListingService_UpdateRecomputesSlug(t *testing.T) {
	env := setupListingTest(t)

	listing, err := env.svc.Create(env.user.ID, env.apartmentInput(), nil)
	require.NoError(t, err)
	originalSlug := listing.Slug

	// unchanged title keeps the same slug; self is excluded from the
	// collision check
	updated, err := env.svc.Update(env.user.ID, listing.ID, env.apartmentInput(), nil, false)
	require.NoError(t, err)
	assert.Equal(t, originalSlug, updated.Slug)

	input := env.apartmentInput()
	input.Title = "Apartament 3 camere ultracentral"
	updated, err = env.svc.Update(env.user.ID, listing.ID, input, nil, false)
	require.NoError(t, err)
	assert.NotEqual(t, originalSlug, updated.Slug)
	assert.Contains(t, updated.Slug, "ultracentral")
}

func TestListingService_UpdateOwnership(t *testing.T) {
	env := setupListingTest(t)

	listing, err := env.svc.Create(env.user.ID, env.apartmentInput(), nil)
	require.NoError(t, err)

	input := env.apartmentInput()
	input.Price = 99000

	_, err = env.svc.Update(env.other.ID, listing.ID, input, nil, false)
	assert.ErrorIs(t, err, ErrNotOwner)

	// admins may edit but the slug stays salted with the owner's hash
	updated, err := env.svc.Update(env.other.ID, listing.ID, input, nil, true)
	require.NoError(t, err)
	assert.Equal(t, listing.Slug, updated.Slug)
}

func TestListingService_DuplicatePhotoRejected(t *testing.T) {
	env := setupListingTest(t)

	photo := []byte("fake-webp-bytes")
	first, err := env.svc.Create(env.user.ID, env.apartmentInput(), []PhotoUpload{
		{Slot: 1, Name: "a.webp", ContentType: "image/webp", Data: photo},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.Photo1)
	assert.Equal(t, first.Photo1, first.Thumbnail)

	input := env.apartmentInput()
	input.Title = "Alt apartament 3 camere"
	_, err = env.svc.Create(env.user.ID, input, []PhotoUpload{
		{Slot: 1, Name: "b.webp", ContentType: "image/webp", Data: photo},
	})
	require.Error(t, err)
	fieldErrs := AsFieldErrors(err)
	require.NotNil(t, fieldErrs)
	assert.Contains(t, fieldErrs, "photo1")
}

func TestListingService_ToggleLike(t *testing.T) {
	env := setupListingTest(t)

	listing, err := env.svc.Create(env.user.ID, env.apartmentInput(), nil)
	require.NoError(t, err)

	liked, err := env.svc.ToggleLike(env.other.ID, listing.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	found, err := env.listings.FindByID(listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.LikeCount)

	liked, err = env.svc.ToggleLike(env.other.ID, listing.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	found, err = env.listings.FindByID(listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, found.LikeCount)
}

func TestListingService_DeleteReleasesHashes(t *testing.T) {
	env := setupListingTest(t)

	photo := []byte("reused-photo")
	listing, err := env.svc.Create(env.user.ID, env.apartmentInput(), []PhotoUpload{
		{Slot: 1, Name: "a.webp", ContentType: "image/webp", Data: photo},
	})
	require.NoError(t, err)

	require.NoError(t, env.svc.Delete(env.user.ID, listing.ID, false))

	_, err = env.svc.GetByID(listing.ID, false)
	assert.ErrorIs(t, err, ErrListingNotFound)

	// the freed hash can be used by a new listing
	input := env.apartmentInput()
	input.Title = "Apartament nou cu aceeași poză"
	_, err = env.svc.Create(env.user.ID, input, []PhotoUpload{
		{Slot: 1, Name: "c.webp", ContentType: "image/webp", Data: photo},
	})
	assert.NoError(t, err)
}

func TestListingService_GetByIDBumpsViews(t *testing.T) {
	env := setupListingTest(t)

	listing, err := env.svc.Create(env.user.ID, env.apartmentInput(), nil)
	require.NoError(t, err)

	found, err := env.svc.GetByID(listing.ID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.ViewsCount)

	_, err = env.svc.GetByID(uuid.New(), false)
	assert.ErrorIs(t, err, ErrListingNotFound)
}
