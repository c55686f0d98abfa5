package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/internal/app/repository"
	"github.com/imocasa/imocasa-backend/pkg/logger"
	"github.com/imocasa/imocasa-backend/pkg/util"
)

var (
	ErrListingNotFound = errors.New("anunțul nu a fost găsit")
	ErrNotOwner        = errors.New("doar proprietarul anunțului poate face această operație")
	ErrUserNotFound    = errors.New("utilizatorul nu a fost găsit")
)

const maxPhotos = 9

// MediaStorage stores raw photo bytes and returns a public URL. The S3
// implementation lives in internal/storage; tests substitute a fake.
type MediaStorage interface {
	Upload(key string, data []byte, contentType string) (string, error)
}

// ListingInput is the full candidate field set for create and update.
// Updates replace the listing wholesale; gated attributes are pointers so
// absent stays distinguishable from an explicit zero.
type ListingInput struct {
	Title          string          `json:"title" binding:"required,max=200"`
	Description    string          `json:"description" binding:"required"`
	Price          uint            `json:"price" binding:"required,gt=0"`
	Currency       *model.Currency `json:"currency"`
	Negotiable     bool            `json:"negociabil"`
	CountyID       uint            `json:"county_id"`
	CityID         uint            `json:"city_id"`
	NeighborhoodID *uint           `json:"neighborhood_id"`
	CategoryID     uint            `json:"category_id"`
	TagIDs         []uint          `json:"tag_ids"`
	VideoURL       string          `json:"video_url"`
	Latitude       *float64        `json:"latitude"`
	Longitude      *float64        `json:"longitude"`
	ValabilityEndDate *time.Time   `json:"valability_end_date"`

	Rooms            *int     `json:"numar_camere"`
	Bedrooms         *int     `json:"number_of_bedrooms"`
	Bathrooms        *int     `json:"number_of_bathrooms"`
	Balconies        *int     `json:"number_of_balconies"`
	BalconySurface   *float64 `json:"suprafata_balcoane"`
	UsableSurface    *float64 `json:"suprafata_utila"`
	BuiltSurface     *float64 `json:"suprafata_constructie"`
	LandSurface      *float64 `json:"suprafata_terenului"`
	ConstructionYear *int     `json:"year_of_construction"`
	Partitioning     *int16   `json:"compartimentare"`
	Zoning           *int16   `json:"zonare"`
	Structure        *int16   `json:"structura"`
	Floor            *int16   `json:"floor"`
	FoundationType   *int16   `json:"foundation_type"`
	FloorCount       *int     `json:"number_of_floors"`
	HasAttic         *bool    `json:"has_attic"`
	EnergyClass      *int16   `json:"clasa_energetica"`
}

// PhotoUpload is one photo slot's raw content.
type PhotoUpload struct {
	Slot        int
	Name        string
	ContentType string
	Data        []byte
}

// HomeDigest is the landing-page payload: promoted listings first, then
// the newest actives.
type HomeDigest struct {
	Promoted []model.Listing `json:"promoted"`
	Latest   []model.Listing `json:"latest"`
}

type ListingService interface {
	Create(userID uuid.UUID, input ListingInput, photos []PhotoUpload) (*model.Listing, error)
	Update(userID uuid.UUID, listingID uuid.UUID, input ListingInput, photos []PhotoUpload, isAdmin bool) (*model.Listing, error)
	Delete(userID uuid.UUID, listingID uuid.UUID, isAdmin bool) error
	GetByID(id uuid.UUID, bumpViews bool) (*model.Listing, error)
	List(filter repository.ListingFilter) ([]model.Listing, error)
	HomeDigest() (*HomeDigest, error)
	ToggleLike(userID, listingID uuid.UUID) (bool, error)
	ToggleActive(userID, listingID uuid.UUID) (*model.Listing, error)
}

type listingService struct {
	listings    repository.ListingRepository
	geo         repository.GeoRepository
	categories  repository.CategoryRepository
	tags        repository.TagRepository
	users       repository.UserRepository
	imageHashes repository.ImageHashRepository
	activityLog repository.ActivityLogRepository
	storage     MediaStorage
}

func NewListingService(
	listings repository.ListingRepository,
	geo repository.GeoRepository,
	categories repository.CategoryRepository,
	tags repository.TagRepository,
	users repository.UserRepository,
	imageHashes repository.ImageHashRepository,
	activityLog repository.ActivityLogRepository,
	storage MediaStorage,
) ListingService {
	return &listingService{
		listings:    listings,
		geo:         geo,
		categories:  categories,
		tags:        tags,
		users:       users,
		imageHashes: imageHashes,
		activityLog: activityLog,
		storage:     storage,
	}
}

// validationContext carries the reference rows resolved during validation
// so the pipeline loads each exactly once.
type validationContext struct {
	county       *model.County
	city         *model.City
	neighborhood *model.Neighborhood
	category     *model.Category
	tags         []model.Tag
	slug         string
}

func (s *listingService) Create(userID uuid.UUID, input ListingInput, photos []PhotoUpload) (*model.Listing, error) {
	logger.Info("Creating listing", map[string]interface{}{
		"user_id": userID,
		"title":   input.Title,
	})

	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	vctx, err := s.validate(user, &input, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if err := s.checkPhotos(photos, uuid.Nil); err != nil {
		return nil, err
	}

	listing := s.buildListing(&input)
	listing.UserID = userID
	listing.Slug = vctx.slug
	s.synthesizeMeta(listing, vctx)

	if err := s.listings.Create(listing); err != nil {
		return nil, err
	}
	if len(vctx.tags) > 0 {
		if err := s.listings.ReplaceTags(listing, vctx.tags); err != nil {
			return nil, err
		}
		listing.Tags = vctx.tags
	}

	if err := s.storePhotos(listing, photos); err != nil {
		return nil, err
	}

	s.activityLog.Create(&model.ListingActivityLog{
		ListingID:   listing.ID,
		UserID:      userID,
		EventType:   model.EventCreate,
		Description: fmt.Sprintf("Anunț creat: %s", listing.Title),
	})

	logger.Info("Listing created", map[string]interface{}{
		"listing_id": listing.ID,
		"slug":       listing.Slug,
	})
	return listing, nil
}

func (s *listingService) Update(userID uuid.UUID, listingID uuid.UUID, input ListingInput, photos []PhotoUpload, isAdmin bool) (*model.Listing, error) {
	existing, err := s.listings.FindByID(listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if existing.UserID != userID && !isAdmin {
		logger.Warn("Listing update denied", map[string]interface{}{
			"listing_id": listingID,
			"user_id":    userID,
		})
		return nil, ErrNotOwner
	}

	owner, err := s.users.FindByID(existing.UserID)
	if err != nil {
		return nil, err
	}

	// slug stays salted with the owner's hash even when an admin edits
	vctx, err := s.validate(owner, &input, listingID)
	if err != nil {
		return nil, err
	}
	if err := s.checkPhotos(photos, listingID); err != nil {
		return nil, err
	}

	changed := changedFields(existing, &input)

	updated := s.buildListing(&input)
	updated.ID = existing.ID
	updated.UserID = existing.UserID
	updated.Status = existing.Status
	updated.IsActiveByUser = existing.IsActiveByUser
	updated.IsPromoted = existing.IsPromoted
	updated.ValabilityPromoteDate = existing.ValabilityPromoteDate
	updated.ViewsCount = existing.ViewsCount
	updated.LikeCount = existing.LikeCount
	updated.CreatedAt = existing.CreatedAt
	if updated.ValabilityEndDate == nil {
		updated.ValabilityEndDate = existing.ValabilityEndDate
	}
	updated.Slug = vctx.slug
	s.synthesizeMeta(updated, vctx)

	if len(photos) > 0 {
		if err := s.storePhotos(updated, photos); err != nil {
			return nil, err
		}
	} else {
		// keep the registered photos when none are re-uploaded
		updated.Photo1, updated.Photo2, updated.Photo3 = existing.Photo1, existing.Photo2, existing.Photo3
		updated.Photo4, updated.Photo5, updated.Photo6 = existing.Photo4, existing.Photo5, existing.Photo6
		updated.Photo7, updated.Photo8, updated.Photo9 = existing.Photo7, existing.Photo8, existing.Photo9
		updated.Thumbnail = existing.Thumbnail
	}
	if err := s.listings.Update(updated); err != nil {
		return nil, err
	}
	if err := s.listings.ReplaceTags(updated, vctx.tags); err != nil {
		return nil, err
	}
	updated.Tags = vctx.tags

	s.activityLog.Create(&model.ListingActivityLog{
		ListingID:     updated.ID,
		UserID:        userID,
		EventType:     model.EventUpdate,
		Description:   fmt.Sprintf("Anunț actualizat: %s", updated.Title),
		ChangedFields: pq.StringArray(changed),
	})

	logger.Info("Listing updated", map[string]interface{}{
		"listing_id":     updated.ID,
		"changed_fields": []string(changed),
	})
	return updated, nil
}

func (s *listingService) Delete(userID uuid.UUID, listingID uuid.UUID, isAdmin bool) error {
	listing, err := s.listings.FindByID(listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListingNotFound
		}
		return err
	}
	if listing.UserID != userID && !isAdmin {
		return ErrNotOwner
	}

	if err := s.listings.Delete(listingID); err != nil {
		return err
	}
	// free the photo hashes so the images can be reused
	if err := s.imageHashes.DeleteForListing(listingID); err != nil {
		logger.Warn("Failed to release image hashes on delete", map[string]interface{}{
			"listing_id": listingID,
		})
	}

	s.activityLog.Create(&model.ListingActivityLog{
		ListingID:   listingID,
		UserID:      userID,
		EventType:   model.EventDelete,
		Description: fmt.Sprintf("Anunț șters: %s", listing.Title),
	})

	logger.Info("Listing deleted", map[string]interface{}{
		"listing_id": listingID,
		"user_id":    userID,
	})
	return nil
}

func (s *listingService) GetByID(id uuid.UUID, bumpViews bool) (*model.Listing, error) {
	listing, err := s.listings.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if bumpViews {
		if err := s.listings.IncrementViewCount(id); err == nil {
			listing.ViewsCount++
		}
	}
	return listing, nil
}

func (s *listingService) List(filter repository.ListingFilter) ([]model.Listing, error) {
	return s.listings.FindWithFilter(filter)
}

func (s *listingService) HomeDigest() (*HomeDigest, error) {
	promoted, err := s.listings.FindWithFilter(repository.ListingFilter{
		ActiveOnly:   true,
		PromotedOnly: true,
		Limit:        8,
	})
	if err != nil {
		return nil, err
	}
	latest, err := s.listings.FindWithFilter(repository.ListingFilter{
		ActiveOnly: true,
		Limit:      12,
	})
	if err != nil {
		return nil, err
	}
	return &HomeDigest{Promoted: promoted, Latest: latest}, nil
}

// ToggleLike flips the (user, listing) like. Returns true when the like
// was added, false when removed.
func (s *listingService) ToggleLike(userID, listingID uuid.UUID) (bool, error) {
	if _, err := s.listings.FindByID(listingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrListingNotFound
		}
		return false, err
	}

	_, err := s.listings.FindLike(userID, listingID)
	switch {
	case err == nil:
		if err := s.listings.DeleteLike(userID, listingID); err != nil {
			return false, err
		}
		if err := s.listings.AdjustLikeCount(listingID, -1); err != nil {
			return false, err
		}
		return false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.listings.CreateLike(&model.Like{UserID: userID, ListingID: listingID}); err != nil {
			return false, err
		}
		if err := s.listings.AdjustLikeCount(listingID, 1); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, err
	}
}

func (s *listingService) ToggleActive(userID, listingID uuid.UUID) (*model.Listing, error) {
	listing, err := s.listings.FindByID(listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if listing.UserID != userID {
		return nil, ErrNotOwner
	}

	listing.IsActiveByUser = !listing.IsActiveByUser
	if err := s.listings.Update(listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// validate runs the whole eligibility pipeline in one pass and collects
// every violation. No persistence happens before it returns nil.
func (s *listingService) validate(owner *model.User, input *ListingInput, excludeID uuid.UUID) (*validationContext, error) {
	fieldErrs := NewFieldErrors()
	vctx := &validationContext{}

	// geography and category resolution
	if input.CountyID == 0 {
		fieldErrs.Add("county_id", "Județul este obligatoriu.")
	} else if county, err := s.geo.FindCountyByID(input.CountyID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		fieldErrs.Add("county_id", "Județul selectat nu există.")
	} else {
		vctx.county = county
	}

	if input.CityID == 0 {
		fieldErrs.Add("city_id", "Orașul este obligatoriu.")
	} else if city, err := s.geo.FindCityByID(input.CityID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		fieldErrs.Add("city_id", "Orașul selectat nu există.")
	} else {
		vctx.city = city
	}

	if input.NeighborhoodID != nil {
		if neighborhood, err := s.geo.FindNeighborhoodByID(*input.NeighborhoodID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			fieldErrs.Add("neighborhood_id", "Cartierul selectat nu există.")
		} else {
			vctx.neighborhood = neighborhood
		}
	}

	if input.CategoryID == 0 {
		fieldErrs.Add("category_id", "Categoria este obligatorie.")
	} else if category, err := s.categories.FindByID(input.CategoryID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		fieldErrs.Add("category_id", "Categoria selectată nu există.")
	} else {
		vctx.category = category
	}

	// containment
	if vctx.city != nil && vctx.county != nil && vctx.city.CountyID != vctx.county.ID {
		fieldErrs.Add("city_id", "Orașul trebuie să aparțină județului selectat.")
	}
	if vctx.neighborhood != nil && vctx.city != nil && vctx.neighborhood.CityID != vctx.city.ID {
		fieldErrs.Add("neighborhood_id", "Cartierul trebuie să aparțină orașului selectat.")
	}

	// category-group gating
	if vctx.category != nil && vctx.category.Group != nil {
		s.checkGroupGating(*vctx.category.Group, input, fieldErrs)
	}

	// cross-field rules
	if input.UsableSurface != nil {
		if *input.UsableSurface <= 0 {
			fieldErrs.Add(model.FieldUsableSurface, "Suprafața utilă trebuie să fie mai mare decât 0.")
		} else if *input.UsableSurface > 10_000_000 {
			fieldErrs.Add(model.FieldUsableSurface, "Suprafața utilă este prea mare.")
		}
	}
	if input.UsableSurface != nil && input.BuiltSurface != nil && *input.UsableSurface >= *input.BuiltSurface {
		fieldErrs.Add(model.FieldUsableSurface, "Suprafața utilă trebuie să fie mai mică decât suprafața construită.")
	}
	if input.Bedrooms != nil && input.Rooms != nil && *input.Bedrooms > *input.Rooms {
		fieldErrs.Add(model.FieldBedrooms, "Numărul de dormitoare nu poate depăși numărul de camere.")
	}
	if input.Balconies != nil && *input.Balconies >= 1 && input.BalconySurface == nil {
		fieldErrs.Add(model.FieldBalconySurface, "Suprafața balcoanelor este obligatorie când există balcoane.")
	}
	if input.ConstructionYear != nil {
		year := *input.ConstructionYear
		if year < 1000 || year > 9999 {
			fieldErrs.Add(model.FieldYear, "Anul construcției trebuie să aibă 4 cifre.")
		} else if year > time.Now().Year() {
			fieldErrs.Add(model.FieldYear, "Anul construcției nu poate fi în viitor.")
		}
	}
	if input.ValabilityEndDate != nil {
		tomorrow := time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour)
		if input.ValabilityEndDate.Before(tomorrow) {
			fieldErrs.Add("valability_end_date", "Data de valabilitate trebuie să fie cu cel puțin 1 zi mai mare decât data curentă.")
		}
	}

	// slug: deterministic over title, county, city and owner hash;
	// collision is a hard failure, never auto-suffixed
	if vctx.county != nil && vctx.city != nil && input.Title != "" {
		vctx.slug = util.Slugify(fmt.Sprintf("%s %s %s %s",
			input.Title, vctx.county.Name, vctx.city.Name, owner.SlugHash()))
		exists, err := s.listings.SlugExists(vctx.slug, excludeID)
		if err != nil {
			return nil, err
		}
		if exists {
			fieldErrs.Add("slug", "Slug-ul generat există deja. Vă rugăm să modificați titlul sau alte date pentru a genera un slug unic.")
		}
	}

	// tags: unknown or inactive ids are dropped silently
	if len(input.TagIDs) > 0 {
		tags, err := s.tags.FindByIDs(input.TagIDs)
		if err != nil {
			return nil, err
		}
		vctx.tags = tags
	}

	if fieldErrs.HasErrors() {
		logger.Warn("Listing validation failed", map[string]interface{}{
			"fields": map[string]string(fieldErrs),
		})
		return nil, fieldErrs
	}
	return vctx, nil
}

func (s *listingService) checkGroupGating(group model.CategoryGroup, input *ListingInput, fieldErrs FieldErrors) {
	rule, ok := model.GroupRules[group]
	if !ok {
		return
	}

	present := map[string]bool{
		model.FieldRooms:          input.Rooms != nil,
		model.FieldBedrooms:       input.Bedrooms != nil,
		model.FieldBathrooms:      input.Bathrooms != nil,
		model.FieldBalconies:      input.Balconies != nil,
		model.FieldBalconySurface: input.BalconySurface != nil,
		model.FieldUsableSurface:  input.UsableSurface != nil,
		model.FieldBuiltSurface:   input.BuiltSurface != nil,
		model.FieldLandSurface:    input.LandSurface != nil,
		model.FieldYear:           input.ConstructionYear != nil,
		model.FieldPartitioning:   input.Partitioning != nil,
		model.FieldZoning:         input.Zoning != nil,
		model.FieldStructure:      input.Structure != nil,
		model.FieldFloor:          input.Floor != nil,
		model.FieldFoundation:     input.FoundationType != nil,
		model.FieldFloorCount:     input.FloorCount != nil,
		model.FieldHasAttic:       input.HasAttic != nil,
		model.FieldEnergyClass:    input.EnergyClass != nil,
	}

	permitted := make(map[string]bool, len(rule.Permitted))
	for _, field := range rule.Permitted {
		permitted[field] = true
	}

	for field, isPresent := range present {
		if isPresent && !permitted[field] {
			fieldErrs.Addf(field, "Câmpul „%s” nu este permis pentru această categorie.", model.FieldLabel(field))
		}
	}
	for _, field := range rule.Required {
		if !present[field] {
			fieldErrs.Addf(field, "Câmpul „%s” este obligatoriu pentru această categorie.", model.FieldLabel(field))
		}
	}
}

// checkPhotos hashes each upload and rejects slots whose content is
// already registered to another listing.
func (s *listingService) checkPhotos(photos []PhotoUpload, excludeID uuid.UUID) error {
	fieldErrs := NewFieldErrors()

	if len(photos) > maxPhotos {
		fieldErrs.Addf("photos", "Un anunț poate avea cel mult %d fotografii.", maxPhotos)
	}
	for _, photo := range photos {
		if photo.Slot < 1 || photo.Slot > maxPhotos {
			fieldErrs.Addf(fmt.Sprintf("photo%d", photo.Slot), "Poziția fotografiei nu este validă.")
			continue
		}
		hash := util.HashBytes(photo.Data)
		exists, err := s.imageHashes.ExistsForOtherListing(hash, excludeID)
		if err != nil {
			return err
		}
		if exists {
			fieldErrs.Addf(fmt.Sprintf("photo%d", photo.Slot), "Fotografia este deja folosită într-un alt anunț.")
		}
	}
	return fieldErrs.OrNil()
}

// storePhotos uploads the photos, assigns their URLs to the listing's
// slots and re-registers the hash set wholesale.
func (s *listingService) storePhotos(listing *model.Listing, photos []PhotoUpload) error {
	if len(photos) == 0 {
		return nil
	}

	hashes := make([]model.ImageHash, 0, len(photos))
	for _, photo := range photos {
		key := fmt.Sprintf("listings/%s-%d", listing.ID, photo.Slot)
		url, err := s.storage.Upload(key, photo.Data, photo.ContentType)
		if err != nil {
			logger.Error("Failed to upload listing photo", err, map[string]interface{}{
				"listing_id": listing.ID,
				"slot":       photo.Slot,
			})
			return err
		}
		listing.SetPhoto(photo.Slot, url)
		if photo.Slot == 1 {
			listing.Thumbnail = url
		}
		hashes = append(hashes, model.ImageHash{
			HashValue:   util.HashBytes(photo.Data),
			ListingUUID: listing.ID,
			PhotoName:   fmt.Sprintf("photo%d", photo.Slot),
		})
	}

	if err := s.listings.Update(listing); err != nil {
		return err
	}
	return s.imageHashes.ReplaceForListing(listing.ID, hashes)
}

func (s *listingService) buildListing(input *ListingInput) *model.Listing {
	currency := model.CurrencyEUR
	if input.Currency != nil {
		currency = *input.Currency
	}
	usable := input.UsableSurface
	if usable != nil {
		rounded := float64(int(*usable*100+0.5)) / 100
		usable = &rounded
	}

	return &model.Listing{
		Title:             input.Title,
		Description:       input.Description,
		Price:             input.Price,
		Currency:          currency,
		Negotiable:        input.Negotiable,
		CountyID:          input.CountyID,
		CityID:            input.CityID,
		NeighborhoodID:    input.NeighborhoodID,
		CategoryID:        input.CategoryID,
		VideoURL:          input.VideoURL,
		Latitude:          input.Latitude,
		Longitude:         input.Longitude,
		ValabilityEndDate: input.ValabilityEndDate,
		Rooms:             input.Rooms,
		Bedrooms:          input.Bedrooms,
		Bathrooms:         input.Bathrooms,
		Balconies:         input.Balconies,
		BalconySurface:    input.BalconySurface,
		UsableSurface:     usable,
		BuiltSurface:      input.BuiltSurface,
		LandSurface:       input.LandSurface,
		ConstructionYear:  input.ConstructionYear,
		Partitioning:      input.Partitioning,
		Zoning:            input.Zoning,
		Structure:         input.Structure,
		Floor:             input.Floor,
		FoundationType:    input.FoundationType,
		FloorCount:        input.FloorCount,
		HasAttic:          input.HasAttic,
		EnergyClass:       input.EnergyClass,
	}
}

// synthesizeMeta fills the SEO title and description from the resolved
// references. Pure string assembly.
func (s *listingService) synthesizeMeta(listing *model.Listing, vctx *validationContext) {
	cityName := ""
	if vctx.city != nil {
		cityName = vctx.city.Name
	}
	categoryName := ""
	if vctx.category != nil {
		categoryName = vctx.category.Name
	}

	parts := []string{
		listing.Title,
		fmt.Sprintf("➤ %s", categoryName),
	}

	var features []string
	if listing.Partitioning != nil {
		features = append(features, model.ChoiceLabel(model.PartitioningLabels, listing.Partitioning))
	}
	if listing.Zoning != nil {
		features = append(features, model.ChoiceLabel(model.ZoningLabels, listing.Zoning))
	}
	if listing.Rooms != nil {
		if label, ok := model.RoomsLabels[*listing.Rooms]; ok {
			features = append(features, label)
		} else {
			features = append(features, fmt.Sprintf("%d camere", *listing.Rooms))
		}
	}
	if len(vctx.tags) > 0 {
		names := make([]string, 0, len(vctx.tags))
		for _, tag := range vctx.tags {
			names = append(names, tag.Name)
		}
		features = append(features, strings.Join(names, ", "))
	}
	if len(features) > 0 {
		parts = append(parts, fmt.Sprintf("➤ Caracteristici: %s", strings.Join(features, ", ")))
	}
	parts = append(parts, fmt.Sprintf("➤ Anunț Imobiliar %s %d", cityName, time.Now().Year()))

	listing.MetaTitle = fmt.Sprintf("%s ➤ Anunț Imobiliar %s", listing.Title, cityName)
	listing.MetaDescription = strings.Join(parts, " ")
}

// changedFields names the attributes an update touches, for the activity
// log.
func changedFields(existing *model.Listing, input *ListingInput) []string {
	var changed []string
	add := func(field string, isChanged bool) {
		if isChanged {
			changed = append(changed, field)
		}
	}

	add("title", existing.Title != input.Title)
	add("description", existing.Description != input.Description)
	add("price", existing.Price != input.Price)
	add("county_id", existing.CountyID != input.CountyID)
	add("city_id", existing.CityID != input.CityID)
	add("category_id", existing.CategoryID != input.CategoryID)
	add("neighborhood_id", !uintPtrEqual(existing.NeighborhoodID, input.NeighborhoodID))
	add(model.FieldRooms, !intPtrEqual(existing.Rooms, input.Rooms))
	add(model.FieldUsableSurface, !floatPtrEqual(existing.UsableSurface, input.UsableSurface))
	add(model.FieldBuiltSurface, !floatPtrEqual(existing.BuiltSurface, input.BuiltSurface))
	add(model.FieldLandSurface, !floatPtrEqual(existing.LandSurface, input.LandSurface))
	add(model.FieldYear, !intPtrEqual(existing.ConstructionYear, input.ConstructionYear))
	return changed
}

func uintPtrEqual(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
