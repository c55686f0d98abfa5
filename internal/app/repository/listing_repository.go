package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/pkg/logger"
)

type ListingSort string

const (
	ListingSortCreatedAt ListingSort = "created_at"
	ListingSortPrice     ListingSort = "price"
	ListingSortViews     ListingSort = "views"
)

type ListingFilter struct {
	CountyID       *uint
	CityID         *uint
	NeighborhoodID *uint
	CategoryID     *uint
	UserID         *uuid.UUID
	Status         *model.ListingStatus
	ActiveOnly     bool // status active AND is_active_by_user AND not expired
	PromotedOnly   bool
	MinPrice       *uint
	MaxPrice       *uint
	Search         string
	SortBy         ListingSort
	SortAscending  bool
	Limit          int
	Offset         int
}

type ListingRepository interface {
	Create(listing *model.Listing) error
	FindByID(id uuid.UUID) (*model.Listing, error)
	FindWithFilter(filter ListingFilter) ([]model.Listing, error)
	Update(listing *model.Listing) error
	Delete(id uuid.UUID) error
	SlugExists(slug string, excludeID uuid.UUID) (bool, error)
	FindSimilarPool(cityID, categoryID uint, excludeID uuid.UUID) ([]model.Listing, error)
	ReplaceTags(listing *model.Listing, tags []model.Tag) error
	IncrementViewCount(id uuid.UUID) error
	AdjustLikeCount(id uuid.UUID, delta int) error
	FindLike(userID, listingID uuid.UUID) (*model.Like, error)
	CreateLike(like *model.Like) error
	DeleteLike(userID, listingID uuid.UUID) error
	ClearExpiredPromotions(now time.Time) (int64, error)
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) baseQuery() *gorm.DB {
	return r.db.Model(&model.Listing{}).
		Preload("County").
		Preload("City").
		Preload("Neighborhood").
		Preload("Category").
		Preload("Tags")
}

func (r *listingRepository) Create(listing *model.Listing) error {
	logger.Debug("Creating listing in database", map[string]interface{}{
		"title":       listing.Title,
		"user_id":     listing.UserID,
		"category_id": listing.CategoryID,
		"city_id":     listing.CityID,
	})

	if err := r.db.Create(listing).Error; err != nil {
		logger.Error("Failed to create listing in database", err, map[string]interface{}{
			"title":   listing.Title,
			"user_id": listing.UserID,
		})
		return err
	}

	logger.Debug("Listing created in database", map[string]interface{}{
		"listing_id": listing.ID,
		"slug":       listing.Slug,
	})
	return nil
}

func (r *listingRepository) FindByID(id uuid.UUID) (*model.Listing, error) {
	var listing model.Listing
	err := r.baseQuery().Preload("User").First(&listing, "listings.id = ?", id).Error
	if err != nil {
		logger.Error("Failed to find listing by ID in database", err, map[string]interface{}{
			"listing_id": id,
		})
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) FindWithFilter(filter ListingFilter) ([]model.Listing, error) {
	logger.Debug("Finding listings with filter", map[string]interface{}{
		"county_id":   filter.CountyID,
		"city_id":     filter.CityID,
		"category_id": filter.CategoryID,
		"active_only": filter.ActiveOnly,
		"search":      filter.Search,
		"limit":       filter.Limit,
		"offset":      filter.Offset,
	})

	query := r.baseQuery()

	if filter.ActiveOnly {
		query = query.Where("listings.status = ?", model.StatusActive).
			Where("listings.is_active_by_user = ?", true).
			Where("listings.valability_end_date IS NULL OR listings.valability_end_date >= ?", time.Now())
	} else if filter.Status != nil {
		query = query.Where("listings.status = ?", *filter.Status)
	}

	if filter.PromotedOnly {
		query = query.Where("listings.is_promoted = ?", true)
	}
	if filter.CountyID != nil {
		query = query.Where("listings.county_id = ?", *filter.CountyID)
	}
	if filter.CityID != nil {
		query = query.Where("listings.city_id = ?", *filter.CityID)
	}
	if filter.NeighborhoodID != nil {
		query = query.Where("listings.neighborhood_id = ?", *filter.NeighborhoodID)
	}
	if filter.CategoryID != nil {
		query = query.Where("listings.category_id = ?", *filter.CategoryID)
	}
	if filter.UserID != nil {
		query = query.Where("listings.user_id = ?", *filter.UserID)
	}
	if filter.MinPrice != nil {
		query = query.Where("listings.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("listings.price <= ?", *filter.MaxPrice)
	}
	if filter.Search != "" {
		like := fmt.Sprintf("%%%s%%", filter.Search)
		query = query.Where("listings.title LIKE ? OR listings.description LIKE ?", like, like)
	}

	direction := "DESC"
	if filter.SortAscending {
		direction = "ASC"
	}
	switch filter.SortBy {
	case ListingSortPrice:
		query = query.Order("listings.price " + direction)
	case ListingSortViews:
		query = query.Order("listings.views_count " + direction).
			Order("listings.created_at DESC")
	default:
		query = query.Order("listings.created_at " + direction)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var listings []model.Listing
	if err := query.Find(&listings).Error; err != nil {
		logger.Error("Failed to find listings with filter", err, map[string]interface{}{
			"search": filter.Search,
		})
		return nil, err
	}

	logger.Debug("Listings found with filter", map[string]interface{}{
		"count": len(listings),
	})
	return listings, nil
}

func (r *listingRepository) Update(listing *model.Listing) error {
	logger.Debug("Updating listing in database", map[string]interface{}{
		"listing_id": listing.ID,
		"title":      listing.Title,
	})

	if err := r.db.Save(listing).Error; err != nil {
		logger.Error("Failed to update listing in database", err, map[string]interface{}{
			"listing_id": listing.ID,
		})
		return err
	}
	return nil
}

func (r *listingRepository) Delete(id uuid.UUID) error {
	logger.Debug("Deleting listing from database", map[string]interface{}{
		"listing_id": id,
	})

	if err := r.db.Delete(&model.Listing{}, "id = ?", id).Error; err != nil {
		logger.Error("Failed to delete listing from database", err, map[string]interface{}{
			"listing_id": id,
		})
		return err
	}
	return nil
}

// SlugExists reports whether another listing already carries the slug.
// excludeID skips the listing being updated; pass uuid.Nil on create.
func (r *listingRepository) SlugExists(slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.Model(&model.Listing{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		logger.Error("Failed to check slug existence", err, map[string]interface{}{
			"slug": slug,
		})
		return false, err
	}
	return count > 0, nil
}

// FindSimilarPool returns the publicly visible listings sharing a city and
// category, excluding the reference itself. Scoring happens in the service.
func (r *listingRepository) FindSimilarPool(cityID, categoryID uint, excludeID uuid.UUID) ([]model.Listing, error) {
	var listings []model.Listing
	err := r.db.Model(&model.Listing{}).
		Where("city_id = ? AND category_id = ?", cityID, categoryID).
		Where("status = ? AND is_active_by_user = ?", model.StatusActive, true).
		Where("id <> ?", excludeID).
		Find(&listings).Error
	if err != nil {
		logger.Error("Failed to load similar-listing pool", err, map[string]interface{}{
			"city_id":     cityID,
			"category_id": categoryID,
		})
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) ReplaceTags(listing *model.Listing, tags []model.Tag) error {
	if err := r.db.Model(listing).Association("Tags").Replace(tags); err != nil {
		logger.Error("Failed to replace listing tags", err, map[string]interface{}{
			"listing_id": listing.ID,
		})
		return err
	}
	return nil
}

func (r *listingRepository) IncrementViewCount(id uuid.UUID) error {
	if err := r.db.Model(&model.Listing{}).Where("id = ?", id).
		Update("views_count", gorm.Expr("views_count + ?", 1)).Error; err != nil {
		logger.Error("Failed to increment listing view count", err, map[string]interface{}{
			"listing_id": id,
		})
		return err
	}
	return nil
}

func (r *listingRepository) AdjustLikeCount(id uuid.UUID, delta int) error {
	if err := r.db.Model(&model.Listing{}).Where("id = ?", id).
		Update("like_count", gorm.Expr("like_count + ?", delta)).Error; err != nil {
		logger.Error("Failed to adjust listing like count", err, map[string]interface{}{
			"listing_id": id,
			"delta":      delta,
		})
		return err
	}
	return nil
}

func (r *listingRepository) FindLike(userID, listingID uuid.UUID) (*model.Like, error) {
	var like model.Like
	err := r.db.Where("user_id = ? AND listing_id = ?", userID, listingID).First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *listingRepository) CreateLike(like *model.Like) error {
	return r.db.Create(like).Error
}

func (r *listingRepository) DeleteLike(userID, listingID uuid.UUID) error {
	return r.db.Where("user_id = ? AND listing_id = ?", userID, listingID).
		Delete(&model.Like{}).Error
}

// ClearExpiredPromotions unsets the promotion flag on listings whose
// promotion window has passed. Returns the number of rows touched.
func (r *listingRepository) ClearExpiredPromotions(now time.Time) (int64, error) {
	result := r.db.Model(&model.Listing{}).
		Where("is_promoted = ?", true).
		Where("valability_promote_date IS NOT NULL AND valability_promote_date < ?", now).
		Updates(map[string]interface{}{
			"is_promoted":             false,
			"valability_promote_date": nil,
		})
	if result.Error != nil {
		logger.Error("Failed to clear expired promotions", result.Error, nil)
		return 0, result.Error
	}

	logger.Debug("Expired promotions cleared", map[string]interface{}{
		"count": result.RowsAffected,
	})
	return result.RowsAffected, nil
}
