package repository

import (
	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/pkg/logger"
)

type GeoRepository interface {
	CreateCounty(county *model.County) error
	CreateCity(city *model.City) error
	CreateNeighborhood(neighborhood *model.Neighborhood) error
	FindAllCounties() ([]model.County, error)
	FindCountyByID(id uint) (*model.County, error)
	FindCountyByName(name string) (*model.County, error)
	FindCityByID(id uint) (*model.City, error)
	FindCityByName(countyID uint, name string) (*model.City, error)
	FindCitiesByCounty(countyID uint) ([]model.City, error)
	FindNeighborhoodByID(id uint) (*model.Neighborhood, error)
	FindNeighborhoodsByCity(cityID uint) ([]model.Neighborhood, error)
}

type geoRepository struct {
	db *gorm.DB
}

func NewGeoRepository(db *gorm.DB) GeoRepository {
	return &geoRepository{db: db}
}

func (r *geoRepository) CreateCounty(county *model.County) error {
	if err := r.db.Create(county).Error; err != nil {
		logger.Error("Failed to create county", err, map[string]interface{}{
			"name": county.Name,
		})
		return err
	}
	return nil
}

func (r *geoRepository) CreateCity(city *model.City) error {
	if err := r.db.Create(city).Error; err != nil {
		logger.Error("Failed to create city", err, map[string]interface{}{
			"name": city.Name,
		})
		return err
	}
	return nil
}

func (r *geoRepository) CreateNeighborhood(neighborhood *model.Neighborhood) error {
	if err := r.db.Create(neighborhood).Error; err != nil {
		logger.Error("Failed to create neighborhood", err, map[string]interface{}{
			"name": neighborhood.Name,
		})
		return err
	}
	return nil
}

func (r *geoRepository) FindAllCounties() ([]model.County, error) {
	var counties []model.County
	if err := r.db.Order("name ASC").Find(&counties).Error; err != nil {
		logger.Error("Failed to list counties", err, nil)
		return nil, err
	}
	return counties, nil
}

func (r *geoRepository) FindCountyByID(id uint) (*model.County, error) {
	var county model.County
	if err := r.db.First(&county, id).Error; err != nil {
		return nil, err
	}
	return &county, nil
}

func (r *geoRepository) FindCountyByName(name string) (*model.County, error) {
	var county model.County
	if err := r.db.Where("name = ?", name).First(&county).Error; err != nil {
		return nil, err
	}
	return &county, nil
}

func (r *geoRepository) FindCityByID(id uint) (*model.City, error) {
	var city model.City
	if err := r.db.First(&city, id).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *geoRepository) FindCityByName(countyID uint, name string) (*model.City, error) {
	var city model.City
	if err := r.db.Where("county_id = ? AND name = ?", countyID, name).First(&city).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *geoRepository) FindCitiesByCounty(countyID uint) ([]model.City, error) {
	var cities []model.City
	if err := r.db.Where("county_id = ?", countyID).Order("name ASC").Find(&cities).Error; err != nil {
		logger.Error("Failed to list cities for county", err, map[string]interface{}{
			"county_id": countyID,
		})
		return nil, err
	}
	return cities, nil
}

func (r *geoRepository) FindNeighborhoodByID(id uint) (*model.Neighborhood, error) {
	var neighborhood model.Neighborhood
	if err := r.db.First(&neighborhood, id).Error; err != nil {
		return nil, err
	}
	return &neighborhood, nil
}

func (r *geoRepository) FindNeighborhoodsByCity(cityID uint) ([]model.Neighborhood, error) {
	var neighborhoods []model.Neighborhood
	if err := r.db.Where("city_id = ?", cityID).Order("name ASC").Find(&neighborhoods).Error; err != nil {
		logger.Error("Failed to list neighborhoods for city", err, map[string]interface{}{
			"city_id": cityID,
		})
		return nil, err
	}
	return neighborhoods, nil
}
