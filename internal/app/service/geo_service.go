package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/internal/app/repository"
)

var (
	ErrCountyNotFound       = errors.New("județul nu a fost găsit")
	ErrCityNotFound         = errors.New("orașul nu a fost găsit")
	ErrNeighborhoodNotFound = errors.New("cartierul nu a fost găsit")
)

type GeoService interface {
	ListCounties() ([]model.County, error)
	ListCities(countyID uint) ([]model.City, error)
	ListNeighborhoods(cityID uint) ([]model.Neighborhood, error)
}

type geoService struct {
	geo repository.GeoRepository
}

func NewGeoService(geo repository.GeoRepository) GeoService {
	return &geoService{geo: geo}
}

func (s *geoService) ListCounties() ([]model.County, error) {
	return s.geo.FindAllCounties()
}

func (s *geoService) ListCities(countyID uint) ([]model.City, error) {
	if _, err := s.geo.FindCountyByID(countyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCountyNotFound
		}
		return nil, err
	}
	return s.geo.FindCitiesByCounty(countyID)
}

func (s *geoService) ListNeighborhoods(cityID uint) ([]model.Neighborhood, error) {
	if _, err := s.geo.FindCityByID(cityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}
	return s.geo.FindNeighborhoodsByCity(cityID)
}
