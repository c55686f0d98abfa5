package controller

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/imocasa/imocasa-backend/internal/app/service"
	"github.com/imocasa/imocasa-backend/internal/errors"
	"github.com/imocasa/imocasa-backend/internal/middleware"
)

type GeoController struct {
	geoService service.GeoService
}

func NewGeoController(geoService service.GeoService) *GeoController {
	return &GeoController{geoService: geoService}
}

// ListCounties returns all counties
// GET /api/v1/geo/counties
func (ctrl *GeoController) ListCounties(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	counties, err := ctrl.geoService.ListCounties()
	if err != nil {
		log.Error("Failed to list counties", err, nil)
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"counties": counties,
		"count":    len(counties),
	})
}

// ListCities returns the cities of a county
// GET /api/v1/geo/counties/:id/cities
func (ctrl *GeoController) ListCities(c *gin.Context) {
	countyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Identificatorul județului nu este valid")
		return
	}

	cities, err := ctrl.geoService.ListCities(uint(countyID))
	if err != nil {
		if stderrors.Is(err, service.ErrCountyNotFound) {
			errors.NotFound(c, errors.GeoCountyNotFound, "Județul nu a fost găsit")
			return
		}
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cities": cities,
		"count":  len(cities),
	})
}

// ListNeighborhoods returns the neighborhoods of a city
// GET /api/v1/geo/cities/:id/neighborhoods
func (ctrl *GeoController) ListNeighborhoods(c *gin.Context) {
	cityID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Identificatorul orașului nu este valid")
		return
	}

	neighborhoods, err := ctrl.geoService.ListNeighborhoods(uint(cityID))
	if err != nil {
		if stderrors.Is(err, service.ErrCityNotFound) {
			errors.NotFound(c, errors.GeoCityNotFound, "Orașul nu a fost găsit")
			return
		}
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"neighborhoods": neighborhoods,
		"count":         len(neighborhoods),
	})
}
