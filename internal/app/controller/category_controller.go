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

type CategoryController struct {
	categoryService service.CategoryService
}

func NewCategoryController(categoryService service.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// ListCategories returns the flat list of active categories
// GET /api/v1/categories
func (ctrl *CategoryController) ListCategories(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	categories, err := ctrl.categoryService.ListCategories()
	if err != nil {
		log.Error("Failed to list categories", err, nil)
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// ListTree returns the root categories with their active children
// GET /api/v1/categories/tree
func (ctrl *CategoryController) ListTree(c *gin.Context) {
	categories, err := ctrl.categoryService.ListTree()
	if err != nil {
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
	})
}

// GetBySlug returns one category by its slug
// GET /api/v1/categories/:slug
func (ctrl *CategoryController) GetBySlug(c *gin.Context) {
	category, err := ctrl.categoryService.GetBySlug(c.Param("slug"))
	if err != nil {
		if stderrors.Is(err, service.ErrCategoryNotFound) {
			errors.NotFound(c, errors.CategoryNotFound, "Categoria nu a fost găsită")
			return
		}
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
	})
}

// FieldRules returns the permitted and required attributes for a category
// GET /api/v1/categories/:id/fields
func (ctrl *CategoryController) FieldRules(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Identificatorul categoriei nu este valid")
		return
	}

	rules, err := ctrl.categoryService.FieldRules(uint(categoryID))
	if err != nil {
		if stderrors.Is(err, service.ErrCategoryNotFound) {
			errors.NotFound(c, errors.CategoryNotFound, "Categoria nu a fost găsită")
			return
		}
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, rules)
}
