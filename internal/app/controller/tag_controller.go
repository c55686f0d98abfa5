package controller

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imocasa/imocasa-backend/internal/app/service"
	"github.com/imocasa/imocasa-backend/internal/errors"
	"github.com/imocasa/imocasa-backend/internal/middleware"
)

type TagController struct {
	tagService service.TagService
}

func NewTagController(tagService service.TagService) *TagController {
	return &TagController{tagService: tagService}
}

// ListTags returns the approved tags
// GET /api/v1/tags
func (ctrl *TagController) ListTags(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	tags, err := ctrl.tagService.ListActive()
	if err != nil {
		log.Error("Failed to list tags", err, nil)
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tags":  tags,
		"count": len(tags),
	})
}

type proposeTagRequest struct {
	Name string `json:"name" binding:"required,max=30"`
}

// ProposeTag submits a tag for moderation
// POST /api/v1/tags
func (ctrl *TagController) ProposeTag(c *gin.Context) {
	var req proposeTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Datele trimise nu sunt valide")
		return
	}

	tag, err := ctrl.tagService.Propose(req.Name)
	if err != nil {
		if fieldErrs := service.AsFieldErrors(err); fieldErrs != nil {
			errors.RespondWithValidationError(c, fieldErrs)
			return
		}
		if stderrors.Is(err, service.ErrTagNameTaken) {
			errors.Conflict(c, errors.ResourceAlreadyExists, "Eticheta există deja")
			return
		}
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Eticheta a fost trimisă spre aprobare",
		"tag":     tag,
	})
}
