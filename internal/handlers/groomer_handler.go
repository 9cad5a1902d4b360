package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kenzychew/pet-app-sub000/internal/config"
	"github.com/kenzychew/pet-app-sub000/internal/httperr"
	"github.com/kenzychew/pet-app-sub000/internal/httpresp"
	"github.com/kenzychew/pet-app-sub000/internal/models"
	ucAvailability "github.com/kenzychew/pet-app-sub000/internal/usecase/availability"
)

type GroomerHandler struct {
	db           *gorm.DB
	config       *config.Config
	availability *ucAvailability.GetAvailability
}

func NewGroomerHandler(
	db *gorm.DB,
	cfg *config.Config,
	availability *ucAvailability.GetAvailability,
) *GroomerHandler {
	return &GroomerHandler{
		db:           db,
		config:       cfg,
		availability: availability,
	}
}

type GroomerDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (h *GroomerHandler) List(c *gin.Context) {
	var groomers []GroomerDTO
	if err := h.db.
		Model(&models.User{}).
		Where("role = ?", models.RoleGroomer).
		Order("name ASC").
		Find(&groomers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_groomers", "Could not load groomers.")
		return
	}

	httpresp.List(c, groomers)
}

func (h *GroomerHandler) Availability(c *gin.Context) {
	groomerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_groomer_id", "Invalid groomer id.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	loc := businessLocation(h.config)
	date, err := parseDateIn(loc, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	durationMin, err := strconv.Atoi(c.DefaultQuery("duration", "60"))
	if err != nil {
		httperr.BadRequest(c, "invalid_duration", "Invalid duration.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), uint(groomerID), date, durationMin)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.List(c, slots)
}
