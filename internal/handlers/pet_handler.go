package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/kenzychew/pet-app-sub000/internal/domain/appointment"
	"github.com/kenzychew/pet-app-sub000/internal/httperr"
	"github.com/kenzychew/pet-app-sub000/internal/httpresp"
	"github.com/kenzychew/pet-app-sub000/internal/middleware"
	"github.com/kenzychew/pet-app-sub000/internal/models"
)

type PetHandler struct {
	db *gorm.DB
}

func NewPetHandler(db *gorm.DB) *PetHandler {
	return &PetHandler{db: db}
}

type PetRequest struct {
	Name    string `json:"name" binding:"required"`
	Species string `json:"species"`
	Breed   string `json:"breed"`
	Notes   string `json:"notes"`
}

func (h *PetHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var req PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid pet data.")
		return
	}

	pet := models.Pet{
		OwnerID: ownerID,
		Name:    req.Name,
		Species: req.Species,
		Breed:   req.Breed,
		Notes:   req.Notes,
	}

	if err := h.db.Create(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_create_pet", "Could not save pet.")
		return
	}

	httpresp.Created(c, pet)
}

func (h *PetHandler) List(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var pets []models.Pet
	if err := h.db.
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&pets).Error; err != nil {
		httperr.Internal(c, "failed_to_list_pets", "Could not load pets.")
		return
	}

	httpresp.List(c, pets)
}

func (h *PetHandler) Get(c *gin.Context) {
	pet, ok := h.ownedPet(c)
	if !ok {
		return
	}
	httpresp.OK(c, pet)
}

func (h *PetHandler) Update(c *gin.Context) {
	pet, ok := h.ownedPet(c)
	if !ok {
		return
	}

	var req PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid pet data.")
		return
	}

	pet.Name = req.Name
	pet.Species = req.Species
	pet.Breed = req.Breed
	pet.Notes = req.Notes

	if err := h.db.Save(pet).Error; err != nil {
		httperr.Internal(c, "failed_to_update_pet", "Could not save pet.")
		return
	}

	httpresp.OK(c, pet)
}

func (h *PetHandler) Delete(c *gin.Context) {
	pet, ok := h.ownedPet(c)
	if !ok {
		return
	}

	// a pet with upcoming bookings cannot disappear from under them
	var count int64
	if err := h.db.
		Model(&models.Appointment{}).
		Where(
			"pet_id = ? AND status IN ? AND start_time > ?",
			pet.ID, domain.OccupyingStatuses(), time.Now().UTC(),
		).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_pet", "Could not delete pet.")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "pet_has_upcoming_appointments", "Cancel upcoming appointments first.")
		return
	}

	if err := h.db.Delete(pet).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_pet", "Could not delete pet.")
		return
	}

	c.Status(204)
}

func (h *PetHandler) ownedPet(c *gin.Context) (*models.Pet, bool) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var pet models.Pet
	if err := h.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&pet).Error; err != nil {
		httperr.NotFound(c, "pet_not_found", "Pet not found.")
		return nil, false
	}
	return &pet, true
}
