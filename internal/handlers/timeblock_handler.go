package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kenzychew/pet-app-sub000/internal/config"
	tbdomain "github.com/kenzychew/pet-app-sub000/internal/domain/timeblock"
	"github.com/kenzychew/pet-app-sub000/internal/httperr"
	"github.com/kenzychew/pet-app-sub000/internal/httpresp"
	"github.com/kenzychew/pet-app-sub000/internal/middleware"
	"github.com/kenzychew/pet-app-sub000/internal/models"
	ucTimeBlock "github.com/kenzychew/pet-app-sub000/internal/usecase/timeblock"
)

type TimeBlockHandler struct {
	db     *gorm.DB
	config *config.Config

	createUC *ucTimeBlock.CreateTimeBlock
	updateUC *ucTimeBlock.UpdateTimeBlock
	deleteUC *ucTimeBlock.DeleteTimeBlock
}

func NewTimeBlockHandler(
	db *gorm.DB,
	cfg *config.Config,
	createUC *ucTimeBlock.CreateTimeBlock,
	updateUC *ucTimeBlock.UpdateTimeBlock,
	deleteUC *ucTimeBlock.DeleteTimeBlock,
) *TimeBlockHandler {
	return &TimeBlockHandler{
		db:       db,
		config:   cfg,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

type RecurrenceRequest struct {
	Frequency  string `json:"frequency"`
	DaysOfWeek []int  `json:"days_of_week"`
	EndDate    string `json:"end_date"`
}

type CreateTimeBlockRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	BlockType string `json:"block_type" binding:"required"`
	Reason    string `json:"reason"`

	Recurrence *RecurrenceRequest `json:"recurrence"`
}

type UpdateTimeBlockRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	BlockType string `json:"block_type"`
	Reason    string `json:"reason"`
}

func (h *TimeBlockHandler) Create(c *gin.Context) {
	groomerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateTimeBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid time block data.")
		return
	}

	loc := businessLocation(h.config)

	start, err1 := parseDateTimeIn(loc, req.Date, req.StartTime)
	end, err2 := parseDateTimeIn(loc, req.Date, req.EndTime)
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		return
	}

	in := ucTimeBlock.CreateTimeBlockInput{
		GroomerID: groomerID,
		Start:     start,
		End:       end,
		BlockType: req.BlockType,
		Reason:    req.Reason,
	}

	if req.Recurrence != nil {
		endDate, err := parseDateIn(loc, req.Recurrence.EndDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_recurrence_end", "Invalid recurrence end date.")
			return
		}
		in.Recurrence = &tbdomain.Recurrence{
			Frequency:  req.Recurrence.Frequency,
			DaysOfWeek: req.Recurrence.DaysOfWeek,
			EndDate:    endDate,
		}
	}

	created, err := h.createUC.Execute(c.Request.Context(), in)
	if err != nil {
		// a recurrence can fail mid-expansion; report what was created
		if len(created) > 0 {
			c.JSON(409, gin.H{
				"error_code": httperr.CodeOf(err),
				"message":    "Some occurrences could not be created.",
				"created":    created,
			})
			return
		}
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.Created(c, created)
}

func (h *TimeBlockHandler) List(c *gin.Context) {
	groomerID := c.MustGet(middleware.ContextUserID).(uint)

	var blocks []models.TimeBlock
	if err := h.db.
		Where("groomer_id = ?", groomerID).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		httperr.Internal(c, "failed_to_list_time_blocks", "Could not load time blocks.")
		return
	}

	httpresp.List(c, blocks)
}

func (h *TimeBlockHandler) Update(c *gin.Context) {
	groomerID := c.MustGet(middleware.ContextUserID).(uint)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateTimeBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid time block data.")
		return
	}

	in := ucTimeBlock.UpdateTimeBlockInput{
		GroomerID:   groomerID,
		TimeBlockID: id,
		BlockType:   req.BlockType,
		Reason:      req.Reason,
	}

	loc := businessLocation(h.config)
	if req.Date != "" && req.StartTime != "" {
		start, err := parseDateTimeIn(loc, req.Date, req.StartTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
			return
		}
		in.Start = start
	}
	if req.Date != "" && req.EndTime != "" {
		end, err := parseDateTimeIn(loc, req.Date, req.EndTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
			return
		}
		in.End = end
	}

	tb, err := h.updateUC.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, tb)
}

func (h *TimeBlockHandler) Delete(c *gin.Context) {
	groomerID := c.MustGet(middleware.ContextUserID).(uint)
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), groomerID, id); err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	c.Status(204)
}
