package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kenzychew/pet-app-sub000/internal/config"
	"github.com/kenzychew/pet-app-sub000/internal/httperr"
	"github.com/kenzychew/pet-app-sub000/internal/httpresp"
	"github.com/kenzychew/pet-app-sub000/internal/middleware"
	"github.com/kenzychew/pet-app-sub000/internal/models"
	"github.com/kenzychew/pet-app-sub000/internal/storage"
	ucAppointment "github.com/kenzychew/pet-app-sub000/internal/usecase/appointment"
)

type AppointmentHandler struct {
	config *config.Config
	photos *storage.PhotoStore

	createUC      *ucAppointment.CreateAppointment
	rescheduleUC  *ucAppointment.RescheduleAppointment
	cancelUC      *ucAppointment.CancelAppointment
	acknowledgeUC *ucAppointment.AcknowledgeAppointment
	startUC       *ucAppointment.StartService
	completeUC    *ucAppointment.CompleteService
	noShowUC      *ucAppointment.MarkNoShow
	listUC        *ucAppointment.ListAppointments
	getUC         *ucAppointment.GetAppointment
}

func NewAppointmentHandler(
	cfg *config.Config,
	photos *storage.PhotoStore,
	createUC *ucAppointment.CreateAppointment,
	rescheduleUC *ucAppointment.RescheduleAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	acknowledgeUC *ucAppointment.AcknowledgeAppointment,
	startUC *ucAppointment.StartService,
	completeUC *ucAppointment.CompleteService,
	noShowUC *ucAppointment.MarkNoShow,
	listUC *ucAppointment.ListAppointments,
	getUC *ucAppointment.GetAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		config:        cfg,
		photos:        photos,
		createUC:      createUC,
		rescheduleUC:  rescheduleUC,
		cancelUC:      cancelUC,
		acknowledgeUC: acknowledgeUC,
		startUC:       startUC,
		completeUC:    completeUC,
		noShowUC:      noShowUC,
		listUC:        listUC,
		getUC:         getUC,
	}
}

// ======================================================
// Requests
// ======================================================

type CreateAppointmentRequest struct {
	PetID       uint   `json:"pet_id" binding:"required"`
	GroomerID   uint   `json:"groomer_id" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
}

type RescheduleAppointmentRequest struct {
	PetID       uint   `json:"pet_id"`
	GroomerID   uint   `json:"groomer_id"`
	ServiceType string `json:"service_type"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// ======================================================
// Owner operations
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	loc := businessLocation(h.config)
	start, err := parseDateTimeIn(loc, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		OwnerID:     ownerID,
		PetID:       req.PetID,
		GroomerID:   req.GroomerID,
		ServiceType: req.ServiceType,
		Start:       start,
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	in := ucAppointment.RescheduleAppointmentInput{
		OwnerID:       ownerID,
		AppointmentID: id,
		PetID:         req.PetID,
		GroomerID:     req.GroomerID,
		ServiceType:   req.ServiceType,
	}

	if req.Date != "" || req.Time != "" {
		loc := businessLocation(h.config)
		start, err := parseDateTimeIn(loc, req.Date, req.Time)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
			return
		}
		in.Start = start
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)
	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), ownerID, id)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// Groomer operations
// ======================================================

func (h *AppointmentHandler) Acknowledge(c *gin.Context) {
	groomerID := c.MustGet(middleware.ContextUserID).(uint)
	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.acknowledgeUC.Execute(c.Request.Context(), groomerID, id)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Start(c *gin.Context) {
	groomerID := c.MustGet(middleware.ContextUserID).(uint)
	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.startUC.Execute(c.Request.Context(), groomerID, id)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// Complete accepts multipart form data: notes, optional final_price, and
// photo files. Photos upload best-effort; a failed upload is reported but
// never blocks completion.
func (h *AppointmentHandler) Complete(c *gin.Context) {
	groomerID := c.MustGet(middleware.ContextUserID).(uint)
	id, ok := pathID(c)
	if !ok {
		return
	}

	in := ucAppointment.CompleteServiceInput{
		GroomerID:     groomerID,
		AppointmentID: id,
		Notes:         c.PostForm("notes"),
	}

	if priceStr := c.PostForm("final_price"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_final_price", "Invalid final price.")
			return
		}
		in.FinalPrice = &price
	}

	var photoErrors []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["photos"] {
			f, err := fh.Open()
			if err != nil {
				photoErrors = append(photoErrors, fh.Filename)
				continue
			}

			key, url, err := h.photos.Upload(c.Request.Context(), f)
			f.Close()
			if err != nil {
				photoErrors = append(photoErrors, fh.Filename)
				continue
			}

			in.Photos = append(in.Photos, models.GroomingPhoto{
				AppointmentID: id,
				ObjectKey:     key,
				URL:           url,
			})
		}
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	if len(photoErrors) > 0 {
		c.JSON(200, gin.H{"appointment": ap, "failed_photos": photoErrors})
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	groomerID := c.MustGet(middleware.ContextUserID).(uint)
	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.noShowUC.Execute(c.Request.Context(), groomerID, id)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// Reads
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.GetString(middleware.ContextUserRole)

	aps, err := h.listUC.Execute(c.Request.Context(), callerID, role)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)
	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), callerID, id)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id), true
}
