package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/kenzychew/pet-app-sub000/internal/audit"
	"github.com/kenzychew/pet-app-sub000/internal/cache"
	"github.com/kenzychew/pet-app-sub000/internal/config"
	"github.com/kenzychew/pet-app-sub000/internal/handlers"
	infraRepo "github.com/kenzychew/pet-app-sub000/internal/infra/repository"
	"github.com/kenzychew/pet-app-sub000/internal/middleware"
	"github.com/kenzychew/pet-app-sub000/internal/models"
	"github.com/kenzychew/pet-app-sub000/internal/notify"
	"github.com/kenzychew/pet-app-sub000/internal/storage"
	"github.com/kenzychew/pet-app-sub000/internal/timezone"
	ucAppointment "github.com/kenzychew/pet-app-sub000/internal/usecase/appointment"
	ucAvailability "github.com/kenzychew/pet-app-sub000/internal/usecase/availability"
	ucTimeBlock "github.com/kenzychew/pet-app-sub000/internal/usecase/timeblock"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ------------------------------
	// Infra (singletons)
	// ------------------------------
	loc := timezone.Location(cfg.BusinessTZ)

	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	timeBlockRepo := infraRepo.NewTimeBlockGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifyDispatcher := notify.NewDispatcher(notify.LogSink{})

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	slotCache := cache.NewSlotCache(rdb)

	photoStore := storage.NewPhotoStore(cfg)

	// ------------------------------
	// Use cases
	// ------------------------------
	createUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher, notifyDispatcher, slotCache, loc)
	rescheduleUC := ucAppointment.NewRescheduleAppointment(appointmentRepo, auditDispatcher, notifyDispatcher, slotCache, loc)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher, notifyDispatcher, slotCache, loc)
	acknowledgeUC := ucAppointment.NewAcknowledgeAppointment(appointmentRepo, auditDispatcher)
	startUC := ucAppointment.NewStartService(appointmentRepo, auditDispatcher)
	completeUC := ucAppointment.NewCompleteService(appointmentRepo, auditDispatcher)
	noShowUC := ucAppointment.NewMarkNoShow(appointmentRepo, auditDispatcher, slotCache, loc)
	listUC := ucAppointment.NewListAppointments(appointmentRepo)
	getUC := ucAppointment.NewGetAppointment(appointmentRepo)

	availabilityUC := ucAvailability.NewGetAvailability(appointmentRepo, timeBlockRepo, slotCache, loc)

	createBlockUC := ucTimeBlock.NewCreateTimeBlock(timeBlockRepo, auditDispatcher, slotCache, loc)
	updateBlockUC := ucTimeBlock.NewUpdateTimeBlock(timeBlockRepo, auditDispatcher, slotCache, loc)
	deleteBlockUC := ucTimeBlock.NewDeleteTimeBlock(timeBlockRepo, auditDispatcher, slotCache, loc)

	// ------------------------------
	// Handlers
	// ------------------------------
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	petHandler := handlers.NewPetHandler(db)
	groomerHandler := handlers.NewGroomerHandler(db, cfg, availabilityUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		cfg,
		photoStore,
		createUC,
		rescheduleUC,
		cancelUC,
		acknowledgeUC,
		startUC,
		completeUC,
		noShowUC,
		listUC,
		getUC,
	)

	timeBlockHandler := handlers.NewTimeBlockHandler(db, cfg, createBlockUC, updateBlockUC, deleteBlockUC)

	// ------------------------------
	// API
	// ------------------------------
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/audit-logs", auditLogsHandler.List)

			secured.GET("/groomers", groomerHandler.List)
			secured.GET("/groomers/:id/availability", groomerHandler.Availability)

			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)

			owner := secured.Group("/")
			owner.Use(middleware.RequireRole(models.RoleOwner))
			{
				owner.POST("/pets", petHandler.Create)
				owner.GET("/pets", petHandler.List)
				owner.GET("/pets/:id", petHandler.Get)
				owner.PATCH("/pets/:id", petHandler.Update)
				owner.DELETE("/pets/:id", petHandler.Delete)

				owner.POST("/appointments", appointmentHandler.Create)
				owner.PATCH("/appointments/:id", appointmentHandler.Reschedule)
				owner.DELETE("/appointments/:id", appointmentHandler.Cancel)
			}

			groomer := secured.Group("/")
			groomer.Use(middleware.RequireRole(models.RoleGroomer))
			{
				groomer.PATCH("/appointments/:id/acknowledge", appointmentHandler.Acknowledge)
				groomer.PATCH("/appointments/:id/start", appointmentHandler.Start)
				groomer.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
				groomer.PATCH("/appointments/:id/no-show", appointmentHandler.NoShow)

				groomer.POST("/time-blocks", timeBlockHandler.Create)
				groomer.GET("/time-blocks", timeBlockHandler.List)
				groomer.PATCH("/time-blocks/:id", timeBlockHandler.Update)
				groomer.DELETE("/time-blocks/:id", timeBlockHandler.Delete)
			}
		}
	}
}
