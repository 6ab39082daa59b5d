package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"medapp-server/internal/auth"
	"medapp-server/internal/handlers"
	"medapp-server/internal/metrics"
	"medapp-server/internal/middleware"
	"medapp-server/internal/storage"
	"medapp-server/internal/store"
)

// Services are the collaborators the routes are built from.
type Services struct {
	Credentials *store.CredentialStore
	Records     *store.RecordStore
	Tokens      *auth.TokenService
	Resolver    *auth.Resolver
	Objects     storage.ObjectStore // optional
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
}

// NewRouter builds the engine with the global middleware chain and all routes.
func NewRouter(origin string, s Services) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(), middleware.Recovery())
	if s.Metrics != nil {
		router.Use(middleware.Metrics(s.Metrics))
	}

	corsConfig := cors.DefaultConfig()
	if origin == "" || origin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{origin}
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderXRequestID}
	router.Use(cors.New(corsConfig))

	SetupRoutes(router, s)
	return router
}

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, s Services) {
	authHandler := handlers.NewAuthHandler(s.Credentials, s.Tokens)
	patientHandler := handlers.NewPatientHandler(s.Records)
	appointmentHandler := handlers.NewAppointmentHandler(s.Records)
	noteHandler := handlers.NewNoteHandler(s.Records)
	vitalHandler := handlers.NewVitalSignHandler(s.Records)
	photoHandler := handlers.NewPhotoHandler(s.Records, s.Objects)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if s.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{})))
	}

	// Registration and login are the only unauthenticated operations
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	private := router.Group("")
	private.Use(middleware.AuthMiddleware(s.Resolver, s.Metrics))
	{
		private.GET("/auth/me", authHandler.Me)

		patients := private.Group("/patients")
		{
			patients.GET("", patientHandler.ListPatients)
			patients.POST("", patientHandler.CreatePatient)
			patients.GET("/:id", patientHandler.GetPatient)
			patients.PUT("/:id", patientHandler.UpdatePatient)
			patients.DELETE("/:id", patientHandler.DeletePatient)

			patients.GET("/:id/appointments", appointmentHandler.ListAppointments)
			patients.POST("/:id/appointments", appointmentHandler.CreateAppointment)
			patients.GET("/:id/notes", noteHandler.ListNotes)
			patients.POST("/:id/notes", noteHandler.CreateNote)
			patients.GET("/:id/vitals", vitalHandler.ListVitalSigns)
			patients.POST("/:id/vitals", vitalHandler.CreateVitalSign)
			patients.GET("/:id/photos", photoHandler.ListPhotos)
			patients.POST("/:id/photos", photoHandler.CreatePhoto)
			if s.Objects != nil {
				router.MaxMultipartMemory = 10 << 20
				patients.POST("/:id/photos/upload", photoHandler.UploadPhoto)
			}
		}

		appointments := private.Group("/appointments")
		{
			appointments.GET("/:id", appointmentHandler.GetAppointment)
			appointments.PUT("/:id", appointmentHandler.UpdateAppointment)
			appointments.DELETE("/:id", appointmentHandler.DeleteAppointment)
		}

		notes := private.Group("/notes")
		{
			notes.GET("/:id", noteHandler.GetNote)
			notes.PUT("/:id", noteHandler.UpdateNote)
			notes.DELETE("/:id", noteHandler.DeleteNote)
		}

		vitals := private.Group("/vitals")
		{
			vitals.GET("/:id", vitalHandler.GetVitalSign)
			vitals.PUT("/:id", vitalHandler.UpdateVitalSign)
			vitals.DELETE("/:id", vitalHandler.DeleteVitalSign)
		}

		photos := private.Group("/photos")
		{
			photos.GET("/:id", photoHandler.GetPhoto)
			photos.PUT("/:id", photoHandler.UpdatePhoto)
			photos.DELETE("/:id", photoHandler.DeletePhoto)
		}
	}
}
