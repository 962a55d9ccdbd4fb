package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/alhuda-academy/admissions-api/api/swagger"
	"github.com/alhuda-academy/admissions-api/internal/handler"
	internalmiddleware "github.com/alhuda-academy/admissions-api/internal/middleware"
	"github.com/alhuda-academy/admissions-api/internal/models"
	"github.com/alhuda-academy/admissions-api/internal/repository"
	"github.com/alhuda-academy/admissions-api/internal/service"
	"github.com/alhuda-academy/admissions-api/pkg/cache"
	"github.com/alhuda-academy/admissions-api/pkg/config"
	"github.com/alhuda-academy/admissions-api/pkg/database"
	"github.com/alhuda-academy/admissions-api/pkg/jobs"
	"github.com/alhuda-academy/admissions-api/pkg/logger"
	"github.com/alhuda-academy/admissions-api/pkg/mailer"
	corsmiddleware "github.com/alhuda-academy/admissions-api/pkg/middleware/cors"
	reqidmiddleware "github.com/alhuda-academy/admissions-api/pkg/middleware/requestid"
	"github.com/alhuda-academy/admissions-api/pkg/storage"
)

// @title Al Huda Academy Admissions API
// @version 1.0.0
// @description Admissions and school services backend: enrollment forms, re-enrollment workflow, applications, calendar, gallery and site content.
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	var cacheRepo *repository.CacheRepository
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, enrollment cache disabled", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(client)
			defer cacheRepo.Close() //nolint:errcheck
		}
	}

	uploads, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init uploads storage", "error", err)
	}
	exportFiles, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init exports storage", "error", err)
	}
	signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)

	validate := validator.New()
	metrics := service.NewMetricsService()

	// Assign through the concrete check so an unconfigured relay stays a nil
	// interface instead of a typed-nil *SMTP.
	var mailSender mailer.Sender
	if smtp := mailer.New(cfg.Mail, logr); smtp != nil {
		mailSender = smtp
	} else {
		logr.Sugar().Warnw("smtp relay not configured, outbound mail disabled")
	}
	notifications := service.NewNotifications(mailSender, cfg.Mail.AdminEmail, logr)

	userRepo := repository.NewUserRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)
	healthFormRepo := repository.NewHealthFormRepository(db)
	emergencyRepo := repository.NewEmergencyContactRepository(db)
	pictureAuthRepo := repository.NewPictureAuthorizationRepository(db)
	transferRepo := repository.NewTransferRecordsRepository(db)
	tuitionRepo := repository.NewTuitionContractRepository(db)
	renrollRepo := repository.NewRenrollRepository(db)
	newEnrollmentRepo := repository.NewNewEnrollmentRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	contactRepo := repository.NewContactRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	surveyRepo := repository.NewSurveyRepository(db)
	contentRepo := repository.NewContentRepository(db)
	exportRepo := repository.NewExportRepository(db)

	authSvc := service.NewAuthService(userRepo, notifications, validate, logr, service.AuthConfig{
		Secret:       cfg.JWT.Secret,
		TokenExpiry:  cfg.JWT.Expiration,
		ResetCodeTTL: cfg.JWT.ResetCodeTTL,
		Issuer:       cfg.JWT.Issuer,
	})

	var enrollmentSvc *service.EnrollmentService
	var formsSvc *service.FormsService
	if cacheRepo != nil {
		enrollmentSvc = service.NewEnrollmentService(registrationRepo, healthFormRepo, emergencyRepo,
			pictureAuthRepo, transferRepo, tuitionRepo, cacheRepo, cfg.Cache.EnrollmentTTL, validate, logr)
		formsSvc = service.NewFormsService(registrationRepo, healthFormRepo, emergencyRepo,
			pictureAuthRepo, transferRepo, tuitionRepo, cacheRepo, validate, logr)
	} else {
		enrollmentSvc = service.NewEnrollmentService(registrationRepo, healthFormRepo, emergencyRepo,
			pictureAuthRepo, transferRepo, tuitionRepo, nil, cfg.Cache.EnrollmentTTL, validate, logr)
		formsSvc = service.NewFormsService(registrationRepo, healthFormRepo, emergencyRepo,
			pictureAuthRepo, transferRepo, tuitionRepo, nil, validate, logr)
	}
	enrollmentSvc.SetMetrics(metrics)
	formsSvc.SetMetrics(metrics)

	renrollSvc := service.NewRenrollService(renrollRepo, logr)
	newEnrollmentSvc := service.NewDirectEnrollmentService(newEnrollmentRepo, uploads, signer, cfg.Uploads, cfg.APIPrefix, logr)
	calendarSvc := service.NewCalendarService(calendarRepo, validate, logr)
	gallerySvc := service.NewGalleryService(galleryRepo, uploads, cfg.Uploads, logr)
	contactSvc := service.NewContactService(contactRepo, notifications, validate, logr)
	applicationSvc := service.NewApplicationService(applicationRepo, uploads, notifications, validate, logr)
	surveySvc := service.NewSurveyService(surveyRepo, validate, logr)
	contentSvc := service.NewContentService(contentRepo, logr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var exportSvc *service.ExportService
	var exportQueue *jobs.Queue
	if cfg.Exports.Enabled {
		exportSvc = service.NewExportService(exportRepo, enrollmentSvc, exportFiles, signer, service.ExportConfig{
			APIPrefix:       cfg.APIPrefix,
			ResultTTL:       cfg.Exports.SignedURLTTL,
			CleanupInterval: time.Hour,
		}, logr)
		exportSvc.SetMetrics(metrics)
		exportQueue = jobs.NewQueue("exports", exportSvc.Handle, jobs.QueueConfig{
			Workers:    cfg.Exports.WorkerConcurrency,
			MaxRetries: cfg.Exports.WorkerRetries,
			Logger:     logr,
		})
		exportSvc.SetQueue(exportQueue)
		exportQueue.Start(ctx)
		exportSvc.StartCleanup(ctx)
	}

	authHandler := handler.NewAuthHandler(authSvc, handler.CookieConfig{
		Secure: cfg.JWT.CookieSecure,
		Domain: cfg.JWT.CookieDomain,
		MaxAge: cfg.JWT.Expiration,
	})
	formsHandler := handler.NewFormsHandler(formsSvc)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentSvc, gallerySvc)
	renrollHandler := handler.NewRenrollHandler(renrollSvc)
	newEnrollmentHandler := handler.NewDirectEnrollmentHandler(newEnrollmentSvc)
	calendarHandler := handler.NewCalendarHandler(calendarSvc)
	galleryHandler := handler.NewGalleryHandler(gallerySvc)
	contactHandler := handler.NewContactHandler(contactSvc)
	applicationHandler := handler.NewApplicationHandler(applicationSvc)
	surveyHandler := handler.NewSurveyHandler(surveySvc)
	contentHandler := handler.NewContentHandler(contentSvc)
	filesHandler := handler.NewFilesHandler(signer, uploads)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.Static("/uploads", cfg.Uploads.Dir)

	authRequired := internalmiddleware.JWT(authSvc)
	adminOnly := internalmiddleware.RequireRole(models.RoleAdmin)

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", authRequired, authHandler.Me)
		auth.POST("/reset-password", authHandler.ForgotPassword)
		auth.POST("/reset-password/confirm", authHandler.ResetPassword)
	}

	forms := api.Group("/forms")
	{
		reg := forms.Group("/student-registration")
		reg.POST("", formsHandler.CreateRegistration)
		reg.GET("", formsHandler.ListRegistrations)
		reg.GET("/:id", formsHandler.GetRegistration)
		reg.DELETE("/:id", formsHandler.DeleteRegistration)

		health := forms.Group("/health-form")
		health.POST("", formsHandler.CreateHealthForm)
		health.GET("", formsHandler.ListHealthForms)
		health.GET("/:id", formsHandler.GetHealthForm)
		health.DELETE("/:id", formsHandler.DeleteHealthForm)

		emergency := forms.Group("/emergency-contact")
		emergency.POST("", formsHandler.CreateEmergencyContact)
		emergency.GET("", formsHandler.ListEmergencyContacts)
		emergency.GET("/:id", formsHandler.GetEmergencyContact)
		emergency.DELETE("/:id", formsHandler.DeleteEmergencyContact)

		pictures := forms.Group("/picture-authorization")
		pictures.POST("", formsHandler.CreatePictureAuthorization)
		pictures.GET("", formsHandler.ListPictureAuthorizations)
		pictures.GET("/:id", formsHandler.GetPictureAuthorization)
		pictures.DELETE("/:id", formsHandler.DeletePictureAuthorization)

		transfers := forms.Group("/transfer-records")
		transfers.POST("", formsHandler.CreateTransferRecords)
		transfers.GET("", formsHandler.ListTransferRecords)
		transfers.GET("/:id", formsHandler.GetTransferRecords)
		transfers.DELETE("/:id", formsHandler.DeleteTransferRecords)

		tuition := forms.Group("/tuition-contract")
		tuition.POST("", formsHandler.CreateTuitionContract)
		tuition.GET("", formsHandler.ListTuitionContracts)
		tuition.GET("/:id", formsHandler.GetTuitionContract)
		tuition.DELETE("/:id", formsHandler.DeleteTuitionContract)

		forms.GET("/enrollments", enrollmentHandler.List)
		forms.GET("/enrollments/:id", enrollmentHandler.Get)
		forms.POST("/enrollment", enrollmentHandler.SubmitCombined)
		forms.GET("/enrollment/:enrollmentId", enrollmentHandler.GetByKey)

		newEnrollment := forms.Group("/new-enrollment")
		newEnrollment.POST("", newEnrollmentHandler.Submit)
		newEnrollment.GET("", newEnrollmentHandler.List)
		newEnrollment.GET("/:id", newEnrollmentHandler.Get)
		newEnrollment.PATCH("/:id/status", authRequired, adminOnly, newEnrollmentHandler.UpdateStatus)
		newEnrollment.DELETE("/:id", authRequired, adminOnly, newEnrollmentHandler.Delete)
	}

	renroll := api.Group("/renroll")
	{
		renroll.POST("/renroll-form", renrollHandler.Submit)
		renroll.GET("/renroll-form", renrollHandler.List)
		renroll.GET("/renroll-form/:id", renrollHandler.Get)
		renroll.DELETE("/renroll-form/:id", renrollHandler.Delete)
		renroll.POST("/validate-step", renrollHandler.ValidateStep)
	}

	events := api.Group("/calendar/events")
	{
		events.GET("", calendarHandler.List)
		events.GET("/range", calendarHandler.ListRange)
		events.GET("/:id", calendarHandler.Get)
		events.POST("", authRequired, adminOnly, calendarHandler.Create)
		events.POST("/bulk", authRequired, adminOnly, calendarHandler.CreateBulk)
		events.PUT("/:id", authRequired, adminOnly, calendarHandler.Update)
		events.DELETE("/:id", authRequired, adminOnly, calendarHandler.Delete)
	}

	gallery := api.Group("/gallery")
	{
		gallery.GET("", galleryHandler.List)
		gallery.POST("", authRequired, adminOnly, galleryHandler.Upload)
		gallery.DELETE("/:id", authRequired, adminOnly, galleryHandler.Delete)
	}

	contact := api.Group("/contact")
	{
		contact.POST("", contactHandler.Submit)
		contact.GET("", authRequired, adminOnly, contactHandler.List)
		contact.GET("/:id", authRequired, adminOnly, contactHandler.Get)
		contact.POST("/:id/reply", authRequired, adminOnly, contactHandler.Reply)
		contact.PUT("/:id/status", authRequired, adminOnly, contactHandler.UpdateStatus)
		contact.DELETE("/:id", authRequired, adminOnly, contactHandler.Delete)
	}

	applications := api.Group("/applications")
	{
		jobApps := applications.Group("/jobs")
		jobApps.POST("", applicationHandler.SubmitJob)
		jobApps.GET("", authRequired, adminOnly, applicationHandler.ListJobs)
		registerApplicationRoutes(jobApps, applicationHandler, authRequired, adminOnly)

		volunteerApps := applications.Group("/volunteers")
		volunteerApps.POST("", applicationHandler.SubmitVolunteer)
		volunteerApps.GET("", authRequired, adminOnly, applicationHandler.ListVolunteers)
		registerApplicationRoutes(volunteerApps, applicationHandler, authRequired, adminOnly)
	}

	surveys := api.Group("/surveys")
	{
		surveys.POST("/parent", surveyHandler.SubmitParent)
		surveys.POST("/staff", surveyHandler.SubmitStaff)
		surveys.POST("/student", surveyHandler.SubmitStudent)
		surveys.GET("/parent", authRequired, adminOnly, surveyHandler.ListParent)
		surveys.GET("/staff", authRequired, adminOnly, surveyHandler.ListStaff)
		surveys.GET("/student", authRequired, adminOnly, surveyHandler.ListStudent)
		surveys.GET("/:id", authRequired, adminOnly, surveyHandler.Get)
		surveys.DELETE("/:id", authRequired, adminOnly, surveyHandler.Delete)
	}

	content := api.Group("/content")
	{
		content.GET("/:page", contentHandler.Get)
		content.PUT("/:page", authRequired, adminOnly, contentHandler.Update)
	}

	if exportSvc != nil {
		exportHandler := handler.NewExportHandler(exportSvc)
		exports := api.Group("/exports")
		exports.POST("", authRequired, adminOnly, exportHandler.Create)
		exports.GET("/:id", authRequired, adminOnly, exportHandler.Status)
		exports.GET("/download/:token", exportHandler.Download)
	}

	api.GET("/files/:token", filesHandler.Download)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Warnw("graceful shutdown failed", "error", err)
	}
	if exportQueue != nil {
		exportQueue.Stop()
	}
}

// registerApplicationRoutes mounts the kind-agnostic per-record routes on an
// application group. Records are addressed by ID regardless of kind.
func registerApplicationRoutes(g *gin.RouterGroup, h *handler.ApplicationHandler, auth, admin gin.HandlerFunc) {
	g.GET("/:id", auth, admin, h.Get)
	g.PATCH("/:id/status", auth, admin, h.UpdateStatus)
	g.POST("/:id/email", auth, admin, h.SendEmail)
	g.GET("/:id/emails", auth, admin, h.Emails)
	g.DELETE("/:id", auth, admin, h.Delete)
}
