package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/studyquest/backend/config"
	"github.com/studyquest/backend/database"
	_ "github.com/studyquest/backend/docs" // Swagger docs - auto-generated
	"github.com/studyquest/backend/internal/auth"
	adminctrl "github.com/studyquest/backend/internal/controller/admin"
	userctrl "github.com/studyquest/backend/internal/controller/user"
	"github.com/studyquest/backend/internal/cron"
	"github.com/studyquest/backend/internal/logger"
	"github.com/studyquest/backend/internal/model"
	"github.com/studyquest/backend/internal/repository"
	"github.com/studyquest/backend/internal/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title StudyQuest API
// @version 1.0
// @description Backend for the StudyQuest learning platform: accounts and roles, flashcards with spaced review, study plans, challenges, materials, question bank with mock exams, and essay correction.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewStudentRepository,
			repository.NewTeacherRepository,
			repository.NewAdminRepository,
			repository.NewFlashcardRepository,
			repository.NewStudyPlanRepository,
			repository.NewChallengeRepository,
			repository.NewMaterialRepository,
			repository.NewQuestionRepository,
			repository.NewExamAttemptRepository,
			repository.NewEssayRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAccountService,
			service.NewUserService,
			service.NewStudentService,
			service.NewTeacherService,
			service.NewAdminService,
			service.NewFlashcardService,
			service.NewStudyPlanService,
			service.NewChallengeService,
			service.NewMaterialService,
			service.NewQuestionService,
			service.NewExamService,
			service.NewGeminiService,
			service.NewEssayService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewAccountController,
			userctrl.NewUserController,
			userctrl.NewStudentController,
			userctrl.NewTeacherController,
			userctrl.NewFlashcardController,
			userctrl.NewStudyPlanController,
			userctrl.NewChallengeController,
			userctrl.NewMaterialController,
			userctrl.NewExamController,
			userctrl.NewEssayController,
			adminctrl.NewAdminController,
			adminctrl.NewQuestionController,
			adminctrl.NewMaterialController,
		),

		fx.Provide(cron.NewReviewReminder),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(StartReviewReminder),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	accountCtrl *userctrl.AccountController,
	userCtrl *userctrl.UserController,
	studentCtrl *userctrl.StudentController,
	teacherCtrl *userctrl.TeacherController,
	flashcardCtrl *userctrl.FlashcardController,
	studyPlanCtrl *userctrl.StudyPlanController,
	challengeCtrl *userctrl.ChallengeController,
	materialCtrl *userctrl.MaterialController,
	examCtrl *userctrl.ExamController,
	essayCtrl *userctrl.EssayController,
	adminCtrl *adminctrl.AdminController,
	adminQuestionCtrl *adminctrl.QuestionController,
	adminMaterialCtrl *adminctrl.MaterialController,
) {
	api := router.Group("/api/v1")
	{
		// Accounts and lookups
		api.POST("/users", accountCtrl.Register)
		api.POST("/login", accountCtrl.Login)
		api.GET("/check-user", accountCtrl.CheckUser)
		api.GET("/user-type", accountCtrl.CheckUserType)
		api.POST("/check-password", accountCtrl.CheckPassword)
		api.POST("/password-recovery", accountCtrl.RecoverPassword)

		// Users and their nested listings
		api.GET("/users", userCtrl.GetAllUsers)
		api.GET("/users/:id", userCtrl.GetUser)
		api.PUT("/users/:id", userCtrl.UpdateUser)
		api.DELETE("/users/:id", userCtrl.DeleteUser)
		api.GET("/users/:id/flashcards", flashcardCtrl.GetFlashcardsByUser)
		api.GET("/users/:id/study-plans", studyPlanCtrl.GetEntriesByUser)
		api.GET("/users/:id/challenges", challengeCtrl.GetChallengesWithProgress)
		api.GET("/users/:id/materials/progress", materialCtrl.GetProgressByUser)
		api.GET("/users/:id/exams", examCtrl.GetAttemptsByUser)
		api.GET("/users/:id/essays", essayCtrl.GetEssaysByUser)

		// Students
		api.GET("/students", studentCtrl.GetAllStudents)
		api.GET("/students/:user_id", studentCtrl.GetStudent)
		api.PUT("/students/:user_id", studentCtrl.UpdateStudent)
		api.PUT("/students/:user_id/intensive-mode", studentCtrl.SetIntensiveMode)
		api.GET("/students/:user_id/ranking", studentCtrl.GetRankingStatus)
		api.POST("/students/:user_id/xp", studentCtrl.AddXP)
		api.GET("/ranking", studentCtrl.GetGlobalRanking)

		// Teachers
		api.GET("/teachers", teacherCtrl.GetAllTeachers)
		api.GET("/teachers/:user_id", teacherCtrl.GetTeacher)
		api.PUT("/teachers/:user_id", teacherCtrl.UpdateSubject)
		api.DELETE("/teachers/:user_id", teacherCtrl.DeleteTeacher)

		// Flashcards
		api.POST("/flashcards", flashcardCtrl.CreateFlashcard)
		api.GET("/flashcards/:id", flashcardCtrl.GetFlashcard)
		api.PUT("/flashcards/:id", flashcardCtrl.UpdateFlashcard)
		api.DELETE("/flashcards/:id", flashcardCtrl.DeleteFlashcard)
		api.POST("/flashcards/:id/review", flashcardCtrl.ReviewFlashcard)

		// Study plans
		api.POST("/study-plans", studyPlanCtrl.CreateEntry)
		api.PUT("/study-plans/:id", studyPlanCtrl.UpdateEntry)
		api.DELETE("/study-plans/:id", studyPlanCtrl.DeleteEntry)

		// Challenges
		api.POST("/challenges", challengeCtrl.CreateChallenge)
		api.GET("/challenges", challengeCtrl.GetAllChallenges)
		api.PUT("/challenges/:id", challengeCtrl.UpdateChallenge)
		api.DELETE("/challenges/:id", challengeCtrl.DeleteChallenge)
		api.POST("/challenges/:id/complete/:user_id", challengeCtrl.MarkCompleted)

		// Progress upserts
		api.POST("/progress/challenges", challengeCtrl.UpsertProgress)
		api.POST("/progress/materials", materialCtrl.UpsertProgress)

		// Materials
		api.POST("/materials", materialCtrl.CreateMaterial)
		api.GET("/materials", materialCtrl.GetAllMaterials)
		api.GET("/materials/:id/pdf", materialCtrl.GetMaterialPDF)

		// Mock exams
		api.GET("/exams/generate", examCtrl.GenerateExam)
		api.POST("/exams/submit", examCtrl.SubmitExam)

		// Essays
		api.POST("/essays", essayCtrl.CreateEssay)
		api.GET("/essays/:id", essayCtrl.GetEssay)
		api.POST("/essays/:id/ai-correction", essayCtrl.RequestAICorrection)
		api.POST("/essays/:id/teacher-correction", essayCtrl.ApplyTeacherCorrection)
	}

	// Admin routes require a valid session token
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(auth.Middleware(cfg.JWTSecret))
	{
		adminAPI.GET("/admins", adminCtrl.GetAllAdmins)
		adminAPI.POST("/admins", adminCtrl.CreateAdmin)

		adminAPI.POST("/questions", adminQuestionCtrl.CreateQuestion)
		adminAPI.GET("/questions", adminQuestionCtrl.GetAllQuestions)
		adminAPI.PUT("/questions/:id", adminQuestionCtrl.UpdateQuestion)
		adminAPI.DELETE("/questions/:id", adminQuestionCtrl.DeleteQuestion)
		adminAPI.POST("/import/questions", adminQuestionCtrl.ImportQuestions)

		adminAPI.PUT("/materials/:id", adminMaterialCtrl.UpdateMaterial)
		adminAPI.DELETE("/materials/:id", adminMaterialCtrl.DeleteMaterial)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("StudyQuest API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return err
			}
			return nil
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Student{},
		&model.Teacher{},
		&model.Admin{},
		&model.Flashcard{},
		&model.StudyPlanEntry{},
		&model.Challenge{},
		&model.ChallengeProgress{},
		&model.Material{},
		&model.MaterialProgress{},
		&model.Question{},
		&model.ExamAttempt{},
		&model.Essay{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

// StartReviewReminder wires the daily due-flashcard job into the app lifecycle.
func StartReviewReminder(lc fx.Lifecycle, reminder *cron.ReviewReminder, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return reminder.Start()
		},
		OnStop: func(ctx context.Context) error {
			reminder.Stop()
			return database.Close(db)
		},
	})
}
