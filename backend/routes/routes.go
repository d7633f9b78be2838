package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"edumarket/backend/catalog"
	"edumarket/backend/config"
	"edumarket/backend/controllers"
	"edumarket/backend/middleware"
	"edumarket/backend/models"
	"edumarket/backend/services"
	"edumarket/backend/store"
	"edumarket/backend/users"
)

// Deps carries everything the route table needs. main wires the
// Postgres/Redis adapters; tests wire the in-memory ones.
type Deps struct {
	Cfg         *config.Config
	Logger      *log.Logger
	Catalog     catalog.Repository
	Users       users.Repository
	Store       store.Store
	Votes       services.VoteRepository
	Enrollments services.EnrollmentRepository
}

func SetupRoutes(app *fiber.App, deps Deps) {
	progressService := services.NewProgressService(deps.Catalog, deps.Store, deps.Logger)
	quizService := services.NewQuizService(deps.Catalog, deps.Store, deps.Logger)
	votingService := services.NewVotingService(deps.Votes, progressService)
	cartService := services.NewCartService(deps.Catalog, deps.Store, deps.Enrollments, deps.Logger)

	// Auth routes
	authController := controllers.NewAuthController(deps.Users, deps.Cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	authMiddleware := middleware.AuthMiddleware(deps.Cfg)
	teacherOnly := middleware.RequireRole(models.RoleTeacher)

	// User routes
	userController := controllers.NewUserController(deps.Users, deps.Store)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)
	app.Get("/api/user/language", authMiddleware, userController.GetLanguage)
	app.Put("/api/user/language", authMiddleware, userController.SetLanguage)

	// Courses routes
	coursesController := controllers.NewCoursesController(deps.Catalog, votingService, deps.Users)
	courses := app.Group("/api/courses", authMiddleware)
	courses.Get("/", coursesController.ListCourses)
	courses.Get("/:id", coursesController.GetCourseDetails)

	// Learning routes
	learnController := controllers.NewLearnController(deps.Catalog, progressService, quizService)
	courses.Get("/:id/learn", learnController.Learn)
	courses.Get("/:id/learn/:lessonId", learnController.GetLesson)
	courses.Get("/:id/progress", learnController.GetProgress)
	courses.Post("/:id/progress", learnController.MarkComplete)

	// Quiz routes
	quizController := controllers.NewQuizController(quizService)
	courses.Get("/:id/quiz/:lessonId", quizController.GetSession)
	courses.Post("/:id/quiz/:lessonId/answer", quizController.Answer)
	courses.Post("/:id/quiz/:lessonId/advance", quizController.Advance)
	courses.Post("/:id/quiz/:lessonId/previous", quizController.Previous)
	courses.Post("/:id/quiz/:lessonId/score", quizController.Score)

	// Voting routes
	votesController := controllers.NewVotesController(votingService)
	courses.Get("/:id/votes", votesController.GetSummary)
	courses.Post("/:id/votes/rating", votesController.SubmitRating)
	courses.Post("/:id/votes/binary", votesController.SubmitVote)
	courses.Delete("/:id/votes", votesController.RemoveVote)

	// Cart routes
	cartController := controllers.NewCartController(cartService)
	cart := app.Group("/api/cart", authMiddleware)
	cart.Get("/", cartController.GetCart)
	cart.Post("/", cartController.AddItem)
	cart.Delete("/:courseId", cartController.RemoveItem)
	cart.Delete("/", cartController.ClearCart)
	cart.Post("/checkout", cartController.Checkout)
	app.Get("/api/enrollments", authMiddleware, cartController.ListEnrollments)

	// Teacher/admin console
	dashboardController := controllers.NewDashboardController(deps.Catalog, votingService, deps.Enrollments)
	admin := app.Group("/api/admin", authMiddleware, teacherOnly)
	admin.Get("/dashboard", dashboardController.Overview)
	admin.Post("/courses", coursesController.CreateCourse)
	admin.Post("/courses/:id/sections", coursesController.AddSection)
	admin.Post("/sections/:sectionId/lessons", coursesController.AddLesson)
	admin.Put("/lessons/:lessonId/quiz", coursesController.SetQuiz)
}
