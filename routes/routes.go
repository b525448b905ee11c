package routes

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/controllers"
	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/middlewares"
	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/services"
)

// SetupRouter wires services and controllers onto the gin engine.
// templatesGlob points at the page templates, e.g. "templates/*.html".
func SetupRouter(db *gorm.DB, sessionSecret []byte, templatesGlob string) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob(templatesGlob)

	authSvc := services.NewAuthService(db)
	userSvc := services.NewUserService(db)
	progressSvc := services.NewProgressService(db)
	planSvc := services.NewPlanService()

	home := controllers.NewHomeController()
	auth := controllers.NewAuthController(authSvc, sessionSecret)
	dashboard := controllers.NewDashboardController(userSvc, progressSvc, planSvc)
	plan := controllers.NewPlanController(userSvc, planSvc)
	progress := controllers.NewProgressController(progressSvc)
	profile := controllers.NewProfileController(userSvc, sessionSecret)

	// stricter limit on the credential endpoints
	authLimiter := middlewares.NewRateLimiter(rate.Limit(5), 10)

	r.GET("/", home.Home)
	r.GET("/register", auth.RegisterPage)
	r.POST("/register", authLimiter.LimitMiddleware(), auth.Register)
	r.GET("/login", auth.LoginPage)
	r.POST("/login", authLimiter.LimitMiddleware(), auth.Login)
	r.GET("/logout", auth.Logout)

	pages := r.Group("")
	pages.Use(middlewares.RequireAuth(sessionSecret))
	{
		pages.GET("/dashboard", dashboard.Dashboard)
		pages.GET("/diet", plan.Diet)
		pages.POST("/diet", plan.Diet)
		pages.GET("/workout", plan.Workout)
		pages.POST("/workout", plan.Workout)
		pages.GET("/add_progress", progress.AddProgressPage)
		pages.POST("/add_progress", progress.AddProgress)
		pages.GET("/progress", progress.ProgressPage)
		pages.GET("/profile", profile.Profile)
		pages.POST("/profile", profile.Profile)
	}

	r.GET("/progress_data", middlewares.RequireAuthJSON(sessionSecret), progress.ProgressData)

	return r
}
