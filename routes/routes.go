package routes

import (
	"net/http"

	"tanam/auth"
	"tanam/catalog"
	"tanam/estimate"
	"tanam/home"
	"tanam/middleware"
	"tanam/plantings"
	"tanam/profile"
	"tanam/ratelim"
	"tanam/reminders"
	"tanam/rewards"
	"tanam/tips"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/v1/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/v1/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/v1/auth/logout", auth.Logout)
}

func AddHarvestRoutes(router *httprouter.Router, est *estimate.Estimator) {
	router.POST("/api/v1/harvest/estimate", ratelim.RateLimit(estimate.EstimateHandler(est)))
}

func AddCatalogRoutes(router *httprouter.Router, cat *catalog.Catalog) {
	router.GET("/api/v1/crops/catalogue", catalog.CatalogueHandler(cat))
}

func AddPlantingRoutes(router *httprouter.Router) {
	router.POST("/api/v1/plantings", middleware.Authenticate(plantings.CreatePlanting))
	router.GET("/api/v1/plantings", middleware.Authenticate(plantings.GetPlantings))
	router.GET("/api/v1/plantings/:id", middleware.Authenticate(plantings.GetPlanting))
	router.PUT("/api/v1/plantings/:id", middleware.Authenticate(plantings.UpdatePlanting))
	router.DELETE("/api/v1/plantings/:id", middleware.Authenticate(plantings.DeletePlanting))
	router.POST("/api/v1/plantings/:id/harvest", middleware.Authenticate(plantings.CompleteHarvest))
}

func AddFarmerRoutes(router *httprouter.Router) {
	router.GET("/api/v1/farmer/profile", middleware.Authenticate(profile.GetProfile))
	router.PUT("/api/v1/farmer/profile", middleware.Authenticate(profile.EditProfile))
	router.GET("/api/v1/farmer/activities", middleware.Authenticate(rewards.GetActivities))
	router.POST("/api/v1/farmer/activities", middleware.Authenticate(rewards.RecordActivity))
	router.GET("/api/v1/farmer/achievements", middleware.Authenticate(rewards.GetAchievements))
	router.POST("/api/v1/farmer/reward-points", middleware.Authenticate(rewards.AwardPoints))
}

func AddReminderRoutes(router *httprouter.Router) {
	router.GET("/api/v1/reminders/upcoming", middleware.Authenticate(reminders.UpcomingReminders))
	router.POST("/api/v1/reminders", middleware.Authenticate(reminders.CreateReminder))
	router.POST("/api/v1/reminders/:id/complete", middleware.Authenticate(reminders.CompleteReminder))
}

func AddTipsRoutes(router *httprouter.Router) {
	router.GET("/api/v1/tips", middleware.OptionalAuth(tips.GetTips))
	router.POST("/api/v1/tips", ratelim.RateLimit(middleware.Authenticate(tips.CreateTip)))
	router.POST("/api/v1/tips/:id/upvote", ratelim.RateLimit(middleware.Authenticate(tips.UpvoteTip)))
	router.DELETE("/api/v1/tips/:id", middleware.Authenticate(tips.DeleteTip))
}

func AddHomeRoutes(router *httprouter.Router, cat *catalog.Catalog) {
	router.GET("/api/v1/home/:apiRoute", middleware.OptionalAuth(home.GetHomeContent(cat)))
}
