package routes

import (
    "github.com/Someya222/yoga-backend/controllers"
    "github.com/Someya222/yoga-backend/middlewares"

    "github.com/gin-gonic/gin"
)

type Deps struct {
    Auth        *controllers.AuthController
    Tracker     *controllers.TrackerController
    Suggestions *controllers.SuggestionController
    JWTSecret   string
}

func SetupRouter(d Deps) *gin.Engine {
    r := gin.Default()

    // Public routes
    r.POST("/generate", d.Suggestions.Generate)
    r.GET("/dataset", d.Suggestions.GetDataset)

    auth := r.Group("/auth")
    {
        auth.POST("/register", d.Auth.Register)
        auth.POST("/login", d.Auth.Login)
    }

    // Protected tracker routes
    api := r.Group("/")
    api.Use(middlewares.AuthMiddleware(d.JWTSecret))
    {
        api.POST("/save-daily", d.Tracker.SaveDaily)
        api.GET("/history", d.Tracker.GetHistory)
        api.POST("/routine-status", d.Tracker.SetRoutineStatus)
        api.GET("/streak", d.Tracker.GetStreak)
        api.GET("/routine", d.Tracker.GetRoutine)
        api.POST("/daily-pose", d.Tracker.SaveDailyPose)
        api.GET("/daily-pose", d.Tracker.GetDailyPose)
    }

    return r
}
