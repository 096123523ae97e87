package main

import (
    "context"
    "log"

    "github.com/Someya222/yoga-backend/config"
    "github.com/Someya222/yoga-backend/controllers"
    "github.com/Someya222/yoga-backend/routes"
    "github.com/Someya222/yoga-backend/services"
)

func main() {
    cfg, err := config.Load()
    if err != nil {
        log.Fatalf("config error: %v", err)
    }

    db, err := config.InitDB(cfg)
    if err != nil {
        log.Fatalf("database error: %v", err)
    }

    suggestionSvc, err := services.NewSuggestionService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
    if err != nil {
        log.Fatalf("gemini client error: %v", err)
    }

    r := routes.SetupRouter(routes.Deps{
        Auth:        controllers.NewAuthController(services.NewAuthService(db, cfg.JWTSecret)),
        Tracker:     controllers.NewTrackerController(services.NewTrackerService(db)),
        Suggestions: controllers.NewSuggestionController(suggestionSvc, services.NewDatasetService(cfg.PoseDatasetURL)),
        JWTSecret:   cfg.JWTSecret,
    })

    if err := r.Run(":" + cfg.Port); err != nil {
        log.Fatalf("server error: %v", err)
    }
}
