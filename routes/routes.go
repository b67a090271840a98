package routes

import (
    "github.com/Akoirala47/bett/controllers"
    "github.com/Akoirala47/bett/middlewares"

    "github.com/gin-gonic/gin"
)

type Deps struct {
    Records  *controllers.RecordController
    Sprints  *controllers.SprintController
    Game     *controllers.GameController
    Push     *controllers.PushController
    Realtime *controllers.RealtimeController
}

func SetupRouter(d Deps) *gin.Engine {
    r := gin.Default()

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", controllers.Register)
        auth.POST("/login", controllers.Login)
    }

    // Everything else requires a session
    api := r.Group("/")
    api.Use(middlewares.AuthMiddleware())
    {
        api.GET("/user/me", controllers.GetMe)
        api.GET("/user/rival", controllers.GetRival)

        api.GET("/schedule", controllers.GetSchedule)
        api.PUT("/schedule", controllers.UpsertSchedule)
        api.GET("/schedule/rival", controllers.GetRivalSchedule)

        api.GET("/records/today", d.Records.GetToday)
        api.GET("/records", d.Records.ListRecent)
        api.GET("/records/rival", d.Records.ListRivalRecent)
        api.PUT("/records/:date", d.Records.UpsertDay)

        api.GET("/sprints/current", d.Sprints.GetCurrent)
        api.POST("/sprints", d.Sprints.Create)
        api.POST("/sprints/next", d.Sprints.PlanNext)
        api.GET("/sprints/rival", d.Sprints.GetRival)

        api.GET("/game", d.Game.Get)

        api.GET("/alerts", controllers.ListAlerts)

        api.POST("/push/subscribe", d.Push.Subscribe)
        api.DELETE("/push/subscribe", d.Push.Unsubscribe)
        api.POST("/push/send", d.Push.Send)

        api.GET("/realtime/ws", d.Realtime.EventsWS)
    }

    return r
}
