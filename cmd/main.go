package main

import (
    "log"
    "os"

    "github.com/Akoirala47/bett/config"
    "github.com/Akoirala47/bett/controllers"
    "github.com/Akoirala47/bett/routes"
    "github.com/Akoirala47/bett/services"
)

func main() {
    config.InitDB()

    hub := services.NewRealtimeHub()

    var signer services.Signer
    if priv := os.Getenv("VAPID_PRIVATE_KEY"); priv != "" {
        s, err := services.NewVAPIDSigner(priv, os.Getenv("VAPID_PUBLIC_KEY"), os.Getenv("VAPID_SUBJECT"))
        if err != nil {
            log.Fatalf("bad VAPID keys: %v", err)
        }
        signer = s
    } else {
        log.Printf("[Push] VAPID keys not set; push relay disabled")
    }
    relay := services.NewPushRelay(config.DB, signer)

    dispatcher := services.NewDispatcher(config.DB, hub, relay)
    game := services.NewGameService(config.DB, hub)
    sprints := services.NewSprintService(config.DB, game)
    records := services.NewRecordService(config.DB, sprints, game, dispatcher)

    sprints.StartRolloverScheduler()

    r := routes.SetupRouter(routes.Deps{
        Records:  controllers.NewRecordController(records),
        Sprints:  controllers.NewSprintController(sprints),
        Game:     controllers.NewGameController(game),
        Push:     controllers.NewPushController(config.DB, relay),
        Realtime: controllers.NewRealtimeController(hub),
    })

    port := os.Getenv("PORT")
    if port == "" {
        port = "8080"
    }
    r.Run(":" + port)
}
