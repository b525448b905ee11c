package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/config"
	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/routes"
)

func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %s", err)
	}

	r := routes.SetupRouter(db, []byte(cfg.SessionSecret), "templates/*.html")

	log.Infof("fitness tracker listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %s", err)
	}
}
