package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	_ "xidach/docs"
	httpapi "xidach/internal/api/http"
	"xidach/internal/api/ws"
	"xidach/internal/config"
	"xidach/internal/room"
	"xidach/internal/store"
)

// @title Xi Dach Room API
// @version 1.0
// @description Read-only REST surface of the card duel room server. Game actions travel over /ws.
// @contact.name Backend Team
// @BasePath /
func main() {
	cfg := config.Load()
	log := cfg.NewLogger()
	if log.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	mem := store.NewMemoryStore(cfg.FirstRoomID)
	rm := room.NewManager(mem, cfg.Rules, log)

	// The hub delivers the dispatcher's notices and feeds it inbound frames.
	dispatcher := room.NewDispatcher(rm, nil, log)
	hub := ws.NewHub(dispatcher, cfg.AllowedOrigin, log)
	dispatcher.SetGateway(hub)

	r := httpapi.NewRouter(rm, hub, cfg, log)

	log.WithFields(logrus.Fields{
		"addr":       cfg.HTTPAddr,
		"maxPlayers": cfg.Rules.MaxPlayers,
		"firstRoom":  cfg.FirstRoomID,
	}).Info("listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
