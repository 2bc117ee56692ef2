package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"xidach/internal/config"
	"xidach/internal/shared"
)

// Socket is the realtime endpoint mounted at /ws.
type Socket interface {
	HandleWS(c *gin.Context)
	Clients() int
}

// RoomReader serves read-only room views.
type RoomReader interface {
	Snapshot(id int) (shared.Room, bool)
	Rooms() int
}

func NewRouter(rooms RoomReader, sock Socket, cfg config.Config, log logrus.FieldLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log), cors(cfg.AllowedOrigin))

	// WebSocket for game actions and live updates
	r.GET("/ws", sock.HandleWS)

	r.GET("/health", HealthHandler(sock, rooms))
	r.GET("/rooms/:id", RoomHandler(rooms))
	r.GET("/config/rules", RulesHandler(cfg.Rules))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, NotFoundResponse{Status: http.StatusNotFound, Message: "Error in your URL!"})
	})
	return r
}

func cors(origin string) gin.HandlerFunc {
	if origin == "" {
		origin = "*"
	}
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func requestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}).Debug("http request")
	}
}
