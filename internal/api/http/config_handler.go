package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"xidach/internal/config"
)

// RulesHandler exposes the table rules the server was started with.
// @Summary Get table rules
// @Description Returns the table rules and the seat color palette
// @Tags Config
// @Produce json
// @Success 200 {object} RulesResponse
// @Router /config/rules [get]
func RulesHandler(rules config.Rules) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, RulesResponse{Rules: rules, Colors: config.DefaultPlayerColors})
	}
}
