package http

import "xidach/internal/config"

type NotFoundResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Clients int    `json:"clients"`
	Rooms   int    `json:"rooms"`
}

// RulesResponse is served at /config/rules.
type RulesResponse struct {
	Rules  config.Rules `json:"rules"`
	Colors []string     `json:"colors"`
}
