package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Server is the API server configuration, read from the environment.
type Server struct {
	Port        string        `envconfig:"API_PORT" default:"8080"`
	Env         string        `envconfig:"API_ENV" default:"development"`
	RosterDir   string        `envconfig:"ROSTER_DIR" default:"./examples/rosters"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string        `envconfig:"LOG_FORMAT" default:"text"`
	ResultTTL   time.Duration `envconfig:"RESULT_TTL" default:"1h"`
	CORSOrigins []string      `envconfig:"CORS_ORIGINS" default:"*"`
	// MaxIterations caps Monte Carlo requests.
	MaxIterations int `envconfig:"MAX_ITERATIONS" default:"10000"`
}

func (s Server) Production() bool { return s.Env == "production" }

func NewServer() (*Server, error) {
	var s Server
	if err := envconfig.Process("", &s); err != nil {
		return nil, err
	}
	return &s, nil
}
