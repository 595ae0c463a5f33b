package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"vif/config"
	"vif/internal/model"
	"vif/pkg/elevenlabs"
	"vif/pkg/gcalendar"
	"vif/pkg/llmprovider"
	"vif/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Todo domain dependencies
	llm         *llmprovider.Manager
	speech      elevenlabs.IElevenLabs // nil disables transcription
	calendar    gcalendar.ICalendar    // nil disables calendar mirroring
	storagePath string
	timezone    string
	rateLimit   config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	LLM         *llmprovider.Manager
	Speech      elevenlabs.IElevenLabs
	Calendar    gcalendar.ICalendar
	StoragePath string
	Timezone    string
	RateLimit   config.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	mode := cfg.Mode
	if model.Environment(cfg.Environment) == model.EnvironmentProduction {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        mode,
		environment: cfg.Environment,
		llm:         cfg.LLM,
		speech:      cfg.Speech,
		calendar:    cfg.Calendar,
		storagePath: cfg.StoragePath,
		timezone:    cfg.Timezone,
		rateLimit:   cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.llm == nil {
		return errors.New("LLM provider manager is required")
	}
	if srv.storagePath == "" {
		return errors.New("storage path is required")
	}
	return nil
}
