package server

import (
	"net/http"
	"time"

	"github.com/danmuck/aocctl/internal/config"
	"github.com/danmuck/aocctl/internal/inputs"
	"github.com/danmuck/aocctl/internal/observability"
	"github.com/danmuck/aocctl/internal/puzzles"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const version = "0.1.0"

// Server exposes the puzzle runner over HTTP.
type Server struct {
	ID       string    `json:"id"`
	Addr     string    `json:"addr"`
	Appeared time.Time `json:"appeared"`

	runner   *puzzles.Runner
	inputs   puzzles.InputSource
	maxInput int64
	router   *gin.Engine
	basePath string
}

func Appear(cfg config.ServerConfig, runner *puzzles.Runner) *Server {
	observability.RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetricsMiddleware(cfg.Name))
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(cfg.CorsOrigins),
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	return Attach(cfg, runner, r, "")
}

// Attach mounts the puzzle routes on an existing router under basePath.
func Attach(cfg config.ServerConfig, runner *puzzles.Runner, router *gin.Engine, basePath string) *Server {
	if runner == nil {
		runner = puzzles.NewRunner(nil, puzzles.RunnerConfig{Concurrency: cfg.Concurrency})
	}
	maxInput := cfg.MaxInputBytes
	if maxInput <= 0 {
		maxInput = config.DefaultServerConfig().MaxInputBytes
	}
	// empty request bodies fall back to cached inputs; remote fetch needs AOC_SESSION
	session, err := inputs.ResolveSession("", "")
	if err != nil {
		log.Warn().Err(err).Msg("session lookup failed")
	}
	store := inputs.NewStore(inputs.Config{Root: cfg.InputDir, Year: cfg.Year, Session: session})
	return &Server{
		ID:       cfg.Name,
		Addr:     cfg.Addr,
		Appeared: time.Now(),
		runner:   runner,
		inputs:   store,
		maxInput: maxInput,
		router:   router,
		basePath: basePath,
	}
}

func (s *Server) HTTPRouter() *gin.Engine {
	return s.router
}

func (s *Server) Serve() error {
	s.RegisterRoutes()
	log.Info().Str("node", s.ID).Str("addr", s.Addr).Int("puzzles", s.runner.Registry().Len()).Msg("serving puzzles")
	return s.router.Run(s.Addr)
}

func (s *Server) RegisterRoutes() {
	routes := s.routes()
	routes.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.Appeared).String(),
			"service": s.ID,
			"version": version,
		})
	})

	routes.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.GET("/ready", func(c *gin.Context) {
		ready := s.runner.Registry().Len() > 0
		status := http.StatusOK
		if !ready {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"ready":   ready,
			"puzzles": s.runner.Registry().Len(),
			"service": s.ID,
			"version": version,
		})
	})

	routes.GET("/puzzles", s.listPuzzles)
	routes.GET("/puzzles/:id", s.getPuzzle)
	routes.POST("/puzzles/:id/parts/:part", s.solvePart)
	routes.POST("/puzzles/:id/check", s.checkExamples)
}

func (s *Server) routes() gin.IRoutes {
	if s.basePath == "" {
		return s.router
	}
	return s.router.Group(s.basePath)
}

func normalizeOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}
