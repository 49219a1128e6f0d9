package api

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/markopoloparadox/web-crawler/internal/engine"
	"github.com/markopoloparadox/web-crawler/internal/metadata"
	"github.com/markopoloparadox/web-crawler/internal/store"
)

/*
Server is the HTTP façade: it translates wire JSON into Engine calls and
is otherwise stateless beyond the shared Engine and ResultStore it was
built with. One Server serves every request; the Engine itself is safe
for concurrent Run calls since each Run owns a fresh Frontier State.
*/
type Server struct {
	engine                 *engine.Engine
	store                  *store.ResultStore
	sink                   metadata.Sink
	robotsEnabledByDefault bool
}

func NewServer(eng *engine.Engine, resultStore *store.ResultStore, sink metadata.Sink, robotsEnabledByDefault bool) *Server {
	return &Server{engine: eng, store: resultStore, sink: sink, robotsEnabledByDefault: robotsEnabledByDefault}
}

// Router builds the gin.Engine exposing the crawl contract plus the
// ambient /healthz liveness endpoint every service in this shape carries.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.Use(s.requestID())

	r.GET("/healthz", s.handleHealthz)
	r.POST("/spider", s.handleSubmit)
	r.GET("/spider/:id/list", s.handleList)
	r.GET("/spider/:id/count", s.handleCount)

	return r
}

// requestID stamps a trace id on every request, carried forward into any
// RecordError calls the handler makes for this request.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("trace_id", uuid.NewString())
		c.Next()
	}
}

func (s *Server) traceAttr(c *gin.Context) metadata.Attribute {
	id, _ := c.Get("trace_id")
	traceID, _ := id.(string)
	return metadata.NewAttr(metadata.AttrTraceID, traceID)
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (s *Server) handleSubmit(c *gin.Context) {
	var req CrawlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.sink.RecordError(time.Now(), "api", "submit", metadata.CauseInvariantViolation, err.Error(), []metadata.Attribute{s.traceAttr(c)})
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	baseURL, err := url.Parse(req.Address)
	if err != nil || baseURL.Host == "" {
		s.sink.RecordError(time.Now(), "api", "submit", metadata.CauseInvariantViolation, "address must be an absolute URL", []metadata.Attribute{s.traceAttr(c)})
		c.JSON(http.StatusBadRequest, gin.H{"error": "address must be an absolute URL"})
		return
	}

	fingerprint := Fingerprint(req.Address, req.MaxDepth, req.MaxPages)
	if _, exists := s.store.Get(fingerprint); exists {
		c.JSON(http.StatusCreated, CrawlResponse{ID: fingerprint})
		return
	}

	robotsTxt := s.robotsEnabledByDefault
	if req.RobotsTxt != nil {
		robotsTxt = *req.RobotsTxt
	}

	start := time.Now()
	result := s.engine.Run(c.Request.Context(), engine.CrawlOptions{
		BaseURL:      *baseURL,
		MaxDepth:     req.MaxDepth,
		MaxPages:     req.MaxPages,
		RobotsTxt:    robotsTxt,
		ArchivePages: req.ArchivePages,
	})

	visited := make([]string, 0, len(result.Visited))
	for _, u := range result.Visited {
		visited = append(visited, u.String())
	}
	s.store.Put(fingerprint, visited)

	s.sink.RecordCrawlStats(metadata.CrawlStats{
		Fingerprint: fingerprint,
		TotalPages:  len(visited),
		DurationMs:  time.Since(start).Milliseconds(),
	})

	c.JSON(http.StatusCreated, CrawlResponse{ID: fingerprint})
}

func (s *Server) handleList(c *gin.Context) {
	id := c.Param("id")
	visited, exists := s.store.Get(id)
	if !exists {
		c.JSON(http.StatusBadRequest, "Unknown id")
		return
	}
	c.JSON(http.StatusOK, visited)
}

func (s *Server) handleCount(c *gin.Context) {
	id := c.Param("id")
	visited, exists := s.store.Get(id)
	if !exists {
		c.JSON(http.StatusBadRequest, "Unknown id")
		return
	}
	c.JSON(http.StatusOK, len(visited))
}
