package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Tanishksoam/speakhire/external/mailer"
	"github.com/Tanishksoam/speakhire/store"
)

var log = logrus.WithField("prefix", "api")

// Server serves the forms REST API.
type Server struct {
	server *http.Server

	mongoStore store.MongoStore
	mailer     mailer.Mailer

	// baseURL is the public origin embedded into owner and recipient links.
	baseURL string

	traceMode bool
}

func NewServer(mongoStore store.MongoStore, m mailer.Mailer, baseURL string, traceMode bool) *Server {
	return &Server{
		mongoStore: mongoStore,
		mailer:     m,
		baseURL:    baseURL,
		traceMode:  traceMode,
	}
}

// Run starts to serve the API on addr.
func (s *Server) Run(addr string) error {
	router := s.setupRouter()

	s.server = &http.Server{
		Addr:    addr,
		Handler: router,
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.DumpRequest)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	forms := r.Group("/forms")
	{
		forms.POST("", s.createForm)
		forms.GET("/:formID", s.getForm)
		forms.POST("/:formID/publish", s.publishForm)
		forms.POST("/:formID/verify-token", s.verifyToken)
		forms.POST("/:formID/submit", s.submitResponse)
		forms.GET("/:formID/responses", s.getResponses)
	}

	templates := r.Group("/templates")
	{
		templates.POST("", s.createTemplate)
		templates.GET("", s.listTemplates)
	}

	return r
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}
