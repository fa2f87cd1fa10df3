package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smsflow/attentive-adapter/models"
	"github.com/smsflow/attentive-adapter/providers/attentive"
	"github.com/smsflow/attentive-adapter/services/monitoring/logging"
	"github.com/smsflow/attentive-adapter/utils"
)

// Server hosts the adapter's HTTP surface: the execute bridge the workflow
// host calls, and the inbound webhook listener the platform delivers to.
type Server struct {
	router     *gin.Engine
	config     *utils.Config
	logger     *logging.Logger
	dispatcher *attentive.Dispatcher
	onEvent    WebhookEventHandler
}

func NewServer(config *utils.Config, logger *logging.Logger) *Server {
	provider := attentive.NewProvider(config, logger)
	registry := attentive.DefaultRegistry(provider)

	g := gin.New()
	g.Use(gin.Recovery())
	g.Use(logger.LoggingMiddleWare())

	s := &Server{
		router:     g,
		config:     config,
		logger:     logger,
		dispatcher: attentive.NewDispatcher(registry, logger),
	}

	g.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, models.NewSuccess("Attentive adapter is running", gin.H{
			"resources": registry.Names(),
		}))
	})
	g.POST("/execute", s.handleExecute)
	g.POST("/webhook", s.handleWebhook)

	return s
}

// OnEvent registers the consumer callback for decoded webhook deliveries.
// Without one, events are only logged.
func (s *Server) OnEvent(handler WebhookEventHandler) {
	s.onEvent = handler
}

func (s *Server) Start(port int) error {
	s.logger.Banner(utils.REVISION)
	return s.router.Run(fmt.Sprintf(":%d", port))
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
