package server

import (
	"net/http"
	"time"

	_ "addressbook-api/docs"
	"addressbook-api/internal/handler"
	"addressbook-api/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter builds the gin engine with the address book routes plus the
// health, metrics and API documentation endpoints.
func NewRouter(addresses *handler.AddressHandler, gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()
	r.Use(logger.Middleware(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addresses.Register(r)
	return r
}

// New builds the HTTP server. idleTimeout bounds how long a keep-alive
// connection may sit idle; in-flight requests are not interrupted.
func New(addr string, h http.Handler, idleTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       idleTimeout,
	}
}
