package v1

import (
	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	keyService textbook.KeyService,
	cipherService textbook.CipherService,
	primeUpperBound int64,
	limiter *RateLimiter) {

	v1 := r.Group(BasePath) // lookup in version file
	v1.Use(limiter.Middleware())

	keyHandler := NewKeyHandler(keyService)
	v1.POST("/keys", keyHandler.GenerateKeys)
	v1.GET("/keys", keyHandler.ListKeys)
	v1.GET("/keys/:id", keyHandler.GetKeyByID)
	v1.DELETE("/keys/:id", keyHandler.DeleteKeyByID)

	cipherHandler := NewCipherHandler(cipherService)
	v1.POST("/encrypt", cipherHandler.Encrypt)
	v1.POST("/decrypt", cipherHandler.Decrypt)

	primeHandler := NewPrimeHandler(primeUpperBound)
	v1.GET("/primes/:candidate", primeHandler.CheckPrime)
}

// SetupMetricsRoute exposes the metrics gathered by g at /metrics
func SetupMetricsRoute(r *gin.Engine, g prometheus.Gatherer) {
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(g, promhttp.HandlerOpts{})))
}
