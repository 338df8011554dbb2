package server

import (
	"net/http"
	"time"

	_ "github.com/0xPexy/sentra-gas-station/docs"
	"github.com/0xPexy/sentra-gas-station/internal/admin"
	"github.com/0xPexy/sentra-gas-station/internal/auth"
	"github.com/0xPexy/sentra-gas-station/internal/config"
	"github.com/0xPexy/sentra-gas-station/internal/station"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Deps struct {
	Station    *station.Station
	Authorizer station.Authorizer
	Auth       *auth.Service
	Admin      *admin.Handler
	Hub        *EventHub
	// Gatherer backs /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
}

func NewRouter(cfg config.Config, d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(d.Logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: !allowsAnyOrigin(cfg.Server.AllowedOrigins),
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if cfg.Server.Metrics && d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}
	if d.Hub != nil {
		r.GET("/ws/events", d.Hub.ServeWS)
	}

	r.GET("/auth/nonce", d.Admin.Nonce)
	r.POST("/auth/login", d.Admin.Login)

	sh := newStationHandler(d.Station, d.Authorizer)
	api := r.Group("/api/v1")
	api.POST("/estimate", sh.Estimate)

	rpc := newRPCHandler(d.Station, d.Authorizer)
	r.POST("/rpc", auth.OptionalJWTMiddleware(d.Auth), rpc.HandleJSONRPC)

	guard := auth.JWTMiddleware(d.Auth)
	ad := api.Group("", guard)
	{
		ad.GET("/me", d.Admin.Me)

		ad.POST("/reservations", sh.Reserve)
		ad.GET("/reservations", sh.ListReservations)
		ad.GET("/reservations/:id", sh.GetReservation)
		ad.POST("/reservations/:id/sign", sh.SignReservation)

		ad.GET("/chains", d.Admin.ListChains)
		ad.POST("/chains", d.Admin.CreateChain)
		ad.PATCH("/chains/:chainId", d.Admin.UpdateChain)
		ad.DELETE("/chains/:chainId", d.Admin.DeleteChain)

		ad.GET("/chains/:chainId/paymasters", d.Admin.ListPaymasters)
		ad.POST("/chains/:chainId/paymasters", d.Admin.CreatePaymaster)
		ad.PATCH("/chains/:chainId/paymasters/:tokenId", d.Admin.UpdatePaymaster)
		ad.DELETE("/chains/:chainId/paymasters/:tokenId", d.Admin.DeletePaymaster)

		ad.GET("/fees", d.Admin.ListFees)
		ad.POST("/fees/:asset/withdraw", d.Admin.WithdrawFees)

		ad.GET("/assets", d.Admin.ListAcceptedAssets)
		ad.POST("/assets", d.Admin.AddAcceptedAssets)
		ad.DELETE("/assets/:asset", d.Admin.RemoveAcceptedAsset)
	}

	return r
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
