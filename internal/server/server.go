// Package server wires the admin console HTTP surface onto a gin engine.
package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devendraInfograins/CardApp/internal/config"
	"github.com/devendraInfograins/CardApp/internal/security"
	"github.com/devendraInfograins/CardApp/internal/server/handlers"
	"github.com/devendraInfograins/CardApp/internal/tokenstore"
)

// RegisterRoutes registers every console endpoint on the engine. Login and
// health are public; everything else requires a valid admin bearer token.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, jwtCfg config.JWTConfig, revoker tokenstore.Store) {
	if r == nil || db == nil {
		return
	}

	r.GET("/healthz", handlers.Health)

	authHandler := handlers.NewAuthHandler(db, jwtCfg, revoker)
	r.POST("/admin/login", authHandler.Login)

	authed := r.Group("")
	authed.Use(adminAuthMiddleware(db, jwtCfg, revoker))

	authed.POST("/auth/logout", authHandler.Logout)

	holderHandler := handlers.NewCardHolderHandler(db)
	authed.GET("/admin/card-holder-list", holderHandler.List)

	requestHandler := handlers.NewCardRequestHandler(db)
	authed.GET("/admin/card-request-list", requestHandler.List)
	authed.POST("/admin/approveCardRequest", requestHandler.Approve)

	typeHandler := handlers.NewCardTypeHandler(db)
	authed.GET("/admin/cardInfoList", typeHandler.List)
	authed.POST("/admin/createCardInfo", typeHandler.Create)

	walletHandler := handlers.NewWalletHandler(db)
	authed.GET("/wallets", walletHandler.List)

	txHandler := handlers.NewTransactionHandler(db)
	authed.GET("/transactions", txHandler.List)

	analyticsHandler := handlers.NewAnalyticsHandler(db)
	authed.GET("/analytics/stats", analyticsHandler.Stats)
	authed.GET("/analytics/volume", analyticsHandler.Volume)
	authed.GET("/analytics/top-wallets", analyticsHandler.TopWallets)
	authed.GET("/analytics/recent-transactions", analyticsHandler.RecentTransactions)
}

// adminAuthMiddleware validates admin JWTs, rejects revoked tokens and loads
// the admin identity into the request context.
func adminAuthMiddleware(db *gorm.DB, jwtCfg config.JWTConfig, revoker tokenstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		if revoker != nil {
			revoked, errCheck := revoker.IsRevoked(c.Request.Context(), token)
			if errCheck == nil && revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token revoked"})
				return
			}
		}

		claims, errJWT := security.ParseAdminToken(jwtCfg.Secret, token)
		if errJWT != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("adminID", claims.AdminID)
		c.Set("adminEmail", claims.Email)
		c.Set("token", token)
		c.Next()
	}
}

// bearerToken extracts the bearer token from the Authorization header.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
