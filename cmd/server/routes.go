package main

import (
	"github.com/gin-gonic/gin"
	"rr-exchange.backend/internal/interfaces/http/handlers"
	"rr-exchange.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	accountHandler      *handlers.AccountHandler
	orderHandler        *handlers.OrderHandler
	tradeHandler        *handlers.TradeHandler
	depositHandler      *handlers.DepositHandler
	verificationHandler *handlers.VerificationHandler
	adminHandler        *handlers.AdminHandler
	authMiddleware      gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
		}

		// Public profile route
		v1.GET("/profiles/:id", d.accountHandler.GetPublicProfile)

		// Resource symbol list (public)
		v1.GET("/resources", d.orderHandler.ListResources)

		// Account routes (protected)
		account := v1.Group("/account")
		account.Use(d.authMiddleware)
		{
			account.GET("", d.authHandler.Me)
			account.PUT("/profile", d.accountHandler.UpdateProfile)
		}

		// Order book routes (protected)
		orders := v1.Group("/orders")
		orders.Use(d.authMiddleware)
		{
			orders.GET("", d.orderHandler.ListOrderBook)
			orders.GET("/mine", d.orderHandler.ListOwnOrders)
			orders.POST("", d.orderHandler.CreateOrder)
			orders.DELETE("/:id", d.orderHandler.CancelOrder)
			orders.POST("/:id/buy", middleware.IdempotencyMiddleware(), d.orderHandler.Buy)
		}

		// Trade history routes (protected)
		trades := v1.Group("/trades")
		trades.Use(d.authMiddleware)
		{
			trades.GET("", d.tradeHandler.History)
			trades.GET("/:id", d.tradeHandler.Receipt)
		}

		// Deposit request routes (protected)
		deposits := v1.Group("/deposits")
		deposits.Use(d.authMiddleware)
		{
			deposits.POST("", middleware.IdempotencyMiddleware(), d.depositHandler.CreateRequest)
			deposits.GET("", d.depositHandler.ListOwn)
		}

		// Verification request routes (protected)
		verifications := v1.Group("/verifications")
		verifications.Use(d.authMiddleware)
		{
			verifications.POST("", middleware.IdempotencyMiddleware(), d.verificationHandler.CreateRequest)
			verifications.GET("", d.verificationHandler.ListOwn)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/deposits", d.adminHandler.ListDeposits)
			admin.POST("/deposits/:id/approve", middleware.IdempotencyMiddleware(), d.adminHandler.ApproveDeposit)
			admin.POST("/deposits/:id/reject", middleware.IdempotencyMiddleware(), d.adminHandler.RejectDeposit)

			admin.GET("/verifications", d.adminHandler.ListVerifications)
			admin.POST("/verifications/:id/approve", middleware.IdempotencyMiddleware(), d.adminHandler.ApproveVerification)
			admin.POST("/verifications/:id/reject", middleware.IdempotencyMiddleware(), d.adminHandler.RejectVerification)

			admin.GET("/users", d.adminHandler.ListAccounts)
			admin.PUT("/users/:id/balance", d.adminHandler.OverrideBalance)
			admin.GET("/stats", d.adminHandler.Stats)
		}
	}
}
