package main

import (
	"net/http"
	"time"

	"loja-be/internal/address"
	"loja-be/internal/cart"
	"loja-be/internal/category"
	"loja-be/internal/config"
	"loja-be/internal/db"
	"loja-be/internal/logger"
	"loja-be/internal/middleware"
	"loja-be/internal/order"
	"loja-be/internal/product"
	"loja-be/internal/transport"
	"loja-be/internal/user"

	"github.com/alexedwards/scs/v2"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	sessions := scs.New()
	sessions.Lifetime = cfg.SessionLifetime
	sessions.Cookie.HttpOnly = true
	sessions.Cookie.SameSite = http.SameSiteLaxMode

	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	addressRepo := address.NewRepository(database)
	addressSvc := address.NewService(addressRepo)

	cartStore := cart.NewSessionStore(sessions)
	cartSvc := cart.NewService(cartStore, productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, addressRepo, cartSvc)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	h := transport.NewHandler(userSvc, categorySvc, productSvc, cartSvc, orderSvc, addressSvc)

	handler := sessions.LoadAndSave(
		logger.RequestIDMiddleware(
			logger.LoggingMiddleware(
				middleware.AuthMiddleware(
					middleware.RateLimitMiddleware(
						h.Routes(),
					),
				),
			),
		),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	if err := srv.ListenAndServe(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
