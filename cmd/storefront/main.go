package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/NguyenNguyen164/web-thu-nghiem/internal/cart"
	"github.com/NguyenNguyen164/web-thu-nghiem/internal/catalog"
	"github.com/NguyenNguyen164/web-thu-nghiem/internal/checkout"
	"github.com/NguyenNguyen164/web-thu-nghiem/internal/config"
	httpserver "github.com/NguyenNguyen164/web-thu-nghiem/internal/http"
	"github.com/NguyenNguyen164/web-thu-nghiem/internal/storage"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "storefront").Logger()

	cfg := config.Load()

	persist, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("open data dir")
	}

	cartStore := cart.NewStore(persist, cfg.CartCurrency, cart.Pricing{
		TaxRate:               cfg.TaxRate,
		FlatShippingFee:       cfg.FlatShippingFee,
		FreeShippingThreshold: cfg.FreeShippingThreshold,
	}, logger)

	var src catalog.Source
	if cfg.CatalogURL != "" {
		src = catalog.NewHTTPSource(cfg.CatalogURL, &http.Client{Timeout: cfg.CatalogTimeout})
	} else {
		src = catalog.NewFileSource(cfg.CatalogPath)
	}
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.CatalogTimeout)
	cat := catalog.Load(loadCtx, src, logger)
	cancelLoad()

	checkoutSvc := checkout.NewService(cartStore, cfg.CheckoutDelay, logger)

	router := httpserver.NewRouter(
		httpserver.NewCatalogHandler(cat),
		httpserver.NewCartHandler(cartStore),
		httpserver.NewCheckoutHandler(checkoutSvc),
		cfg.CORSAllowOrigins,
		logger,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.Port).Msg("storefront listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutdown signal received")
	case err := <-errCh:
		logger.Fatal().Err(err).Msg("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
}
