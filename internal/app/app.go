// Package app assembles the Book Library API from its parts.
package app

import (
	"fmt"
	"net/http"

	"booklibrary/internal/auditlog"
	"booklibrary/internal/book"
	"booklibrary/internal/config"
	"booklibrary/internal/httpx"
	"booklibrary/internal/system"

	"go.uber.org/zap"
)

// App owns the long-lived collaborators behind the HTTP handler.
type App struct {
	Books    *book.Service
	AuditLog *auditlog.Service

	handler     http.Handler
	rateLimiter *httpx.RateLimitMiddleware
}

// New loads the catalog and builds the routed, middleware-wrapped handler.
func New(cfg config.Config, log *zap.Logger) (*App, error) {
	books, err := book.LoadBooks(cfg.BooksDataset)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	bookRepo, err := book.NewMemoryRepo(books)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	log.Info("catalog loaded", zap.Int("books", bookRepo.Len()), zap.String("dataset", datasetName(cfg.BooksDataset)))

	bookService := book.NewService(bookRepo)
	auditService := auditlog.NewService(auditlog.NewMemoryRepo(), bookService)

	router := httpx.NewRouter(
		system.NewHTTPHandler(func() bool { return bookRepo.Len() > 0 }),
		book.NewHTTPHandler(bookService, log),
		auditlog.NewHTTPHandler(auditService, log),
	)

	rateLimiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
	handler := httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(log),
		httpx.RecoveryMiddleware(log),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		rateLimiter.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
		httpx.MetricsMiddleware,
	)

	return &App{
		Books:       bookService,
		AuditLog:    auditService,
		handler:     handler,
		rateLimiter: rateLimiter,
	}, nil
}

// Handler is the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Close stops background work started by New.
func (a *App) Close() {
	a.rateLimiter.Stop()
}

func datasetName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
