package api

import (
	_ "embed"
	"html/template"
	"log/slog"
	"net/http"

	"scrapshop/internal/purchase"
)

//go:embed index.html
var indexHTML string

type Server struct {
	processor *purchase.Processor
	logger    *slog.Logger
	page      *template.Template
}

func NewServer(processor *purchase.Processor, logger *slog.Logger) *Server {
	return &Server{
		processor: processor,
		logger:    logger,
		page:      template.Must(template.New("index").Parse(indexHTML)),
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /purchase", s.handlePurchase)
	mux.HandleFunc("GET /products", s.handleProducts)
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("/", s.handleFallback)

	return corsMiddleware(loggingMiddleware(s.logger, mux))
}
