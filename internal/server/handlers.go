package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tourgen/internal/catalog"
	"tourgen/internal/gigachat"
	"tourgen/internal/trip"
)

// generateTourRequest is the wire shape of the generation call.
type generateTourRequest struct {
	From         string `json:"from"`
	To           string `json:"to"`
	DateFrom     string `json:"dateFrom"`
	DateTo       string `json:"dateTo"`
	Guests       int    `json:"guests"`
	ChildrenAges []int  `json:"childrenAges"`
}

// generateTourResponse carries the model's Markdown itinerary.
type generateTourResponse struct {
	Content string `json:"content"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
}

func (s *Server) handleCities(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Cities())
}

func (s *Server) handleSearch(c *gin.Context) {
	var q catalog.Search
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid search parameters"})
		return
	}
	c.JSON(http.StatusOK, s.catalog.SearchTours(q))
}

func (s *Server) handleRouteCards(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.RouteCards())
}

func (s *Server) handleTourByID(c *gin.Context) {
	tour, ok := s.catalog.TourByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, errorResponse{Error: "Тур не найден"})
		return
	}
	c.JSON(http.StatusOK, tour)
}

func (s *Server) handleGenerateTour(c *gin.Context) {
	var req generateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Некорректные параметры запроса", Details: err.Error()})
		return
	}

	r, err := trip.New(req.From, req.To, req.DateFrom, req.DateTo, req.Guests, req.ChildrenAges)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Некорректные параметры запроса", Details: err.Error()})
		return
	}

	content, err := s.generator.Generate(c.Request.Context(), r)
	if err != nil {
		s.logger.Error("tour generation failed",
			zap.String("request_id", GetRequestID(c)),
			zap.String("kind", errorKind(err)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "Ошибка генерации тура. Попробуйте позже."})
		return
	}

	c.JSON(http.StatusOK, generateTourResponse{Content: content})
}

// errorKind classifies a generation failure for the logs so operators can
// tell a missing key apart from provider trouble.
func errorKind(err error) string {
	var provider *gigachat.ProviderError
	var connectivity *gigachat.ConnectivityError
	var malformed *gigachat.MalformedResponseError
	switch {
	case errors.Is(err, gigachat.ErrAuthKeyMissing):
		return "configuration"
	case errors.As(err, &provider):
		return "provider"
	case errors.As(err, &connectivity):
		return "connectivity"
	case errors.As(err, &malformed):
		return "malformed_response"
	default:
		return "unknown"
	}
}
