package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kutbudev/listkeeper/pkg/models"
	"github.com/kutbudev/listkeeper/pkg/repository"
)

// RequestIDKey is the gin context key holding the current request id.
const RequestIDKey = "request_id"

// ListStore is the persistence contract the handlers depend on.
type ListStore interface {
	All(ctx context.Context) ([]models.List, error)
	Get(ctx context.Context, id uint) (*models.List, error)
	Create(ctx context.Context, list *models.List) error
	Update(ctx context.Context, id uint, name, description string) (*models.List, error)
	Delete(ctx context.Context, id uint) error
	AddItem(ctx context.Context, listID uint, text string) (*models.Item, error)
	GetItem(ctx context.Context, listID, itemID uint) (*models.Item, error)
	DeleteItem(ctx context.Context, listID, itemID uint) error
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Health(ctx context.Context) error
}

// Handler serves the HTML pages and the JSON API.
type Handler struct {
	lists  ListStore
	health Pinger
}

// New builds a Handler. health may be nil.
func New(lists ListStore, health Pinger) *Handler {
	return &Handler{lists: lists, health: health}
}

// Ping reports liveness, including the database when a Pinger is set.
func (h *Handler) Ping(c *gin.Context) {
	if h.health != nil {
		if err := h.health.Health(c.Request.Context()); err != nil {
			logFault(c, err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "database unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// parseUint parses a positive integer id.
func parseUint(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, repository.ErrDuplicateName)
}

func requestID(c *gin.Context) string {
	if id, ok := c.Get(RequestIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return "-"
}

// logFault records an unexpected storage error with the request id.
func logFault(c *gin.Context, err error) {
	log.Printf("[%s] %s %s: %v", requestID(c), c.Request.Method, c.Request.URL.Path, err)
}
