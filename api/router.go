// Package api assembles the gin engine serving the to-do list pages and the
// JSON API.
package api

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kutbudev/listkeeper/api/handlers"
	"github.com/kutbudev/listkeeper/api/views"
	"github.com/kutbudev/listkeeper/internal/forms"
)

const requestIDHeader = "X-Request-ID"

// Options tunes the router.
type Options struct {
	// AccessLog receives one line per request; nil disables access logging.
	AccessLog io.Writer
}

// NewRouter registers every route on a fresh gin engine.
func NewRouter(h *handlers.Handler, opts Options) (*gin.Engine, error) {
	tmpl, err := views.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	forms.Register()

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.SetHTMLTemplate(tmpl)

	r.Use(RequestID())
	if opts.AccessLog != nil {
		r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
			Output:    opts.AccessLog,
			Formatter: accessLogFormat,
		}))
	}
	r.Use(gin.Recovery())

	// Ping endpoint for health check
	r.GET("/ping", h.Ping)

	// HTML pages
	r.GET("/", h.Index)
	r.GET("/list", h.ShowList)
	r.POST("/list", h.AddItem)
	r.GET("/add_list", h.NewList)
	r.POST("/add_list", h.CreateList)
	r.GET("/edit_list", h.EditList)
	r.POST("/edit_list", h.UpdateList)
	r.GET("/delete_list", h.ConfirmDeleteList)
	r.POST("/delete_list", h.DeleteList)
	r.GET("/delete_item", h.ConfirmDeleteItem)
	r.POST("/delete_item", h.DeleteItem)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/lists", h.ListListsJSON)
		v1.POST("/lists", h.CreateListJSON)
		v1.GET("/lists/:id", h.GetListJSON)
		v1.PUT("/lists/:id", h.UpdateListJSON)
		v1.DELETE("/lists/:id", h.DeleteListJSON)
		v1.POST("/lists/:id/items", h.AddItemJSON)
		v1.DELETE("/lists/:id/items/:item_id", h.DeleteItemJSON)
	}

	r.NoRoute(h.NotFound)
	r.NoMethod(h.MethodNotAllowed)

	return r, nil
}

// RequestID tags each request with an id, reusing a sane incoming one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(handlers.RequestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLogFormat(p gin.LogFormatterParams) string {
	id, _ := p.Keys[handlers.RequestIDKey].(string)
	return fmt.Sprintf("%s | %3d | %13v | %15s | %-7s %s | %s\n",
		p.TimeStamp.Format("2006/01/02 15:04:05"),
		p.StatusCode,
		p.Latency,
		p.ClientIP,
		p.Method,
		p.Path,
		id,
	)
}
