package main

import (
	"context"
	_ "embed"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/manzanit0/naver2google/pkg/middleware"
	"github.com/manzanit0/naver2google/pkg/resolver"
)

const MsgMissingURL = "missing url parameter"

//go:embed index.html
var indexHTML []byte

type Resolver interface {
	Resolve(ctx context.Context, input string) (*resolver.Location, error)
}

type ConvertRequest struct {
	URL string `form:"url" binding:"required"`
}

func newRouter(res Resolver, debug bool) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceID())
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger(debug))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
	})

	r.GET("/convert", convertController(res))
	r.GET("/go", redirectController(res))

	return r
}

// bindInput reads and trims the url query parameter. An empty string means it
// was missing or blank.
func bindInput(c *gin.Context) string {
	var req ConvertRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return ""
	}

	return strings.TrimSpace(req.URL)
}

func convertController(res Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		input := bindInput(c)
		if input == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": MsgMissingURL})
			return
		}

		loc, err := res.Resolve(c.Request.Context(), input)
		if err != nil {
			_ = c.Error(err)
			c.JSON(errorStatus(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, loc)
	}
}

func redirectController(res Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		input := bindInput(c)
		if input == "" {
			c.String(http.StatusBadRequest, MsgMissingURL)
			return
		}

		loc, err := res.Resolve(c.Request.Context(), input)
		if err != nil {
			_ = c.Error(err)
			c.String(errorStatus(err), "Error: %s", err.Error())
			return
		}

		c.Redirect(http.StatusFound, loc.TargetURL)
	}
}

func errorStatus(err error) int {
	if errors.Is(err, resolver.ErrEmptyInput) {
		return http.StatusBadRequest
	}

	return http.StatusBadGateway
}
