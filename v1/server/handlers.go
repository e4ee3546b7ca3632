package server

import (
	_ "embed"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardforge/mtgsearch/v1/cards"
	"github.com/cardforge/mtgsearch/v1/search"
)

//go:embed index.html
var indexPage []byte

func (s *Server) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
}

func (s *Server) searchCards(c *gin.Context) {
	var q search.Query
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	results, err := s.search.Search(c.Request.Context(), q)
	if errors.Is(err, search.ErrEmptyQuery) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}
	if err != nil {
		s.log.ErrorWithContext(c.Request.Context(), "Search error", err, map[string]interface{}{
			"query": q.Text,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	found := make([]*cards.Card, len(results))
	for i, r := range results {
		found[i] = r.Card
	}
	c.JSON(http.StatusOK, found)
}

func (s *Server) healthCheck(c *gin.Context) {
	if err := s.health.Health(c.Request.Context()); err != nil {
		s.log.ErrorWithContext(c.Request.Context(), "Health check error", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "vectorstore": "connected"})
}
