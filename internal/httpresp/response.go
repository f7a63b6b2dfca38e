package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListEnvelope wraps every collection response so clients always get a
// count alongside the items, even when the slice is empty.
type ListEnvelope[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func List[T any](c *gin.Context, items []T) {
	c.JSON(http.StatusOK, ListEnvelope[T]{
		Items: items,
		Count: len(items),
	})
}
