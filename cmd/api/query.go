package main

import (
	"net/http"

	_ "unlocode/internal/query" // imported for swagger type definitions

	"github.com/gin-gonic/gin"
)

// handleQuery godoc
// @Summary Resolve a location code
// @Description Resolve a two-letter country code plus a location code into the normalized UN/LOCODE record
// @Tags unlocode
// @Produce json
// @Param country path string true "ISO 3166 alpha-2 country code" example(US)
// @Param location path string true "Location code, 2-3 alphanumeric characters" example(NYC)
// @Success 200 {object} query.Result
// @Failure 404 {object} map[string]string
// @Router /unlocode/{country}/{location} [get]
func (app *App) handleQuery(c *gin.Context) {
	country := c.Param("country")
	location := c.Param("location")

	result, ok := app.queryService.Query(c.Request.Context(), country, location)
	if !ok {
		// Not found is the dominant non-answer, not a server failure.
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		return
	}

	c.JSON(http.StatusOK, result)
}
