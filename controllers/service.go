// controllers/service.go
package controllers

import (
	"net/http"
	"strconv"

	"cindrella-backend/models"
	"cindrella-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetServices returns the compiled-in service catalog
func GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, models.Catalog())
}

// GetService returns a single catalog entry by ID
func GetService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	service, found := models.FindService(id)
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, service)
}
