// controllers/staff.go
package controllers

import (
	"net/http"

	"cindrella-backend/config"
	"cindrella-backend/services"
	"cindrella-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetStaff lists the staff directory. Seeding against the defaults already
// ran at startup, so reads never write.
func GetStaff(c *gin.Context) {
	directory := services.NewDirectory(config.Store)
	c.JSON(http.StatusOK, directory.List())
}

// AddStaff prepends a new member to the directory
func AddStaff(c *gin.Context) {
	var input services.NewStaffMember
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	directory := services.NewDirectory(config.Store)
	member, err := directory.Add(input)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save staff member")
		return
	}

	c.JSON(http.StatusCreated, member)
}
