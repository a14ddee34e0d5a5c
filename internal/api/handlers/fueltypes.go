package handlers

import (
	"net/http"

	"fuelprice-validation/internal/api/models"
	"fuelprice-validation/internal/model"

	"github.com/gin-gonic/gin"
)

// ListFuelTypes handles GET /api/v1/fuel-types
func ListFuelTypes(c *gin.Context) {
	out := make([]models.FuelTypeInfo, 0, len(model.FuelTypes))
	for _, ft := range model.FuelTypes {
		out = append(out, models.FuelTypeInfo{
			ID:           string(ft),
			Label:        ft.Label(),
			OkItemNumber: ft.OkItemNumber(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"fuel_types": out})
}
