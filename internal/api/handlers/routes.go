package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *ValidationHandler) {
	rg.GET("/fuel-types", ListFuelTypes)
	rg.POST("/validations", h.RunValidation)
	rg.GET("/validations/:id", h.GetValidation)
	rg.GET("/validations/:id/report.csv", h.DownloadCSV)
	rg.GET("/validations/:id/report.xlsx", h.DownloadXLSX)
}
