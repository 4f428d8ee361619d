package controllers

import (
	"net/http"

	"abc-retail/models"
	"abc-retail/services"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	auditService *services.AuditService
}

func NewLogController(auditService *services.AuditService) *LogController {
	return &LogController{auditService: auditService}
}

// GetLogs godoc
// @Summary List audit logs
// @Tags Admin Logs
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response{data=[]models.StoredFile}
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/logs [get]
func (ctrl *LogController) GetLogs(c *gin.Context) {
	logs, err := ctrl.auditService.ListLogs(c.Request.Context())
	if err != nil {
		respondFileError(c, err, "Failed to list logs")
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Logs retrieved successfully", Data: logs})
}

// DownloadLog godoc
// @Summary Download audit log
// @Tags Admin Logs
// @Security BearerAuth
// @Produce octet-stream
// @Param name path string true "Log file name"
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/logs/{name} [get]
func (ctrl *LogController) DownloadLog(c *gin.Context) {
	name := c.Param("name")
	data, err := ctrl.auditService.DownloadLog(c.Request.Context(), name)
	if err != nil {
		respondFileError(c, err, "Failed to download log")
		return
	}

	sendAttachment(c, name, data)
}
