package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"abc-retail/models"
	"abc-retail/services"

	"github.com/gin-gonic/gin"
)

type FunctionController struct {
	functionService *services.FunctionService
	maxBodySize     int64
}

func NewFunctionController(functionService *services.FunctionService, maxBodySize int64) *FunctionController {
	return &FunctionController{functionService: functionService, maxBodySize: maxBodySize}
}

// readBody accepts an empty body; the pass-through functions store whatever they receive.
func (ctrl *FunctionController) readBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, ctrl.maxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{Success: false, Message: "Request body too large"})
			return nil, false
		}
		respondError(c, err, "Failed to read request body")
		return nil, false
	}
	return body, true
}

func (ctrl *FunctionController) run(c *gin.Context, message string, fn func(context.Context, []byte) (interface{}, error)) {
	body, ok := ctrl.readBody(c)
	if !ok {
		return
	}

	result, err := fn(c.Request.Context(), body)
	if err != nil {
		respondError(c, err, "Function failed")
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: message, Data: result})
}

// UploadToBlob godoc
// @Summary Store body as blob
// @Tags Functions
// @Accept plain
// @Produce json
// @Param x-functions-key header string false "Function key"
// @Success 200 {object} models.Response{data=models.FunctionResult}
// @Router /api/UploadToBlob [post]
func (ctrl *FunctionController) UploadToBlob(c *gin.Context) {
	ctrl.run(c, "File uploaded to Blob Storage.", func(ctx context.Context, body []byte) (interface{}, error) {
		return ctrl.functionService.UploadToBlob(ctx, body)
	})
}

// UploadToFileShare godoc
// @Summary Store body on the file share
// @Tags Functions
// @Accept plain
// @Produce json
// @Param x-functions-key header string false "Function key"
// @Success 200 {object} models.Response{data=models.FunctionResult}
// @Router /api/UploadToFileShare [post]
func (ctrl *FunctionController) UploadToFileShare(c *gin.Context) {
	ctrl.run(c, "File uploaded to File Share.", func(ctx context.Context, body []byte) (interface{}, error) {
		return ctrl.functionService.UploadToFileShare(ctx, body)
	})
}

// SendToQueue godoc
// @Summary Enqueue body
// @Tags Functions
// @Accept plain
// @Produce json
// @Param x-functions-key header string false "Function key"
// @Success 200 {object} models.Response{data=models.FunctionResult}
// @Router /api/SendToQueue [post]
func (ctrl *FunctionController) SendToQueue(c *gin.Context) {
	ctrl.run(c, "Message sent to queue.", func(ctx context.Context, body []byte) (interface{}, error) {
		return ctrl.functionService.SendToQueue(ctx, body)
	})
}

// StoreToTable godoc
// @Summary Store product metadata
// @Tags Functions
// @Accept json
// @Produce json
// @Param x-functions-key header string false "Function key"
// @Param request body models.ProductMetadata true "Product metadata"
// @Success 200 {object} models.Response{data=models.ProductMetadata}
// @Failure 400 {object} models.ErrorResponse
// @Router /api/StoreToTable [post]
func (ctrl *FunctionController) StoreToTable(c *gin.Context) {
	ctrl.run(c, "Product stored in table.", func(ctx context.Context, body []byte) (interface{}, error) {
		return ctrl.functionService.StoreToTable(ctx, body)
	})
}
