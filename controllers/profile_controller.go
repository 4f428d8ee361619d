package controllers

import (
	"net/http"

	"abc-retail/models"
	"abc-retail/services"
	"abc-retail/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	profileService *services.ProfileService
	maxUploadSize  int64
}

func NewProfileController(profileService *services.ProfileService, maxUploadSize int64) *ProfileController {
	return &ProfileController{profileService: profileService, maxUploadSize: maxUploadSize}
}

// UploadProfileFile godoc
// @Summary Upload profile document
// @Tags Admin Profile Files
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param profile_id formData string true "Profile row key"
// @Param file formData file true "Document"
// @Success 201 {object} models.Response{data=models.StoredFile}
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/profile-files [post]
func (ctrl *ProfileController) UploadProfileFile(c *gin.Context) {
	profileID := c.PostForm("profile_id")
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Please select a file."})
		return
	}
	if err := utils.ValidateUpload(header, ctrl.maxUploadSize); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	file, err := header.Open()
	if err != nil {
		respondFileError(c, err, "Failed to upload file")
		return
	}
	defer file.Close()

	name, err := ctrl.profileService.UploadProfileFile(c.Request.Context(), profileID, header.Filename, file)
	if err != nil {
		respondFileError(c, err, "Failed to upload file")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "File uploaded successfully",
		Data:    models.StoredFile{Name: name, Size: header.Size},
	})
}

// ListProfileFiles godoc
// @Summary List profile documents
// @Tags Admin Profile Files
// @Security BearerAuth
// @Produce json
// @Param profile_id query string false "Only this profile's documents"
// @Success 200 {object} models.Response{data=[]models.StoredFile}
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/profile-files [get]
func (ctrl *ProfileController) ListProfileFiles(c *gin.Context) {
	files, err := ctrl.profileService.ListProfileFiles(c.Request.Context(), c.Query("profile_id"))
	if err != nil {
		respondFileError(c, err, "Failed to list files")
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Files retrieved successfully", Data: files})
}

// DownloadProfileFile godoc
// @Summary Download profile document
// @Tags Admin Profile Files
// @Security BearerAuth
// @Produce octet-stream
// @Param name path string true "File name"
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/profile-files/{name} [get]
func (ctrl *ProfileController) DownloadProfileFile(c *gin.Context) {
	name := c.Param("name")
	data, err := ctrl.profileService.DownloadProfileFile(c.Request.Context(), name)
	if err != nil {
		respondFileError(c, err, "Failed to download file")
		return
	}

	sendAttachment(c, name, data)
}

// DeleteProfileFile godoc
// @Summary Delete profile document
// @Tags Admin Profile Files
// @Security BearerAuth
// @Produce json
// @Param name path string true "File name"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/profile-files/{name} [delete]
func (ctrl *ProfileController) DeleteProfileFile(c *gin.Context) {
	if err := ctrl.profileService.DeleteProfileFile(c.Request.Context(), c.Param("name")); err != nil {
		respondFileError(c, err, "Failed to delete file")
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "File deleted successfully"})
}
