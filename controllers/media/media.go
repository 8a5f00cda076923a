package mediaController

import (
	"lms/middleware"
	"lms/utils"
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const tmpUploadDir = "uploads"

// Upload forwards a single multipart file to media storage
func Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file uploaded", nil)
	}

	if file.Size > utils.MaxUploadSize {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File is too large. Please upload a smaller file.", nil)
	}

	filePath, err := utils.SaveUploadedFile(file, tmpUploadDir)
	if err != nil {
		log.Printf("Error saving upload: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error uploading file", nil)
	}
	defer os.Remove(filePath)

	result, err := utils.MediaClient.Upload(filePath)
	if err != nil {
		return mediaErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "File uploaded!", result)
}

// BulkUpload forwards up to ten multipart files to media storage
func BulkUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No files uploaded", nil)
	}

	files := form.File["files"]
	if len(files) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No files uploaded", nil)
	}
	if len(files) > 10 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "At most 10 files per bulk upload", nil)
	}

	results := make([]*utils.UploadResult, 0, len(files))
	for _, file := range files {
		if file.Size > utils.MaxUploadSize {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File is too large. Please upload a smaller file.", nil)
		}

		filePath, err := utils.SaveUploadedFile(file, tmpUploadDir)
		if err != nil {
			log.Printf("Error saving upload: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error in bulk uploading files", nil)
		}

		result, err := utils.MediaClient.Upload(filePath)
		os.Remove(filePath)
		if err != nil {
			return mediaErrorResponse(c, err)
		}
		results = append(results, result)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Files uploaded!", results)
}

// Delete removes an asset from media storage by its public id
func Delete(c *fiber.Ctx) error {
	publicID := c.Params("id")
	if publicID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Asset id is required", nil)
	}

	if err := utils.MediaClient.Destroy(publicID); err != nil {
		return mediaErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Asset deleted successfully!", nil)
}

// mediaErrorResponse translates storage failures to user-facing messages
func mediaErrorResponse(c *fiber.Ctx, err error) error {
	log.Printf("Media storage error: %v", err)

	if err == utils.ErrMediaNotConfigured {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "File upload service is not configured. Please contact administrator.", nil)
	}
	if strings.Contains(err.Error(), "too large") {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File is too large. Please upload a smaller file.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Error uploading file", nil)
}
