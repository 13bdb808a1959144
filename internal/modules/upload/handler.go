package upload

import (
	"errors"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dsofts/core/internal/pkg/response"
)

// Handler exposes the admin image upload endpoints.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the upload routes; every route requires the admin
// role.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW ...gin.HandlerFunc) {
	grp := rg.Group("/upload", adminMW...)
	grp.POST("/image", h.uploadOne)
	grp.POST("/images", h.uploadMany)
	grp.DELETE("/image", h.delete)
}

// checkFile gates a multipart file on extension, declared MIME type and
// size before any bytes are read.
func checkFile(fh *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return errBadType
	}
	if ct := fh.Header.Get("Content-Type"); ct != "" {
		mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(ct, ";", 2)[0]))
		subtype, found := strings.CutPrefix(mediaType, "image/")
		if !found {
			return errBadType
		}
		if _, ok := allowedExtensions["."+subtype]; !ok {
			return errBadType
		}
	}
	if fh.Size > maxUploadSize {
		return errTooLarge
	}
	return nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxUploadSize+1))
}

func (h *Handler) uploadOne(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "No file uploaded")
		return
	}
	if err := checkFile(fh); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	data, err := readFile(fh)
	if err != nil {
		response.InternalError(c)
		return
	}
	if len(data) > maxUploadSize {
		response.BadRequest(c, errTooLarge.Error())
		return
	}

	img, err := h.store.Upload(c.Request.Context(), data, fh.Filename, c.PostForm("folder"))
	if err != nil {
		if errors.Is(err, errBadType) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalErrorMsg(c, "Failed to upload image")
		return
	}
	response.OK(c, gin.H{
		"message":  "Image uploaded successfully",
		"url":      img.URL,
		"publicId": img.PublicID,
		"format":   img.Format,
		"width":    img.Width,
		"height":   img.Height,
	})
}

func (h *Handler) uploadMany(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "No files uploaded")
		return
	}
	headers := form.File["images"]
	if len(headers) == 0 {
		response.BadRequest(c, "No files uploaded")
		return
	}
	if len(headers) > maxBatchSize {
		response.BadRequest(c, "Cannot upload more than 10 images at once")
		return
	}

	files := make([]namedFile, 0, len(headers))
	for _, fh := range headers {
		if err := checkFile(fh); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		data, err := readFile(fh)
		if err != nil {
			response.InternalError(c)
			return
		}
		if len(data) > maxUploadSize {
			response.BadRequest(c, errTooLarge.Error())
			return
		}
		files = append(files, namedFile{data: data, filename: fh.Filename})
	}

	images, err := h.store.uploadMany(c.Request.Context(), files, c.PostForm("folder"))
	if err != nil {
		response.InternalErrorMsg(c, "Failed to upload images")
		return
	}
	response.OK(c, gin.H{
		"message": "Images uploaded successfully",
		"images":  images,
		"count":   len(images),
	})
}

func (h *Handler) delete(c *gin.Context) {
	var dto DeleteDTO
	if err := c.ShouldBindJSON(&dto); err != nil || strings.TrimSpace(dto.PublicID) == "" {
		response.BadRequest(c, "Public ID is required")
		return
	}

	if err := h.store.Delete(c.Request.Context(), dto.PublicID); err != nil {
		if errors.Is(err, errImageNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalErrorMsg(c, "Failed to delete image")
		return
	}
	response.OK(c, gin.H{
		"message":  "Image deleted successfully",
		"publicId": dto.PublicID,
	})
}
