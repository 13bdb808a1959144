package upload

import "errors"

const (
	maxUploadSize = 5 << 20
	maxBatchSize  = 10
	defaultFolder = "dsofts"
)

var (
	errBadType       = errors.New("Only image files are allowed (jpeg, jpg, png, gif, webp)")
	errTooLarge      = errors.New("File size must be less than 5MB")
	errImageNotFound = errors.New("Image not found or already deleted")
)

// allowedExtensions maps accepted file extensions to their canonical format
// name used in responses.
var allowedExtensions = map[string]string{
	".jpeg": "jpeg",
	".jpg":  "jpg",
	".png":  "png",
	".gif":  "gif",
	".webp": "webp",
}

// UploadedImage describes one stored image.
type UploadedImage struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Format   string `json:"format"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// DeleteDTO is the delete request body.
type DeleteDTO struct {
	PublicID string `json:"publicId"`
}
