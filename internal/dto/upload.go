package dto

// UploadLogoRequest carries a base64 encoded image for POST /api/upload-logo.
type UploadLogoRequest struct {
	Filename string `json:"filename"`
	Data     string `json:"data"`
}
