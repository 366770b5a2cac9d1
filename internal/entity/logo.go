package entity

import "time"

// LogoObject is an uploaded logo image stored under its sanitized object name.
type LogoObject struct {
	Name        string    `json:"name"`
	ContentType string    `json:"contentType"`
	Data        []byte    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}
