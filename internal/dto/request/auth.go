// Package request defines the HTTP request payloads.
package request

// LoginRequest is the login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
