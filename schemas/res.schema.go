// Package schemas contains the request and response schemas
package schemas

// Res is the response envelope of the JSON endpoints
type Res struct {
	Message string `json:"message"`
}
