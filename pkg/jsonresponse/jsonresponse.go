// Package jsonresponse keeps error responses uniform across handlers.
package jsonresponse

type jsonError struct {
	Error string `json:"error"`
}

// Error wraps err into the json error envelope every handler returns.
func Error(err error) jsonError {
	return jsonError{Error: err.Error()}
}
