// Package utilities contain utility code that use across the package
package utilities

import "github.com/Gokulvemuri/job-application-manager/internal/model"

// ErrorResponse type for swagger docs
type ErrorResponse struct {
	Error string `json:"error"`
}

// DeleteResponse is returned after a job application has been removed
type DeleteResponse struct {
	Message string               `json:"message"`
	Deleted model.JobApplication `json:"deleted"`
}
