package api

import "fmt"

// ErrorResponse is the wire shape of every failed request. The message is all
// a client gets; internal detail stays in the logs.
type ErrorResponse struct {
	Error string `json:"error"`
}

var (
	errorInternalServer     = ErrorResponse{Error: "internal server error"}
	errorCannotParseRequest = ErrorResponse{Error: "cannot parse request"}
	errorReportSave         = ErrorResponse{Error: "unable to save report"}
	errorHistoryQuery       = ErrorResponse{Error: "unable to query history"}
	errorEnqueueTask        = ErrorResponse{Error: "unable to enqueue task"}
)

// errorValidation wraps a validation failure whose message is part of the API
// contract, e.g. "Missing field: complaints".
func errorValidation(err error) ErrorResponse {
	return ErrorResponse{Error: err.Error()}
}

func errorMissingField(field string) ErrorResponse {
	return ErrorResponse{Error: fmt.Sprintf("Missing field: %s", field)}
}
