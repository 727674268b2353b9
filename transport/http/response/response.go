package response

import (
	"encoding/json"
	"net/http"

	"link/shared/constant"
	gDto "link/shared/dto"
	"link/shared/failure"
	"link/shared/logger"
)

// WithData sends a successful result carrying data.
func WithData[T any](writer http.ResponseWriter, code int, message string, data *T) {
	response(writer, code, gDto.NewResult(message, data, nil))
}

// WithMessage sends a result with a message and "data": null.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, gDto.NewResult[struct{}](message, nil, nil))
}

// WithID sends the key of a freshly inserted row.
func WithID(writer http.ResponseWriter, message string, id int64) {
	WithData(writer, http.StatusCreated, message, &gDto.ID{ID: id})
}

// WithError sends a failed result, with the status derived from the failure code.
func WithError(writer http.ResponseWriter, err error) {
	response(writer, failure.GetCode(err), gDto.NewResult[struct{}]("", nil, err))
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	failed(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	failed(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	failed(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func failed(writer http.ResponseWriter, code int, message string) {
	response(writer, code, gDto.Result[struct{}]{Success: false, Message: message})
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
