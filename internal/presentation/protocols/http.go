package protocols

import (
	"io"
	"net/http"
	"net/url"
)

type HttpRequest struct {
	Body      io.ReadCloser
	Header    http.Header
	UrlParams url.Values
	Req       *http.Request
}

type HttpResponse struct {
	Body       io.ReadCloser
	StatusCode int
	Headers    http.Header
}

// SuccessResponse is the envelope returned on 2xx.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope returned with a 4xx/5xx status.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
