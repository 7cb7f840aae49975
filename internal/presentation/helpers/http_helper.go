package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"

	presentationProtocols "github.com/pennyflow/finance-backend/internal/presentation/protocols"
)

func CreateResponse(body interface{}, statusCode int) *presentationProtocols.HttpResponse {
	if body == nil {
		return &presentationProtocols.HttpResponse{
			Body:       io.NopCloser(bytes.NewReader(nil)),
			StatusCode: statusCode,
		}
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		log.Println("encoding response body:", err)
		return &presentationProtocols.HttpResponse{
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"success":false,"message":"Server error"}`))),
			StatusCode: http.StatusInternalServerError,
		}
	}

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(encoded)),
		StatusCode: statusCode,
	}
}

func CreateError(message string, statusCode int) *presentationProtocols.HttpResponse {
	return CreateResponse(&presentationProtocols.ErrorResponse{
		Message: message,
	}, statusCode)
}

func CreateSuccess(message string, data interface{}, statusCode int) *presentationProtocols.HttpResponse {
	return CreateResponse(&presentationProtocols.SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	}, statusCode)
}

// CreateFileResponse serves raw bytes with the given content type, bypassing
// the JSON envelope.
func CreateFileResponse(raw []byte, contentType string, statusCode int) *presentationProtocols.HttpResponse {
	headers := http.Header{}
	headers.Set("Content-Type", contentType)

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(raw)),
		StatusCode: statusCode,
		Headers:    headers,
	}
}
