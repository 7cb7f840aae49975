package adapters

import (
	"io"
	"log"
	"net/http"

	presentationProtocols "github.com/pennyflow/finance-backend/internal/presentation/protocols"
)

type Controller interface {
	Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse
}

func AdaptRoute(controller Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := controller.Handle(presentationProtocols.HttpRequest{
			Body:      r.Body,
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		})

		for key, values := range response.Headers {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "application/json")
		}

		w.WriteHeader(response.StatusCode)

		if response.Body != nil {
			if _, err := io.Copy(w, response.Body); err != nil {
				log.Println("writing response body:", err)
			}
			response.Body.Close()
		}
	}
}
