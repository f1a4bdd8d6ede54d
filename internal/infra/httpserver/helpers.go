package httpserver

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type ErrorResponse struct {
	Message string `json:"message,omitempty"`
}

func ReplyWithError(w http.ResponseWriter, statusCode int, errMsg string) {
	errResponse := &ErrorResponse{
		Message: errMsg,
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(errResponse)
}

func ReplyJSONResponse(w http.ResponseWriter, statusCode int, output any) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if output != nil {
		json.NewEncoder(w).Encode(output)
	}
}

func DecodeJSONBody(r *http.Request, placeholder any) error {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("reading request body: %w", err)
	}

	if err := json.Unmarshal(reqBody, placeholder); err != nil {
		return fmt.Errorf("unmarshaling json: %w", err)
	}

	return nil
}

func GetPathParam(r *http.Request, name string) string {
	return r.PathValue(name)
}

func GetQueryParam(r *http.Request, name string) string {
	return r.URL.Query().Get(name)
}
