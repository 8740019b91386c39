package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/abhisek/passagequiz/internal/qtype"
	"github.com/abhisek/passagequiz/internal/questiongen"
	"github.com/abhisek/passagequiz/internal/workspace"
)

type apiType struct {
	ID             qtype.Type `json:"id"`
	Label          string     `json:"label"`
	EnglishName    string     `json:"english_name"`
	MultipleChoice bool       `json:"multiple_choice"`
}

type apiGenerateRequest struct {
	Passage string   `json:"passage"`
	Types   []string `json:"types"`
}

type apiGenerateResponse struct {
	Questions []questiongen.GeneratedQuestion `json:"questions"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type apiErrorResponse struct {
	Error apiError `json:"error"`
}

func (s *Server) handleAPITypes(w http.ResponseWriter, r *http.Request) {
	types := make([]apiType, 0, len(qtype.All()))
	for _, t := range qtype.All() {
		types = append(types, apiType{
			ID:             t,
			Label:          t.Label(),
			EnglishName:    t.EnglishName(),
			MultipleChoice: t.MultipleChoice(),
		})
	}
	writeJSON(w, http.StatusOK, types)
}

// handleAPIGenerate is stateless: it does not touch the caller's
// workspace.
func (s *Server) handleAPIGenerate(w http.ResponseWriter, r *http.Request) {
	var body apiGenerateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("INVALID_BODY", "Invalid request body", ""))
		return
	}
	types, err := qtype.ParseAll(body.Types)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", err.Error(), questiongen.FieldTypes))
		return
	}

	qs, err := s.gen.Generate(r.Context(), questiongen.Request{Passage: body.Passage, Types: types})
	if err != nil {
		var inputErr *questiongen.InputError
		if errors.As(err, &inputErr) {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", inputErr.Message, inputErr.Field))
			return
		}
		s.log.Error("api generation failed", "error", err)
		var genErr *questiongen.GenerationError
		if errors.As(err, &genErr) {
			writeJSON(w, http.StatusBadGateway, errorResp("PARSE_ERROR", genErr.Error(), ""))
			return
		}
		writeJSON(w, http.StatusBadGateway, errorResp("GENERATION_FAILED", workspace.MessageGenerateFailed, ""))
		return
	}

	if qs == nil {
		qs = []questiongen.GeneratedQuestion{}
	}
	writeJSON(w, http.StatusOK, apiGenerateResponse{Questions: qs})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func errorResp(code, message, field string) apiErrorResponse {
	return apiErrorResponse{Error: apiError{Code: code, Message: message, Field: field}}
}
