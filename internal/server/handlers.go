package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/errors"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (s *Server) handleTriageTurn(w http.ResponseWriter, r *http.Request) {
	var req pipeline.RawTurn
	if !s.decodeAndValidate(w, r, triageTurnSchema, &req) {
		return
	}

	resp, err := s.pipeline.RunTurn(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMedicationCheck(w http.ResponseWriter, r *http.Request) {
	var req pipeline.MedicationRequest
	if !s.decodeAndValidate(w, r, medicationCheckSchema, &req) {
		return
	}

	resp, err := s.pipeline.RunMedicationCheck(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReportAnalysis(w http.ResponseWriter, r *http.Request) {
	var req pipeline.ReportRequest
	if !s.decodeAndValidate(w, r, reportAnalysisSchema, &req) {
		return
	}

	resp, err := s.pipeline.RunReportAnalysis(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeAndValidate reads the body once, checks it against the schema, then
// decodes it into dst. It writes the error response itself and reports
// whether the handler may proceed.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, schema map[string]interface{}, dst interface{}) bool {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{
			Code:    "MALFORMED_REQUEST",
			Message: "Could not read request body",
		}})
		return false
	}

	var generic map[string]interface{}
	if err := json.Unmarshal(body, &generic); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{
			Code:    "MALFORMED_REQUEST",
			Message: "Request body is not valid JSON",
		}})
		return false
	}

	if err := validateSchema(schema, generic); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{
			Code:    "SCHEMA_VALIDATION_FAILED",
			Message: "Request does not match the expected shape",
			Details: err.Error(),
		}})
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{
			Code:    "MALFORMED_REQUEST",
			Message: "Request body could not be decoded",
		}})
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	stdErr, ok := err.(*errors.StandardError)
	if !ok {
		s.logger.Error("unhandled error", map[string]interface{}{
			"error": err.Error(),
			"path":  r.URL.Path,
		})
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errorBody{
			Code:    "INTERNAL_ERROR",
			Message: "Internal server error",
		}})
		return
	}

	s.writeJSON(w, statusFor(stdErr), errorResponse{Error: errorBody{
		Code:    string(stdErr.Code),
		Message: stdErr.Message,
		Details: stdErr.Details,
	}})
}

func statusFor(err *errors.StandardError) int {
	switch err.Code {
	case errors.ErrCodeEmptyInput, errors.ErrCodeTextTooLong, errors.ErrCodeInputValidationFailed:
		return http.StatusBadRequest
	case errors.ErrCodeSessionStoreFailed, errors.ErrCodeCatalogUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
