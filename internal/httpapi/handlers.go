package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"mess-bill/internal/domain"
	"mess-bill/internal/gateway"
	"mess-bill/internal/report"
)

type expenseRequest struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type expensesResponse struct {
	Added    *bool                      `json:"added,omitempty"`
	Expenses []domain.FixedExpenseEntry `json:"expenses"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	id, err := s.sessions.Create()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	slog.Info("Session created", "session_id", id)
	writeJSON(w, http.StatusCreated, map[string]string{"session_id": id.String()})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}
	if err := s.sessions.Delete(id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}
	entries, err := s.sessions.Expenses(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expensesResponse{Expenses: entries})
}

// handleAddExpense ignores entries with a blank name or non-positive amount;
// the response reports whether the entry was added.
func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	added, err := s.sessions.AddExpense(id, req.Name, req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	entries, err := s.sessions.Expenses(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expensesResponse{Added: &added, Expenses: entries})
}

func (s *Server) handleClearExpenses(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}
	if err := s.sessions.ClearExpenses(id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expensesResponse{Expenses: []domain.FixedExpenseEntry{}})
}

// handleComputeBill reads the uploaded invoices and form fields, then returns the
// bill as JSON, or as a CSV download when ?export=summary|ledger is given.
func (s *Server) handleComputeBill(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	maxBytes := int64(s.cfg.MaxUploadMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		writeError(w, http.StatusBadRequest, "invalid form: "+err.Error())
		return
	}

	in, err := s.parseBillInput(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if in.Extra, err = s.sessions.Expenses(id); err != nil {
		writeDomainError(w, err)
		return
	}

	uploads, err := readUploads(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	bill, err := s.uc.Compute(r.Context(), uploads, in)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	switch export := r.URL.Query().Get("export"); export {
	case "":
		writeJSON(w, http.StatusOK, bill)
	case "summary":
		data, err := report.SummaryCSV(bill.Summary)
		writeCSV(w, report.SummaryFileName, data, err)
	case "ledger":
		data, err := report.LedgerCSV(bill.Summary)
		writeCSV(w, report.LedgerFileName, data, err)
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown export %q: must be summary or ledger", export))
	}
}

func readUploads(r *http.Request) ([]domain.Upload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	files := r.MultipartForm.File["invoices"]
	uploads := make([]domain.Upload, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open upload %s: %w", fh.Filename, err)
		}
		up, err := gateway.ReadUpload(fh.Filename, f)
		f.Close()
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, up)
	}
	return uploads, nil
}

func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, domain.ErrSessionNotFound.Error())
		return uuid.Nil, false
	}
	return id, true
}
