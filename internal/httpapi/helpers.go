package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"mess-bill/internal/config"
	"mess-bill/internal/domain"
)

// parseBillInput reads the billing form fields. Absent fields fall back to the
// current month and year, zero salaries and the configured defaults.
func (s *Server) parseBillInput(r *http.Request) (config.BillInput, error) {
	now := s.now()
	in := config.BillInput{Rounding: s.cfg.Rounding()}

	var err error
	if in.Period.Month, err = formInt(r, "month", int(now.Month())); err != nil {
		return in, err
	}
	if in.Period.Year, err = formInt(r, "year", now.Year()); err != nil {
		return in, err
	}
	if in.Salaries.Cook, err = formFloat(r, "cook", 0); err != nil {
		return in, err
	}
	if in.Salaries.Helpers, err = formFloat(r, "helpers", 0); err != nil {
		return in, err
	}
	if in.Salaries.Caretaker, err = formFloat(r, "caretaker", 0); err != nil {
		return in, err
	}
	if in.NumStudents, err = formInt(r, "students", s.cfg.DefaultStudents); err != nil {
		return in, err
	}
	if in.Decimals, err = formInt(r, "decimals", s.cfg.DefaultDecimals); err != nil {
		return in, err
	}
	return in, nil
}

func formInt(r *http.Request, key string, def int) (int, error) {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s': must be an integer", key, v)
	}
	return i, nil
}

func formFloat(r *http.Request, key string, def float64) (float64, error) {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s': must be a number", key, v)
	}
	return f, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrTooManySessions):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, domain.ErrInvalidConfiguration):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("Request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeCSV(w http.ResponseWriter, filename string, data []byte, err error) {
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
