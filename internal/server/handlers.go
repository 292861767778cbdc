package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"payoff-studio/internal/chart"
	apperrors "payoff-studio/internal/errors"
	"payoff-studio/internal/models"
	"payoff-studio/internal/payoff"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// quoteStatus maps a lookup error to an HTTP status.
func quoteStatus(err error) int {
	if apperrors.Is(err, apperrors.ErrSymbolNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("symbol")))
	if symbol == "" {
		writeError(w, http.StatusBadRequest, "symbol is required")
		return
	}

	quote, err := s.provider.GetQuote(r.Context(), symbol)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Quote lookup failed")
		writeError(w, quoteStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (s *Server) handleExpirations(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("symbol")))
	if symbol == "" {
		writeError(w, http.StatusBadRequest, "symbol is required")
		return
	}

	exps, err := s.provider.GetExpirations(r.Context(), symbol)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Expirations lookup failed")
		writeError(w, quoteStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"symbol":      symbol,
		"expirations": exps,
	})
}

// payoffRequest is the JSON body shared by the payoff and chart endpoints.
type payoffRequest struct {
	Legs []legRequest `json:"legs"`
	Spot float64      `json:"spot"`
}

type legRequest struct {
	Side     string  `json:"side"`
	Type     string  `json:"type"`
	Quantity float64 `json:"quantity"`
	Strike   float64 `json:"strike"`
	Expiry   string  `json:"expiry"`
}

func (req *payoffRequest) legs() ([]models.Leg, error) {
	legs := make([]models.Leg, 0, len(req.Legs))
	for i, lr := range req.Legs {
		side, err := models.ParseSide(lr.Side)
		if err != nil {
			return nil, apperrors.NewValidationError("legs", i, err.Error())
		}
		typ, err := models.ParseOptionType(lr.Type)
		if err != nil {
			return nil, apperrors.NewValidationError("legs", i, err.Error())
		}
		legs = append(legs, models.Leg{
			Side:     side,
			Type:     typ,
			Quantity: payoff.Sanitize(lr.Quantity, 0),
			Strike:   payoff.Sanitize(lr.Strike, 0),
			Expiry:   lr.Expiry,
		})
	}
	return legs, nil
}

func (s *Server) decodePayoffRequest(w http.ResponseWriter, r *http.Request) ([]models.Leg, float64, bool) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return nil, 0, false
	}

	var req payoffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return nil, 0, false
	}
	legs, err := req.legs()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, 0, false
	}
	return legs, req.Spot, true
}

type payoffResponse struct {
	payoff.Series
	Analysis payoff.Analysis `json:"analysis"`
}

func (s *Server) handlePayoff(w http.ResponseWriter, r *http.Request) {
	legs, spot, ok := s.decodePayoffRequest(w, r)
	if !ok {
		return
	}

	series := payoff.BuildSeries(legs, spot)
	writeJSON(w, http.StatusOK, payoffResponse{
		Series:   series,
		Analysis: payoff.Analyze(series),
	})
}

func (s *Server) handleChartSVG(w http.ResponseWriter, r *http.Request) {
	legs, spot, ok := s.decodePayoffRequest(w, r)
	if !ok {
		return
	}

	opt := chart.Options{
		Width:   queryFloat(r, "width", s.chartCfg.Width),
		Height:  queryFloat(r, "height", s.chartCfg.Height),
		Padding: queryFloat(r, "padding", s.chartCfg.Padding),
	}

	series := payoff.BuildSeries(legs, spot)
	svg := chart.RenderSVG(series, spot, opt)

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write([]byte(svg))
}

func queryFloat(r *http.Request, key string, fallback float64) float64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func (s *Server) handleStrategies(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "strategy store not configured")
		return
	}

	switch r.Method {
	case http.MethodGet:
		list, err := s.store.ListStrategies(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if list == nil {
			list = []models.Strategy{}
		}
		writeJSON(w, http.StatusOK, list)

	case http.MethodPost:
		var st models.Strategy
		if err := json.NewDecoder(r.Body).Decode(&st); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		if err := s.store.SaveStrategy(r.Context(), &st); err != nil {
			var verr *apperrors.ValidationError
			if apperrors.As(err, &verr) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, st)

	case http.MethodDelete:
		id := r.URL.Query().Get("id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "id is required")
			return
		}
		if err := s.store.DeleteStrategy(r.Context(), id); err != nil {
			if apperrors.Is(err, apperrors.ErrStrategyNotFound) {
				writeError(w, http.StatusNotFound, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})

	default:
		writeError(w, http.StatusMethodNotAllowed, "unsupported method")
	}
}
