package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/sudoping01/bambara-text-normalization/evaluate"
	"github.com/sudoping01/bambara-text-normalization/normalize"
	"github.com/sudoping01/bambara-text-normalization/numtext"
)

// maxBodyBytes bounds a request body.
const maxBodyBytes = 4 << 20

// newRouter registers the /v1 routes on the root router so a method mismatch
// is reported as 405 rather than 404.
func newRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(logRequests)
	r.MethodNotAllowedHandler = http.HandlerFunc(handleMethodNotAllowed)
	r.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/v1/normalize", handleNormalize).Methods(http.MethodPost)
	r.HandleFunc("/v1/evaluate", handleEvaluate).Methods(http.MethodPost)
	r.HandleFunc("/v1/validate", handleValidate).Methods(http.MethodPost)
	r.HandleFunc("/v1/numbers/{n}", handleNumberToWords).Methods(http.MethodGet)
	r.HandleFunc("/v1/numbers", handleWordsToNumber).Methods(http.MethodGet)
	return r
}

func handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed on %s", r.Method, r.URL.Path))
}

type normalizeRequest struct {
	Text   string   `json:"text"`
	Texts  []string `json:"texts,omitempty"`
	Preset string   `json:"preset,omitempty"`
	Mode   string   `json:"mode,omitempty"`
	Debug  bool     `json:"debug,omitempty"`
}

type normalizeResponse struct {
	Normalized string           `json:"normalized"`
	Texts      []string         `json:"texts,omitempty"`
	Steps      []normalize.Step `json:"steps,omitempty"`
}

type evaluateRequest struct {
	Reference  string   `json:"reference"`
	Hypothesis string   `json:"hypothesis"`
	References []string `json:"references,omitempty"`
	Hypotheses []string `json:"hypotheses,omitempty"`
	Preset     string   `json:"preset,omitempty"`
	Mode       string   `json:"mode,omitempty"`
	DER        bool     `json:"der,omitempty"`
}

type evaluateResponse struct {
	evaluate.Result
	Alignment string `json:"alignment"`
}

type batchResponse struct {
	Aggregate evaluate.Result   `json:"aggregate"`
	Results   []evaluate.Result `json:"results"`
}

type validateRequest struct {
	Text    string `json:"text"`
	Analyze bool   `json:"analyze,omitempty"`
}

type numberResponse struct {
	Digits string `json:"digits"`
	Words  string `json:"words"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleNormalize(w http.ResponseWriter, r *http.Request) {
	var req normalizeRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	cfg, err := resolveConfig(req.Preset, req.Mode, "")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	n := normalize.New(cfg)

	if len(req.Texts) > 0 {
		out, err := n.NormalizeBatch(r.Context(), req.Texts, 0)
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
		writeResponse(w, http.StatusOK, normalizeResponse{Texts: out})
		return
	}

	resp := normalizeResponse{Normalized: n.Normalize(req.Text)}
	if req.Debug {
		resp.Steps = n.Steps(req.Text)
	}
	writeResponse(w, http.StatusOK, resp)
}

func handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	preset := req.Preset
	if preset == "" {
		preset = normalize.PresetWER
	}
	cfg, err := resolveConfig(preset, req.Mode, "")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var opts []evaluate.Option
	if req.DER {
		opts = append(opts, evaluate.WithDER())
	}
	e := evaluate.New(cfg, opts...)

	if len(req.References) > 0 || len(req.Hypotheses) > 0 {
		agg, results, err := e.EvaluateBatch(r.Context(), req.References, req.Hypotheses)
		switch {
		case errors.Is(err, evaluate.ErrLengthMismatch):
			writeError(w, http.StatusBadRequest, err)
		case err != nil:
			writeError(w, http.StatusServiceUnavailable, err)
		default:
			writeResponse(w, http.StatusOK, batchResponse{Aggregate: agg, Results: results})
		}
		return
	}

	writeResponse(w, http.StatusOK, evaluateResponse{
		Result:    e.Evaluate(req.Reference, req.Hypothesis),
		Alignment: e.Visualize(req.Reference, req.Hypothesis),
	})
}

func handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	writeResponse(w, http.StatusOK, checkText(req.Text, req.Analyze))
}

func handleNumberToWords(w http.ResponseWriter, r *http.Request) {
	digits := mux.Vars(r)["n"]
	words, err := numtext.ConvertDecimal(digits)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeResponse(w, http.StatusOK, numberResponse{Digits: digits, Words: words})
}

func handleWordsToNumber(w http.ResponseWriter, r *http.Request) {
	words := r.URL.Query().Get("words")
	if words == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing words query parameter"))
		return
	}
	digits, err := numtext.ParseDecimal(words)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeResponse(w, http.StatusOK, numberResponse{Digits: digits, Words: words})
}

// decodeRequest reads a JSON body into v. It writes a 400 and returns false
// on failure.
func decodeRequest(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return false
	}
	return true
}

func writeResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeResponse(w, status, errorResponse{Error: err.Error()})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond))
	})
}
