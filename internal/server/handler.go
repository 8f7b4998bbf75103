package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/invincible-jha/aumai-toolemu/internal/logger"
	"github.com/invincible-jha/aumai-toolemu/pkg/emulator"
)

// NewHandler builds the HTTP handler for the emulator API:
//
//	POST   /tools/{name}  invoke a mocked tool
//	GET    /calls         list recorded calls, oldest first
//	DELETE /calls         reset call log and sequence cursors
//	GET    /health        liveness probe
func NewHandler(emu *emulator.Emulator) http.Handler {
	h := &handler{emu: emu}
	mux := http.NewServeMux()
	mux.HandleFunc("/tools/", h.handleTool)
	mux.HandleFunc("/calls", h.handleCalls)
	mux.HandleFunc("/health", h.handleHealth)
	return mux
}

type handler struct {
	// The emulator is single-owner state with no internal locking, so the
	// adapter serializes access across HTTP requests. Latency simulation
	// happens while the lock is held, matching the one-call-at-a-time
	// semantics of the engine.
	mu  sync.Mutex
	emu *emulator.Emulator
}

func (h *handler) handleTool(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	name := strings.TrimSpace(strings.TrimPrefix(r.URL.Path, "/tools/"))
	if name == "" {
		writeError(w, http.StatusNotFound, "tool name missing")
		return
	}

	input, err := decodeInput(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	h.mu.Lock()
	resp, err := h.emu.Call(r.Context(), name, input)
	h.mu.Unlock()
	if err != nil {
		if errors.Is(err, emulator.ErrToolNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Log.Infow("[server] tool call", "tool", name, "status", resp.StatusCode)
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	writeJSON(w, resp.StatusCode, resp.Body)
}

func (h *handler) handleCalls(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.mu.Lock()
		calls := h.emu.RecordedCalls()
		h.mu.Unlock()
		writeJSON(w, http.StatusOK, calls)
	case http.MethodDelete:
		h.mu.Lock()
		h.emu.Reset()
		h.mu.Unlock()
		logger.Log.Info("[server] reset")
		writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeInput parses the request body as a JSON object. An empty body is
// an empty input payload.
func decodeInput(body io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return map[string]any{}, nil
	}
	var input map[string]any
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, err
	}
	if input == nil {
		input = map[string]any{}
	}
	return input, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
