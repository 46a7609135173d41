package http

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"jeopardy/internal/app"
	"jeopardy/internal/clueset"
	"jeopardy/internal/i18n"
)

// maxClueSetSize bounds an uploaded clue set document
const maxClueSetSize = 1 << 20

// FilenameHeader carries the original name of an uploaded clue set
const FilenameHeader = "X-Filename"

// Response is a standard API response
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo contains error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is the response for health check
type HealthResponse struct {
	Status   string         `json:"status"`
	Screen   app.ScreenKind `json:"screen"`
	Consoles int            `json:"consoles"`
}

// handleHealth handles GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &HealthResponse{
		Status:   "ok",
		Screen:   s.controller.ScreenKind(),
		Consoles: s.controller.ClientCount(),
	})
}

// handleState handles GET /api/state
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, s.controller.State())
}

// handleUploadClueSet handles POST /api/clueset with the raw document as body
func (s *Server) handleUploadClueSet(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxClueSetSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.sendError(w, http.StatusRequestEntityTooLarge, "CLUE_SET_TOO_LARGE", "Clue set is too large")
			return
		}
		s.sendError(w, http.StatusBadRequest, "INVALID_BODY", "Could not read request body")
		return
	}

	filename := path.Base(strings.TrimSpace(r.Header.Get(FilenameHeader)))
	if filename == "." || filename == "/" {
		filename = "clueset.json"
	}

	if err := s.controller.LoadClueSet(filename, data); err != nil {
		s.sendAppError(w, r, err)
		return
	}
	s.sendSuccess(w, s.controller.State())
}

// handleLoadSample handles POST /api/clueset/sample
func (s *Server) handleLoadSample(w http.ResponseWriter, r *http.Request) {
	if err := s.controller.LoadSampleClueSet(); err != nil {
		s.sendAppError(w, r, err)
		return
	}
	s.sendSuccess(w, s.controller.State())
}

// handleDownloadSample handles GET /api/clueset/sample, a template for authors
func (s *Server) handleDownloadSample(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+clueset.SampleFilename+`"`)
	w.Write(clueset.SampleDocument())
}

// handleStatic serves files under web/static
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if s.webFS == nil {
		http.NotFound(w, r)
		return
	}
	http.StripPrefix("/static/", http.FileServer(http.FS(mustSub(s.webFS, "static")))).ServeHTTP(w, r)
}

// handleIndex serves the console page
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.webFS == nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	data, err := fs.ReadFile(s.webFS, "index.html")
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return fsys
	}
	return sub
}

// sendAppError maps a controller error to a status and a localized message
func (s *Server) sendAppError(w http.ResponseWriter, r *http.Request, err error) {
	lang := i18n.MatchAcceptLanguage(r.Header.Get("Accept-Language"), s.lang)
	code := app.ErrorCode(err)

	status := http.StatusInternalServerError
	var verr *clueset.ValidationError
	switch {
	case errors.As(err, &verr):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, clueset.ErrMalformed):
		status = http.StatusBadRequest
	case errors.Is(err, app.ErrGameInProgress):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	}
	s.sendError(w, status, code, i18n.Message(err, lang))
}

// sendSuccess sends a successful JSON response
func (s *Server) sendSuccess(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(&Response{
		Success: true,
		Data:    data,
	})
}

// sendError sends an error JSON response
func (s *Server) sendError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(&Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}
