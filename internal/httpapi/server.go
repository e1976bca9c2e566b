// SPDX-License-Identifier: MIT

// Package httpapi exposes TOPSIS evaluation over HTTP:
//
//	GET  /                     health check
//	POST /api/topsis           multipart upload → scored table + download link
//	GET  /api/download/{name}  stored result CSV
//
// Routes under /api/ are CORS-open and share one token-bucket rate limiter.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/lvrank/internal/artifact"
	"github.com/katalvlaran/lvrank/internal/csvio"
	"github.com/katalvlaran/lvrank/internal/mailer"
	"github.com/katalvlaran/lvrank/topsis"
)

const (
	defaultMaxUpload = 10 << 20
	downloadPath     = "/api/download/"
	emailFailed      = "Email sending failed"
)

// Options tune a Server. Zero values pick defaults: no rate limit, a 10 MiB
// upload cap, relative download links and the reject policy.
type Options struct {
	BaseURL        string
	RateLimit      float64 // requests per second; 0 disables limiting
	RateBurst      int
	MaxUploadBytes int64
	Policy         topsis.DegeneratePolicy
}

// Server holds the collaborators of the HTTP handlers.
type Server struct {
	store     artifact.Store
	mail      mailer.Sender
	log       *slog.Logger
	limiter   *rate.Limiter
	maxUpload int64
	baseURL   string
	evalOpts  []topsis.Option
}

// NewServer wires a server. mail may be nil, in which case every email
// request reports an email error.
func NewServer(store artifact.Store, mail mailer.Sender, logger *slog.Logger, opts Options) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		store:     store,
		mail:      mail,
		log:       logger,
		maxUpload: opts.MaxUploadBytes,
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		evalOpts:  []topsis.Option{
			topsis.WithDegeneratePolicy(opts.Policy),
			topsis.WithLogger(logger),
		},
	}
	if s.maxUpload <= 0 {
		s.maxUpload = defaultMaxUpload
	}
	if opts.RateLimit > 0 {
		burst := max(opts.RateBurst, 1)
		s.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	return s
}

// Routes returns the full handler chain.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHealth)
	mux.HandleFunc("POST /api/topsis", s.handleTopsis)
	mux.HandleFunc("GET "+downloadPath+"{name}", s.handleDownload)

	return s.logRequests(cors(s.rateLimit(mux)))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "backend running"})
}

// TopsisResponse is the body of a successful POST /api/topsis.
type TopsisResponse struct {
	Table      []map[string]any `json:"table"`
	Download   string           `json:"download"`
	EmailSent  bool             `json:"emailSent"`
	EmailError *string          `json:"emailError"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleTopsis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "CSV file required")
		return
	}
	defer file.Close()

	email := strings.TrimSpace(r.FormValue("email"))
	sendMail := wantsMail(r.FormValue("send_mail"))
	if sendMail {
		if err := mailer.ValidateAddress(email); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid email format")
			return
		}
	}

	dm, err := csvio.Read(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	criteria := len(dm.Columns) - 1
	weights, err := topsis.ParseWeights(r.FormValue("weights"), criteria)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	impacts, err := topsis.ParseImpacts(r.FormValue("impacts"), criteria)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := topsis.Evaluate(dm, weights, impacts, s.evalOpts...)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, topsis.ErrDegenerateScore) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err.Error())
		return
	}

	data, err := csvio.Encode(res)
	if err != nil {
		s.log.ErrorContext(ctx, "encode result", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "failed to encode result")
		return
	}
	name := artifact.NewName()
	if err := s.store.Put(ctx, name, data); err != nil {
		s.log.ErrorContext(ctx, "store artifact", slog.String("name", name), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "failed to store result")
		return
	}

	resp := TopsisResponse{
		Table:    res.Table(),
		Download: s.baseURL + downloadPath + name,
	}
	if sendMail {
		if err := s.sendResult(r, email, data); err != nil {
			s.log.WarnContext(ctx, "email delivery failed", slog.String("artifact", name), slog.Any("error", err))
			msg := emailFailed
			resp.EmailError = &msg
		} else {
			resp.EmailSent = true
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) sendResult(r *http.Request, to string, data []byte) error {
	if s.mail == nil {
		return mailer.ErrNotConfigured
	}

	return s.mail.Send(r.Context(), to, mailer.CSVAttachment(data))
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if !artifact.ValidName(name) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	data, err := s.store.Get(r.Context(), name)
	if errors.Is(err, artifact.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		s.log.ErrorContext(r.Context(), "load artifact", slog.String("name", name), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "failed to load result")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// wantsMail accepts the checkbox and boolean spellings browsers and
// scripts send.
func wantsMail(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1":
		return true
	default:
		return false
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
