package server

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/wordcheck/internal/logger"
	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/bastiangx/wordcheck/pkg/session"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server answers msgpack requests against one session.
type Server struct {
	session  *session.Session
	config   *config.Config
	decoder  *msgpack.Decoder
	encoder  *msgpack.Encoder
	logger   *log.Logger
	requests int
}

// NewServer creates a server reading requests from r and writing responses to w.
func NewServer(sess *session.Session, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		session: sess,
		config:  cfg,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
		logger:  logger.New("ipc"),
	}
}

// Start signals readiness and serves requests until the input ends.
// A request that cannot be decoded ends the stream, since msgpack framing
// cannot be recovered after it.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Input closed", "requests", s.requests)
				return nil
			}
			s.logger.Errorf("Decoding request: %v", err)
			_ = s.send(ErrorResponse{Error: "invalid msgpack request", Code: CodeBadRequest})
			return fmt.Errorf("failed to decode request: %w", err)
		}
		if err := s.send(s.Handle(req)); err != nil {
			return err
		}
	}
}

// Handle answers a single request.
func (s *Server) Handle(req Request) any {
	s.requests++
	s.logger.Debug("Handling request", "id", req.ID, "action", req.Action)

	switch req.Action {
	case ActionCheck:
		return s.handleCheck(req)
	case ActionSuggest:
		return s.handleSuggest(req)
	case ActionContains:
		return s.handleContains(req)
	case ActionRefresh:
		return s.handleRefresh(req)
	case ActionStats:
		return StatusResponse{ID: req.ID, Status: "ok", Stats: s.session.Stats()}
	case "":
		return errorFor(req.ID, "missing action", CodeBadRequest)
	default:
		return errorFor(req.ID, fmt.Sprintf("unknown action: %s", req.Action), CodeUnknownAction)
	}
}

func (s *Server) handleCheck(req Request) any {
	if len(req.Text) > s.config.Server.MaxTextBytes {
		return errorFor(req.ID, fmt.Sprintf("text exceeds %d bytes", s.config.Server.MaxTextBytes), CodeTooLarge)
	}

	report, err := s.session.Check(req.Text)
	if err != nil {
		return sessionError(req.ID, err)
	}

	mistakes := make([]Mistake, 0, len(report.Entries))
	for _, e := range report.Entries {
		mistakes = append(mistakes, Mistake{
			Line:        e.Line,
			Word:        e.Word,
			Suggestions: ranked(e.Suggestions),
		})
	}
	return CheckResponse{
		ID:        req.ID,
		Mistakes:  mistakes,
		Count:     len(mistakes),
		TimeTaken: report.Elapsed.Microseconds(),
	}
}

func (s *Server) handleSuggest(req Request) any {
	if req.Word == "" {
		return errorFor(req.ID, "missing 'w' parameter", CodeBadRequest)
	}
	if len(req.Word) > s.config.Server.MaxWordLen {
		return errorFor(req.ID, fmt.Sprintf("word exceeds maximum length of %d", s.config.Server.MaxWordLen), CodeBadRequest)
	}

	limit := req.Limit
	if limit > s.config.Server.MaxLimit {
		limit = s.config.Server.MaxLimit
	}

	start := time.Now()
	words, err := s.session.Suggest(req.Word, limit)
	if err != nil {
		return sessionError(req.ID, err)
	}
	suggestions := ranked(words)
	return SuggestResponse{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   time.Since(start).Microseconds(),
	}
}

func (s *Server) handleContains(req Request) any {
	if req.Word == "" {
		return errorFor(req.ID, "missing 'w' parameter", CodeBadRequest)
	}
	if len(req.Word) > s.config.Server.MaxWordLen {
		return errorFor(req.ID, fmt.Sprintf("word exceeds maximum length of %d", s.config.Server.MaxWordLen), CodeBadRequest)
	}
	known, err := s.session.Contains(req.Word)
	if err != nil {
		return sessionError(req.ID, err)
	}
	return StatusResponse{ID: req.ID, Status: "ok", Known: &known}
}

func (s *Server) handleRefresh(req Request) any {
	if req.Path != "" && !s.config.Server.AllowRefreshPath {
		s.logger.Warn("Refused refresh from client path", "path", req.Path)
		return errorFor(req.ID, "refresh from a client path is disabled", CodeForbidden)
	}

	var err error
	if req.Path != "" {
		err = s.session.RefreshFrom(req.Path)
	} else {
		err = s.session.Refresh()
	}
	if err != nil {
		return errorFor(req.ID, err.Error(), CodeInternal)
	}
	return StatusResponse{ID: req.ID, Status: "refreshed", Stats: s.session.Stats()}
}

func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

func errorFor(id, message string, code int) ErrorResponse {
	return ErrorResponse{ID: id, Error: message, Code: code}
}

func sessionError(id string, err error) ErrorResponse {
	if errors.Is(err, session.ErrNoDictionary) {
		return errorFor(id, err.Error(), CodeNoDictionary)
	}
	return errorFor(id, err.Error(), CodeInternal)
}

// ranked numbers words from 1 in the order given.
func ranked(words []string) []Suggestion {
	out := make([]Suggestion, len(words))
	for i, w := range words {
		out[i] = Suggestion{Word: w, Rank: i + 1}
	}
	return out
}
