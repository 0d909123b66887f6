// Package cli is the terminal front-end: a one-shot file report and an
// interactive loop for checking lines as they are typed.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/session"
	"github.com/charmbracelet/log"
)

// ErrMistakesFound is returned by CheckFile when the file is not clean,
// so callers can turn it into a non-zero exit status.
var ErrMistakesFound = errors.New("spelling mistakes found")

// InputHandler reads lines from in, checks each one and writes the report to out.
// Lines starting with ':' are commands:
//
//	:refresh       rebuild the dictionary from its source
//	:dump          print the dictionary tree
//	:stats         print session counters
//	:allow WORD    accept WORD for the rest of the session
//	:quit          leave
type InputHandler struct {
	session  *session.Session
	in       io.Reader
	out      io.Writer
	renderer *Renderer
	maxBytes int
}

// NewInputHandler handles initialization of the InputHandler
func NewInputHandler(sess *session.Session, in io.Reader, out io.Writer, color bool, maxBytes int) *InputHandler {
	return &InputHandler{
		session:  sess,
		in:       in,
		out:      out,
		renderer: NewRenderer(out, color),
		maxBytes: maxBytes,
	}
}

// Start runs the loop until in is exhausted or :quit is typed.
func (h *InputHandler) Start() error {
	log.Print("WordCheck CLI")
	log.Print("type some text and press Enter to check it (:quit to exit):")

	scanner := bufio.NewScanner(h.in)
	scanner.Buffer(make([]byte, 0, 64*1024), h.maxBytes)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := h.handleCommand(line); quit {
				return nil
			}
			continue
		}
		h.handleInput(line)
	}
	return scanner.Err()
}

func (h *InputHandler) handleInput(line string) {
	report, err := h.session.Check(line)
	if err != nil {
		log.Errorf("Check failed: %v", err)
		return
	}
	log.Debugf("Took [ %v ] for %d bytes", report.Elapsed, len(line))
	if err := h.renderer.Report(report); err != nil {
		log.Errorf("Writing report: %v", err)
	}
}

// handleCommand runs a ':' command and reports whether the loop should end.
func (h *InputHandler) handleCommand(line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q":
		return true
	case ":refresh":
		if err := h.session.Refresh(); err != nil {
			log.Errorf("Refresh failed, previous dictionary kept: %v", err)
			return false
		}
		log.Printf("Dictionary reloaded from %s", h.session.Source())
	case ":dump":
		if err := h.session.Dump(h.out); err != nil {
			log.Errorf("Dump failed: %v", err)
		}
	case ":stats":
		h.printStats()
	case ":allow":
		if len(fields) < 2 {
			log.Error("usage: :allow WORD")
			return false
		}
		for _, w := range fields[1:] {
			h.session.Allow(w)
		}
	default:
		log.Errorf("Unknown command: %s", fields[0])
	}
	return false
}

func (h *InputHandler) printStats() {
	stats := h.session.Stats()
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(h.out, "%-14s %d\n", k, stats[k])
	}
}

// CheckFile writes the report for the file at path to out.
func CheckFile(sess *session.Session, path string, out io.Writer, color bool, maxBytes int) error {
	content, err := utils.ReadTextFile(path, maxBytes)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	report, err := sess.Check(content)
	if err != nil {
		return err
	}
	log.Debugf("Checked %s: %d mistakes in %v", path, len(report.Entries), report.Elapsed)
	if err := NewRenderer(out, color).Report(report); err != nil {
		return err
	}
	if !report.Clean() {
		return ErrMistakesFound
	}
	return nil
}
