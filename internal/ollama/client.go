// Package ollama is a minimal client for the Ollama HTTP API, covering
// the two endpoints the stack tool needs: tag listing and model pull.
package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Model describes one cached model as reported by GET /api/tags.
type Model struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Digest     string    `json:"digest"`
	ModifiedAt time.Time `json:"modified_at"`
}

type tagsResponse struct {
	Models []Model `json:"models"`
}

// Client talks to a single Ollama instance.
type Client struct {
	baseURL string
	hc      *http.Client
}

// New returns a client for the given host, e.g. http://localhost:11434.
// Tag queries use a short timeout; pulls run without one since large
// models legitimately take minutes.
func New(host string) *Client {
	return &Client{
		baseURL: strings.TrimRight(host, "/"),
		hc:      &http.Client{Timeout: 5 * time.Second},
	}
}

// Tags returns the models currently cached by the engine.
func (c *Client) Tags(ctx context.Context) ([]Model, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama tags: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama tags: unexpected status %d", resp.StatusCode)
	}
	var body tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("ollama tags: decode: %w", err)
	}
	return body.Models, nil
}

// Pull asks the engine to download one model. The engine streams NDJSON
// status lines; progress lines are forwarded to onStatus when non-nil.
// A terminal {"error": ...} line or non-200 response fails the pull.
func (c *Client) Pull(ctx context.Context, name string, onStatus func(string)) error {
	payload, err := json.Marshal(map[string]any{"name": name, "stream": true})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/pull", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	// no client timeout: the context bounds the pull instead
	resp, err := (&http.Client{}).Do(req)
	if err != nil {
		return fmt.Errorf("ollama pull %s: %w", name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("ollama pull %s: status %d: %s", name, resp.StatusCode, strings.TrimSpace(string(b)))
	}
	sc := bufio.NewScanner(resp.Body)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var st struct {
			Status string `json:"status"`
			Error  string `json:"error"`
		}
		if err := json.Unmarshal(line, &st); err != nil {
			continue
		}
		if st.Error != "" {
			return fmt.Errorf("ollama pull %s: %s", name, st.Error)
		}
		if onStatus != nil && st.Status != "" {
			onStatus(st.Status)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("ollama pull %s: read stream: %w", name, err)
	}
	return nil
}

// TagSet is a lookup over cached model names.
type TagSet map[string]struct{}

// NewTagSet builds a TagSet from a tags listing.
func NewTagSet(models []Model) TagSet {
	s := make(TagSet, len(models))
	for _, m := range models {
		s[m.Name] = struct{}{}
	}
	return s
}

// Has reports whether name is cached. An untagged name matches its
// :latest variant and vice versa, mirroring the engine's own semantics.
func (s TagSet) Has(name string) bool {
	if _, ok := s[name]; ok {
		return true
	}
	if !strings.Contains(name, ":") {
		_, ok := s[name+":latest"]
		return ok
	}
	if tag := strings.TrimSuffix(name, ":latest"); tag != name {
		_, ok := s[tag]
		return ok
	}
	return false
}
