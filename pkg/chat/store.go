package chat

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
)

type transcript struct {
	ID       string        `json:"id"`
	Messages []ChatMessage `json:"messages"`
}

// Save writes the transcript to <dir>/<id>.json.
func (s *Session) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create chat dir: %w", err)
	}

	data, err := sonic.ConfigStd.MarshalIndent(transcript{ID: s.ID, Messages: s.Messages()}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode chat: %w", err)
	}

	path := filepath.Join(dir, s.ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write chat: %w", err)
	}
	return path, nil
}

// Load restores a session saved with Save.
func Load(path string, dispatcher Dispatcher) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chat: %w", err)
	}

	var t transcript
	if err := sonic.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to decode chat: %w", err)
	}
	if t.ID == "" {
		t.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	s := NewSession(t.ID, dispatcher)
	s.messages = t.Messages
	s.seq = int64(len(t.Messages))
	return s, nil
}

// IDFromPrompt builds a file-safe session id from the first words of a prompt.
func IDFromPrompt(prompt string) string {
	words := strings.Fields(prompt)
	if len(words) > 5 {
		words = words[:5]
	}
	id := strings.Join(words, "_")
	id = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '.'
		}
		return r
	}, id)
	if id == "" {
		return "chat"
	}
	return id
}
