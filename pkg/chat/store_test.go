package chat

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
)

func TestSaveAndLoad(t *testing.T) {
	tmp := t.TempDir()
	s := NewSession("my_chat", &fakeDispatcher{solution: solution()})
	if _, err := s.Submit(context.Background(), "2+2", ""); err != nil {
		t.Fatalf("submit: %v", err)
	}

	path, err := s.Save(tmp)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	testboil.FailTestIfDiff(t, path, filepath.Join(tmp, "my_chat.json"))
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %v to exist: %v", path, err)
	}

	loaded, err := Load(path, &fakeDispatcher{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	testboil.FailTestIfDiff(t, loaded.ID, "my_chat")
	msgs := loaded.Messages()
	testboil.FailTestIfDiff(t, len(msgs), 2)
	testboil.FailTestIfDiff(t, msgs[1].Solution.FinalAnswer, "4")
	testboil.FailTestIfDiff(t, len(msgs[1].Solution.RelatedFormulas), 0)
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("nonexistent.json", &fakeDispatcher{}); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestIDFromPrompt(t *testing.T) {
	testboil.FailTestIfDiff(t, IDFromPrompt("solve x/2 = 4 for x please now"), "solve_x.2_=_4_for")
	testboil.FailTestIfDiff(t, IDFromPrompt("   "), "chat")
}
