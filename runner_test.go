package winnow_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/winnow"
	"github.com/aretw0/winnow/pkg/domain"
)

func runnerEngine(t *testing.T) *winnow.Engine {
	t.Helper()
	engine, err := winnow.New("", winnow.WithWords([]domain.Word{"brine", "crane"}))
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return engine
}

func TestRunner_Run_BasicFlow(t *testing.T) {
	engine := runnerEngine(t)

	// The solution is "crane". The runner opens with "brine" (lexicographic
	// tie-break), gets feedback, then only "crane" survives.
	inBuf := bytes.NewBufferString("acacc\nccccc\n")
	outBuf := &bytes.Buffer{}

	r := winnow.NewRunner()
	r.Input = inBuf
	r.Output = outBuf

	if err := r.Run(context.Background(), engine); err != nil {
		t.Fatalf("Runner failed: %v", err)
	}

	out := outBuf.String()
	if !strings.Contains(out, "try **brine**") {
		t.Errorf("Expected opening suggestion in output, got:\n%s", out)
	}
	if !strings.Contains(out, "try **crane**") {
		t.Errorf("Expected follow-up suggestion in output, got:\n%s", out)
	}
	if !strings.Contains(out, "solved: **crane**") {
		t.Errorf("Expected solved line in output, got:\n%s", out)
	}
	if !strings.Contains(out, "2 candidates left") {
		t.Errorf("Expected candidate count in output, got:\n%s", out)
	}
}

func TestRunner_Run_PlayedDifferentWord(t *testing.T) {
	engine := runnerEngine(t)

	// The player ignores the suggestion and plays "crane" directly.
	inBuf := bytes.NewBufferString("crane ccccc\n")
	outBuf := &bytes.Buffer{}

	r := winnow.NewRunner()
	r.Input = inBuf
	r.Output = outBuf

	if err := r.Run(context.Background(), engine); err != nil {
		t.Fatalf("Runner failed: %v", err)
	}

	if !strings.Contains(outBuf.String(), "solved: **crane**") {
		t.Errorf("Expected solved line for the played word, got:\n%s", outBuf.String())
	}
}

func TestRunner_Run_Quit(t *testing.T) {
	engine := runnerEngine(t)

	inBuf := bytes.NewBufferString("q\n")
	outBuf := &bytes.Buffer{}

	r := winnow.NewRunner()
	r.Input = inBuf
	r.Output = outBuf

	if err := r.Run(context.Background(), engine); err != nil {
		t.Fatalf("Runner failed: %v", err)
	}
	if strings.Contains(outBuf.String(), "solved") {
		t.Error("Quit should not report a solution")
	}
}

func TestRunner_Run_RejectsMalformedFeedback(t *testing.T) {
	engine := runnerEngine(t)

	// One garbage line and one wrong-length line before valid feedback.
	inBuf := bytes.NewBufferString("zzzzz\ncc\nacacc\nccccc\n")
	outBuf := &bytes.Buffer{}

	r := winnow.NewRunner()
	r.Input = inBuf
	r.Output = outBuf

	if err := r.Run(context.Background(), engine); err != nil {
		t.Fatalf("Runner failed: %v", err)
	}

	out := outBuf.String()
	if !strings.Contains(out, "feedback must be 5 marks") {
		t.Errorf("Expected validation message in output, got:\n%s", out)
	}
	if !strings.Contains(out, "solved: **crane**") {
		t.Errorf("Expected the session to recover and solve, got:\n%s", out)
	}
}

func TestRunner_Run_ShortWords(t *testing.T) {
	// Word length follows the dictionary, not a constant.
	engine, err := winnow.New("", winnow.WithWords([]domain.Word{"aa", "ab", "bb"}))
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	// The hidden word is "ab": "aa" earns correct-absent, then "ab" wins.
	inBuf := bytes.NewBufferString("ca\ncc\n")
	outBuf := &bytes.Buffer{}

	r := winnow.NewRunner()
	r.Input = inBuf
	r.Output = outBuf

	if err := r.Run(context.Background(), engine); err != nil {
		t.Fatalf("Runner failed: %v", err)
	}

	out := outBuf.String()
	for _, want := range []string{"try **aa**", "try **ab**", "solved: **ab**"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in runner output:\n%s", want, out)
		}
	}
}

func TestRunner_Run_Headless(t *testing.T) {
	engine := runnerEngine(t)

	inBuf := bytes.NewBufferString("acacc\nccccc\n")
	outBuf := &bytes.Buffer{}

	r := winnow.NewRunner()
	r.Input = inBuf
	r.Output = outBuf
	r.Headless = true

	if err := r.Run(context.Background(), engine); err != nil {
		t.Fatalf("Runner failed: %v", err)
	}
	if strings.Contains(outBuf.String(), "candidates left") {
		t.Error("Headless mode should suppress the status line")
	}
}

func TestRunner_Run_Renderer(t *testing.T) {
	engine := runnerEngine(t)

	inBuf := bytes.NewBufferString("q\n")
	outBuf := &bytes.Buffer{}

	r := winnow.NewRunner()
	r.Input = inBuf
	r.Output = outBuf
	r.Renderer = func(s string) (string, error) {
		return "[R] " + s + "\n", nil
	}

	if err := r.Run(context.Background(), engine); err != nil {
		t.Fatalf("Runner failed: %v", err)
	}
	if !strings.Contains(outBuf.String(), "[R] try") {
		t.Errorf("Expected rendered output, got:\n%s", outBuf.String())
	}
}

func TestRunner_Run_RequiresIO(t *testing.T) {
	engine := runnerEngine(t)

	r := winnow.NewRunner()
	if err := r.Run(context.Background(), engine); err == nil {
		t.Fatal("Expected an error when IO is unset")
	}

	r.Input = strings.NewReader("")
	if err := r.Run(context.Background(), engine); err == nil {
		t.Fatal("Expected an error when output is unset")
	}
}
