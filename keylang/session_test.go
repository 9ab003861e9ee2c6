package keylang

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/tools/txtar"
)

func TestSessionTranscript(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setmap.lang")
	defer teardown()
	//
	s := NewSession()
	out, quit, err := s.Eval("put {a, b} = 1")
	if err != nil || quit {
		t.Fatalf("put failed: %v", err)
	}
	if out != "{a,b} = 1" {
		t.Errorf("Expected transcript '{a,b} = 1', is %q", out)
	}
	if out, _, _ = s.Eval("get {b, a}"); out != "1" {
		t.Errorf("Expected '1', is %q", out)
	}
	if _, quit, _ = s.Eval("quit"); !quit {
		t.Error("Expected 'quit' to end the session")
	}
}

func TestSessionEvalError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setmap.lang")
	defer teardown()
	//
	s := NewSession()
	if _, _, err := s.Eval("put {a} ="); err == nil {
		t.Error("Expected malformed input to produce an error")
	}
	if s.Map().Size() != 0 {
		t.Error("Expected a failed command to leave the map untouched")
	}
}

// Words outside the command vocabulary scan and parse, but the session
// rejects them.
func TestSessionUnknownCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setmap.lang")
	defer teardown()
	//
	s := NewSession()
	if _, _, err := s.Eval("put {a} = 1"); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	_, quit, err := s.Eval("frobnicate")
	if err == nil || quit {
		t.Fatal("Expected an unknown command to produce an error")
	}
	if err.Error() != "unknown command: frobnicate" {
		t.Errorf("Expected 'unknown command: frobnicate', is %q", err.Error())
	}
	if s.Map().Size() != 1 {
		t.Error("Expected an unknown command to leave the map untouched")
	}
}

// Golden session scripts: every testdata/*.txtar archive holds a 'script'
// and the 'want' transcript a fresh session produces for it.
func TestSessionScripts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setmap.lang")
	defer teardown()
	//
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no session scripts in testdata/")
	}
	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		t.Run(name, func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}
			var script, want string
			for _, f := range ar.Files {
				switch f.Name {
				case "script":
					script = string(f.Data)
				case "want":
					want = string(f.Data)
				default:
					t.Fatalf("unexpected file in archive: %q", f.Name)
				}
			}
			got := runScript(t, script)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("transcript mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// runScript feeds a script line by line into a fresh session and collects
// the transcript. Blank and comment-only lines are skipped; errors become
// "error: …" lines.
func runScript(t *testing.T, script string) string {
	t.Helper()
	session := NewSession()
	var transcript strings.Builder
	for _, line := range strings.Split(script, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		out, quit, err := session.Eval(line)
		if err != nil {
			transcript.WriteString("error: " + err.Error() + "\n")
			continue
		}
		transcript.WriteString(out + "\n")
		if quit {
			break
		}
	}
	return transcript.String()
}
