package inspection

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestCommandProvider_ParsesReport(t *testing.T) {
	script := `cat > /dev/null; printf '{"problems":[{"position":{"line":3,"column":7},"message":"missing semicolon","severity":"error"}]}'`
	p, err := NewCommandProvider("extlint", []string{"sh", "-c", script})
	if err != nil {
		t.Fatal(err)
	}

	result, err := p.ScanAsync(context.Background(), []byte("var x = 1"), "app.js")
	if err != nil {
		t.Fatalf("ScanAsync: %v", err)
	}
	if len(result.Problems) != 1 {
		t.Fatalf("got %d problems, want 1", len(result.Problems))
	}
	problem := result.Problems[0]
	if problem.Position.Line != 3 || problem.Position.Column != 7 {
		t.Errorf("position = %+v, want {3 7}", problem.Position)
	}
	if problem.Severity != SeverityError {
		t.Errorf("severity = %v, want error", problem.Severity)
	}
}

func TestCommandProvider_IgnoredFlag(t *testing.T) {
	script := `cat > /dev/null; printf '{"ignored":true,"problems":[]}'`
	p, err := NewCommandProvider("optout", []string{"sh", "-c", script})
	if err != nil {
		t.Fatal(err)
	}

	result, err := p.ScanAsync(context.Background(), nil, "app.js")
	if err != nil {
		t.Fatalf("ScanAsync: %v", err)
	}
	if !result.Ignored {
		t.Error("expected Ignored to be set")
	}
}

func TestCommandProvider_NonZeroExit(t *testing.T) {
	p, err := NewCommandProvider("broken", []string{"sh", "-c", `cat > /dev/null; echo "analyzer exploded" >&2; exit 3`})
	if err != nil {
		t.Fatal(err)
	}

	_, err = p.ScanAsync(context.Background(), nil, "app.js")
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	if !strings.Contains(err.Error(), "analyzer exploded") {
		t.Errorf("error %q should carry the command's stderr", err)
	}
}

func TestCommandProvider_InvalidReport(t *testing.T) {
	p, err := NewCommandProvider("garbled", []string{"sh", "-c", `cat > /dev/null; echo "not json"`})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := p.ScanAsync(context.Background(), nil, "app.js"); err == nil {
		t.Fatal("expected error for unparseable report")
	}
}

func TestCommandProvider_EmptyCommand(t *testing.T) {
	if _, err := NewCommandProvider("empty", nil); err == nil {
		t.Fatal("expected error for empty command")
	}
}

func TestCommandProvider_DispatchTimeout(t *testing.T) {
	p, err := NewCommandProvider("sleeper", []string{"sh", "-c", "sleep 5"})
	if err != nil {
		t.Fatal(err)
	}

	d := NewDispatcher(50 * time.Millisecond)
	out := d.Dispatch(context.Background(), p, nil, "app.js")
	if out.Kind != OutcomeTimedOut {
		t.Fatalf("Kind = %v, want OutcomeTimedOut", out.Kind)
	}
}
