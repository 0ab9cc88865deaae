package inspection

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/goccy/go-json"
)

// CommandProvider adapts an external analyzer process to the async provider
// contract. The document content is written to the command's stdin, the file
// path is appended as the final argument, and the command's stdout must be a
// JSON commandReport. A non-zero exit or unparseable output settles the scan
// with an error, which the dispatcher isolates as a Failed outcome.
type CommandProvider struct {
	name string
	argv []string
}

// commandReport is the wire format external analyzer commands emit
type commandReport struct {
	Ignored  bool      `json:"ignored,omitempty"`
	Aborted  bool      `json:"aborted,omitempty"`
	Problems []Problem `json:"problems"`
}

// NewCommandProvider creates a provider that runs argv for each scan
func NewCommandProvider(name string, argv []string) (*CommandProvider, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("command provider %q: empty command", name)
	}
	return &CommandProvider{name: name, argv: argv}, nil
}

// Name returns the provider name used for preference matching and display
func (p *CommandProvider) Name() string {
	return p.name
}

// ScanAsync runs the external command against the document
func (p *CommandProvider) ScanAsync(ctx context.Context, content []byte, path string) (*ScanResult, error) {
	args := append(append([]string{}, p.argv[1:]...), path)
	cmd := exec.CommandContext(ctx, p.argv[0], args...)
	cmd.Stdin = bytes.NewReader(content)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%s: %s", err, bytes.TrimSpace(stderr.Bytes()))
		}
		return nil, err
	}

	var report commandReport
	if err := json.Unmarshal(stdout.Bytes(), &report); err != nil {
		return nil, fmt.Errorf("invalid report: %w", err)
	}

	return &ScanResult{
		Problems: report.Problems,
		Aborted:  report.Aborted,
		Ignored:  report.Ignored,
	}, nil
}
