package scripting

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/Norgate-AV/dvrc/internal/logger"
)

// scriptLanguage selects the Python 3 interpreter embedded in the script host.
const scriptLanguage = "py3"

// Host invokes scripting calls by running fuscript, the script host shipped
// in the Resolve installation directory. Each call is a one-shot process:
// payload in a temp file, JSON envelope on stdout.
type Host struct {
	log  logger.LoggerInterface
	path string // fuscript executable

	// runCommand is injectable for tests; defaults to running the real host
	runCommand func(ctx context.Context, name string, args ...string) ([]byte, []byte, error)
}

// NewHost creates a Host that runs the fuscript executable at path.
func NewHost(path string, log logger.LoggerInterface) *Host {
	return &Host{
		log:        log,
		path:       path,
		runCommand: runCommand,
	}
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// Invoke executes a single scripting call and returns its decoded result.
func (h *Host) Invoke(ctx context.Context, call Call) (Result, error) {
	payload, err := BuildPayload(call)
	if err != nil {
		return Result{}, err
	}

	script, err := os.CreateTemp("", "dvrc-*.py")
	if err != nil {
		return Result{}, fmt.Errorf("failed to create payload file: %w", err)
	}

	defer func() {
		if err := os.Remove(script.Name()); err != nil {
			h.log.Trace("Failed to remove payload file", slog.Any("error", err))
		}
	}()

	if _, err := script.WriteString(payload); err != nil {
		_ = script.Close()
		return Result{}, fmt.Errorf("failed to write payload file: %w", err)
	}

	if err := script.Close(); err != nil {
		return Result{}, fmt.Errorf("failed to close payload file: %w", err)
	}

	h.log.Trace("Invoking scripting call",
		slog.String("method", call.Method),
		slog.String("target", strings.Join(call.Target, ".")),
	)

	stdout, stderr, err := h.runCommand(ctx, h.path, "-l", scriptLanguage, script.Name())
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, fmt.Errorf("scripting call %s timed out: %w", call.Method, ctx.Err())
		}

		h.log.Trace("Script host failed",
			slog.Any("error", err),
			slog.String("stderr", string(stderr)),
		)

		return Result{}, fmt.Errorf("script host failed for %s: %w", call.Method, err)
	}

	return ParseEnvelope(call.Method, stdout)
}

// ParseEnvelope extracts the JSON envelope from script host output and maps
// it to a Result or an error. The host prints banners and plugin chatter
// around the payload's single marked line.
func ParseEnvelope(method string, output []byte) (Result, error) {
	text := string(output)

	begin := strings.Index(text, envelopeBegin)
	if begin < 0 {
		return Result{}, fmt.Errorf("no reply envelope in script host output for %s", method)
	}

	rest := text[begin+len(envelopeBegin):]

	end := strings.Index(rest, envelopeEnd)
	if end < 0 {
		return Result{}, fmt.Errorf("truncated reply envelope in script host output for %s", method)
	}

	envelope := gjson.Parse(rest[:end])
	if !envelope.IsObject() {
		return Result{}, fmt.Errorf("malformed reply envelope for %s", method)
	}

	if envelope.Get("ok").Bool() {
		return Result{raw: envelope.Get("result")}, nil
	}

	message := envelope.Get("error").String()

	if envelope.Get("kind").String() == "unavailable" {
		return Result{}, fmt.Errorf("%w: %s", ErrUnavailable, message)
	}

	return Result{}, &RemoteError{Method: method, Message: message}
}
