package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/google/uuid"
	"github.com/yaoapp/kun/log"

	"github.com/popware/poppler/locator"
)

// Runner executes poppler tools located through its Locator. One child
// process per Run call; concurrent runs are independent processes whose
// only shared state is the read-only locator cache.
type Runner struct {
	locator *locator.Locator
}

// NewRunner creates a Runner. A nil locator means the process-wide
// default.
func NewRunner(loc *locator.Locator) *Runner {
	if loc == nil {
		loc = locator.Default()
	}
	return &Runner{locator: loc}
}

// Run spawns the named tool with the given arguments, the input source
// as positional argument and any trailing positional arguments after it
// (pdftoppm takes the output prefix there). It returns the raw stdout
// bytes and the stderr text on success. Non-zero exit, failure to spawn
// and a missing executable all surface as *Error; cancelling the context
// kills the child process.
func (r *Runner) Run(ctx context.Context, tool string, args []string, input Input, trailing ...string) ([]byte, string, error) {
	if !input.IsSet() {
		return nil, "", ErrInputNotSet
	}

	bin, ok := r.locator.Resolve(tool)
	if !ok {
		return nil, "", &Error{Code: CodeNoExit, Message: fmt.Sprintf("%s executable not found", tool)}
	}

	argv := make([]string, 0, len(args)+1+len(trailing))
	argv = append(argv, args...)
	argv = append(argv, input.arg())
	argv = append(argv, trailing...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, argv...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if data, buffered := input.buffer(); buffered {
		cmd.Stdin = bytes.NewReader(data)
	}

	id := uuid.New().String()
	log.Trace("[Run] %s %s %v", id, bin, argv)

	if err := cmd.Run(); err != nil {
		code := CodeNoExit
		message := fmt.Sprintf("failed to start %s: %s", tool, err.Error())
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			code = exit.ExitCode()
			message = fmt.Sprintf("%s exited with status %d", tool, code)
		}
		log.Error("[Run] %s %s", id, message)
		return nil, "", &Error{Code: code, Message: message, Stderr: stderr.String()}
	}

	log.Trace("[Run] %s done, stdout %d bytes", id, stdout.Len())
	return stdout.Bytes(), stderr.String(), nil
}
