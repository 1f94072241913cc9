package opengl

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestProgramErrorsUnwrap(t *testing.T) {
	var err error = fmt.Errorf("lighting pass: %w", &ShaderError{Program: "lighting", Stage: "fragment", Log: "0:12: syntax error"})

	var se *ShaderError
	if !errors.As(err, &se) {
		t.Fatalf("errors.As did not find *ShaderError in %v", err)
	}
	if !strings.Contains(err.Error(), "fragment shader compile failed: 0:12: syntax error") {
		t.Errorf("unexpected message: %q", err.Error())
	}

	le := &LinkError{Program: "ssao", Log: "undefined samples"}
	if got, want := le.Error(), "ssao: link failed: undefined samples"; got != want {
		t.Errorf("LinkError.Error() = %q, want %q", got, want)
	}
}
