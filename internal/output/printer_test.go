package output

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrinter(quiet bool) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	p := NewPrinter(PrinterOptions{
		ColorMode: ColorNever,
		Quiet:     quiet,
		Out:       &stdout,
		Err:       &stderr,
	})
	return p, &stdout, &stderr
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input string
		want  ColorMode
	}{
		{"auto", ColorAuto},
		{"", ColorAuto},
		{"always", ColorAlways},
		{"NEVER", ColorNever},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColorMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorMode_Invalid(t *testing.T) {
	_, err := ParseColorMode("rainbow")
	assert.ErrorContains(t, err, "must be auto, always, or never")
}

func TestResolveColors(t *testing.T) {
	t.Run("always wins over NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.True(t, ResolveColors(ColorAlways, false))
	})

	t.Run("never wins over config", func(t *testing.T) {
		assert.False(t, ResolveColors(ColorNever, true))
	})

	t.Run("NO_COLOR disables auto", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		assert.False(t, ResolveColors(ColorAuto, true))
	})

	t.Run("dumb terminal disables auto", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		os.Unsetenv("NO_COLOR")
		t.Setenv("TERM", "dumb")
		assert.False(t, ResolveColors(ColorAuto, true))
	})

	t.Run("auto follows config", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		os.Unsetenv("NO_COLOR")
		t.Setenv("TERM", "xterm-256color")
		assert.True(t, ResolveColors(ColorAuto, true))
		assert.False(t, ResolveColors(ColorAuto, false))
	})
}

func TestPrinter_PlainPrefixes(t *testing.T) {
	p, stdout, stderr := newTestPrinter(false)

	p.Success("Login successful!")
	p.Info("hello %s", "alice")
	p.Warning("careful")
	p.Error("broken")

	assert.Equal(t, "[OK] Login successful!\nhello alice\n", stdout.String())
	assert.Equal(t, "[WARN] careful\n[ERROR] broken\n", stderr.String())
}

func TestPrinter_Quiet(t *testing.T) {
	p, stdout, stderr := newTestPrinter(true)

	p.Success("done")
	p.Info("info")
	p.Print("plain")
	p.Header("Title")
	p.Warning("warn")
	p.Error("still shown")

	assert.Empty(t, stdout.String())
	assert.Equal(t, "[ERROR] still shown\n", stderr.String())
	assert.True(t, p.IsQuiet())
}

func TestPrinter_JSONIgnoresQuiet(t *testing.T) {
	p, stdout, _ := newTestPrinter(true)

	require.NoError(t, p.JSON(map[string]int{"n": 1}))

	assert.JSONEq(t, `{"n":1}`, stdout.String())
}

func TestPrinter_Header(t *testing.T) {
	p, stdout, _ := newTestPrinter(false)

	p.Header("Organizations")

	assert.Equal(t, "\nOrganizations\n-------------\n", stdout.String())
}

func TestPrinter_NoColorHelpers(t *testing.T) {
	p, _, _ := newTestPrinter(false)

	assert.Equal(t, "text", p.Bold("text"))
	assert.Equal(t, "text", p.Dim("text"))
}
