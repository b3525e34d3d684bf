package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/wasm-errcode/errors"
)

// (module (func (export "div") (param i32 i32) (result i32)
//
//	local.get 0 local.get 1 i32.div_s))
var divWasm = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
	0x01, 0x07, 0x01, 0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7f,
	0x03, 0x02, 0x01, 0x00,
	0x07, 0x07, 0x01, 0x03, 'd', 'i', 'v', 0x00, 0x00,
	0x0a, 0x09, 0x01, 0x07, 0x00, 0x20, 0x00, 0x20, 0x01, 0x6d, 0x0b,
}

func TestParseUint32(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{in: "0x00000105", want: 0x105},
		{in: "261", want: 261},
		{in: " 0xFFFFFFFF ", want: 0xFFFFFFFF},
		{in: "0x100000000", wantErr: true},
		{in: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseUint32(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDescribe(t *testing.T) {
	var buf bytes.Buffer
	describe(&buf, errors.FromRaw(0x00000105))

	want := "code:     0x00000105\n" +
		"category: wasm (0)\n" +
		"phase:    loading (1)\n" +
		"kind:     malformed section id (0x0105)\n" +
		"value:    0x000105\n"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	describe(&buf, errors.Make(errors.CategoryUserLevelError, 0x01000042))
	assert.Contains(t, buf.String(), "category: user level error (1)")
	assert.Contains(t, buf.String(), "phase:    user defined (5)")
	assert.Contains(t, buf.String(), "kind:     user defined error code (0x000c)")
	assert.Contains(t, buf.String(), "value:    0x000042")
}

func TestPrintTables(t *testing.T) {
	var buf bytes.Buffer
	printTables(&buf)
	out := buf.String()

	assert.Contains(t, out, "   4  execution")
	assert.Contains(t, out, "0x0404  execution      integer divide by zero")
	assert.Less(t, strings.Index(out, "0x0000"), strings.Index(out, "0x0419"))
}

func TestRunWasm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "div.wasm")
	require.NoError(t, os.WriteFile(path, divWasm, 0o600))

	t.Run("ok", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runWasm(&buf, path, "div", "7, 2"))
		assert.Equal(t, "result[0]: 3\n", buf.String())
	})

	t.Run("trap", func(t *testing.T) {
		var buf bytes.Buffer
		err := runWasm(&buf, path, "div", "1,0")
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.New(errors.KindDivideByZero))
		assert.Contains(t, buf.String(), "integer divide by zero")
	})

	t.Run("missing func", func(t *testing.T) {
		err := runWasm(&bytes.Buffer{}, path, "mul", "")
		assert.ErrorIs(t, err, errors.New(errors.KindFuncNotFound))
	})

	t.Run("bad args", func(t *testing.T) {
		err := runWasm(&bytes.Buffer{}, path, "div", "x")
		assert.ErrorContains(t, err, "parse argument")
	})

	t.Run("not wasm", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.wasm")
		require.NoError(t, os.WriteFile(bad, []byte("hello"), 0o600))
		err := runWasm(&bytes.Buffer{}, bad, "div", "")
		assert.ErrorIs(t, err, errors.New(errors.KindMalformedMagic))
		assert.Equal(t, errors.PhaseLoading, errors.CodeOf(err).Phase())
	})
}

func typeText(m *browserModel, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestBrowser_Filter(t *testing.T) {
	m := newBrowserModel()
	total := len(m.visible)
	require.Equal(t, len(m.rows), total)

	typeText(m, "divide")
	require.Len(t, m.visible, 1)
	c, ok := m.current()
	require.True(t, ok)
	assert.True(t, c.Is(errors.KindDivideByZero))
	assert.Contains(t, m.View(), "integer divide by zero")
}

func TestBrowser_RawDecode(t *testing.T) {
	m := newBrowserModel()
	typeText(m, "0x01000007")

	c, ok := m.current()
	require.True(t, ok)
	assert.Equal(t, errors.FromUint32(7), c)
	assert.Contains(t, m.View(), "user level error")
}

func TestBrowser_Navigation(t *testing.T) {
	m := newBrowserModel()

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.selected)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.selected)
	c, _ := m.current()
	assert.True(t, c.Is(errors.KindRuntimeError))

	typeText(m, "zzzz")
	assert.Empty(t, m.visible)
	assert.Equal(t, 0, m.selected)
	_, ok := m.current()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "no matching kinds")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
