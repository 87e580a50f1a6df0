package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name               string
		done, total, width int
		want               string
	}{
		{"empty list", 0, 0, 10, "░░░░░░░░░░   0%"},
		{"half", 1, 2, 10, "█████░░░░░  50%"},
		{"all done", 3, 3, 5, "█████ 100%"},
		{"min width", 1, 1, 2, "█████ 100%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProgressBar(tt.done, tt.total, tt.width))
		})
	}
}

func TestForMode(t *testing.T) {
	light := ForMode(false)
	dark := ForMode(true)

	assert.Equal(t, "light", light.Name())
	assert.Equal(t, "dark", dark.Name())
	assert.NotEqual(t, light.BoxChecked, dark.BoxChecked)
	assert.True(t, light.Done.GetStrikethrough())
	assert.True(t, dark.Done.GetStrikethrough())
}

func TestPanelAndHeader(t *testing.T) {
	th := ForMode(false)

	out := Panel(th, "hello", 0)
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "╭")

	h := Header(th, "TODO LIST", 2, 3)
	assert.Contains(t, h, "TODO LIST")
	assert.Contains(t, h, "✔ 2")
	assert.Contains(t, h, "Total 5")
}

func TestStatus(t *testing.T) {
	var buf bytes.Buffer
	OK(&buf, "ready")
	Fail(&buf, "broken")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "✔ ready")
	assert.Contains(t, lines[1], "✖ broken")
}
