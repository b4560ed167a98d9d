package assistant

import (
	"github.com/charmbracelet/glamour"

	"awshell/internal/output"
)

// RenderMarkdown renders an assistant reply for the terminal, falling
// back to the raw text when styling is unavailable.
func RenderMarkdown(answer string) string {
	if !output.SupportsColor() {
		return answer
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return answer
	}
	rendered, err := renderer.Render(answer)
	if err != nil {
		return answer
	}
	return rendered
}
