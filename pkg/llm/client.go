package llm

import (
	"context"
	"strings"
)

// Inferencer is the text-generation capability the digest pipeline consumes.
type Inferencer interface {
	Infer(ctx context.Context, prompt string) (string, error)
}

// cleanResponse strips the code fences some models wrap their output in.
func cleanResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```html")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
