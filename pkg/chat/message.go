// Package chat keeps the append-only transcript of a solving session.
package chat

import "github.com/kdduha/sceramath/pkg/client"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

const (
	// DefaultPrompt is sent when a problem is submitted as an image only.
	DefaultPrompt = "Synthesize mathematical derivation."

	AnalysisComplete = "Analysis complete."
	SynthesisFailed  = "Synthesis failed: The computational engine encountered an error."
)

type ChatMessage struct {
	ID        string               `json:"id"`
	Role      Role                 `json:"role"`
	Content   string               `json:"content"`
	Solution  *client.MathSolution `json:"solution,omitempty"`
	Image     string               `json:"image,omitempty"`
	Timestamp int64                `json:"timestamp"`
}

// Failed reports whether an assistant message carries the failure text instead of a solution.
func (m ChatMessage) Failed() bool {
	return m.Role == RoleAssistant && m.Solution == nil
}
