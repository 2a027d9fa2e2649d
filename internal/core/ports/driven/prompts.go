package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files, embed them in the binary,
// or fetch them from a remote configuration service.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	Reload()
}

// Well-known prompt names used throughout the application.
// These constants define the contract between prompt consumers and providers.
const (
	// PromptHyde generates the hypothetical answer document that seeds
	// retrieval. The template expects a %s placeholder for the question.
	PromptHyde = "hyde"

	// PromptAnswer synthesizes the final answer from retrieved context.
	// The template expects %s (question) and %s (context) placeholders.
	PromptAnswer = "answer"

	// PromptChatSystem is the system prompt for the chat TUI.
	// This prompt has no format placeholders.
	PromptChatSystem = "chat_system"
)
