package llm

// Prompt is an instruction template sent as the system message of a chat
// exchange. The client treats it as an opaque payload; callers pick one of
// the constants below.
type Prompt string

// The instruction templates shipped with the tool. Commit and PR title share
// the same type(scope) grammar so both surfaces stay greppable with the same
// conventions.
const (
	PromptCommit Prompt = `Generate a commit message from this diff.
Format: <type>(<scope>): <description>
Types: feat|fix|docs|refactor|test|chore
Rules: lowercase, imperative mood, max 50 chars, no period
Output ONLY the message.`

	PromptPRTitle Prompt = `Generate a PR title from this diff.
Format: <type>(<scope>): <description>
Types: feat|fix|docs|refactor|test|chore
Rules: lowercase, imperative mood, max 50 chars
Output ONLY the title.`

	PromptPRBody Prompt = `Generate a PR description from this diff.
Format:
## Summary
<1-2 sentences>

## Changes
<bullet points>

Be concise. Output ONLY the description.`
)
