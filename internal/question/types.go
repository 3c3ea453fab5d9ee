package question

// Question is a single daily check-in prompt with its answer choices.
type Question struct {
	ID      string   `json:"id,omitempty"`
	Prompt  string   `json:"question"`
	Kind    string   `json:"kind,omitempty"`
	Answers []string `json:"answers,omitempty"`
}
