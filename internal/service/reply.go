package service

// Outcome classifies a reply so the transport can distinguish the
// result of an operation without parsing the message text
type Outcome int

const (
	OutcomePrompt Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
	OutcomeAdded
	OutcomeHidden
)

// Reply is what the transport renders: the message text and the
// ordered button labels for the keyboard. NewUser is set when the
// operation created the user record.
type Reply struct {
	Outcome Outcome
	Text    string
	Buttons []string
	NewUser bool
}
