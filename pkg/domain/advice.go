package domain

// Step is one observed round of an externally-played game: a guess and the
// feedback it received. A sequence of Steps fully determines the surviving
// candidate set.
type Step struct {
	Guess    Word    `json:"guess"`
	Feedback Pattern `json:"feedback"`
}

// Advice is a suggestion for the next guess of an externally-played game.
type Advice struct {
	// Guess is the recommended next word.
	Guess Word `json:"guess"`

	// Gain is its expected information gain, in bits.
	Gain float64 `json:"gain"`

	// Remaining is the number of candidates still consistent with the steps.
	Remaining int `json:"remaining"`

	// EntropyBits is the current uncertainty over the candidate set.
	EntropyBits float64 `json:"entropy_bits"`

	// Sample holds a bounded selection of surviving candidates for display.
	Sample []Word `json:"sample,omitempty"`
}
