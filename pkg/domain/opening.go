package domain

// Opening is a cached first-guess recommendation for a dictionary.
// Computing the best opening is the most expensive step of a solve, and
// its result depends only on the word length and the dictionary, so it
// is worth remembering.
type Opening struct {
	Guess Word    `json:"guess"`
	Gain  float64 `json:"gain"`
}
