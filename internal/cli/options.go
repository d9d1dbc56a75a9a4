package cli

// RunOptions contains the configuration shared by the solver commands.
// The cmd layer fills it from flags and the config file; zero values
// defer to the engine defaults.
type RunOptions struct {
	WordsPath   string
	Letters     int
	Guesses     int
	Pool        string // "candidates" or "dictionary"
	Opening     string
	ProperNouns bool

	// Solution fixes the hidden word for solve runs. Empty picks a random
	// dictionary word.
	Solution string

	// GraphPath, when set, writes a Mermaid diagram of the solve there.
	GraphPath string

	// Workers and Limit tune bench runs.
	Workers int
	Limit   int

	// Fresh clears the cached opening before the run.
	Fresh bool

	Headless bool
	JSON     bool
	Debug    bool
}
