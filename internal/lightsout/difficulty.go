package lightsout

// Difficulty is an immutable preset: grid dimension plus scramble strength.
// Selecting one starts a fresh puzzle.
type Difficulty struct {
	ID    string
	Label string
	Size  int // Grid dimension (Size x Size cells)
	Steps int // Random toggles applied when scrambling
}

// DefaultCatalog returns the built-in difficulty presets, easiest first.
// The config package may override these from YAML.
func DefaultCatalog() []Difficulty {
	return []Difficulty{
		{ID: "easy", Label: "Easy", Size: 3, Steps: 6},
		{ID: "normal", Label: "Normal", Size: 5, Steps: 15},
		{ID: "hard", Label: "Hard", Size: 7, Steps: 30},
	}
}

// Lookup finds a difficulty by id in the given catalog.
func Lookup(catalog []Difficulty, id string) (Difficulty, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Difficulty{}, false
}
