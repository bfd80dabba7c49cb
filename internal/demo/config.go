package demo

import "fmt"

const defaultPauseAfter = 4

// Config describes one demonstration run.
type Config struct {
	Values []int
	// PauseAfter is the number of appends after which the pause hook runs.
	// Zero disables the pause.
	PauseAfter int
	Remove     []int
}

func DefaultConfig() Config {
	return Config{
		Values:     []int{10, 20, 30, 40, 50},
		PauseAfter: defaultPauseAfter,
	}
}

// WithValues replaces the appended values, pulling PauseAfter back so it
// still falls inside the new sequence. An explicit pause point should be set
// after calling it.
func (c Config) WithValues(values []int) Config {
	c.Values = values
	c.PauseAfter = min(c.PauseAfter, len(values))
	return c
}

func (c Config) Validate() error {
	if c.PauseAfter < 0 || c.PauseAfter > len(c.Values) {
		return fmt.Errorf("%w: pause_after %d out of range [0, %d]", ErrInvalidConfig, c.PauseAfter, len(c.Values))
	}
	return nil
}
