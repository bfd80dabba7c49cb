package config

type YAMLDemo struct {
	Values     []int `yaml:"values"`
	PauseAfter *int  `yaml:"pause_after"`
	Remove     []int `yaml:"remove"`
}
