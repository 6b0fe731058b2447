package config

// SettingsConfig lists the values the demo client cycles through at runtime
type SettingsConfig struct {
	Scales []int
}

// Settings is the global runtime settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Scales: []int{1, 2, 3},
	}
}
