package model

// Settings holds the singleton display and identity configuration.
type Settings struct {
	DarkMode       bool   `json:"darkMode"`
	CurrencySymbol string `json:"currencySymbol"`
	GymName        string `json:"gymName"`
	GymAddress     string `json:"gymAddress"`
	GymContact     string `json:"gymContact"`
}

// DefaultSettings returns the settings written on first run.
func DefaultSettings() Settings {
	return Settings{
		DarkMode:       false,
		CurrencySymbol: "$",
		GymName:        "GYM MANAGER",
		GymAddress:     "123 Fitness Ave",
		GymContact:     "555-1234",
	}
}
