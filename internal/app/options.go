package app

// Options holds command-line settings passed to the application.
type Options struct {
	// ConfigPath is the configuration file location. Empty uses defaults.
	ConfigPath string

	// Demo overrides the configured startup demo.
	Demo string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// ListDemos prints the catalog names and exits instead of running the UI.
	ListDemos bool
}
