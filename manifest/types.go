package manifest

// Manifest is a declarative description of an engine's routes and
// middleware settings, loaded from YAML at startup and applied to a
// routekit.Builder before freezing.
type Manifest struct {
	Settings Settings `yaml:"settings"`
	Routes   []Route  `yaml:"routes"`
}

// Settings control the ambient middlewares applied before any
// manifest-declared route runs. Each field can be overridden through the
// environment after the YAML is parsed.
type Settings struct {
	LogLevel  string `yaml:"log_level" env:"ROUTEKIT_LOG_LEVEL"`
	RequestID bool   `yaml:"request_id" env:"ROUTEKIT_REQUEST_ID"`
	Recovery  bool   `yaml:"recovery" env:"ROUTEKIT_RECOVERY"`
	Logging   bool   `yaml:"logging" env:"ROUTEKIT_LOGGING"`
}

// Route binds a method+path pattern to a named handler from the registry
// the manifest is applied against.
type Route struct {
	Method  string `yaml:"method"`
	Path    string `yaml:"path"`
	Handler string `yaml:"handler"`
}
