package domain

// Config represents the project configuration loaded from cfgjs.yaml.
type Config struct {
	Paths PathsConfig
}

// PathsConfig holds project-relative file locations.
type PathsConfig struct {
	Definitions string
	Example     string
	Output      string
}

// DefaultConfig provides defaults used when cfgjs.yaml is absent or partial.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			Definitions: ".env",
			Example:     ".env.example",
			Output:      "config.js",
		},
	}
}

// ProjectSpec describes a project to scaffold.
type ProjectSpec struct {
	Root   string
	Config Config
}
