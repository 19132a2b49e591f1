package runspec

// File is the root object that holds every container invocation defined in a
// doa spec file. It's populated by parsing the user's doa.yaml file.
type File struct {
	APIVersion string             `yaml:"apiVersion" validate:"required"`
	Kind       string             `yaml:"kind" validate:"required,eq=RunSpec"`
	Metadata   Metadata           `yaml:"metadata"`
	Specs      map[string]RunSpec `yaml:"specs" validate:"required,min=1,dive"`
}

// Metadata contains file-level metadata.
type Metadata struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Labels      map[string]string `yaml:"labels,omitempty"`
}

// RunSpec is the declarative description of one `docker run` invocation.
// Every field except Image is optional; an absent field contributes no flags.
// Every string-bearing field is shell-interpolated before it reaches the
// argument list.
type RunSpec struct {
	Image string `yaml:"image" validate:"required"`
	Help  string `yaml:"help"`

	// Interactive and TTY are accepted in spec files but are never
	// rendered to -i/-t flags.
	Interactive *bool `yaml:"interactive"`
	TTY         *bool `yaml:"tty"`

	Command    []string          `yaml:"command"`
	Entrypoint string            `yaml:"entrypoint"`
	Envs       map[string]string `yaml:"envs"`
	EnvFile    string            `yaml:"env_file"`
	Network    string            `yaml:"network"`
	Ports      []string          `yaml:"ports"`
	Volumes    []string          `yaml:"volumes"`
	User       string            `yaml:"user"`
	ExtraFlags []string          `yaml:"extra_flags"`
}
