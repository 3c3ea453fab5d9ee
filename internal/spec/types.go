package spec

// Config is the schema of .notoday/config.yml.
type Config struct {
	Version       int      `yaml:"version"`
	AssetsDir     string   `yaml:"assets_dir"`
	QuestionsFile string   `yaml:"questions_file"`
	DateFormat    string   `yaml:"date_format"`
	UI            UIConfig `yaml:"ui"`
}

// UIConfig controls how the day is rendered.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}
