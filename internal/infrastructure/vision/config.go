package vision

type Config struct {
	Model   string `yaml:"model"`
	Timeout int64  `yaml:"timeout_in_ms"`
	APIKey  string
}
