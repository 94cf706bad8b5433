package picker

type Config struct {
	BaseURL     string `yaml:"base_url"`
	Timeout     int64  `yaml:"timeout_in_ms"`
	AccessToken string
}
