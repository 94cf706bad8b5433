package broker

type Config struct {
	URI          string
	JobStream    string `yaml:"job_stream"`
	ResultStream string `yaml:"result_stream"`
	GroupName    string `yaml:"group_name"`
}

type PublisherConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}
