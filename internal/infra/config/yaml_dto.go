package config

// FileName is the configuration file looked up from the working directory upward.
const FileName = "solidbots.yaml"

type YAMLFile struct {
	Solidbots YAMLConfig `yaml:"solidbots"`
}

type YAMLConfig struct {
	Network   string        `yaml:"network"`
	HQ        YAMLHQ        `yaml:"hq"`
	Kafka     YAMLKafka     `yaml:"kafka"`
	Journal   YAMLJournal   `yaml:"journal"`
	Presenter YAMLPresenter `yaml:"presenter"`
}

type YAMLHQ struct {
	Endpoint string `yaml:"endpoint"`
	Timeout  string `yaml:"timeout"`
}

type YAMLKafka struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

type YAMLJournal struct {
	Path string `yaml:"path"`
}

type YAMLPresenter struct {
	Style    string `yaml:"style"`
	Template string `yaml:"template"`
}
