package config

type YAMLConfig struct {
	Domain string    `yaml:"domain"`
	Whois  YAMLWhois `yaml:"whois"`
	HTTP   YAMLHTTP  `yaml:"http"`
	State  YAMLState `yaml:"state"`
	SMTP   YAMLSMTP  `yaml:"smtp"`
	Log    YAMLLog   `yaml:"log"`
}

type YAMLWhois struct {
	Mode    string `yaml:"mode"`
	Binary  string `yaml:"binary"`
	Timeout string `yaml:"timeout"`
}

type YAMLHTTP struct {
	Timeout string `yaml:"timeout"`
}

type YAMLState struct {
	Backend    string `yaml:"backend"`
	Dir        string `yaml:"dir"`
	WhoisFile  string `yaml:"whois_file"`
	StatusFile string `yaml:"status_file"`
	SQLitePath string `yaml:"sqlite_path"`
}

type YAMLSMTP struct {
	Host     string `yaml:"host"`
	Port     *int   `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Timeout  string `yaml:"timeout"`
}

type YAMLLog struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
