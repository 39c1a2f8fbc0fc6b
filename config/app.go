package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}
