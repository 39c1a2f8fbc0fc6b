package config

type Jwt struct {
	Secret        string `json:"secret" yaml:"secret"`
	AccessExpire  int    `json:"access_expire" yaml:"access_expire"`   // seconds
	RefreshExpire int    `json:"refresh_expire" yaml:"refresh_expire"` // seconds
}
