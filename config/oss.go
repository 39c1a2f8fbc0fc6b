package config

type OssConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	AccessKeySecret string `json:"sk" yaml:"sk"`
	PublicBaseURL   string `json:"public_base_url" yaml:"public_base_url"`
	// Folder is the key prefix for vehicle images, namespaced per vehicle.
	Folder string `json:"folder" yaml:"folder"`
}

func ProvideOssConfig(cfg *Config) *OssConfig {
	return cfg.Oss
}
