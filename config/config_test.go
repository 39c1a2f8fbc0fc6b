package config

import "testing"

func TestNewLoadsDevConfig(t *testing.T) {
	conf := New("../configs/config.dev.yaml")

	if conf.App == nil || conf.App.Env != "dev" {
		t.Fatalf("app.env = %+v, want dev", conf.App)
	}
	if conf.Server == nil || conf.Server.Http == 0 {
		t.Error("server.http must be set")
	}
	if conf.MySQL == nil || conf.Redis == nil || conf.Jwt == nil || conf.Oss == nil {
		t.Error("mysql, redis, jwt and oss sections must all be present")
	}
	if conf.Cleanup == nil || conf.Cleanup.Spec == "" {
		t.Error("cleanup.spec must be set")
	}
}
