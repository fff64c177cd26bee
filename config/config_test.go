package config

import (
	"testing"
)

func validConfig() *Config {
	return &Config{
		Qbittorrent: QbittorrentConfig{
			URL:         "http://localhost:8080",
			Username:    "admin",
			Password:    "adminadmin",
			TimeoutSecs: 30,
			MaxAttempts: 3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing url",
			mutate:  func(c *Config) { c.Qbittorrent.URL = "" },
			wantErr: true,
		},
		{
			name:    "missing username",
			mutate:  func(c *Config) { c.Qbittorrent.Username = "" },
			wantErr: true,
		},
		{
			name:    "missing password",
			mutate:  func(c *Config) { c.Qbittorrent.Password = "" },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Qbittorrent.TimeoutSecs = 0 },
			wantErr: true,
		},
		{
			name:    "negative max attempts",
			mutate:  func(c *Config) { c.Qbittorrent.MaxAttempts = -1 },
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
