package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		AI: AIConfig{
			Provider:   "gemini",
			Model:      "gemini-2.0-flash",
			Timeout:    30 * time.Second,
			APIKey:     "test-key",
			MaxRetries: 2,
		},
		Server: ServerConfig{
			Host: "localhost",
			Port: "8080",
			TLS:  TLSConfig{Mode: "disabled"},
		},
		App: AppConfig{
			LogLevel:      "info",
			MaxUploadSize: 10 * 1024 * 1024,
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing API key",
			mutate:  func(c *Config) { c.AI.APIKey = "" },
			wantErr: "AI API key is required",
		},
		{
			name: "missing API key allowed when Vault will supply it",
			mutate: func(c *Config) {
				c.AI.APIKey = ""
				c.Vault.Enabled = true
			},
		},
		{
			name:    "non-positive timeout",
			mutate:  func(c *Config) { c.AI.Timeout = 0 },
			wantErr: "AI timeout must be positive",
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.AI.MaxRetries = -1 },
			wantErr: "maxRetries must not be negative",
		},
		{
			name:    "missing port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: "server port is required",
		},
		{
			name:    "zero upload cap",
			mutate:  func(c *Config) { c.App.MaxUploadSize = 0 },
			wantErr: "maxUploadSize must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTLSConfig(t *testing.T) {
	tests := []struct {
		name    string
		tls     TLSConfig
		wantErr string
	}{
		{
			name: "disabled mode needs nothing",
			tls:  TLSConfig{Mode: "disabled"},
		},
		{
			name: "server mode with cert and key",
			tls:  TLSConfig{Mode: "server", CertFile: "cert.pem", KeyFile: "key.pem"},
		},
		{
			name:    "server mode missing key",
			tls:     TLSConfig{Mode: "server", CertFile: "cert.pem"},
			wantErr: "certificate and key files are required",
		},
		{
			name:    "mutual mode missing CA",
			tls:     TLSConfig{Mode: "mutual", CertFile: "cert.pem", KeyFile: "key.pem"},
			wantErr: "CA certificate is required",
		},
		{
			name: "mutual mode complete",
			tls:  TLSConfig{Mode: "mutual", CertFile: "cert.pem", KeyFile: "key.pem", CAFile: "ca.pem"},
		},
		{
			name:    "unknown mode",
			tls:     TLSConfig{Mode: "plaintext"},
			wantErr: "invalid TLS mode",
		},
		{
			name:    "bad min version",
			tls:     TLSConfig{Mode: "disabled", MinVersion: "1.0"},
			wantErr: "invalid TLS minVersion",
		},
		{
			name:    "bad client auth policy",
			tls:     TLSConfig{Mode: "mutual", CertFile: "c", KeyFile: "k", CAFile: "ca", ClientAuthPolicy: "never"},
			wantErr: "invalid clientAuthPolicy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Server.TLS = tt.tls
			err := cfg.ValidateTLSConfig()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateTLSConfig() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("ValidateTLSConfig() error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}
