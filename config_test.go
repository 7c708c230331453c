package webhdfs

import (
	"strings"
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{Host: "nn"}
	cfg.ApplyDefaults()

	if cfg.Port != 50070 {
		t.Errorf("expected default port 50070, got %d", cfg.Port)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", cfg.Timeout)
	}
}

func TestConfig_ApplyDefaults_KeepsExplicit(t *testing.T) {
	cfg := Config{Host: "nn", Port: 9870, Timeout: time.Second}
	cfg.ApplyDefaults()

	if cfg.Port != 9870 {
		t.Errorf("expected port 9870, got %d", cfg.Port)
	}
	if cfg.Timeout != time.Second {
		t.Errorf("expected timeout 1s, got %v", cfg.Timeout)
	}
}

func TestConfig_Validate_MissingHost(t *testing.T) {
	cfg := Config{Port: 50070}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error for missing host")
	}
	if !strings.Contains(err.Error(), "Host") {
		t.Errorf("expected the error to name the host field, got %q", err.Error())
	}
}

func TestConfig_Validate_TLSCertWithoutKey(t *testing.T) {
	cfg := Config{Host: "nn", Port: 50070, TLS: &TLSConfig{CertFile: "cert.pem"}}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for cert without key")
	}
}

func TestConfig_Validate_OK(t *testing.T) {
	cfg := Config{Host: "nn", Port: 50070, User: "alice"}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
