package server

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"sync"
	"time"

	"careerbot/internal/config"
	"careerbot/internal/errors"
	"careerbot/internal/observability"
)

// CertReloader serves the current TLS key pair and swaps it atomically
// when the certificate files change on disk.
type CertReloader struct {
	mu       sync.RWMutex
	cert     *tls.Certificate
	certFile string
	keyFile  string

	watcher *CertWatcher
	metrics *observability.Metrics
	logger  *errors.Logger

	reloadCount        int64
	reloadSuccessCount int64
	reloadFailureCount int64
	lastReloadTime     time.Time
	lastReloadError    string
}

// NewCertReloader loads the initial key pair and, if auto-reload is
// enabled, starts watching the certificate files.
func NewCertReloader(tlsCfg config.TLSConfig, metrics *observability.Metrics, logger *errors.Logger) (*CertReloader, error) {
	cr := &CertReloader{
		certFile: tlsCfg.CertFile,
		keyFile:  tlsCfg.KeyFile,
		metrics:  metrics,
		logger:   logger,
	}

	if err := cr.load(); err != nil {
		return nil, err
	}

	if tlsCfg.AutoReload.Enabled {
		watcher, err := NewCertWatcher(
			[]string{tlsCfg.CertFile, tlsCfg.KeyFile, tlsCfg.CAFile},
			tlsCfg.AutoReload.DebounceDelay,
			cr.Reload,
			logger,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create certificate watcher: %w", err)
		}
		if err := watcher.Start(); err != nil {
			return nil, fmt.Errorf("failed to start certificate watcher: %w", err)
		}
		cr.watcher = watcher
	}

	return cr, nil
}

// load reads the key pair from disk and installs it.
func (cr *CertReloader) load() error {
	cert, err := tls.LoadX509KeyPair(cr.certFile, cr.keyFile)
	if err != nil {
		return fmt.Errorf("failed to load server cert/key: %w", err)
	}

	// Keep the parsed leaf around for expiry checks.
	if cert.Leaf == nil && len(cert.Certificate) > 0 {
		if leaf, err := x509.ParseCertificate(cert.Certificate[0]); err == nil {
			cert.Leaf = leaf
		}
	}

	cr.mu.Lock()
	cr.cert = &cert
	cr.mu.Unlock()

	cr.recordExpiry()
	return nil
}

// Reload re-reads the key pair from disk. Failures keep the previous
// certificate in place.
func (cr *CertReloader) Reload() {
	cr.mu.Lock()
	cr.reloadCount++
	cr.lastReloadTime = time.Now()
	cr.mu.Unlock()

	if err := cr.load(); err != nil {
		cr.mu.Lock()
		cr.reloadFailureCount++
		cr.lastReloadError = err.Error()
		cr.mu.Unlock()
		cr.logger.LogError(err, "Failed to reload TLS certificates")
		return
	}

	cr.mu.Lock()
	cr.reloadSuccessCount++
	cr.lastReloadError = ""
	cr.mu.Unlock()

	if cr.metrics != nil && cr.metrics.CertReloadCount != nil {
		cr.metrics.CertReloadCount.Add(context.Background(), 1)
	}
	cr.logger.Info("TLS certificates reloaded successfully",
		"cert_file", cr.certFile)
}

// recordExpiry publishes the seconds-to-expiry gauge for the current leaf.
func (cr *CertReloader) recordExpiry() {
	if cr.metrics == nil || cr.metrics.CertExpiryTime == nil {
		return
	}
	if remaining, err := cr.CheckExpiry(); err == nil {
		cr.metrics.CertExpiryTime.Record(context.Background(), remaining.Seconds())
	}
}

// GetCertificate implements tls.Config.GetCertificate.
func (cr *CertReloader) GetCertificate(*tls.ClientHelloInfo) (*tls.Certificate, error) {
	cr.mu.RLock()
	defer cr.mu.RUnlock()

	if cr.cert == nil {
		return nil, fmt.Errorf("no certificate loaded")
	}
	return cr.cert, nil
}

// CheckExpiry returns the time remaining until the current server
// certificate expires.
func (cr *CertReloader) CheckExpiry() (time.Duration, error) {
	cr.mu.RLock()
	defer cr.mu.RUnlock()

	if cr.cert == nil || cr.cert.Leaf == nil {
		return 0, fmt.Errorf("no parsed certificate available")
	}
	return time.Until(cr.cert.Leaf.NotAfter), nil
}

// Watching reports whether the file watcher is running.
func (cr *CertReloader) Watching() bool {
	return cr.watcher != nil && cr.watcher.IsRunning()
}

// WatchedFiles returns the certificate files being watched.
func (cr *CertReloader) WatchedFiles() []string {
	if cr.watcher == nil {
		return nil
	}
	return cr.watcher.WatchedFiles()
}

// ReloadStats returns reload counters for the health endpoint.
func (cr *CertReloader) ReloadStats() map[string]any {
	cr.mu.RLock()
	defer cr.mu.RUnlock()

	stats := map[string]any{
		"reload_count":         cr.reloadCount,
		"reload_success_count": cr.reloadSuccessCount,
		"reload_failure_count": cr.reloadFailureCount,
	}
	if !cr.lastReloadTime.IsZero() {
		stats["last_reload_time"] = cr.lastReloadTime
	}
	if cr.lastReloadError != "" {
		stats["last_reload_error"] = cr.lastReloadError
	}
	return stats
}

// Stop shuts down the file watcher if one is running.
func (cr *CertReloader) Stop() error {
	if cr.watcher == nil {
		return nil
	}
	return cr.watcher.Stop()
}
