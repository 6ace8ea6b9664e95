package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ValidateConfig checks if the global configurations have valid values.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("YAML global config: configuration object is nil")
	}
	if err := ValidateHTTPConfig(&cfg.HTTPClient); err != nil {
		return fmt.Errorf("YAML global config: http_client directive is invalid: %w", err)
	}
	if err := ValidateBackendConfig(&cfg.Backend); err != nil {
		return fmt.Errorf("YAML global config: backend directive is invalid: %w", err)
	}
	if err := ValidateDashboardConfig(&cfg.Dashboard); err != nil {
		return fmt.Errorf("YAML global config: dashboard directive is invalid: %w", err)
	}
	return nil
}

// ValidateHTTPConfig checks if the HTTP configurations have valid values.
func ValidateHTTPConfig(httpConfig *HTTPClient) error {
	if httpConfig == nil {
		return fmt.Errorf("HTTP configuration is nil")
	}
	if httpConfig.RetryCount < 0 || httpConfig.RetryCount > 20 {
		return fmt.Errorf("retry_count must be between 0 and 20: %d", httpConfig.RetryCount)
	}

	durations := map[string]time.Duration{
		"retry_max_wait_time": httpConfig.RetryMaxWaitTime,
		"retry_wait_time":     httpConfig.RetryWaitTime,
	}
	for name, duration := range durations {
		if err := validateDuration(duration, name, 100*time.Second); err != nil {
			return err
		}
	}
	if err := validateDuration(httpConfig.Timeout, "timeout", 1*time.Hour); err != nil {
		return err
	}

	if err := validateProxy(&httpConfig.Proxy); err != nil {
		return err
	}

	return nil
}

// ValidateBackendConfig checks that the backend URL is an absolute http(s) URL and the base path is rooted.
func ValidateBackendConfig(backend *Backend) error {
	if backend == nil {
		return fmt.Errorf("backend configuration is nil")
	}

	u, err := url.Parse(backend.URL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", backend.URL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url %q must use the http or https scheme", backend.URL)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", backend.URL)
	}
	if backend.BasePath != "" && !strings.HasPrefix(backend.BasePath, "/") {
		return fmt.Errorf("base_path %q must start with '/'", backend.BasePath)
	}
	return nil
}

// ValidateDashboardConfig checks the listen address of the browser dashboard.
func ValidateDashboardConfig(dashboard *Dashboard) error {
	if dashboard == nil {
		return fmt.Errorf("dashboard configuration is nil")
	}
	if dashboard.Listen == "" {
		return nil
	}
	idx := strings.LastIndex(dashboard.Listen, ":")
	if idx < 0 {
		return fmt.Errorf("listen address %q must be in host:port form", dashboard.Listen)
	}
	var port int
	if _, err := fmt.Sscanf(dashboard.Listen[idx+1:], "%d", &port); err != nil {
		return fmt.Errorf("listen address %q has an invalid port", dashboard.Listen)
	}
	return validatePort(port)
}

// validateDuration checks that a time.Duration is valid and within a specified maximum duration.
func validateDuration(d time.Duration, name string, max time.Duration) error {
	if d < 0 {
		return fmt.Errorf("invalid duration for %s: %v cannot be negative", name, d)
	}
	if d > max {
		return fmt.Errorf("%s duration is too long: %v exceeds maximum of %v", name, d, max)
	}
	return nil
}

// validateProxy checks if the given Proxy settings are valid.
func validateProxy(proxy *Proxy) error {
	if proxy == nil {
		return fmt.Errorf("proxy configuration is nil")
	}

	// If host or port is not set, skip further validation
	if proxy.Host == "" || proxy.Port == 0 {
		return nil
	}

	if err := validateHost(&proxy.Host); err != nil {
		return err
	}

	return validatePort(proxy.Port)
}

// validateHost ensures the proxy host includes a scheme; adds "http" if missing.
func validateHost(host *string) error {
	if host == nil {
		return fmt.Errorf("host string pointer is nil")
	}

	if !strings.Contains(*host, "://") {
		*host = "http://" + *host
	}
	*host = strings.TrimRight(*host, "/")

	if _, err := url.Parse(*host); err != nil {
		return fmt.Errorf("invalid host URL: %w", err)
	}

	return nil
}

func validatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", port)
	}
	return nil
}
