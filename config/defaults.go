package config

import (
	"time"

	"github.com/pkg/errors"
)

const (
	defaultFreshnessWindow    = 15 * time.Minute
	defaultProximityRadius    = 500.0
	defaultMaxProximityRadius = 50000.0
	defaultNearbyUserLimit    = 10

	defaultMomentExpiry            = 24 * time.Hour
	defaultMinMomentExpiry         = time.Hour
	defaultMaxMomentExpiry         = 48 * time.Hour
	defaultMomentDurationSeconds   = 10
	defaultMinMomentDuration       = 5
	defaultMaxMomentDuration       = 15
	defaultMomentVisibilityRadius  = 50.0
	defaultMinMomentVisibility     = 10.0
	defaultMaxMomentVisibility     = 100.0
	defaultNearbyMomentLimit       = 50
	defaultMomentSweepInterval     = time.Minute
	defaultReputationBaseScore     = 50
	defaultReputationHistoryLimit  = 20
	defaultQRCodeSize              = 256
	defaultQRCodeErrorCorrectLevel = "M"
)

// ApplyDefaults fills every optional section so that a minimal config.yaml still yields a runnable service.
func (c *Config) ApplyDefaults() {
	if c.Proximity == nil {
		c.Proximity = &ProximityConfig{}
	}
	if c.Proximity.FreshnessWindow <= 0 {
		c.Proximity.FreshnessWindow = defaultFreshnessWindow
	}
	if c.Proximity.DefaultRadius <= 0 {
		c.Proximity.DefaultRadius = defaultProximityRadius
	}
	if c.Proximity.MaxRadius <= 0 {
		c.Proximity.MaxRadius = defaultMaxProximityRadius
	}
	if c.Proximity.NearbyLimit <= 0 {
		c.Proximity.NearbyLimit = defaultNearbyUserLimit
	}

	if c.Moment == nil {
		c.Moment = &MomentConfig{}
	}
	m := c.Moment
	if m.DefaultExpiry <= 0 {
		m.DefaultExpiry = defaultMomentExpiry
	}
	if m.MinExpiry <= 0 {
		m.MinExpiry = defaultMinMomentExpiry
	}
	if m.MaxExpiry <= 0 {
		m.MaxExpiry = defaultMaxMomentExpiry
	}
	if m.DefaultDurationSeconds <= 0 {
		m.DefaultDurationSeconds = defaultMomentDurationSeconds
	}
	if m.MinDurationSeconds <= 0 {
		m.MinDurationSeconds = defaultMinMomentDuration
	}
	if m.MaxDurationSeconds <= 0 {
		m.MaxDurationSeconds = defaultMaxMomentDuration
	}
	if m.DefaultVisibilityRadius <= 0 {
		m.DefaultVisibilityRadius = defaultMomentVisibilityRadius
	}
	if m.MinVisibilityRadius <= 0 {
		m.MinVisibilityRadius = defaultMinMomentVisibility
	}
	if m.MaxVisibilityRadius <= 0 {
		m.MaxVisibilityRadius = defaultMaxMomentVisibility
	}
	if m.DefaultRadius <= 0 {
		m.DefaultRadius = defaultProximityRadius
	}
	if m.NearbyLimit <= 0 {
		m.NearbyLimit = defaultNearbyMomentLimit
	}
	if m.SweepInterval <= 0 {
		m.SweepInterval = defaultMomentSweepInterval
	}

	if c.Reputation == nil {
		c.Reputation = &ReputationConfig{}
	}
	if c.Reputation.BaseScore <= 0 {
		c.Reputation.BaseScore = defaultReputationBaseScore
	}
	if c.Reputation.HistoryLimit <= 0 {
		c.Reputation.HistoryLimit = defaultReputationHistoryLimit
	}

	if c.QRCode == nil {
		c.QRCode = &QRCodeConfig{}
	}
	if c.QRCode.Size <= 0 {
		c.QRCode.Size = defaultQRCodeSize
	}
	if c.QRCode.ErrorCorrectionLevel == "" {
		c.QRCode.ErrorCorrectionLevel = defaultQRCodeErrorCorrectLevel
	}
}

// Validate checks that configured ranges are coherent. It expects ApplyDefaults to have run.
func (c *Config) Validate() error {
	if c.Proximity.DefaultRadius > c.Proximity.MaxRadius {
		return errors.Errorf("proximity.defaultRadius %.0f exceeds proximity.maxRadius %.0f",
			c.Proximity.DefaultRadius, c.Proximity.MaxRadius)
	}

	m := c.Moment
	if m.MinExpiry > m.MaxExpiry || m.DefaultExpiry < m.MinExpiry || m.DefaultExpiry > m.MaxExpiry {
		return errors.Errorf("moment expiry range invalid: default=%s min=%s max=%s",
			m.DefaultExpiry, m.MinExpiry, m.MaxExpiry)
	}
	if m.MinDurationSeconds > m.MaxDurationSeconds ||
		m.DefaultDurationSeconds < m.MinDurationSeconds || m.DefaultDurationSeconds > m.MaxDurationSeconds {
		return errors.Errorf("moment duration range invalid: default=%d min=%d max=%d",
			m.DefaultDurationSeconds, m.MinDurationSeconds, m.MaxDurationSeconds)
	}
	if m.MinVisibilityRadius > m.MaxVisibilityRadius ||
		m.DefaultVisibilityRadius < m.MinVisibilityRadius || m.DefaultVisibilityRadius > m.MaxVisibilityRadius {
		return errors.Errorf("moment visibility radius range invalid: default=%.0f min=%.0f max=%.0f",
			m.DefaultVisibilityRadius, m.MinVisibilityRadius, m.MaxVisibilityRadius)
	}
	if m.DefaultRadius > c.Proximity.MaxRadius {
		return errors.Errorf("moment.defaultRadius %.0f exceeds proximity.maxRadius %.0f",
			m.DefaultRadius, c.Proximity.MaxRadius)
	}

	if c.Reputation.BaseScore > 100 {
		return errors.Errorf("reputation.baseScore %d is outside [0, 100]", c.Reputation.BaseScore)
	}

	return nil
}
