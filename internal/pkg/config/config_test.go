//go:build unit

package config_test

import (
	"testing"
	"time"

	"kost-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "test config is valid", mutate: func(*config.Config) {}},
		{name: "zero settlement timeout", mutate: func(c *config.Config) { c.Booking.SettlementTimeout = 0 }, wantErr: "BOOKING_SETTLEMENT_TIMEOUT"},
		{name: "negative idle ttl", mutate: func(c *config.Config) { c.Booking.FlowIdleTTL = -time.Second }, wantErr: "BOOKING_FLOW_IDLE_TTL"},
		{name: "zero sweep interval", mutate: func(c *config.Config) { c.Booking.SweepInterval = 0 }, wantErr: "BOOKING_FLOW_SWEEP_INTERVAL"},
		{name: "unknown time zone", mutate: func(c *config.Config) { c.Booking.TimeZone = "Asia/Atlantis" }, wantErr: "BOOKING_TIMEZONE"},
		{name: "negative simulated delay", mutate: func(c *config.Config) { c.Settlement.SimulatedDelay = -time.Millisecond }, wantErr: "SETTLEMENT_SIMULATED_DELAY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestBookingConfig_Location(t *testing.T) {
	cfg := config.BookingConfig{TimeZone: "Asia/Jakarta"}
	assert.Equal(t, "Asia/Jakarta", cfg.Location().String())

	cfg.TimeZone = "Nowhere/Unknown"
	assert.Equal(t, time.UTC, cfg.Location())
}
