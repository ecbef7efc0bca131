package engine

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "memora.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"mastery": {"decay_base": 0.6},
		"schedule": {"max_days": 120, "strong_multiplier": 2.5},
		"trigger": {"period": 5},
		"regen": {"queue_size": 8, "timeout_secs": 10},
		"store_timeout_secs": 2
	}`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.InDelta(t, 0.6, cfg.Mastery.DecayBase, 1e-9)
	assert.InDelta(t, 0.5, cfg.Mastery.SlowCredit, 1e-9, "unset fields keep defaults")
	assert.Equal(t, 120, cfg.Schedule.MaxDays)
	assert.InDelta(t, 2.5, cfg.Schedule.StrongMultiplier, 1e-9)
	assert.Equal(t, 1, cfg.Schedule.InitialDays)
	assert.Equal(t, 5, cfg.Trigger.Period)
	assert.Equal(t, 8, cfg.RegenQueueSize)
	assert.Equal(t, 10*time.Second, cfg.RegenTimeout)
	assert.Equal(t, 2*time.Second, cfg.StoreTimeout)
}

func TestLoadFile_EmptyObjectIsAllDefaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile_RejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"unknown key":       `{"masterey": {}}`,
		"zero period":       `{"trigger": {"period": 0}}`,
		"decay out of range": `{"mastery": {"decay_base": 1.5}}`,
		"fractional days":   `{"schedule": {"max_days": 90.5}}`,
		"not JSON":          `period = 3`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("MEMORA_TRIGGER_PERIOD", "4")
	t.Setenv("MEMORA_WEAK_THRESHOLD", "0.7")
	t.Setenv("MEMORA_STORE_TIMEOUT_SECS", "9")
	t.Setenv("MEMORA_REGEN_QUEUE_SIZE", "not-a-number")

	cfg := DefaultConfig().ApplyEnv()
	assert.Equal(t, 4, cfg.Trigger.Period)
	assert.InDelta(t, 0.7, cfg.Trigger.WeakThreshold, 1e-9)
	assert.InDelta(t, 0.7, cfg.Mastery.NeedsReviewThreshold, 1e-9,
		"the weak threshold drives both review targeting and regeneration")
	assert.Equal(t, 9*time.Second, cfg.StoreTimeout)
	assert.Equal(t, DefaultConfig().RegenQueueSize, cfg.RegenQueueSize,
		"malformed values are ignored")
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	bad := DefaultConfig()
	bad.Schedule.PartialThreshold = 0.9
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.Schedule.MaxDays = 0
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.Trigger.Period = 0
	assert.Error(t, bad.Validate())
}
