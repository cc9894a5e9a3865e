package config_test

import (
	"testing"
	"time"

	"github.com/limbo/ascend/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	cfg := config.New()
	t.Setenv("ASCEND_TEST_INT", "42")
	t.Setenv("ASCEND_TEST_FLOAT", "2.5")
	t.Setenv("ASCEND_TEST_DURATION", "90m")
	t.Setenv("ASCEND_TEST_BROKEN", "abc")

	assert.Equal(t, 42, cfg.GetInt("ASCEND_TEST_INT", 1))
	assert.Equal(t, 1, cfg.GetInt("ASCEND_TEST_BROKEN", 1))
	assert.Equal(t, 2.5, cfg.GetFloat("ASCEND_TEST_FLOAT", 0))
	assert.Equal(t, 0.5, cfg.GetFloat("ASCEND_TEST_MISSING", 0.5))
	assert.Equal(t, 90*time.Minute, cfg.GetDuration("ASCEND_TEST_DURATION", time.Hour))
	assert.Equal(t, time.Hour, cfg.GetDuration("ASCEND_TEST_BROKEN", time.Hour))
	assert.Equal(t, "abc", cfg.GetStringOr("ASCEND_TEST_BROKEN", "x"))
	assert.Equal(t, "x", cfg.GetStringOr("ASCEND_TEST_MISSING", "x"))
}
