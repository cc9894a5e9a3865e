package progress_test

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/limbo/ascend/pkg/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberCoercion(t *testing.T) {
	var body struct {
		A progress.Number `json:"a"`
		B progress.Number `json:"b"`
		C progress.Number `json:"c"`
		D progress.Number `json:"d"`
		E progress.Number `json:"e"`
	}
	err := sonic.Unmarshal([]byte(`{"a": 12.5, "b": "40", "c": "abc", "d": null, "e": true}`), &body)
	require.NoError(t, err)
	assert.Equal(t, 12.5, body.A.Float())
	assert.Equal(t, 40, body.B.Int())
	assert.Zero(t, body.C.Float())
	assert.Zero(t, body.D.Float())
	assert.Zero(t, body.E.Float())
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 3.0, progress.ParseNumber(" 3 "))
	assert.Zero(t, progress.ParseNumber("NaN"))
	assert.Zero(t, progress.ParseNumber(""))
}
