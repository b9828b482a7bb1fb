package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/rileyhilliard/hdt/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineMode_DefaultValue(t *testing.T) {
	oldMode := machineMode
	defer func() { machineMode = oldMode }()

	machineMode = false
	assert.False(t, MachineMode())

	machineMode = true
	assert.True(t, MachineMode())
}

func TestWriteJSONSuccess_BasicData(t *testing.T) {
	var buf bytes.Buffer

	err := WriteJSONSuccess(&buf, map[string]string{"key": "value"})
	require.NoError(t, err)

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))

	assert.True(t, env.Success)
	assert.Nil(t, env.Error)

	dataMap, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "value", dataMap["key"])
}

func TestWriteJSONError(t *testing.T) {
	var buf bytes.Buffer

	err := WriteJSONError(&buf, ErrCodeConfigInvalid, "bad theme", "use light or dark", map[string]string{"key": "theme"})
	require.NoError(t, err)

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))

	assert.False(t, env.Success)
	assert.Nil(t, env.Data)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeConfigInvalid, env.Error.Code)
	assert.Equal(t, "bad theme", env.Error.Message)
	assert.Equal(t, "use light or dark", env.Error.Suggestion)
}

func TestErrorToJSON(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"config not found", errors.New(errors.ErrConfig, "Config file not found", ""), ErrCodeConfigNotFound},
		{"config invalid", errors.New(errors.ErrConfig, "Theme 'x' isn't valid", ""), ErrCodeConfigInvalid},
		{"lookup", errors.New(errors.ErrLookup, "No formula for 'x'", ""), ErrCodeMetricNotFound},
		{"render", errors.New(errors.ErrRender, "needs a terminal", ""), ErrCodeRenderFailed},
		{"exec", errors.New(errors.ErrExec, "Unknown shell", ""), ErrCodeCommandFailed},
		{"unknown code", errors.New("OTHER", "something", ""), ErrCodeUnknown},
		{"plain error", fmt.Errorf("plain"), ErrCodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ErrorToJSON(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}

	assert.Nil(t, ErrorToJSON(nil))
}

func TestErrorToJSON_KeepsSuggestion(t *testing.T) {
	got := ErrorToJSON(errors.New(errors.ErrLookup, "No formula for 'x'", "Known metrics: FFR"))
	assert.Equal(t, "No formula for 'x'", got.Message)
	assert.Equal(t, "Known metrics: FFR", got.Suggestion)
}
