package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_Success(t *testing.T) {
	assert.True(t, Envelope{Status: "success"}.Success())
	assert.False(t, Envelope{Status: "error"}.Success())
	assert.False(t, Envelope{Status: "Success"}.Success())
	assert.False(t, Envelope{}.Success())
}

func TestEnvelope_FailureMessage(t *testing.T) {
	tests := []struct {
		name string
		env  Envelope
		want string
	}{
		{"detail wins", Envelope{Detail: "Order not found", Message: "bad", Msg: "worse"}, "Order not found"},
		{"message next", Envelope{Message: "Validation failed", Msg: "worse"}, "Validation failed"},
		{"msg last", Envelope{Msg: "Token has expired"}, "Token has expired"},
		{"all empty", Envelope{}, "unknown platform error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.env.FailureMessage())
		})
	}
}

func TestEnvelope_DecodesPlatformShape(t *testing.T) {
	raw := `{"status":"success","data":{"orders":[],"total":0},"message":"Orders retrieved"}`
	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(raw), &env))
	assert.True(t, env.Success())
	assert.Equal(t, "Orders retrieved", env.Message)
	assert.JSONEq(t, `{"orders":[],"total":0}`, string(env.Data))
}

func TestResult(t *testing.T) {
	ok := Ok(42, "done")
	assert.True(t, ok.Ok())
	assert.Equal(t, 42, ok.Value())
	assert.Equal(t, "done", ok.Message())

	failed := Err[int]("boom")
	assert.False(t, failed.Ok())
	assert.Zero(t, failed.Value())
	assert.Equal(t, "boom", failed.Message())
}
