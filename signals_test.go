package codable

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitCodecCreated(_ *testing.T) {
	// Should not panic
	emitCodecCreated(context.Background(), "application/json")
}

func TestEmitEncodeStart(_ *testing.T) {
	emitEncodeStart(context.Background(), OpSerialize, "*codable.Record")
}

func TestEmitEncodeComplete_Success(_ *testing.T) {
	emitEncodeComplete(context.Background(), OpSerialize, "*codable.Record", 64, 100*time.Millisecond, nil)
}

func TestEmitEncodeComplete_Error(_ *testing.T) {
	emitEncodeComplete(context.Background(), OpSerialize, "*codable.Record", 0, 100*time.Millisecond, errors.New("test error"))
}

func TestEmitDecodeStart(_ *testing.T) {
	emitDecodeStart(context.Background(), "application/json", OpDeserialize, "*codable.Record", 64)
}

func TestEmitDecodeComplete_Success(_ *testing.T) {
	emitDecodeComplete(context.Background(), "application/json", OpDeserialize, "*codable.Record", 3, 100*time.Millisecond, nil)
}

func TestEmitDecodeComplete_Error(_ *testing.T) {
	emitDecodeComplete(context.Background(), "application/json", OpDeserialize, "*codable.Record", 0, 100*time.Millisecond, errors.New("test error"))
}

func TestSignalVariables(t *testing.T) {
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalCodecCreated", SignalCodecCreated},
		{"SignalEncodeStart", SignalEncodeStart},
		{"SignalEncodeComplete", SignalEncodeComplete},
		{"SignalDecodeStart", SignalDecodeStart},
		{"SignalDecodeComplete", SignalDecodeComplete},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}

func TestKeyVariables(t *testing.T) {
	keys := []struct {
		name string
		key  interface{}
	}{
		{"KeyContentType", KeyContentType},
		{"KeyOperation", KeyOperation},
		{"KeyRootType", KeyRootType},
		{"KeySize", KeySize},
		{"KeyCount", KeyCount},
		{"KeyDuration", KeyDuration},
		{"KeyError", KeyError},
	}

	for _, k := range keys {
		if k.key == nil {
			t.Errorf("%s is nil", k.name)
		}
	}
}
