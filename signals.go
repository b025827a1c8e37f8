package codable

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codec events.
var (
	SignalCodecCreated   = capitan.NewSignal("codable.codec.created", "Codec instantiated")
	SignalEncodeStart    = capitan.NewSignal("codable.encode.start", "Encode operation beginning")
	SignalEncodeComplete = capitan.NewSignal("codable.encode.complete", "Encode operation finished")
	SignalDecodeStart    = capitan.NewSignal("codable.decode.start", "Decode operation beginning")
	SignalDecodeComplete = capitan.NewSignal("codable.decode.complete", "Decode operation finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyOperation   = capitan.NewStringKey("operation")
	KeyRootType    = capitan.NewStringKey("root_type")
	KeySize        = capitan.NewIntKey("size")
	KeyCount       = capitan.NewIntKey("count")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitCodecCreated emits an event when a codec is created.
func emitCodecCreated(ctx context.Context, contentType string) {
	capitan.Emit(ctx, SignalCodecCreated,
		KeyContentType.Field(contentType),
	)
}

// emitEncodeStart emits an event when an encode begins.
func emitEncodeStart(ctx context.Context, operation, rootType string) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyOperation.Field(operation),
		KeyRootType.Field(rootType),
	)
}

// emitEncodeComplete emits an event when an encode finishes.
func emitEncodeComplete(ctx context.Context, operation, rootType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyOperation.Field(operation),
		KeyRootType.Field(rootType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitDecodeStart emits an event when a decode begins.
func emitDecodeStart(ctx context.Context, contentType, operation, rootType string, size int) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyContentType.Field(contentType),
		KeyOperation.Field(operation),
		KeyRootType.Field(rootType),
		KeySize.Field(size),
	)
}

// emitDecodeComplete emits an event when a decode finishes.
// count is the number of top-level attributes or elements decoded.
func emitDecodeComplete(ctx context.Context, contentType, operation, rootType string, count int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyOperation.Field(operation),
		KeyRootType.Field(rootType),
		KeyCount.Field(count),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}
