package codable

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrMissingTransformer indicates a value needed a transformer at a key with none registered.
	ErrMissingTransformer = errors.New("missing transformer")

	// ErrMissingCreator indicates a JSON array or object had no creator at its key.
	ErrMissingCreator = errors.New("missing creator")

	// ErrUnsupportedCreatorResult indicates a creator returned something the decoder cannot fill.
	ErrUnsupportedCreatorResult = errors.New("creator returned unsupported type")

	// ErrUnsupportedValueType indicates a value or JSON node of a shape the codec cannot handle.
	ErrUnsupportedValueType = errors.New("unsupported value type")

	// ErrMalformedInput indicates the parser rejected the input text.
	ErrMalformedInput = errors.New("malformed input")

	// ErrTransform indicates a transformer returned an error.
	ErrTransform = errors.New("transform failed")

	// ErrCreate indicates a creator returned an error.
	ErrCreate = errors.New("create failed")

	// ErrAttributes indicates an on-demand object's write or read callback failed.
	ErrAttributes = errors.New("attribute callback failed")

	// ErrTransformInput indicates a built-in transformer received a value of neither of its types.
	ErrTransformInput = errors.New("unexpected transformer input")

	// ErrUnknownEnum indicates an enum transformer received a value missing from its table.
	ErrUnknownEnum = errors.New("unknown enum value")
)

// HookError reports a hook that had to be registered but was not.
type HookError struct {
	Err   error // ErrMissingTransformer or ErrMissingCreator
	Key   Key   // Resolution key that was looked up
	Value any   // Offending value, when there is one
}

func (e *HookError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s at key %q for value %v (%s)", e.Err.Error(), e.Key.String(), e.Value, typeName(e.Value))
	}
	return fmt.Sprintf("%s at key %q", e.Err.Error(), e.Key.String())
}

func (e *HookError) Unwrap() error {
	return e.Err
}

// TypeError reports a value, creator result or JSON node of an unsupported type.
type TypeError struct {
	Err  error  // ErrUnsupportedCreatorResult or ErrUnsupportedValueType
	Key  Key    // Resolution key being processed
	Type string // Go type of the offending value
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s %s for key %q", e.Err.Error(), e.Type, e.Key.String())
}

func (e *TypeError) Unwrap() error {
	return e.Err
}

// TransformError reports a hook or callback that failed on its own.
type TransformError struct {
	Err       error  // ErrTransform, ErrCreate or ErrAttributes
	Key       Key    // Resolution key being processed
	Operation string // encode or decode
	Cause     error  // Error returned by the hook
}

func (e *TransformError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s key %q: %v", e.Err.Error(), e.Operation, e.Key.String(), e.Cause)
	}
	return fmt.Sprintf("%s: %s key %q", e.Err.Error(), e.Operation, e.Key.String())
}

func (e *TransformError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// CodecError represents a parse failure.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMalformedInput)
	Cause error // Original error from the parser
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

// Unwrap exposes both the sentinel and the parser's own error.
func (e *CodecError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func newHookError(sentinel error, key Key, value any) error {
	return &HookError{Err: sentinel, Key: key, Value: value}
}

func newTypeError(sentinel error, key Key, v any) error {
	return &TypeError{Err: sentinel, Key: key, Type: typeName(v)}
}

func newTransformError(sentinel error, operation string, key Key, cause error) error {
	return &TransformError{Err: sentinel, Key: key, Operation: operation, Cause: cause}
}

func newCodecError(sentinel error, cause error) error {
	return &CodecError{Err: sentinel, Cause: cause}
}
