package codable

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Operation names carried on events.
const (
	OpSerialize   = "serialize"
	OpSequence    = "sequence"
	OpOnDemand    = "on_demand"
	OpDeserialize = "deserialize"
)

// Codec pairs the encode/decode engine with a Parser and reports each call
// through capitan signals.
//
// A Codec is safe for concurrent use across distinct object graphs. Decoding
// into the same target from several goroutines is not supported.
type Codec struct {
	mu     sync.RWMutex
	parser Parser
}

// New creates a Codec that reads input with parser.
func New(parser Parser) *Codec {
	c := &Codec{parser: parser}
	emitCodecCreated(context.Background(), parser.ContentType())
	return c
}

// SetParser replaces the parser. Returns the codec for chaining.
// Safe for concurrent use.
func (c *Codec) SetParser(parser Parser) *Codec {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.parser = parser
	return c
}

// ContentType returns the MIME type of the configured parser.
func (c *Codec) ContentType() string {
	return c.currentParser().ContentType()
}

func (c *Codec) currentParser() Parser {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.parser
}

// Serialize encodes v as a JSON object.
func (c *Codec) Serialize(ctx context.Context, v Codeable) ([]byte, error) {
	return c.encode(ctx, OpSerialize, typeName(v), func() ([]byte, error) {
		return Encode(v)
	})
}

// SerializeSequence encodes vs as a JSON array.
func (c *Codec) SerializeSequence(ctx context.Context, vs []Codeable) ([]byte, error) {
	return c.encode(ctx, OpSequence, fmt.Sprintf("[%d]", len(vs)), func() ([]byte, error) {
		return EncodeSequence(vs)
	})
}

// SerializeOnDemand encodes an on-demand object using transformers, which may be nil.
func (c *Codec) SerializeOnDemand(ctx context.Context, v OnDemandCodeable, transformers *Transformers) ([]byte, error) {
	return c.encode(ctx, OpOnDemand, typeName(v), func() ([]byte, error) {
		return EncodeOnDemand(v, transformers)
	})
}

func (c *Codec) encode(ctx context.Context, op, root string, fn func() ([]byte, error)) ([]byte, error) {
	start := time.Now()
	emitEncodeStart(ctx, op, root)

	data, err := fn()
	emitEncodeComplete(ctx, op, root, len(data), time.Since(start), err)
	return data, err
}

// Deserialize parses data and populates target.
func (c *Codec) Deserialize(ctx context.Context, data []byte, target Codeable) error {
	return c.decode(ctx, OpDeserialize, typeName(target), data, func(tree any) (int, error) {
		err := Decode(tree, target)
		return target.Attributes().Len(), err
	})
}

// DeserializeSequence parses a JSON array and decodes each element into the
// Codeable create returns for it.
func (c *Codec) DeserializeSequence(ctx context.Context, data []byte, create Creator) ([]Codeable, error) {
	var out []Codeable
	err := c.decode(ctx, OpSequence, "[]", data, func(tree any) (int, error) {
		var err error
		out, err = DecodeSequence(tree, create)
		return len(out), err
	})
	return out, err
}

// DeserializeOnDemand parses data and hands the decoded attributes to target.
// Either registry may be nil.
func (c *Codec) DeserializeOnDemand(ctx context.Context, data []byte, target OnDemandCodeable, transformers *Transformers, creators *Creators) error {
	return c.decode(ctx, OpOnDemand, typeName(target), data, func(tree any) (int, error) {
		obj, _ := tree.(*Object)
		err := DecodeOnDemand(tree, target, transformers, creators)
		if obj == nil {
			return 0, err
		}
		return obj.Len(), err
	})
}

func (c *Codec) decode(ctx context.Context, op, root string, data []byte, fn func(tree any) (int, error)) error {
	parser := c.currentParser()
	contentType := parser.ContentType()

	start := time.Now()
	emitDecodeStart(ctx, contentType, op, root, len(data))

	var count int
	var retErr error
	defer func() {
		emitDecodeComplete(ctx, contentType, op, root, count, time.Since(start), retErr)
	}()

	tree, err := parser.Parse(data)
	if err != nil {
		retErr = newCodecError(ErrMalformedInput, err)
		return retErr
	}

	count, retErr = fn(tree)
	return retErr
}
