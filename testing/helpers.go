// Package testing provides fixtures and test utilities for codable.
package testing

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/zoobzio/codable"
)

// ReleasedLayout is the date layout tracks are released under.
const ReleasedLayout = "2006-01-02"

// TestKey returns a valid 32-byte key for testing.
func TestKey(t testing.TB) []byte {
	t.Helper()
	return []byte("32-byte-key-for-aes-256-encrypt!")
}

// TestEncryptor returns an XChaCha20-Poly1305 encryptor for testing.
func TestEncryptor(t testing.TB) codable.Encryptor {
	t.Helper()
	enc, err := codable.XChaCha(TestKey(t))
	if err != nil {
		t.Fatalf("XChaCha: %v", err)
	}
	return enc
}

// Area is the department an article is sold in.
type Area int

const (
	Electronics Area = iota
	Music
	Books
)

func (a Area) String() string {
	switch a {
	case Electronics:
		return "electronics"
	case Music:
		return "music"
	case Books:
		return "books"
	}
	return fmt.Sprintf("Area(%d)", int(a))
}

// AreaTransformer writes areas as their index.
func AreaTransformer() codable.Transformer {
	return codable.Enum(map[Area]int{
		Electronics: 0,
		Music:       1,
		Books:       2,
	})
}

// Article is a catalog item.
type Article struct {
	codable.Record
}

// NewArticle returns an article with the area transformer registered.
func NewArticle() *Article {
	a := &Article{}
	a.register()
	return a
}

func (a *Article) register() {
	a.Transformers().Set(codable.Field("area"), AreaTransformer())
}

func (a *Article) Name() string {
	s, _ := a.Attributes().String("name")
	return s
}

func (a *Article) Price() int {
	i, _ := a.Attributes().Int("price")
	return i
}

func (a *Article) Area() Area {
	v, _ := a.Attributes().Get("area")
	area, _ := v.(Area)
	return area
}

// ElectronicsArticle is an article with a supply voltage.
type ElectronicsArticle struct {
	Article
}

// NewElectronicsArticle returns an article in the electronics area.
func NewElectronicsArticle() *ElectronicsArticle {
	a := &ElectronicsArticle{}
	a.register()
	return a
}

func (a *ElectronicsArticle) Voltage() int {
	i, _ := a.Attributes().Int("voltage")
	return i
}

// MusicArticle is an article with an artist and a track list.
type MusicArticle struct {
	Article
}

// NewMusicArticle returns an article in the music area. Its tracks are
// on-demand objects whose release dates resolve through the article's
// transformers.
func NewMusicArticle() *MusicArticle {
	a := &MusicArticle{}
	a.register()
	a.Transformers().Set(codable.Field("released"), codable.Time(ReleasedLayout))
	a.Creators().
		Set(codable.Field("tracks"), func(*codable.Object) (any, error) {
			return codable.NewList(), nil
		}).
		Set(codable.Field("tracks").Value(), func(*codable.Object) (any, error) {
			return &Track{}, nil
		})
	return a
}

func (a *MusicArticle) Artist() string {
	s, _ := a.Attributes().String("artist")
	return s
}

// Tracks returns the article's track list.
func (a *MusicArticle) Tracks() []*Track {
	v, _ := a.Attributes().Get("tracks")
	list, _ := v.(*codable.List)
	if list == nil {
		return nil
	}
	tracks := make([]*Track, 0, list.Len())
	for _, item := range list.Items() {
		if tr, ok := item.(*Track); ok {
			tracks = append(tracks, tr)
		}
	}
	return tracks
}

// ArticleCreator picks the article type from the raw "area" member.
func ArticleCreator(obj *codable.Object) (any, error) {
	raw, _ := obj.Get("area")
	if raw == nil {
		return NewArticle(), nil
	}
	v, err := AreaTransformer()(raw)
	if err != nil {
		return nil, err
	}
	switch v.(Area) {
	case Electronics:
		return NewElectronicsArticle(), nil
	case Music:
		return NewMusicArticle(), nil
	}
	return NewArticle(), nil
}

// Track keeps typed fields and is encoded on demand.
type Track struct {
	Title    string
	Seconds  int
	Released time.Time
}

// ErrTrackField indicates a track attribute of the wrong type.
var ErrTrackField = errors.New("bad track field")

func (tr *Track) WriteAttributes(s *codable.Store) error {
	s.Set("title", tr.Title)
	s.Set("seconds", tr.Seconds)
	if !tr.Released.IsZero() {
		s.Set("released", tr.Released)
	}
	return nil
}

func (tr *Track) ReadAttributes(s *codable.Store) error {
	title, ok := s.String("title")
	if !ok {
		return fmt.Errorf("%w: title", ErrTrackField)
	}
	seconds, ok := s.Int("seconds")
	if !ok {
		return fmt.Errorf("%w: seconds", ErrTrackField)
	}
	tr.Title, tr.Seconds = title, seconds
	if v, ok := s.Get("released"); ok {
		released, ok := v.(time.Time)
		if !ok {
			return fmt.Errorf("%w: released", ErrTrackField)
		}
		tr.Released = released
	}
	return nil
}

// TrackRecord holds the same fields as Track in an attribute store.
type TrackRecord struct {
	codable.Record
}

// NewTrackRecord mirrors tr field for field.
func NewTrackRecord(tr *Track) *TrackRecord {
	r := &TrackRecord{}
	r.Transformers().Set(codable.Field("released"), codable.Time(ReleasedLayout))
	_ = tr.WriteAttributes(r.Attributes())
	return r
}

// Catalog holds articles, yearly news keyed by int, and free-form tags.
type Catalog struct {
	codable.Record
}

// NewCatalog returns a catalog with all hooks registered.
func NewCatalog() *Catalog {
	c := &Catalog{}
	c.Transformers().Set(codable.Field("news-by-year").Key(), codable.IntKeys())
	c.Creators().
		Set(codable.Field("articles"), func(*codable.Object) (any, error) {
			return codable.NewList(), nil
		}).
		Set(codable.Field("articles").Value(), ArticleCreator).
		Set(codable.Field("news-by-year"), func(*codable.Object) (any, error) {
			return codable.NewMap(), nil
		}).
		Set(codable.Field("tags"), func(*codable.Object) (any, error) {
			return []any{}, nil
		})
	return c
}

// Articles returns the catalog's articles as Codeables.
func (c *Catalog) Articles() []codable.Codeable {
	v, _ := c.Attributes().Get("articles")
	list, _ := v.(*codable.List)
	if list == nil {
		return nil
	}
	out := make([]codable.Codeable, 0, list.Len())
	for _, item := range list.Items() {
		if a, ok := item.(codable.Codeable); ok {
			out = append(out, a)
		}
	}
	return out
}

// Flatten converts a decoded graph into plain maps and slices for comparison.
// Codeables gain a "$type" member naming their Go type.
func Flatten(v any) any {
	switch x := v.(type) {
	case codable.Codeable:
		out := flattenStore(x.Attributes())
		out["$type"] = fmt.Sprintf("%T", x)
		return out
	case codable.OnDemandCodeable:
		s := codable.NewStore()
		if err := x.WriteAttributes(s); err != nil {
			return err.Error()
		}
		out := flattenStore(s)
		out["$type"] = fmt.Sprintf("%T", x)
		return out
	case *codable.Store:
		return flattenStore(x)
	case *codable.Object:
		out := make(map[string]any, x.Len())
		for k, val := range x.All() {
			out[k] = Flatten(val)
		}
		return out
	case []codable.Codeable:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = Flatten(val)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = Flatten(val)
		}
		return out
	case codable.Sequence:
		out := make([]any, x.Len())
		for i := range out {
			out[i] = Flatten(x.At(i))
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = Flatten(val)
		}
		return out
	case map[any]any:
		out := make(map[any]any, len(x))
		for k, val := range x {
			out[k] = Flatten(val)
		}
		return out
	case codable.Mapping:
		out := make(map[any]any, x.Len())
		for _, k := range x.Keys() {
			val, _ := x.Get(k)
			out[k] = Flatten(val)
		}
		return out
	}
	return v
}

func flattenStore(s *codable.Store) map[string]any {
	out := make(map[string]any, s.Len())
	for k, val := range s.All() {
		out[k] = Flatten(val)
	}
	return out
}
