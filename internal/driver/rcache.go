package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"fretlint/internal/chart"
	"fretlint/internal/diag"
)

// Current schema version - increment when resultPayload format changes
// (v2: severity enum renumbered to warning/error).
const resultCacheSchemaVersion uint16 = 2

// Digest identifies cached chart content.
type Digest = [sha256.Size]byte

// ResultCache хранит результаты проверки по хэшу содержимого чарта на диске.
// Thread-safe for concurrent access.
type ResultCache struct {
	mu  sync.RWMutex
	dir string
}

// cachedDiagnostic is the serialisable form of one diagnostic.
type cachedDiagnostic struct {
	Severity   uint8
	Code       uint16
	Track      string
	Difficulty uint8
	Time       float64
	Message    string
}

// resultPayload stores a chart's validation outcome for fast re-checks.
type resultPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Pro         bool
	ChartName   string
	Diagnostics []cachedDiagnostic
}

func newPayload(chartName string, pro bool, bag *diag.Bag) *resultPayload {
	p := &resultPayload{
		Schema:      resultCacheSchemaVersion,
		Pro:         pro,
		ChartName:   chartName,
		Diagnostics: make([]cachedDiagnostic, 0, bag.Len()),
	}
	for _, d := range bag.Items() {
		p.Diagnostics = append(p.Diagnostics, cachedDiagnostic{
			Severity:   uint8(d.Severity),
			Code:       uint16(d.Code),
			Track:      d.Track,
			Difficulty: uint8(d.Difficulty),
			Time:       d.Time,
			Message:    d.Message,
		})
	}
	return p
}

// bag reconstructs the structured diagnostics from a payload.
func (p *resultPayload) bag() *diag.Bag {
	bag := diag.NewBag(0)
	for _, cd := range p.Diagnostics {
		bag.Add(diag.Diagnostic{
			Severity:   diag.Severity(cd.Severity),
			Code:       diag.Code(cd.Code),
			Track:      cd.Track,
			Difficulty: chart.Difficulty(cd.Difficulty),
			Time:       cd.Time,
			Message:    cd.Message,
		})
	}
	return bag
}

// OpenResultCache initializes and returns a disk cache at the standard
// location ($XDG_CACHE_HOME/<app> or ~/.cache/<app>).
func OpenResultCache(app string) (*ResultCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ResultCache{dir: dir}, nil
}

// OpenResultCacheAt initializes a cache rooted at an explicit directory.
func OpenResultCacheAt(dir string) (*ResultCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ResultCache{dir: dir}, nil
}

func (c *ResultCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Для удобства читаемости/очистки — подкаталог "charts".
	return filepath.Join(c.dir, "charts", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *ResultCache) Put(key Digest, payload *resultPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache. Payloads with
// a mismatched schema version count as a miss.
func (c *ResultCache) Get(key Digest, out *resultPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		_ = f.Close()
	}()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != resultCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// cacheKey derives the cache digest from chart bytes plus the rule mode:
// the same chart validates differently per mode, so the mode is part of
// the key.
func cacheKey(data []byte, pro bool) Digest {
	h := sha256.New()
	if pro {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	h.Write(data)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// cacheGet is a nil-tolerant lookup helper; cache errors count as a miss.
func cacheGet(c *ResultCache, key Digest) (*resultPayload, bool) {
	if c == nil {
		return nil, false
	}
	var payload resultPayload
	ok, err := c.Get(key, &payload)
	if err != nil || !ok {
		return nil, false
	}
	return &payload, true
}

// cachePut is a nil-tolerant store helper.
func cachePut(c *ResultCache, key Digest, payload *resultPayload) error {
	if c == nil {
		return nil
	}
	return c.Put(key, payload)
}
