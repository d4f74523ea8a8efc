package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"lumen/internal/diag"
	"lumen/internal/source"
)

// Bump when FilePayload's wire shape changes.
const cacheSchemaVersion uint16 = 1

// DiskCache persists per-file diagnostics keyed by content hash, so an
// unchanged file's findings are replayed instead of recomputed.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// payloadDiag is the wire form of one diagnostic. Messages holds the chain
// outermost-first; a single entry means flat text.
type payloadDiag struct {
	Start    int
	Length   int
	Category uint8
	Code     uint32
	Messages []string
}

// FilePayload is the cached record for one file.
type FilePayload struct {
	Schema uint16
	Path   string
	Diags  []payloadDiag
}

// OpenDiskCache initializes a cache rooted at dir, creating it when needed.
// An empty dir selects the XDG cache location.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, "lumen")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, "diags", hex.EncodeToString(key[:])+".mp")
}

// Put atomically writes a payload for the given content hash.
func (c *DiskCache) Put(key [32]byte, payload *FilePayload) error {
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
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads the payload for a content hash, reporting whether it exists. A
// schema mismatch counts as a miss.
func (c *DiskCache) Get(key [32]byte, out *FilePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != cacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the whole cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "diags"))
}

func encodePayload(f *source.File, diags []*diag.Diagnostic) *FilePayload {
	payload := &FilePayload{
		Schema: cacheSchemaVersion,
		Path:   f.Path,
		Diags:  make([]payloadDiag, 0, len(diags)),
	}
	for _, d := range diags {
		pd := payloadDiag{
			Start:    d.Start,
			Length:   d.Length,
			Category: uint8(d.Category),
			Code:     uint32(d.Code),
		}
		if d.Chain != nil {
			for link := d.Chain; link != nil; link = link.Next {
				pd.Messages = append(pd.Messages, link.Message)
			}
		} else {
			pd.Messages = []string{d.Message}
		}
		payload.Diags = append(payload.Diags, pd)
	}
	return payload
}

// replayDiagnostics reconstructs cached diagnostics against the live file
// record and re-reports them.
func replayDiagnostics(f *source.File, payload FilePayload, r diag.Reporter) {
	for _, pd := range payload.Diags {
		d := &diag.Diagnostic{
			File:     f,
			Start:    pd.Start,
			Length:   pd.Length,
			Category: diag.Category(pd.Category),
			Code:     diag.Code(pd.Code),
		}
		if len(pd.Messages) > 0 {
			d.Message = pd.Messages[0]
		}
		if len(pd.Messages) > 1 {
			var chain *diag.MessageChain
			for i := len(pd.Messages) - 1; i >= 0; i-- {
				chain = &diag.MessageChain{
					Message:  pd.Messages[i],
					Category: d.Category,
					Code:     d.Code,
					Next:     chain,
				}
			}
			d.Chain = chain
		}
		r.Report(d)
	}
}
