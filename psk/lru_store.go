package psk

import (
	"container/list"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/crypto/cryptobyte"
)

const snapshotRevision = 1

type lruEntry struct {
	identity string
	psk      *CachedPSK
}

// LRUStore is an in-memory Store that evicts the least recently used PSK once full.
// It is safe for concurrent use.
type LRUStore struct {
	mutex    sync.Mutex
	capacity int
	entries  map[string]*list.Element
	order    *list.List // front is most recently used

	now func() time.Time
}

var _ Store = &LRUStore{}

// NewLRUStore creates a store holding at most capacity PSKs.
func NewLRUStore(capacity int) *LRUStore {
	if capacity < 1 {
		panic("psk: LRUStore capacity must be positive")
	}
	return &LRUStore{
		capacity: capacity,
		entries:  make(map[string]*list.Element, capacity),
		order:    list.New(),
		now:      time.Now,
	}
}

// GetPSK returns the PSK stored for identity. Expired PSKs are removed and not returned.
func (s *LRUStore) GetPSK(identity string) (*CachedPSK, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	elem, ok := s.entries[identity]
	if !ok {
		return nil, false
	}
	entry := elem.Value.(*lruEntry)
	if entry.psk.Expired(s.now()) {
		s.removeElement(elem)
		return nil, false
	}
	s.order.MoveToFront(elem)
	return entry.psk, true
}

// PutPSK stores psk under identity, replacing any previous value.
// Storing nil removes the identity.
func (s *LRUStore) PutPSK(identity string, psk *CachedPSK) {
	if psk == nil {
		s.RemovePSK(identity)
		return
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.put(identity, psk)
}

func (s *LRUStore) put(identity string, psk *CachedPSK) {
	if elem, ok := s.entries[identity]; ok {
		elem.Value.(*lruEntry).psk = psk
		s.order.MoveToFront(elem)
		return
	}
	if s.order.Len() >= s.capacity {
		s.removeElement(s.order.Back())
	}
	s.entries[identity] = s.order.PushFront(&lruEntry{identity: identity, psk: psk})
}

func (s *LRUStore) RemovePSK(identity string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if elem, ok := s.entries[identity]; ok {
		s.removeElement(elem)
	}
}

func (s *LRUStore) removeElement(elem *list.Element) {
	s.order.Remove(elem)
	delete(s.entries, elem.Value.(*lruEntry).identity)
}

// Len returns the number of stored PSKs, including expired ones not yet purged.
func (s *LRUStore) Len() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.order.Len()
}

// Identities returns the stored identities, most recently used first.
func (s *LRUStore) Identities() []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	ids := make([]string, 0, s.order.Len())
	for elem := s.order.Front(); elem != nil; elem = elem.Next() {
		ids = append(ids, elem.Value.(*lruEntry).identity)
	}
	return ids
}

// Range calls f for each stored PSK, most recently used first, until f returns false.
// It doesn't affect the eviction order. f must not call into the store.
func (s *LRUStore) Range(f func(identity string, psk *CachedPSK) bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for elem := s.order.Front(); elem != nil; elem = elem.Next() {
		entry := elem.Value.(*lruEntry)
		if !f(entry.identity, entry.psk) {
			return
		}
	}
}

// Purge removes all expired PSKs and returns how many were removed.
func (s *LRUStore) Purge() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.now()
	var n int
	for elem := s.order.Front(); elem != nil; {
		next := elem.Next()
		if elem.Value.(*lruEntry).psk.Expired(now) {
			s.removeElement(elem)
			n++
		}
		elem = next
	}
	return n
}

// WriteTo writes a snapshot of the store, least recently used first,
// so that ReadFrom restores the same eviction order.
func (s *LRUStore) WriteTo(w io.Writer) (int64, error) {
	s.mutex.Lock()
	b := cryptobyte.NewBuilder(nil)
	b.AddUint8(snapshotRevision)
	b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) {
		for elem := s.order.Back(); elem != nil; elem = elem.Prev() {
			entry := elem.Value.(*lruEntry)
			b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes([]byte(entry.identity)) })
			b.AddUint24LengthPrefixed(func(b *cryptobyte.Builder) { entry.psk.marshal(b) })
		}
	})
	s.mutex.Unlock()

	data, err := b.Bytes()
	if err != nil {
		return 0, fmt.Errorf("psk: encoding snapshot failed: %w", err)
	}
	n, err := w.Write(data)
	return int64(n), err
}

// ReadFrom adds all PSKs from a snapshot written by WriteTo.
func (s *LRUStore) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return int64(len(data)), err
	}
	str := cryptobyte.String(data)
	var rev uint8
	var entries cryptobyte.String
	if !str.ReadUint8(&rev) {
		return int64(len(data)), errTruncated
	}
	if rev != snapshotRevision {
		return int64(len(data)), fmt.Errorf("psk: unknown snapshot revision %d", rev)
	}
	var n uint32
	if !str.ReadUint32(&n) || !str.ReadBytes((*[]byte)(&entries), int(n)) || !str.Empty() {
		return int64(len(data)), errors.New("psk: malformed snapshot")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	for !entries.Empty() {
		var identity, encoded cryptobyte.String
		if !entries.ReadUint16LengthPrefixed(&identity) || !entries.ReadUint24LengthPrefixed(&encoded) {
			return int64(len(data)), errTruncated
		}
		p := &CachedPSK{}
		if err := p.unmarshal(&encoded); err != nil {
			return int64(len(data)), fmt.Errorf("psk: decoding %q failed: %w", string(identity), err)
		}
		if !encoded.Empty() {
			return int64(len(data)), fmt.Errorf("psk: trailing data for %q", string(identity))
		}
		s.put(string(identity), p)
	}
	return int64(len(data)), nil
}
