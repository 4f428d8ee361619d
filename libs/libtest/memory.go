// Package libtest provides in-memory storage backends for tests.
package libtest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"sync"
	"time"

	"abc-retail/libs"

	"github.com/pkg/errors"
)

type MemoryTableStore struct {
	mu     sync.Mutex
	tables map[string]map[string]libs.Entity
	seq    int
}

func NewMemoryTableStore() *MemoryTableStore {
	return &MemoryTableStore{tables: map[string]map[string]libs.Entity{}}
}

func entityKey(partitionKey, rowKey string) string {
	return partitionKey + "\x00" + rowKey
}

func (s *MemoryTableStore) table(name string) (map[string]libs.Entity, error) {
	if err := libs.ValidateTableName(name); err != nil {
		return nil, err
	}
	t, ok := s.tables[name]
	if !ok {
		t = map[string]libs.Entity{}
		s.tables[name] = t
	}
	return t, nil
}

func (s *MemoryTableStore) nextETag() string {
	s.seq++
	return strconv.Itoa(s.seq)
}

func (s *MemoryTableStore) AddEntity(ctx context.Context, table string, entity libs.Entity) (libs.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.table(table)
	if err != nil {
		return libs.Entity{}, err
	}
	key := entityKey(entity.PartitionKey, entity.RowKey)
	if _, ok := t[key]; ok {
		return libs.Entity{}, errors.Wrap(libs.ErrEntityExists, key)
	}

	entity.ETag = s.nextETag()
	entity.Timestamp = time.Now().UTC()
	entity.Data = append(json.RawMessage(nil), entity.Data...)
	t[key] = entity
	return entity, nil
}

func (s *MemoryTableStore) GetEntity(ctx context.Context, table, partitionKey, rowKey string) (libs.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.table(table)
	if err != nil {
		return libs.Entity{}, err
	}
	entity, ok := t[entityKey(partitionKey, rowKey)]
	if !ok {
		return libs.Entity{}, errors.Wrap(libs.ErrEntityNotFound, rowKey)
	}
	return entity, nil
}

func (s *MemoryTableStore) UpdateEntity(ctx context.Context, table string, entity libs.Entity, ifMatch string) (libs.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.table(table)
	if err != nil {
		return libs.Entity{}, err
	}
	key := entityKey(entity.PartitionKey, entity.RowKey)
	current, ok := t[key]
	if !ok {
		return libs.Entity{}, errors.Wrap(libs.ErrEntityNotFound, entity.RowKey)
	}
	if ifMatch != "" && ifMatch != libs.ETagAny && ifMatch != current.ETag {
		return libs.Entity{}, errors.Wrap(libs.ErrETagMismatch, entity.RowKey)
	}

	entity.ETag = s.nextETag()
	entity.Timestamp = time.Now().UTC()
	t[key] = entity
	return entity, nil
}

func (s *MemoryTableStore) DeleteEntity(ctx context.Context, table, partitionKey, rowKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.table(table)
	if err != nil {
		return err
	}
	key := entityKey(partitionKey, rowKey)
	if _, ok := t[key]; !ok {
		return errors.Wrap(libs.ErrEntityNotFound, rowKey)
	}
	delete(t, key)
	return nil
}

func (s *MemoryTableStore) QueryEntities(ctx context.Context, table string, filter libs.Filter) ([]libs.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.table(table)
	if err != nil {
		return nil, err
	}

	entities := []libs.Entity{}
	for _, entity := range t {
		if filter.PartitionKey != "" && entity.PartitionKey != filter.PartitionKey {
			continue
		}
		if filter.RowKey != "" && entity.RowKey != filter.RowKey {
			continue
		}
		if filter.Property != "" {
			var props map[string]any
			if err := json.Unmarshal(entity.Data, &props); err != nil {
				return nil, err
			}
			value, ok := props[filter.Property]
			if !ok || fmt.Sprint(value) != filter.Value {
				continue
			}
		}
		entities = append(entities, entity)
	}

	sort.Slice(entities, func(i, j int) bool {
		if entities[i].PartitionKey != entities[j].PartitionKey {
			return entities[i].PartitionKey < entities[j].PartitionKey
		}
		return entities[i].RowKey < entities[j].RowKey
	})
	return entities, nil
}

// Count returns the number of entities stored in table.
func (s *MemoryTableStore) Count(table string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tables[table])
}

type MemoryBlobStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: map[string][]byte{}}
}

func (s *MemoryBlobStore) Upload(ctx context.Context, container, name string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, content); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[container+"/"+name] = buf.Bytes()
	return "memory://" + container + "/" + name, nil
}

func (s *MemoryBlobStore) Delete(ctx context.Context, container, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[container+"/"+name]; !ok {
		return errors.Errorf("blob %s/%s not found", container, name)
	}
	delete(s.blobs, container+"/"+name)
	return nil
}

// Blob returns the stored content of container/name.
func (s *MemoryBlobStore) Blob(container, name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[container+"/"+name]
	return data, ok
}

// Names lists the stored blob paths.
func (s *MemoryBlobStore) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.blobs))
	for name := range s.blobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
