package identity

import (
	"bytes"
	"context"
	"fmt"

	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/cacheclient"
	"github.com/QuangTung97/loyalty/pkg/memtable"
	"github.com/QuangTung97/loyalty/pkg/otellib"
	"github.com/QuangTung97/loyalty/pkg/util"
	"go.uber.org/zap"
)

// CachedMatcher puts the in-process memtable then memcached in front of another provider.
// Only found customers are cached.
type CachedMatcher struct {
	next   CustomerIDProvider
	mem    *memtable.MemTable
	client cacheclient.CacheClient
	ttl    uint32
}

var _ CustomerIDProvider = &CachedMatcher{}

// CachedOption ...
type CachedOption func(m *CachedMatcher)

// WithRemoteCache enables the memcached level
func WithRemoteCache(client cacheclient.CacheClient) CachedOption {
	return func(m *CachedMatcher) {
		m.client = client
	}
}

// NewCachedMatcher ...
func NewCachedMatcher(
	next CustomerIDProvider, mem *memtable.MemTable, ttlSeconds uint32, options ...CachedOption,
) *CachedMatcher {
	m := &CachedMatcher{
		next: next,
		mem:  mem,
		ttl:  ttlSeconds,
	}
	for _, o := range options {
		o(m)
	}
	return m
}

// fingerprint data must be normalized
func fingerprint(data model.CustomerData) string {
	return data.LoyaltyCardNumber + "|" + data.Email + "|" + data.Phone
}

func cacheKey(fp string) string {
	return fmt.Sprintf("identity:%08x", util.HashFunc(fp))
}

const separator = byte(0)

func encodeEntry(fp string, customerID string) []byte {
	result := make([]byte, 0, len(fp)+1+len(customerID))
	result = append(result, fp...)
	result = append(result, separator)
	result = append(result, customerID...)
	return result
}

// decodeEntry returns false on hash collision with another fingerprint
func decodeEntry(data []byte, fp string) (string, bool) {
	index := bytes.IndexByte(data, separator)
	if index < 0 {
		return "", false
	}
	if string(data[:index]) != fp {
		return "", false
	}
	return string(data[index+1:]), true
}

// GetID ...
func (m *CachedMatcher) GetID(ctx context.Context, data model.CustomerData) (string, bool, error) {
	data = data.Normalized()
	if data.IsEmpty() {
		return "", false, nil
	}
	fp := fingerprint(data)
	key := cacheKey(fp)

	if entry, ok := m.mem.Get(key); ok {
		if id, ok := decodeEntry(entry, fp); ok {
			return id, true, nil
		}
	}

	if m.client == nil {
		return m.getFromNext(ctx, data, key, fp)
	}

	pipe := m.client.Pipeline()
	defer pipe.Finish()

	output, err := pipe.LeaseGet(key)()
	if err != nil {
		otellib.Extract(ctx).Warn("identity lease get", zap.Error(err))
		return m.getFromNext(ctx, data, key, fp)
	}

	switch output.Type {
	case cacheclient.LeaseGetTypeOK:
		if id, ok := decodeEntry(output.Data, fp); ok {
			m.mem.Set(key, output.Data, int(m.ttl))
			return id, true, nil
		}
		return m.next.GetID(ctx, data)

	case cacheclient.LeaseGetTypeGranted:
		id, found, err := m.getFromNext(ctx, data, key, fp)
		if err != nil || !found {
			return id, found, err
		}
		if err := pipe.LeaseSet(key, encodeEntry(fp, id), output.LeaseID, m.ttl)(); err != nil {
			otellib.Extract(ctx).Warn("identity lease set", zap.Error(err))
		}
		return id, true, nil

	default:
		return m.next.GetID(ctx, data)
	}
}

func (m *CachedMatcher) getFromNext(
	ctx context.Context, data model.CustomerData, key string, fp string,
) (string, bool, error) {
	id, found, err := m.next.GetID(ctx, data)
	if err != nil || !found {
		return id, found, err
	}
	m.mem.Set(key, encodeEntry(fp, id), int(m.ttl))
	return id, true, nil
}
