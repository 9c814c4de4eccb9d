package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/cacheclient"
	"github.com/QuangTung97/loyalty/pkg/memtable"
	"github.com/stretchr/testify/assert"
)

type nextProviderStub struct {
	calls []model.CustomerData
	id    string
	found bool
	err   error
}

func (s *nextProviderStub) GetID(_ context.Context, data model.CustomerData) (string, bool, error) {
	s.calls = append(s.calls, data)
	return s.id, s.found, s.err
}

type cachedTest struct {
	next     *nextProviderStub
	client   *cacheclient.CacheClientMock
	pipe     *cacheclient.CachePipelineMock
	mem      *memtable.MemTable
	matcher  *CachedMatcher
	leaseOut cacheclient.LeaseGetOutput
}

func newCachedTest(remote bool) *cachedTest {
	c := &cachedTest{
		next: &nextProviderStub{},
		mem:  memtable.New(1024 * 1024),
	}
	c.pipe = &cacheclient.CachePipelineMock{
		LeaseGetFunc: func(key string) func() (cacheclient.LeaseGetOutput, error) {
			return func() (cacheclient.LeaseGetOutput, error) {
				return c.leaseOut, nil
			}
		},
		LeaseSetFunc: func(key string, value []byte, leaseID uint64, ttl uint32) func() error {
			return func() error { return nil }
		},
		FinishFunc: func() {},
	}
	c.client = &cacheclient.CacheClientMock{
		PipelineFunc: func() cacheclient.CachePipeline {
			return c.pipe
		},
	}

	var options []CachedOption
	if remote {
		options = append(options, WithRemoteCache(c.client))
	}
	c.matcher = NewCachedMatcher(c.next, c.mem, 300, options...)
	return c
}

var customerData01 = model.CustomerData{
	Email: "user@example.com",
	Phone: "+48123",
}

func TestCachedMatcher__Local_Only__Hit_After_First_Call(t *testing.T) {
	c := newCachedTest(false)
	c.next.id = "customer-01"
	c.next.found = true

	id, found, err := c.matcher.GetID(newContext(), customerData01)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, found)
	assert.Equal(t, "customer-01", id)

	id, found, err = c.matcher.GetID(newContext(), model.CustomerData{
		Email: " USER@example.com",
		Phone: "+48123 ",
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, true, found)
	assert.Equal(t, "customer-01", id)

	assert.Equal(t, 1, len(c.next.calls))
	assert.Equal(t, 0, len(c.client.PipelineCalls()))
}

func TestCachedMatcher__Misses_Are_Not_Cached(t *testing.T) {
	c := newCachedTest(false)

	_, found, err := c.matcher.GetID(newContext(), customerData01)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, found)

	c.next.id = "customer-02"
	c.next.found = true

	id, found, err := c.matcher.GetID(newContext(), customerData01)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, found)
	assert.Equal(t, "customer-02", id)
	assert.Equal(t, 2, len(c.next.calls))
}

func TestCachedMatcher__Empty_Data(t *testing.T) {
	c := newCachedTest(true)

	_, found, err := c.matcher.GetID(newContext(), model.CustomerData{Name: "John"})
	assert.Equal(t, nil, err)
	assert.Equal(t, false, found)
	assert.Equal(t, 0, len(c.next.calls))
	assert.Equal(t, 0, len(c.client.PipelineCalls()))
}

func TestCachedMatcher__Remote_Granted__Sets_Lease(t *testing.T) {
	c := newCachedTest(true)
	c.leaseOut = cacheclient.LeaseGetOutput{
		Type:    cacheclient.LeaseGetTypeGranted,
		LeaseID: 880,
	}
	c.next.id = "customer-01"
	c.next.found = true

	id, found, err := c.matcher.GetID(newContext(), customerData01)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, found)
	assert.Equal(t, "customer-01", id)

	fp := fingerprint(customerData01)
	setCalls := c.pipe.LeaseSetCalls()
	assert.Equal(t, 1, len(setCalls))
	assert.Equal(t, cacheKey(fp), setCalls[0].Key)
	assert.Equal(t, encodeEntry(fp, "customer-01"), setCalls[0].Value)
	assert.Equal(t, uint64(880), setCalls[0].LeaseID)
	assert.Equal(t, uint32(300), setCalls[0].Ttl)
	assert.Equal(t, 1, len(c.pipe.FinishCalls()))
}

func TestCachedMatcher__Remote_Granted__Not_Found_No_Set(t *testing.T) {
	c := newCachedTest(true)
	c.leaseOut = cacheclient.LeaseGetOutput{
		Type:    cacheclient.LeaseGetTypeGranted,
		LeaseID: 880,
	}

	_, found, err := c.matcher.GetID(newContext(), customerData01)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, found)
	assert.Equal(t, 0, len(c.pipe.LeaseSetCalls()))
}

func TestCachedMatcher__Remote_OK__Fills_Local(t *testing.T) {
	c := newCachedTest(true)
	fp := fingerprint(customerData01)
	c.leaseOut = cacheclient.LeaseGetOutput{
		Type: cacheclient.LeaseGetTypeOK,
		Data: encodeEntry(fp, "customer-05"),
	}

	id, found, err := c.matcher.GetID(newContext(), customerData01)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, found)
	assert.Equal(t, "customer-05", id)
	assert.Equal(t, 0, len(c.next.calls))

	// Second Call Uses Local
	id, _, _ = c.matcher.GetID(newContext(), customerData01)
	assert.Equal(t, "customer-05", id)
	assert.Equal(t, 1, len(c.client.PipelineCalls()))
}

func TestCachedMatcher__Remote_OK__Collision_Goes_To_Next(t *testing.T) {
	c := newCachedTest(true)
	c.leaseOut = cacheclient.LeaseGetOutput{
		Type: cacheclient.LeaseGetTypeOK,
		Data: encodeEntry("other|fingerprint|", "customer-05"),
	}
	c.next.id = "customer-01"
	c.next.found = true

	id, found, err := c.matcher.GetID(newContext(), customerData01)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, found)
	assert.Equal(t, "customer-01", id)
	assert.Equal(t, 1, len(c.next.calls))
}

func TestCachedMatcher__Remote_Rejected__Goes_To_Next(t *testing.T) {
	c := newCachedTest(true)
	c.leaseOut = cacheclient.LeaseGetOutput{Type: cacheclient.LeaseGetTypeRejected}
	c.next.err = errors.New("db error")

	_, _, err := c.matcher.GetID(newContext(), customerData01)
	assert.Equal(t, c.next.err, err)
	assert.Equal(t, 0, len(c.pipe.LeaseSetCalls()))
}

type phoneOnlyProvider struct {
	calls []model.CustomerData
}

func (p *phoneOnlyProvider) GetID(_ context.Context, data model.CustomerData) (string, bool, error) {
	p.calls = append(p.calls, data)
	if data.Phone == "+48123456789" {
		return "customer-01", true, nil
	}
	return "", false, nil
}

func TestCachedMatcher__Same_Result_Cold_And_Warm(t *testing.T) {
	next := &phoneOnlyProvider{}
	matcher := NewCachedMatcher(next, memtable.New(1024*1024), 300)

	spaced := model.CustomerData{Phone: "+48 123 456 789"}

	_, found, err := matcher.GetID(newContext(), spaced)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, found)

	id, found, err := matcher.GetID(newContext(), model.CustomerData{Phone: " +48123456789 "})
	assert.Equal(t, nil, err)
	assert.Equal(t, true, found)
	assert.Equal(t, "customer-01", id)

	_, found, err = matcher.GetID(newContext(), spaced)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, found)

	assert.Equal(t, []model.CustomerData{
		{Phone: "+48 123 456 789"},
		{Phone: "+48123456789"},
		{Phone: "+48 123 456 789"},
	}, next.calls)
}
