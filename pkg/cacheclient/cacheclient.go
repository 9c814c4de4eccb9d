package cacheclient

import (
	"time"

	"github.com/QuangTung97/go-memcache/memcache"
)

//go:generate moq -out cacheclient_mocks.go . CacheClient CachePipeline

// CacheClient ...
type CacheClient interface {
	Pipeline() CachePipeline
}

// CachePipeline batches memcached commands, results are read by calling the returned functions
type CachePipeline interface {
	Get(key string) func() (GetOutput, error)
	LeaseGet(key string) func() (LeaseGetOutput, error)
	LeaseSet(key string, value []byte, leaseID uint64, ttl uint32) func() error
	Delete(key string) func() error
	Finish()
}

// GetOutput ...
type GetOutput struct {
	Found bool
	Data  []byte
}

// LeaseGetType ...
type LeaseGetType int

const (
	// LeaseGetTypeOK value is found
	LeaseGetTypeOK LeaseGetType = iota + 1

	// LeaseGetTypeGranted caller must fill the key using the returned lease id
	LeaseGetTypeGranted

	// LeaseGetTypeRejected another caller holds the lease
	LeaseGetTypeRejected
)

// LeaseGetOutput ...
type LeaseGetOutput struct {
	Type    LeaseGetType
	LeaseID uint64
	Data    []byte
}

// Client ...
type Client struct {
	client *memcache.Client
}

// Pipeline ...
type Pipeline struct {
	pipe *memcache.Pipeline
}

var _ CacheClient = &Client{}

var _ CachePipeline = Pipeline{}

// New ...
func New(addr string, numConns int) *Client {
	client, err := memcache.New(addr, numConns, memcache.WithRetryDuration(10*time.Second))
	if err != nil {
		panic(err)
	}
	return &Client{
		client: client,
	}
}

// UnsafeFlushAll ...
func (c *Client) UnsafeFlushAll() error {
	p := c.client.Pipeline()
	defer p.Finish()
	return p.FlushAll()()
}

// Close ...
func (c *Client) Close() error {
	return c.client.Close()
}

// Pipeline ...
func (c *Client) Pipeline() CachePipeline {
	return Pipeline{
		pipe: c.client.Pipeline(),
	}
}

// Get ...
func (p Pipeline) Get(key string) func() (GetOutput, error) {
	fn := p.pipe.MGet(key, memcache.MGetOptions{})
	return func() (GetOutput, error) {
		resp, err := fn()
		if err != nil {
			return GetOutput{}, err
		}
		if resp.Type == memcache.MGetResponseTypeVA {
			return GetOutput{
				Found: true,
				Data:  resp.Data,
			}, nil
		}
		return GetOutput{}, nil
	}
}

// LeaseGet ...
func (p Pipeline) LeaseGet(key string) func() (LeaseGetOutput, error) {
	fn := p.pipe.MGet(key, memcache.MGetOptions{
		N:   5,
		CAS: true,
	})
	return func() (LeaseGetOutput, error) {
		resp, err := fn()
		if err != nil {
			return LeaseGetOutput{}, err
		}
		if resp.Type != memcache.MGetResponseTypeVA || resp.Flags&memcache.MGetFlagZ != 0 {
			return LeaseGetOutput{
				Type: LeaseGetTypeRejected,
			}, nil
		}

		if resp.Flags&memcache.MGetFlagW != 0 {
			return LeaseGetOutput{
				Type:    LeaseGetTypeGranted,
				LeaseID: resp.CAS,
			}, nil
		}

		return LeaseGetOutput{
			Type: LeaseGetTypeOK,
			Data: resp.Data,
		}, nil
	}
}

// LeaseSet ...
func (p Pipeline) LeaseSet(key string, value []byte, leaseID uint64, ttl uint32) func() error {
	fn := p.pipe.MSet(key, value, memcache.MSetOptions{
		CAS: leaseID,
		TTL: ttl,
	})
	return func() error {
		_, err := fn()
		return err
	}
}

// Delete ...
func (p Pipeline) Delete(key string) func() error {
	fn := p.pipe.MDel(key, memcache.MDelOptions{})
	return func() error {
		_, err := fn()
		return err
	}
}

// Finish releases the pipeline
func (p Pipeline) Finish() {
	p.pipe.Finish()
}
