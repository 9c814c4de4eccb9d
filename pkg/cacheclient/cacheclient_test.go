//go:build integration

package cacheclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func truncateMemcached(c *Client) {
	if err := c.UnsafeFlushAll(); err != nil {
		panic(err)
	}
}

func TestCacheClient__LeaseGet__Granted_And_Rejected(t *testing.T) {
	c := New("localhost:11211", 1)
	truncateMemcached(c)

	p := c.Pipeline()
	defer p.Finish()

	output, err := p.LeaseGet("identity:email:key01")()
	assert.Equal(t, nil, err)

	assert.Greater(t, output.LeaseID, uint64(0))
	output.LeaseID = 0

	assert.Equal(t, LeaseGetOutput{
		Type: LeaseGetTypeGranted,
	}, output)

	// Lease Get Second Time
	output, err = p.LeaseGet("identity:email:key01")()
	assert.Equal(t, nil, err)
	assert.Equal(t, LeaseGetOutput{
		Type: LeaseGetTypeRejected,
	}, output)
}

func TestCacheClient__LeaseGet__OK(t *testing.T) {
	c := New("localhost:11211", 1)
	truncateMemcached(c)

	p := c.Pipeline()
	defer p.Finish()

	output, err := p.LeaseGet("identity:email:key01")()
	assert.Equal(t, nil, err)
	assert.Equal(t, LeaseGetTypeGranted, output.Type)

	err = p.LeaseSet("identity:email:key01", []byte("some value"), output.LeaseID, 0)()
	assert.Equal(t, nil, err)

	// Lease Get After Set
	output, err = p.LeaseGet("identity:email:key01")()
	assert.Equal(t, nil, err)

	assert.Equal(t, LeaseGetOutput{
		Type: LeaseGetTypeOK,
		Data: []byte("some value"),
	}, output)

	// Get
	getOutput, err := p.Get("identity:email:key01")()
	assert.Equal(t, nil, err)
	assert.Equal(t, GetOutput{
		Found: true,
		Data:  []byte("some value"),
	}, getOutput)

	// Get Not Found
	getOutput, err = p.Get("identity:email:key02")()
	assert.Equal(t, nil, err)
	assert.Equal(t, GetOutput{}, getOutput)

	// Delete
	err = p.Delete("identity:email:key01")()
	assert.Equal(t, nil, err)

	getOutput, err = p.Get("identity:email:key01")()
	assert.Equal(t, nil, err)
	assert.Equal(t, GetOutput{}, getOutput)

	// Lease Get Again
	output, err = p.LeaseGet("identity:email:key01")()
	assert.Equal(t, nil, err)
	assert.Equal(t, LeaseGetTypeGranted, output.Type)
}
