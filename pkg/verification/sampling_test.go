package verification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSamplingService_RejectsOutOfRange(t *testing.T) {
	svc := newService(&trackingResolver{})

	for _, pct := range []int{-1, 101} {
		_, err := NewSamplingService(svc, pct)
		require.Error(t, err, "pct=%d", pct)
	}
}

func TestSamplingService_SampledRequestIsVerified(t *testing.T) {
	f := newSignedFixture(t, "domain=&ft=&tid=")
	svc := newService(&trackingResolver{handle: f.handle})

	sampled, err := NewSamplingService(svc, 50)
	require.NoError(t, err)
	sampled.intn = func(n int) int { return 0 } // always inside the sample

	res, err := sampled.VerifyRequest(context.Background(), f.req)
	require.NoError(t, err)
	assert.True(t, res.Checked)
	assert.True(t, res.Valid)
}

func TestSamplingService_UnsampledRequestSkipsAllWork(t *testing.T) {
	f := newSignedFixture(t, "domain=&ft=&tid=")
	resolver := &trackingResolver{handle: f.handle}
	svc := newService(resolver)

	sampled, err := NewSamplingService(svc, 50)
	require.NoError(t, err)
	sampled.intn = func(n int) int { return 99 } // always outside the sample

	res, err := sampled.VerifyRequest(context.Background(), f.req)
	require.NoError(t, err)
	assert.False(t, res.Checked)
	assert.False(t, resolver.invoked)
}

func TestSamplingService_ZeroPercentNeverChecks(t *testing.T) {
	f := newSignedFixture(t, "domain=&ft=&tid=")
	resolver := &trackingResolver{handle: f.handle}
	svc := newService(resolver)

	sampled, err := NewSamplingService(svc, 0)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		res, err := sampled.VerifyRequest(context.Background(), f.req)
		require.NoError(t, err)
		assert.False(t, res.Checked)
	}
	assert.False(t, resolver.invoked)
}

func TestSamplingService_HundredPercentAlwaysChecks(t *testing.T) {
	f := newSignedFixture(t, "domain=&ft=&tid=")
	svc := newService(&trackingResolver{handle: f.handle})

	sampled, err := NewSamplingService(svc, 100)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		res, err := sampled.VerifyRequest(context.Background(), f.req)
		require.NoError(t, err)
		assert.True(t, res.Checked)
		assert.True(t, res.Valid)
	}
}

func TestSamplingService_ErrorsPropagate(t *testing.T) {
	f := newSignedFixture(t, "domain=&ft=&tid=")
	f.req.Source.DS = ""
	svc := newService(&trackingResolver{handle: f.handle})

	sampled, err := NewSamplingService(svc, 100)
	require.NoError(t, err)

	_, err = sampled.VerifyRequest(context.Background(), f.req)
	require.Error(t, err)

	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}
