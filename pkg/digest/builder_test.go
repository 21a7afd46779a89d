package digest

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/openrtb"
)

func TestParseFieldOrderSpec_TemplateForm(t *testing.T) {
	spec, err := ParseFieldOrderSpec("domain=&ft=&tid=")
	require.NoError(t, err)
	assert.Equal(t, FieldOrderSpec{"domain", "ft", "tid"}, spec)
}

func TestParseFieldOrderSpec_CommaForm(t *testing.T) {
	spec, err := ParseFieldOrderSpec("price,id")
	require.NoError(t, err)
	assert.Equal(t, FieldOrderSpec{"price", "id"}, spec)
}

func TestParseFieldOrderSpec_Malformed(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"domain=&=&tid=",
		"domain=x&ft=",
		"domain,,tid",
		"domain=&domain=",
		"tid,tid",
	}
	for _, dsmap := range cases {
		_, err := ParseFieldOrderSpec(dsmap)
		require.Error(t, err, "dsmap=%q", dsmap)
		assert.ErrorIs(t, err, ErrMalformedFieldSpec, "dsmap=%q", dsmap)
	}
}

func TestFieldOrderSpec_String(t *testing.T) {
	spec, err := ParseFieldOrderSpec("price,id")
	require.NoError(t, err)
	assert.Equal(t, "price=&id=", spec.String())
}

func TestFromFieldMap_Deterministic(t *testing.T) {
	fields := map[string]string{"domain": "newsite.com", "ft": "d", "tid": "ab101"}
	order := FieldOrderSpec{"domain", "ft", "tid"}

	d1, err := FromFieldMap(fields, order)
	require.NoError(t, err)
	d2, err := FromFieldMap(fields, order)
	require.NoError(t, err)

	assert.Equal(t, d1, d2)
}

func TestFromFieldMap_MatchesCanonicalString(t *testing.T) {
	fields := map[string]string{"domain": "newsite.com", "ft": "d", "tid": "ab101"}
	order := FieldOrderSpec{"domain", "ft", "tid"}

	d, err := FromFieldMap(fields, order)
	require.NoError(t, err)

	want := sha256.Sum256([]byte("domain=newsite.com&ft=d&tid=ab101"))
	assert.Equal(t, Digest(want), d)
}

func TestFromFieldMap_OrderSensitive(t *testing.T) {
	fields := map[string]string{"domain": "newsite.com", "ft": "d", "tid": "ab101"}

	d1, err := FromFieldMap(fields, FieldOrderSpec{"domain", "ft", "tid"})
	require.NoError(t, err)
	d2, err := FromFieldMap(fields, FieldOrderSpec{"tid", "ft", "domain"})
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2)
}

func TestFromFieldMap_MissingField(t *testing.T) {
	fields := map[string]string{"domain": "newsite.com"}

	_, err := FromFieldMap(fields, FieldOrderSpec{"domain", "tid"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestFromFieldMap_ExtraKeysIgnored(t *testing.T) {
	order := FieldOrderSpec{"domain"}

	d1, err := FromFieldMap(map[string]string{"domain": "a.com"}, order)
	require.NoError(t, err)
	d2, err := FromFieldMap(map[string]string{"domain": "a.com", "junk": "x"}, order)
	require.NoError(t, err)

	assert.Equal(t, d1, d2)
}

func TestFromFieldMap_SeparatorCollision(t *testing.T) {
	// A value containing the separator must not collide with the same
	// bytes split across two fields.
	order := FieldOrderSpec{"a", "b"}

	d1, err := FromFieldMap(map[string]string{"a": "x&b=y", "b": ""}, order)
	require.NoError(t, err)
	d2, err := FromFieldMap(map[string]string{"a": "x", "b": "y"}, order)
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2)
}

func TestFromRequest_MatchesFieldMap(t *testing.T) {
	req := &openrtb.BidRequest{
		ID: "req-1",
		Source: &openrtb.Source{
			TID:   "ab101",
			DSMap: "domain=&ft=&tid=",
		},
		Site: &openrtb.Site{Domain: "newsite.com"},
		Imp: []openrtb.Imp{
			{ID: "1", Banner: &openrtb.Banner{W: 300, H: 250}},
		},
	}

	fromReq, err := FromRequest(req)
	require.NoError(t, err)

	fromMap, err := FromFieldMap(map[string]string{
		"domain": "newsite.com",
		"ft":     "d",
		"tid":    "ab101",
	}, FieldOrderSpec{"domain", "ft", "tid"})
	require.NoError(t, err)

	assert.Equal(t, fromMap, fromReq)
}

func TestFromRequest_ReflectsLiveObjectState(t *testing.T) {
	req := &openrtb.BidRequest{
		Source: &openrtb.Source{TID: "ab101", DSMap: "tid="},
	}

	before, err := FromRequest(req)
	require.NoError(t, err)

	req.Source.TID = "ab102"
	after, err := FromRequest(req)
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}

func TestFromRequest_UnknownFieldIsMalformedSpec(t *testing.T) {
	req := &openrtb.BidRequest{
		Source: &openrtb.Source{DSMap: "nonexistent="},
	}

	_, err := FromRequest(req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedFieldSpec)
}

func TestFromRequest_NoSource(t *testing.T) {
	_, err := FromRequest(&openrtb.BidRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedFieldSpec)

	_, err = FromRequest(nil)
	require.Error(t, err)
}

func TestCanonicalString_Escaping(t *testing.T) {
	got := CanonicalString(FieldOrderSpec{"a", "b"}, []string{"x&y=z", "50%"})
	assert.Equal(t, "a=x%26y%3Dz&b=50%25", got)
}
