package verification

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/openrtb"
)

// SampledResult is the outcome of a sampled verification. Valid is
// meaningful only when Checked is true; an unchecked request was admitted
// without any cryptographic work.
type SampledResult struct {
	Checked bool
	Valid   bool
}

// SamplingService verifies a fixed percentage of the requests offered to
// it and waves the rest through unchecked. High-volume exchanges use this
// to bound verification cost; anything security-critical should verify
// every request with Service directly.
type SamplingService struct {
	svc     *Service
	percent int
	intn    func(n int) int
}

// NewSamplingService wraps svc so that only percent (0..100) of requests
// are verified.
func NewSamplingService(svc *Service, percent int) (*SamplingService, error) {
	if percent < 0 || percent > 100 {
		return nil, fmt.Errorf("sampling percentage %d out of range [0,100]", percent)
	}
	return &SamplingService{svc: svc, percent: percent, intn: rand.Intn}, nil
}

// VerifyRequest verifies req if it falls inside the sample, reporting
// whether a check happened and what it concluded.
func (s *SamplingService) VerifyRequest(ctx context.Context, req *openrtb.BidRequest, opts ...Option) (SampledResult, error) {
	if s.intn(100) >= s.percent {
		return SampledResult{Checked: false}, nil
	}
	ok, err := s.svc.VerifyRequest(ctx, req, opts...)
	if err != nil {
		return SampledResult{}, err
	}
	return SampledResult{Checked: true, Valid: ok}, nil
}
