package victorops

import (
	"context"
	"net/http"

	"github.com/tphakala/go-victorops/internal/api"
)

// EscalationPolicyService provides operations on escalation policies.
type EscalationPolicyService interface {
	// Create creates a new escalation policy.
	Create(ctx context.Context, policy *EscalationPolicy, opts ...RequestOption) (*EscalationPolicy, *RequestDetails, error)

	// Get retrieves an escalation policy by its slug.
	Get(ctx context.Context, policyID string, opts ...RequestOption) (*EscalationPolicy, *RequestDetails, error)

	// List retrieves all escalation policies.
	List(ctx context.Context, opts ...RequestOption) (*EscalationPolicyList, *RequestDetails, error)

	// Delete removes an escalation policy.
	Delete(ctx context.Context, policyID string, opts ...RequestOption) (*RequestDetails, error)
}

type escalationPolicyService struct {
	transport *api.Transport
}

func newEscalationPolicyService(transport *api.Transport) *escalationPolicyService {
	return &escalationPolicyService{transport: transport}
}

func (s *escalationPolicyService) Create(ctx context.Context, policy *EscalationPolicy, opts ...RequestOption) (*EscalationPolicy, *RequestDetails, error) {
	details, err := exec(ctx, s.transport, http.MethodPost, "v1/policies", policy, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	var created EscalationPolicy
	if err := decodeInto(details, &created); err != nil {
		return nil, details, err
	}
	return &created, details, nil
}

func (s *escalationPolicyService) Get(ctx context.Context, policyID string, opts ...RequestOption) (*EscalationPolicy, *RequestDetails, error) {
	details, err := exec(ctx, s.transport, http.MethodGet, "v1/policies/"+encodeSegment(policyID), nil, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	var policy EscalationPolicy
	if err := decodeInto(details, &policy); err != nil {
		return nil, details, err
	}
	return &policy, details, nil
}

func (s *escalationPolicyService) List(ctx context.Context, opts ...RequestOption) (*EscalationPolicyList, *RequestDetails, error) {
	details, err := exec(ctx, s.transport, http.MethodGet, "v1/policies", nil, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	var list EscalationPolicyList
	if err := decodeInto(details, &list); err != nil {
		return nil, details, err
	}
	return &list, details, nil
}

func (s *escalationPolicyService) Delete(ctx context.Context, policyID string, opts ...RequestOption) (*RequestDetails, error) {
	return exec(ctx, s.transport, http.MethodDelete, "v1/policies/"+encodeSegment(policyID), nil, nil, opts...)
}
