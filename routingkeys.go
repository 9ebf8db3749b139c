package victorops

import (
	"context"
	"net/http"

	"github.com/tphakala/go-victorops/internal/api"
)

// RoutingKeyService provides operations on routing keys.
type RoutingKeyService interface {
	// Create creates a new routing key.
	Create(ctx context.Context, key *RoutingKey, opts ...RequestOption) (*RoutingKey, *RequestDetails, error)

	// List retrieves all routing keys.
	List(ctx context.Context, opts ...RequestOption) (*RoutingKeyResponseList, *RequestDetails, error)

	// Get looks up a routing key by name. The API has no per-key endpoint,
	// so the full list is fetched and scanned for an exact match. A nil
	// result with a nil error means no key matched; a miss is not an error.
	Get(ctx context.Context, keyName string, opts ...RequestOption) (*RoutingKeyResponse, *RequestDetails, error)
}

type routingKeyService struct {
	transport *api.Transport
}

func newRoutingKeyService(transport *api.Transport) *routingKeyService {
	return &routingKeyService{transport: transport}
}

func (s *routingKeyService) Create(ctx context.Context, key *RoutingKey, opts ...RequestOption) (*RoutingKey, *RequestDetails, error) {
	details, err := exec(ctx, s.transport, http.MethodPost, "v1/org/routing-keys", key, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	var created RoutingKey
	if err := decodeInto(details, &created); err != nil {
		return nil, details, err
	}
	return &created, details, nil
}

func (s *routingKeyService) List(ctx context.Context, opts ...RequestOption) (*RoutingKeyResponseList, *RequestDetails, error) {
	details, err := exec(ctx, s.transport, http.MethodGet, "v1/org/routing-keys", nil, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	var list RoutingKeyResponseList
	if err := decodeInto(details, &list); err != nil {
		return nil, details, err
	}
	return &list, details, nil
}

func (s *routingKeyService) Get(ctx context.Context, keyName string, opts ...RequestOption) (*RoutingKeyResponse, *RequestDetails, error) {
	list, details, err := s.List(ctx, opts...)
	if err != nil {
		return nil, details, err
	}

	for i := range list.RoutingKeys {
		key := &list.RoutingKeys[i]
		// Entries without a routing key field are skipped, not errors.
		if key.RoutingKey != nil && *key.RoutingKey == keyName {
			return key, details, nil
		}
	}
	return nil, details, nil
}
