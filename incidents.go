package victorops

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tphakala/go-victorops/internal/api"
)

// IncidentService provides operations on VictorOps incidents.
type IncidentService interface {
	// Get retrieves a single incident by its number.
	Get(ctx context.Context, incidentID int, opts ...RequestOption) (*Incident, *RequestDetails, error)

	// List retrieves all current incidents.
	List(ctx context.Context, opts ...RequestOption) (*IncidentResponse, *RequestDetails, error)
}

type incidentService struct {
	transport *api.Transport
}

func newIncidentService(transport *api.Transport) *incidentService {
	return &incidentService{transport: transport}
}

func (s *incidentService) Get(ctx context.Context, incidentID int, opts ...RequestOption) (*Incident, *RequestDetails, error) {
	details, err := exec(ctx, s.transport, http.MethodGet, fmt.Sprintf("v1/incidents/%d", incidentID), nil, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	var incident Incident
	if err := decodeInto(details, &incident); err != nil {
		return nil, details, err
	}
	return &incident, details, nil
}

func (s *incidentService) List(ctx context.Context, opts ...RequestOption) (*IncidentResponse, *RequestDetails, error) {
	details, err := exec(ctx, s.transport, http.MethodGet, "v1/incidents", nil, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	var incidents IncidentResponse
	if err := decodeInto(details, &incidents); err != nil {
		return nil, details, err
	}
	return &incidents, details, nil
}
