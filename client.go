// Package victorops provides a Go client for the Splunk On-Call (VictorOps)
// public REST API.
//
// Basic usage:
//
//	client, err := victorops.NewClient(
//	    victorops.WithBaseURL("https://api.victorops.com"),
//	    victorops.WithAPIKey(apiID, apiKey),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	incident, _, err := client.Incidents.Get(ctx, 1234)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(*incident.EntityDisplayName)
package victorops

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tphakala/go-victorops/internal/api"
	"github.com/tphakala/go-victorops/internal/auth"
)

// Default configuration values.
const defaultTimeout = 30 * time.Second

// Client is the VictorOps API client.
type Client struct {
	// Incidents provides access to incident operations.
	Incidents IncidentService

	// Users provides access to user operations.
	Users UserService

	// Teams provides access to team operations.
	Teams TeamService

	// OnCall provides access to on-call schedule operations.
	OnCall OnCallService

	// Policies provides access to escalation policy operations.
	Policies EscalationPolicyService

	// RoutingKeys provides access to routing key operations.
	RoutingKeys RoutingKeyService

	// Contacts provides access to user contact method operations.
	Contacts ContactService

	transport *api.Transport
}

// NewClient creates a new VictorOps client with the given options.
func NewClient(opts ...ClientOption) (*Client, error) {
	cfg := &clientConfig{
		timeout: defaultTimeout,
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.baseURL == "" {
		return nil, ErrNoBaseURL
	}

	if cfg.apiID == "" || cfg.apiKey == "" {
		return nil, ErrNoCredentials
	}

	if !validHeaderValue(cfg.apiID) || !validHeaderValue(cfg.apiKey) {
		return nil, ErrInvalidHeaderValue
	}

	creds := &auth.Credentials{
		APIID:  cfg.apiID,
		APIKey: cfg.apiKey,
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.timeout,
		}
	}

	transport, err := api.NewTransport(cfg.baseURL, creds, httpClient)
	if err != nil {
		return nil, err
	}

	if cfg.userAgent != "" {
		transport.UserAgent = cfg.userAgent
	}
	transport.Logger = cfg.logger

	client := &Client{
		transport: transport,
	}

	// Initialize services
	client.Incidents = newIncidentService(transport)
	client.Users = newUserService(transport)
	client.Teams = newTeamService(transport)
	client.OnCall = newOnCallService(transport)
	client.Policies = newEscalationPolicyService(transport)
	client.RoutingKeys = newRoutingKeyService(transport)
	client.Contacts = newContactService(transport)

	return client, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.transport.BaseURL.String()
}
