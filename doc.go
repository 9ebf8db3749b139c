// Package victorops provides a native Go client for the Splunk On-Call
// (VictorOps) public REST API.
//
// # Features
//
//   - Service-based architecture covering incidents, users, teams,
//     escalation policies, routing keys, contact methods, and on-call
//     schedules
//   - Typed errors for precise error handling
//   - Functional options for flexible configuration
//   - Raw exchange details returned alongside every typed result
//
// # Quick Start
//
//	client, err := victorops.NewClient(
//	    victorops.WithBaseURL("https://api.victorops.com"),
//	    victorops.WithAPIKey(apiID, apiKey),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// List open incidents
//	incidents, _, err := client.Incidents.List(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, inc := range incidents.Incidents {
//	    fmt.Println(*inc.EntityDisplayName)
//	}
//
// # Authentication
//
// Every request carries the X-VO-Api-Id and X-VO-Api-Key headers configured
// with [WithAPIKey]. There is no token refresh; the pair is passed on each
// exchange as-is.
//
// # Exchange Details
//
// Each operation returns a [RequestDetails] value alongside its typed
// payload: the HTTP status code, the exact request body text sent, and the
// raw response body text. Failed exchanges (status >= 400) return an
// [APIError] that carries the same details with the response body verbatim.
//
// # Error Handling
//
// Use errors.As to detect specific failure classes:
//
//	_, _, err := client.Users.Get(ctx, "someone")
//	var apiErr *victorops.APIError
//	if errors.As(err, &apiErr) {
//	    fmt.Printf("rejected with %d: %s\n", apiErr.StatusCode, apiErr.Message)
//	}
//
// [AuthenticationError] (401/403) also matches *APIError, so generic
// handling keeps working when credentials are the problem.
//
// # Logging
//
// Supply a zerolog logger with [WithLogger] to get one debug event per
// exchange. The default logger discards all output.
package victorops
