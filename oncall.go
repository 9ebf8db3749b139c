package victorops

import (
	"context"
	"net/http"
	"strconv"

	"github.com/tphakala/go-victorops/internal/api"
)

// OnCallService provides access to on-call schedules and takes.
type OnCallService interface {
	// TeamSchedule retrieves a team's on-call schedule. daysForward is the
	// number of days of schedule to return, daysSkip the number of days to
	// skip from today, and step the schedule interval.
	TeamSchedule(ctx context.Context, teamSlug string, daysForward, daysSkip, step int, opts ...RequestOption) (*APITeamSchedule, *RequestDetails, error)

	// UserSchedule retrieves a user's on-call schedule across their teams.
	UserSchedule(ctx context.Context, username string, daysForward, daysSkip, step int, opts ...RequestOption) (*APIUserSchedule, *RequestDetails, error)

	// TakeForTeam moves on-call duty between users on a team's schedule.
	TakeForTeam(ctx context.Context, teamSlug string, take *TakeRequest, opts ...RequestOption) (*TakeResponse, *RequestDetails, error)

	// TakeForPolicy moves on-call duty between users on one escalation
	// policy's schedule.
	TakeForPolicy(ctx context.Context, policySlug string, take *TakeRequest, opts ...RequestOption) (*TakeResponse, *RequestDetails, error)
}

type onCallService struct {
	transport *api.Transport
}

func newOnCallService(transport *api.Transport) *onCallService {
	return &onCallService{transport: transport}
}

func scheduleQuery(daysForward, daysSkip, step int) map[string]string {
	return map[string]string{
		"daysForward": strconv.Itoa(daysForward),
		"daysSkip":    strconv.Itoa(daysSkip),
		"step":        strconv.Itoa(step),
	}
}

func (s *onCallService) TeamSchedule(ctx context.Context, teamSlug string, daysForward, daysSkip, step int, opts ...RequestOption) (*APITeamSchedule, *RequestDetails, error) {
	path := "v2/team/" + encodeSegment(teamSlug) + "/oncall/schedule"
	details, err := exec(ctx, s.transport, http.MethodGet, path, nil, scheduleQuery(daysForward, daysSkip, step), opts...)
	if err != nil {
		return nil, nil, err
	}

	var schedule APITeamSchedule
	if err := decodeInto(details, &schedule); err != nil {
		return nil, details, err
	}
	return &schedule, details, nil
}

func (s *onCallService) UserSchedule(ctx context.Context, username string, daysForward, daysSkip, step int, opts ...RequestOption) (*APIUserSchedule, *RequestDetails, error) {
	path := "v2/user/" + encodeSegment(username) + "/oncall/schedule"
	details, err := exec(ctx, s.transport, http.MethodGet, path, nil, scheduleQuery(daysForward, daysSkip, step), opts...)
	if err != nil {
		return nil, nil, err
	}

	var schedule APIUserSchedule
	if err := decodeInto(details, &schedule); err != nil {
		return nil, details, err
	}
	return &schedule, details, nil
}

func (s *onCallService) TakeForTeam(ctx context.Context, teamSlug string, take *TakeRequest, opts ...RequestOption) (*TakeResponse, *RequestDetails, error) {
	path := "v1/team/" + encodeSegment(teamSlug) + "/oncall/user"
	details, err := exec(ctx, s.transport, http.MethodPatch, path, take, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	var resp TakeResponse
	if err := decodeInto(details, &resp); err != nil {
		return nil, details, err
	}
	return &resp, details, nil
}

func (s *onCallService) TakeForPolicy(ctx context.Context, policySlug string, take *TakeRequest, opts ...RequestOption) (*TakeResponse, *RequestDetails, error) {
	path := "v1/policies/" + encodeSegment(policySlug) + "/oncall/user"
	details, err := exec(ctx, s.transport, http.MethodPatch, path, take, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	var resp TakeResponse
	if err := decodeInto(details, &resp); err != nil {
		return nil, details, err
	}
	return &resp, details, nil
}
