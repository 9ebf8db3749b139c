package victorops

import (
	"context"
	"net/http"

	"github.com/tphakala/go-victorops/internal/api"
)

// UserService provides operations on VictorOps users.
type UserService interface {
	// Create creates a new user.
	Create(ctx context.Context, user *User, opts ...RequestOption) (*User, *RequestDetails, error)

	// Get retrieves a user by username.
	Get(ctx context.Context, username string, opts ...RequestOption) (*User, *RequestDetails, error)

	// Update modifies an existing user. The Username field must be set; it
	// identifies the user on the URL path.
	Update(ctx context.Context, user *User, opts ...RequestOption) (*User, *RequestDetails, error)

	// Delete removes a user, replacing them in schedules with replacementUser.
	Delete(ctx context.Context, username, replacementUser string, opts ...RequestOption) (*RequestDetails, error)

	// List retrieves all users in the v1 format. The v1 payload nests an
	// extra list layer; see UserList.
	List(ctx context.Context, opts ...RequestOption) (*UserList, *RequestDetails, error)

	// ListV2 retrieves all users in the v2 format.
	ListV2(ctx context.Context, opts ...RequestOption) (*UserListV2, *RequestDetails, error)

	// GetByEmail retrieves the users matching an email address.
	GetByEmail(ctx context.Context, email string, opts ...RequestOption) (*UserListV2, *RequestDetails, error)

	// DefaultEmailContactID returns the ID of the user's email contact
	// method labeled "Default". It fails with *NotFoundError when no such
	// contact method exists.
	DefaultEmailContactID(ctx context.Context, username string, opts ...RequestOption) (float64, *RequestDetails, error)
}

type userService struct {
	transport *api.Transport
}

func newUserService(transport *api.Transport) *userService {
	return &userService{transport: transport}
}

func (s *userService) Create(ctx context.Context, user *User, opts ...RequestOption) (*User, *RequestDetails, error) {
	details, err := exec(ctx, s.transport, http.MethodPost, "v1/user", user, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	var created User
	if err := decodeInto(details, &created); err != nil {
		return nil, details, err
	}
	return &created, details, nil
}

func (s *userService) Get(ctx context.Context, username string, opts ...RequestOption) (*User, *RequestDetails, error) {
	details, err := exec(ctx, s.transport, http.MethodGet, "v1/user/"+encodeSegment(username), nil, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	var user User
	if err := decodeInto(details, &user); err != nil {
		return nil, details, err
	}
	return &user, details, nil
}

func (s *userService) Update(ctx context.Context, user *User, opts ...RequestOption) (*User, *RequestDetails, error) {
	if user == nil || user.Username == nil {
		return nil, nil, &InvalidInputError{Detail: "username is required for user update"}
	}

	details, err := exec(ctx, s.transport, http.MethodPut, "v1/user/"+encodeSegment(*user.Username), user, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	var updated User
	if err := decodeInto(details, &updated); err != nil {
		return nil, details, err
	}
	return &updated, details, nil
}

func (s *userService) Delete(ctx context.Context, username, replacementUser string, opts ...RequestOption) (*RequestDetails, error) {
	body := map[string]string{"replacement": replacementUser}
	return exec(ctx, s.transport, http.MethodDelete, "v1/user/"+encodeSegment(username), body, nil, opts...)
}

func (s *userService) List(ctx context.Context, opts ...RequestOption) (*UserList, *RequestDetails, error) {
	details, err := exec(ctx, s.transport, http.MethodGet, "v1/user", nil, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	var users UserList
	if err := decodeInto(details, &users); err != nil {
		return nil, details, err
	}
	return &users, details, nil
}

func (s *userService) ListV2(ctx context.Context, opts ...RequestOption) (*UserListV2, *RequestDetails, error) {
	details, err := exec(ctx, s.transport, http.MethodGet, "v2/user", nil, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	var users UserListV2
	if err := decodeInto(details, &users); err != nil {
		return nil, details, err
	}
	return &users, details, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string, opts ...RequestOption) (*UserListV2, *RequestDetails, error) {
	query := map[string]string{"email": email}
	details, err := exec(ctx, s.transport, http.MethodGet, "v2/user", nil, query, opts...)
	if err != nil {
		return nil, nil, err
	}

	var users UserListV2
	if err := decodeInto(details, &users); err != nil {
		return nil, details, err
	}
	return &users, details, nil
}

func (s *userService) DefaultEmailContactID(ctx context.Context, username string, opts ...RequestOption) (float64, *RequestDetails, error) {
	details, err := exec(ctx, s.transport, http.MethodGet, "v1/user/"+encodeSegment(username)+"/contact-methods/emails", nil, nil, opts...)
	if err != nil {
		return 0, nil, err
	}

	var emails EmailsResponse
	if err := decodeInto(details, &emails); err != nil {
		return 0, details, err
	}

	for _, method := range emails.ContactMethods {
		if method.Label == "Default" {
			return method.ID, details, nil
		}
	}

	return 0, details, &NotFoundError{Resource: "default email contact"}
}
