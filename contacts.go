package victorops

import (
	"context"
	"net/http"

	"github.com/tphakala/go-victorops/internal/api"
)

// ContactService provides operations on user contact methods.
type ContactService interface {
	// Create adds a contact method for a user. The contact's variant is
	// classified from its populated fields and selects the endpoint; a
	// contact with neither a phone number nor an email fails with
	// *InvalidInputError before any network call.
	Create(ctx context.Context, username string, contact *Contact, opts ...RequestOption) (*Contact, *RequestDetails, error)

	// Get retrieves a contact method by its external ID.
	Get(ctx context.Context, username, contactExtID string, contactType ContactType, opts ...RequestOption) (*Contact, *RequestDetails, error)

	// GetAll retrieves every contact method for a user, grouped by kind.
	GetAll(ctx context.Context, username string, opts ...RequestOption) (*AllContactResponse, *RequestDetails, error)

	// Delete removes a contact method by its external ID.
	Delete(ctx context.Context, username, contactExtID string, contactType ContactType, opts ...RequestOption) (*RequestDetails, error)

	// GetByID retrieves a contact method by its numeric ID, scanning the
	// list for the given contact type. A nil contact with a nil error means
	// no entry matched. The pair (ContactTypeDevice, 0) is the well-known
	// "All Devices" sentinel: it is synthesized locally with a successful
	// empty exchange and no network call is made.
	GetByID(ctx context.Context, username string, id int, contactType ContactType, opts ...RequestOption) (*Contact, *RequestDetails, error)
}

type contactService struct {
	transport *api.Transport
}

func newContactService(transport *api.Transport) *contactService {
	return &contactService{transport: transport}
}

func contactMethodsPath(username string, contactType ContactType) string {
	return "v1/user/" + encodeSegment(username) + "/contact-methods/" + contactType.EndpointNoun()
}

func (s *contactService) Create(ctx context.Context, username string, contact *Contact, opts ...RequestOption) (*Contact, *RequestDetails, error) {
	if contact == nil {
		return nil, nil, &InvalidInputError{Detail: "contact cannot be nil"}
	}
	contactType := contact.Type()
	if contactType == ContactTypeUndetermined {
		return nil, nil, &InvalidInputError{Detail: "contact must have either a phone number or an email"}
	}

	details, err := exec(ctx, s.transport, http.MethodPost, contactMethodsPath(username, contactType), contact, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	var created Contact
	if err := decodeInto(details, &created); err != nil {
		return nil, details, err
	}
	return &created, details, nil
}

func (s *contactService) Get(ctx context.Context, username, contactExtID string, contactType ContactType, opts ...RequestOption) (*Contact, *RequestDetails, error) {
	path := contactMethodsPath(username, contactType) + "/" + encodeSegment(contactExtID)
	details, err := exec(ctx, s.transport, http.MethodGet, path, nil, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	var contact Contact
	if err := decodeInto(details, &contact); err != nil {
		return nil, details, err
	}
	return &contact, details, nil
}

func (s *contactService) GetAll(ctx context.Context, username string, opts ...RequestOption) (*AllContactResponse, *RequestDetails, error) {
	path := "v1/user/" + encodeSegment(username) + "/contact-methods"
	details, err := exec(ctx, s.transport, http.MethodGet, path, nil, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	var all AllContactResponse
	if err := decodeInto(details, &all); err != nil {
		return nil, details, err
	}
	return &all, details, nil
}

func (s *contactService) Delete(ctx context.Context, username, contactExtID string, contactType ContactType, opts ...RequestOption) (*RequestDetails, error) {
	path := contactMethodsPath(username, contactType) + "/" + encodeSegment(contactExtID)
	return exec(ctx, s.transport, http.MethodDelete, path, nil, nil, opts...)
}

func (s *contactService) GetByID(ctx context.Context, username string, id int, contactType ContactType, opts ...RequestOption) (*Contact, *RequestDetails, error) {
	// Device ID 0 is the "All Devices" pseudo-contact. The API never stores
	// it, so it is synthesized here without a network exchange for
	// compatibility with callers that resolve notification targets.
	if contactType == ContactTypeDevice && id == 0 {
		contact := &Contact{
			Label: String("All Devices"),
			Rank:  Int(0),
			ID:    Int(0),
			Value: String("All Devices"),
		}
		return contact, &RequestDetails{StatusCode: http.StatusOK}, nil
	}

	details, err := exec(ctx, s.transport, http.MethodGet, contactMethodsPath(username, contactType), nil, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	var contacts GetAllContactResponse
	if err := decodeInto(details, &contacts); err != nil {
		return nil, details, err
	}

	for i := range contacts.ContactMethods {
		contact := &contacts.ContactMethods[i]
		if contact.ID != nil && *contact.ID == id {
			return contact, details, nil
		}
	}
	return nil, details, nil
}
