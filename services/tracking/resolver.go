package tracking

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	bookingModel "github.com/Tawan151766/solva-travel-sub001/models/booking"
	customtourModel "github.com/Tawan151766/solva-travel-sub001/models/customtour"
	"github.com/Tawan151766/solva-travel-sub001/services/lifecycle"
)

// BookingNumberPrefix starts every booking number. The match is
// case-sensitive on purpose: human-entered codes are not case-folded, so
// differently-cased identifiers can never collide.
const BookingNumberPrefix = "BK"

// ErrNotFound means no record of either kind matches the identifier. It is a
// recoverable, user-facing condition (404 with a "check your number" hint),
// never a server fault.
var ErrNotFound = errors.New("no booking or custom tour request matches this number")

// Resolution is the tagged result of a lookup: exactly one of the record
// fields is set, named by Kind.
type Resolution struct {
	Kind              lifecycle.Kind                    `json:"kind"`
	Booking           *bookingModel.Booking             `json:"booking,omitempty"`
	CustomTourRequest *customtourModel.CustomTourRequest `json:"custom_tour_request,omitempty"`
}

// Store is the read side the resolver needs. Implementations look a record
// up by its public number or its raw internal id and report a miss with
// gorm.ErrRecordNotFound.
type Store interface {
	FindBookingByIdentifier(identifier string) (*bookingModel.Booking, error)
	FindRequestByIdentifier(identifier string) (*customtourModel.CustomTourRequest, error)
}

// Resolver decides which record kind a user-supplied tracking string
// addresses and fetches it.
type Resolver struct {
	store Store
}

// NewResolver creates a resolver over the given store
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Normalize strips a single leading '#' and surrounding whitespace. Case is
// preserved for comparison against stored identifiers.
func Normalize(rawID string) string {
	identifier := strings.TrimSpace(rawID)
	identifier = strings.TrimPrefix(identifier, "#")
	return strings.TrimSpace(identifier)
}

// Resolve looks the identifier up against both record kinds with an ordered
// fallback. A BK-prefixed string checks bookings first; anything else checks
// custom tour requests first so a future prefix change cannot strand
// records. At most one record is returned; the first hit wins.
func (r *Resolver) Resolve(rawID string) (*Resolution, error) {
	identifier := Normalize(rawID)
	if identifier == "" {
		return nil, ErrNotFound
	}

	if strings.HasPrefix(identifier, BookingNumberPrefix) {
		return r.resolveOrdered(identifier, true)
	}
	return r.resolveOrdered(identifier, false)
}

func (r *Resolver) resolveOrdered(identifier string, bookingFirst bool) (*Resolution, error) {
	if bookingFirst {
		if res, err := r.tryBooking(identifier); err == nil {
			return res, nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if res, err := r.tryRequest(identifier); err == nil {
			return res, nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, ErrNotFound
	}

	if res, err := r.tryRequest(identifier); err == nil {
		return res, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if res, err := r.tryBooking(identifier); err == nil {
		return res, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return nil, ErrNotFound
}

func (r *Resolver) tryBooking(identifier string) (*Resolution, error) {
	b, err := r.store.FindBookingByIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	return &Resolution{Kind: lifecycle.KindBooking, Booking: b}, nil
}

func (r *Resolver) tryRequest(identifier string) (*Resolution, error) {
	req, err := r.store.FindRequestByIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	return &Resolution{Kind: lifecycle.KindCustomTour, CustomTourRequest: req}, nil
}
