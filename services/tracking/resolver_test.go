package tracking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	bookingModel "github.com/Tawan151766/solva-travel-sub001/models/booking"
	customtourModel "github.com/Tawan151766/solva-travel-sub001/models/customtour"
	"github.com/Tawan151766/solva-travel-sub001/services/lifecycle"
)

// fakeStore serves records from maps and records what it was asked for.
type fakeStore struct {
	bookings map[string]*bookingModel.Booking
	requests map[string]*customtourModel.CustomTourRequest

	bookingCalls []string
	requestCalls []string
	failWith     error
}

func (s *fakeStore) FindBookingByIdentifier(identifier string) (*bookingModel.Booking, error) {
	s.bookingCalls = append(s.bookingCalls, identifier)
	if s.failWith != nil {
		return nil, s.failWith
	}
	if b, ok := s.bookings[identifier]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) FindRequestByIdentifier(identifier string) (*customtourModel.CustomTourRequest, error) {
	s.requestCalls = append(s.requestCalls, identifier)
	if s.failWith != nil {
		return nil, s.failWith
	}
	if r, ok := s.requests[identifier]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		bookings: map[string]*bookingModel.Booking{
			"BK1734567890123": {ID: 1, BookingNumber: "BK1734567890123"},
		},
		requests: map[string]*customtourModel.CustomTourRequest{
			"CTR-20241212-ABC12": {ID: 2, TrackingNumber: "CTR-20241212-ABC12"},
		},
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BK123", "BK123"},
		{"  BK123  ", "BK123"},
		{"#BK123", "BK123"},
		{" # BK123 ", "BK123"},
		{"#CTR-20241212-ABC12", "CTR-20241212-ABC12"},
		{"", ""},
		{"#", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in))
		// Normalizing twice changes nothing.
		assert.Equal(t, tt.want, Normalize(Normalize(tt.in)))
	}
}

func TestResolveBookingNumber(t *testing.T) {
	store := newFakeStore()
	resolver := NewResolver(store)

	res, err := resolver.Resolve("BK1734567890123")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.KindBooking, res.Kind)
	require.NotNil(t, res.Booking)
	assert.Equal(t, "BK1734567890123", res.Booking.BookingNumber)
	assert.Nil(t, res.CustomTourRequest)
}

func TestResolveTrackingNumber(t *testing.T) {
	store := newFakeStore()
	resolver := NewResolver(store)

	res, err := resolver.Resolve("CTR-20241212-ABC12")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.KindCustomTour, res.Kind)
	require.NotNil(t, res.CustomTourRequest)
	assert.Nil(t, res.Booking)

	// CTR numbers never start with BK, so bookings are only the fallback.
	assert.Equal(t, []string{"CTR-20241212-ABC12"}, store.requestCalls)
	assert.Empty(t, store.bookingCalls)
}

func TestResolveHashPrefixStripped(t *testing.T) {
	resolver := NewResolver(newFakeStore())

	res, err := resolver.Resolve("#BK1734567890123")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.KindBooking, res.Kind)
}

func TestResolveNotFound(t *testing.T) {
	resolver := NewResolver(newFakeStore())

	res, err := resolver.Resolve("ZZZ999")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveEmptyIdentifier(t *testing.T) {
	store := newFakeStore()
	resolver := NewResolver(store)

	_, err := resolver.Resolve("  # ")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, store.bookingCalls)
	assert.Empty(t, store.requestCalls)
}

// A BK-prefixed identifier checks bookings first; when both kinds somehow
// match, the booking wins.
func TestResolveBookingFirstOrdering(t *testing.T) {
	store := newFakeStore()
	store.bookings["BK555"] = &bookingModel.Booking{ID: 5, BookingNumber: "BK555"}
	store.requests["BK555"] = &customtourModel.CustomTourRequest{ID: 6, TrackingNumber: "BK555"}
	resolver := NewResolver(store)

	res, err := resolver.Resolve("BK555")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.KindBooking, res.Kind)
	assert.Empty(t, store.requestCalls)
}

// The prefix match is case-sensitive; "bk..." is treated as a request-first
// identifier and still falls through to bookings only on a request miss.
func TestResolvePrefixCaseSensitive(t *testing.T) {
	store := newFakeStore()
	store.requests["bk777"] = &customtourModel.CustomTourRequest{ID: 8, TrackingNumber: "bk777"}
	resolver := NewResolver(store)

	res, err := resolver.Resolve("bk777")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.KindCustomTour, res.Kind)
}

// A non-BK miss on requests falls through to bookings before giving up.
func TestResolveFallbackToBooking(t *testing.T) {
	store := newFakeStore()
	store.bookings["42"] = &bookingModel.Booking{ID: 42, BookingNumber: "BK42"}
	resolver := NewResolver(store)

	res, err := resolver.Resolve("42")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.KindBooking, res.Kind)
	assert.Equal(t, []string{"42"}, store.requestCalls)
	assert.Equal(t, []string{"42"}, store.bookingCalls)
}

// Infrastructure failures surface as-is instead of degrading to not-found.
func TestResolveStoreFailurePropagates(t *testing.T) {
	store := newFakeStore()
	store.failWith = errors.New("connection refused")
	resolver := NewResolver(store)

	_, err := resolver.Resolve("BK1734567890123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
