package feed

import (
	"context"
	"log"
	"time"

	"hotelbooking/internal/modules/booking"
)

// TripReader serves the trip snapshots pushed over the feed.
type TripReader interface {
	GetMyTrips(ctx context.Context, renterID int64, now time.Time) ([]booking.TripDetails, error)
}

type snapshotMessage struct {
	Type  string                `json:"type"`
	At    time.Time             `json:"at"`
	Trips []booking.TripDetails `json:"trips"`
}

// Service pushes a fresh trip snapshot to every connected user on a
// fixed interval, so upcoming/active/completed flips show up without a
// page reload.
type Service struct {
	hub      *Hub
	trips    TripReader
	interval time.Duration
}

func NewService(hub *Hub, trips TripReader, interval time.Duration) *Service {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	return &Service{hub: hub, trips: trips, interval: interval}
}

// Run blocks until ctx is cancelled.
func (s *Service) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.hub.Close()
			return
		case <-ticker.C:
			s.pushAll(ctx)
		}
	}
}

func (s *Service) pushAll(ctx context.Context) {
	now := time.Now()
	for _, userID := range s.hub.ConnectedUsers() {
		s.PushSnapshot(ctx, userID, now)
	}
}

// PushSnapshot sends the user's current trips. Called on connect and on
// every tick thereafter.
func (s *Service) PushSnapshot(ctx context.Context, userID int64, now time.Time) {
	trips, err := s.trips.GetMyTrips(ctx, userID, now)
	if err != nil {
		log.Printf("feed_snapshot_fail user_id=%d err=%v", userID, err)
		return
	}
	s.hub.SendToUser(userID, snapshotMessage{
		Type:  "trip_snapshot",
		At:    now,
		Trips: trips,
	})
}
