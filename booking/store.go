package booking

import (
	"context"
	"sync"

	"stayhub/errors"
)

// RoomStore is the persistence collaborator the core reads snapshots from
// and commits booked ranges to. The core never talks to the database
// directly; whoever composes it injects an implementation.
type RoomStore interface {
	FetchRooms(ctx context.Context, hotelID uint) ([]RoomOption, error)
	CommitBooking(ctx context.Context, roomID uint, stay DateRange) error
	ReleaseBooking(ctx context.Context, roomID uint, stay DateRange) error
}

// CommitAll books the stay on every room concurrently and waits for all
// writes to finish. Failures are collected into a single AggregateError;
// rooms that were already booked are not rolled back.
func CommitAll(ctx context.Context, store RoomStore, roomIDs []uint, stay DateRange) error {
	return fanOut(roomIDs, func(roomID uint) error {
		return store.CommitBooking(ctx, roomID, stay)
	})
}

// ReleaseAll frees the stay on every room of a multi-room reservation,
// joining on all writes before reporting. One failed release fails the
// whole call.
func ReleaseAll(ctx context.Context, store RoomStore, roomIDs []uint, stay DateRange) error {
	return fanOut(roomIDs, func(roomID uint) error {
		return store.ReleaseBooking(ctx, roomID, stay)
	})
}

func fanOut(roomIDs []uint, write func(roomID uint) error) error {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var failed []error

	for _, roomID := range roomIDs {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			if err := write(id); err != nil {
				mu.Lock()
				failed = append(failed, err)
				mu.Unlock()
			}
		}(roomID)
	}
	wg.Wait()

	if len(failed) > 0 {
		return errors.NewAggregateError(len(roomIDs), failed)
	}
	return nil
}
