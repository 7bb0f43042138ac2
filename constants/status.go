package constants

// User roles
const (
	RoleUser         = 0
	RoleSuperAdmin   = 1
	RoleHotelAdmin   = 2
	RoleReceptionist = 3
)

// User status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

// Reservation status
const (
	ReservationStatusPending   = 0
	ReservationStatusConfirmed = 1
	ReservationStatusCompleted = 2
	ReservationStatusCancelled = 3
)

// Hotel status
const (
	HotelStatusInactive = 0
	HotelStatusActive   = 1
)

// Room status
const (
	RoomStatusAvailable   = 1
	RoomStatusMaintenance = 2
)

// Booked-range status on room_statuses rows
const (
	RangeStatusBooked = 1
)
