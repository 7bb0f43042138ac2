package jobs

import (
	"context"
	"log"
	"time"

	"stayhub/constants"
	"stayhub/models"
	"stayhub/services"
	"stayhub/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitCronJobs schedules the nightly maintenance sweeps: complete
// reservations whose checkout has passed and prune booked ranges that ended
// long ago.
func InitCronJobs(c *cron.Cron, db *gorm.DB, reservations *services.ReservationService) error {
	// Runs at midnight every day.
	_, err := c.AddFunc("0 0 * * *", func() {
		ctx := context.Background()

		completed, err := reservations.CompleteExpired(ctx)
		if err != nil {
			utils.LogError("Error completing expired reservations: %v", err)
		} else if completed > 0 {
			utils.LogInfo("Completed %d expired reservations", completed)
		}

		if err := pruneOldBookedRanges(db); err != nil {
			utils.LogError("Error pruning old booked ranges: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

// pruneOldBookedRanges drops booked intervals that ended more than a year
// ago; they no longer affect any availability query.
func pruneOldBookedRanges(db *gorm.DB) error {
	cutoff := time.Now().AddDate(-1, 0, 0)
	return db.Where("to_date < ? AND status = ?", cutoff, constants.RangeStatusBooked).
		Delete(&models.RoomStatus{}).Error
}
