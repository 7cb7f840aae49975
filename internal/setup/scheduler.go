package setup

import (
	"log"
	"time"

	"github.com/pennyflow/finance-backend/internal/service/recurring"
)

const defaultGenerationHour = "03:30"

// StartGenerationScheduler fires the catch-up engine once a day at the
// HH:MM UTC wall-clock time given by the GENERATION_HOUR environment
// variable. Runs are not mutually excluded with the HTTP trigger; the
// checkpoint updates keep concurrent runs from double generating.
func StartGenerationScheduler(engine *recurring.Engine, wallClock string) {
	if wallClock == "" {
		wallClock = defaultGenerationHour
	}

	at, err := time.Parse("15:04", wallClock)
	if err != nil {
		log.Printf("invalid GENERATION_HOUR %q, falling back to %s: %v", wallClock, defaultGenerationHour, err)
		at, _ = time.Parse("15:04", defaultGenerationHour)
	}

	go func() {
		for {
			now := time.Now().UTC()
			next := time.Date(now.Year(), now.Month(), now.Day(), at.Hour(), at.Minute(), 0, 0, time.UTC)
			if !next.After(now) {
				next = next.AddDate(0, 0, 1)
			}

			log.Println("next scheduled generation run at", next.Format(time.RFC3339))
			timer := time.NewTimer(next.Sub(now))
			<-timer.C

			engine.RunNow()
		}
	}()
}
