package utils

import (
	"log"
	"time"
)

// TimeNowBRT returns the current time in the Brazilian market timezone.
func TimeNowBRT() time.Time {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		log.Fatal("Failed to load location", err)
	}
	return time.Now().In(loc)
}
