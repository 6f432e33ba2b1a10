package services

import (
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
)

const dateLayout = "2006-01-02"

// ValidateDate accepts exactly YYYY-MM-DD: ten characters, '-' at positions
// 4 and 7, and a real calendar date.
func ValidateDate(date string) error {
	if len(date) != len(dateLayout) || date[4] != '-' || date[7] != '-' {
		return common.ErrInvalidDate
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return common.ErrInvalidDate
	}
	return nil
}
