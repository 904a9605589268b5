package internal

import (
	"strconv"
	"time"
)

const (
	DateTimeLayout = "2006-01-02 15:04:05"
	DateLayout     = "2006-01-02"
)

func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

func FormatDateTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateTimeLayout)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}
