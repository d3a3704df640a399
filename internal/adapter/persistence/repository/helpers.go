package repository

import (
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Currency amounts are persisted as strings so they round-trip through
// DynamoDB without float drift.
func decimalToString(d decimal.Decimal) string {
	return d.String()
}

func decimalFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func int64ToString(v int64) string {
	return strconv.FormatInt(v, 10)
}

func timeToString(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func timeFromString(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func timePtrToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return timeToString(*t)
}

func timePtrFromString(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := timeFromString(s)
	return &t
}
