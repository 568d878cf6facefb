package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 0 {
		return defaultValue
	}

	return result
}

// GenerateAccountRef creates the account reference sent with an STK push.
// Format: KIKAO-YYYYMMDD-HHMMSS-RANDOM
func GenerateAccountRef() string {
	now := time.Now()

	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("KIKAO-%s-%s-%s", datePart, timePart, randomPart)
}
