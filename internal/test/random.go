package test

import (
	"fmt"
	"math/rand/v2"

	"github.com/polkiloo/freshcart/internal/domain/model"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomASCIIString returns an alphanumeric string of length in [minLen, maxLen].
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	buf := make([]byte, minLen+rand.IntN(maxLen-minLen+1))
	for i := range buf {
		buf[i] = asciiLetters[rand.IntN(len(asciiLetters))]
	}
	return string(buf)
}

// RandomRegistration builds a unique sign-up form for the given role.
func RandomRegistration(role string) model.Registration {
	return model.Registration{
		Name:     role + "-" + RandomASCIIString(6, 10),
		Email:    fmt.Sprintf("%s@freshcart.test", RandomASCIIString(8, 12)),
		Password: RandomASCIIString(12, 24),
		Role:     role,
	}
}
