package utils

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
)

func ContainsString(targetString string, sliceOfStrings []string) bool {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return true
		}
	}
	return false
}

// IsAffirmative returns true if the answer is yes or y, ignoring case and surrounding spaces
func IsAffirmative(answer string) bool {
	return ContainsString(strings.ToLower(strings.TrimSpace(answer)), []string{"yes", "y"})
}

// GetSignalChannel returns a channel that receive interrupt or termination signals
func GetSignalChannel() chan os.Signal {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	return signalChannel
}
