package utils

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// NormalizeInput lowercases and trims a value typed by the user
func NormalizeInput(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// Title returns the value with the first letter of each word in upper case, e.g. new york -> New York
func Title(value string) string {
	return titleCaser.String(value)
}

// GetSignalChannel returns a channel that receive interrupt or termination signals
func GetSignalChannel() chan os.Signal {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	return signalChannel
}
