package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello world"},
		{"  Hello   World  ", "hello world"},
		{"HELLO\tWORLD", "hello world"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeTitle(tt.in))
	}
}

func TestTitleFromFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"01 - Morning Light.wav", "Morning Light"},
		{"audio/march/15 - Night Drive.mp3", "Night Drive"},
		{"No Prefix.flac", "No Prefix"},
		{"7 - Short Prefix.ogg", "Short Prefix"},
		{`02 - What<>Now.wav`, "WhatNow"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TitleFromFileName(tt.in))
	}
}

func TestNormalizeFileKey(t *testing.T) {
	// Same track stored with different extensions must share a key.
	assert.Equal(t, NormalizeFileKey("01 - Song.wav"), NormalizeFileKey("01 - Song.mp3"))
	assert.Equal(t, "song", NormalizeFileKey("01 - Song.wav"))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"Zero", 0, "0:00"},
		{"Negative", -5, "0:00"},
		{"UnderMinute", 59, "0:59"},
		{"ExactMinute", 60, "1:00"},
		{"TwoMinutesFive", 125, "2:05"},
		{"Fractional", 125.9, "2:05"},
		{"OverTenMinutes", 754, "12:34"},
		{"NaN", math.NaN(), "0:00"},
		{"Inf", math.Inf(1), "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.seconds))
		})
	}
}
