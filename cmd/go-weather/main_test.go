package main

import (
	"errors"
	"testing"
)

func TestOpenBrowser(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"opened", nil},
		{"no launcher", errors.New("exec: \"xdg-open\": executable file not found in $PATH")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := openURL
			defer func() { openURL = original }()

			var opened []string
			openURL = func(url string) error {
				opened = append(opened, url)
				return tt.err
			}

			openBrowser("http://127.0.0.1:8765/")

			if len(opened) != 1 || opened[0] != "http://127.0.0.1:8765/" {
				t.Errorf("expected one launch of the window URL, got %v", opened)
			}
		})
	}
}
