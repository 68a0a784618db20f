package sapi

import (
	"testing"
)

func TestNewProvider(t *testing.T) {
	p := NewProvider()
	if p == nil {
		t.Fatal("Expected NewProvider to return a provider")
	}
}
