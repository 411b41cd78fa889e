package cache

import "testing"

func TestNewEmptyAddrDisablesCache(t *testing.T) {
	if client := New(""); client != nil {
		t.Error("expected nil client for empty address")
	}
}

func TestNewUnreachableAddrDisablesCache(t *testing.T) {
	if client := New("127.0.0.1:1"); client != nil {
		t.Error("expected nil client when redis is unreachable")
	}
}
