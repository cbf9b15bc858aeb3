package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectCommand(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "ssh localhost -p 23234"},
		{":2222", "ssh localhost -p 2222"},
		{"0.0.0.0:2222", "ssh localhost -p 2222"},
		{"[::]:2222", "ssh localhost -p 2222"},
		{"games.example.com:4000", "ssh games.example.com -p 4000"},
		{"127.0.0.1:22", "ssh 127.0.0.1"},
		{"not-an-address", "ssh not-an-address"},
	}

	for _, tc := range tests {
		t.Run(tc.addr, func(t *testing.T) {
			assert.Equal(t, tc.want, connectCommand(tc.addr))
		})
	}
}
