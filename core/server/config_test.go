package server_test

import (
	"testing"

	"devserve/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidSource(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   bool
	}{
		{"Local", server.SourceLocal, true},
		{"Bucket", server.SourceBucket, true},
		{"Invalid", "ftp", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Source: tt.source}
			assert.Equal(t, tt.want, c.IsValidSource())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		source  string
		wantErr bool
	}{
		{"Default", "8000", server.SourceLocal, false},
		{"Ephemeral", "0", server.SourceLocal, false},
		{"Bucket", "9000", server.SourceBucket, false},
		{"NotANumber", "http", server.SourceLocal, true},
		{"TooLarge", "70000", server.SourceLocal, true},
		{"Negative", "-1", server.SourceLocal, true},
		{"BadSource", "8000", "nfs", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := server.Config{Port: tt.port, Source: tt.source}.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_AddrAndURL(t *testing.T) {
	c := server.Config{Port: "8000"}
	assert.Equal(t, ":8000", c.Addr())
	assert.Equal(t, "http://localhost:8000", c.URL())

	c.Host = "127.0.0.1"
	assert.Equal(t, "127.0.0.1:8000", c.Addr())
}
