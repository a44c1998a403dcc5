package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "./bookclub.db", want: "./bookclub.db?_busy_timeout=5000&_txlock=immediate"},
		{path: "club.db?cache=shared", want: "club.db?cache=shared&_busy_timeout=5000&_txlock=immediate"},
		{path: "club.db?_busy_timeout=100", want: "club.db?_busy_timeout=100&_txlock=immediate"},
		{path: "club.db?_txlock=deferred&_busy_timeout=1", want: "club.db?_txlock=deferred&_busy_timeout=1"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.path))
		})
	}
}
