package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-d", "sqlite", "-x", "junk"},
			allowed: []string{"-d"},
			want:    []string{"-d", "sqlite"},
		},
		{
			name:    "equals form",
			args:    []string{"--dsn=board.db", "-other=1"},
			allowed: []string{"--dsn"},
			want:    []string{"--dsn=board.db"},
		},
		{
			name:    "flag followed by another flag keeps no value",
			args:    []string{"-d", "-x"},
			allowed: []string{"-d"},
			want:    []string{"-d"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "b"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cli", "-c", "conf.json", "-d", "sqlite"}
	require.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"cli", "--config=other.json"}
	require.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"cli", "-d", "sqlite"}
	require.Equal(t, "", JsonConfigFlags())
}
