package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/termsweeper/internal/mines"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil, []string{"HOME=/root", "TERM=xterm"})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		environ []string
		want    Config
	}{
		{
			name:    "environment",
			environ: []string{"MINES_SIZE=16", "MINES_MINES=40", "MINES_DEVELOPMENT=1"},
			want: Config{
				Size: 16, MineCount: 40, LogFile: "minesweeper.log",
				Development: true,
			},
		},
		{
			name: "arguments",
			args: []string{"size=5", "mines=3", "seed=42", "log_file="},
			want: Config{Size: 5, MineCount: 3, Seed: 42},
		},
		{
			name:    "arguments win",
			args:    []string{"SIZE=4"},
			environ: []string{"MINES_SIZE=16", "MINES_MINES=2"},
			want:    Config{Size: 4, MineCount: 2, LogFile: "minesweeper.log"},
		},
		{
			name: "unknown keys",
			args: []string{"colour=blue"},
			want: Default(),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := Load(test.args, test.environ)
			require.NoError(t, err)
			assert.Equal(t, test.want, cfg)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load([]string{"size"}, nil)
	assert.ErrorContains(t, err, "key=value")

	_, err = Load([]string{"size=big"}, nil)
	assert.Error(t, err)

	_, err = Load([]string{"size=0"}, nil)
	assert.ErrorIs(t, err, mines.ErrInvalidSize)

	_, err = Load([]string{"size=3", "mines=10"}, nil)
	assert.ErrorIs(t, err, mines.ErrInvalidMineCount)

	_, err = Load(nil, []string{"MINES_MINES=-1"})
	assert.ErrorIs(t, err, mines.ErrInvalidMineCount)
}

func TestFields(t *testing.T) {
	fields := Default().Fields()
	assert.Equal(t, 10, fields["size"])
	assert.Equal(t, 8, fields["mines"])
}
