package argmatch

import (
	"errors"
	"testing"

	"github.com/napalu/argmatch/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSetting(t *testing.T) {
	tests := []struct {
		in   string
		want Setting
	}{
		{"SubcommandRequired", SubcommandRequired},
		{"subcommand_required", SubcommandRequired},
		{"subcommand-required", SubcommandRequired},
		{"  PropagateGlobalValuesDown ", PropagateGlobalValuesDown},
		{"allow_negative_numbers", AllowNegativeNumbers},
		{"args-negate-subcommands", ArgsNegateSubcommands},
		{"GlobalVersion", GlobalVersion},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSetting(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseSetting("no_such_setting")
	assert.True(t, errors.Is(err, errs.ErrUnknownSetting))
}

func TestSettings(t *testing.T) {
	s := NewSettings(SubcommandRequired, NoBinaryName)
	assert.True(t, s.Has(SubcommandRequired))
	assert.True(t, s.Has(NoBinaryName))
	assert.False(t, s.Has(GlobalVersion))
	assert.Equal(t, "SubcommandRequired|NoBinaryName", s.String())

	s = s.Without(SubcommandRequired).With(GlobalVersion)
	assert.Equal(t, []Setting{NoBinaryName, GlobalVersion}, s.List())
	assert.Equal(t, "", Settings(0).String())
}

func TestSetting_String(t *testing.T) {
	for _, n := range settingNames {
		parsed, err := ParseSetting(n.setting.String())
		require.NoError(t, err)
		assert.Equal(t, n.setting, parsed)
	}
	assert.Equal(t, "Setting(unknown)", Setting(1<<31).String())
}
