package hibp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		password string
		prefix   string
		suffix   string
	}{
		{"password", "5BAA6", "1E4C9B93F3F0682250B6CF8331B7EE68FD2"},
		{"123456", "7C4A8", "D09CA3762AF61E59520943DC26494F8941B"},
		{"", "DA39A", "3EE5E6B4B0D3255BFEF95601890AFD80709"},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			prefix, suffix := Split(tt.password)
			assert.Equal(t, tt.prefix, prefix)
			assert.Equal(t, tt.suffix, suffix)
			assert.Len(t, prefix+suffix, 40)
		})
	}
}

func TestSplit_Deterministic(t *testing.T) {
	for _, password := range []string{"hunter2", "correct horse battery staple", "pässwörd", "\xff\xfe"} {
		p1, s1 := Split(password)
		p2, s2 := Split(password)
		assert.Equal(t, p1, p2)
		assert.Equal(t, s1, s2)
		assert.Len(t, p1, 5)
		assert.Len(t, s1, 35)
	}
}

func TestDigest_Uppercase(t *testing.T) {
	assert.Equal(t, "5BAA61E4C9B93F3F0682250B6CF8331B7EE68FD2", ModeSHA1.Digest("password"))
}

func TestNTLMSplit(t *testing.T) {
	assert.Equal(t, "8846F7EAEE8FB117AD06BDD830B7586C", ModeNTLM.Digest("password"))

	prefix, suffix := ModeNTLM.Split("password")
	assert.Equal(t, "8846F", prefix)
	assert.Equal(t, "7EAEE8FB117AD06BDD830B7586C", suffix)
	assert.Equal(t, 32, ModeNTLM.HashLength())
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("sha1")
	require.NoError(t, err)
	assert.Equal(t, ModeSHA1, m)

	m, err = ParseMode("ntlm")
	require.NoError(t, err)
	assert.Equal(t, ModeNTLM, m)

	_, err = ParseMode("md5")
	assert.Error(t, err)
}
