package i18n

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestTranslator_Text(t *testing.T) {
	en := New(language.English)
	vi := New(language.Vietnamese)

	assert.Equal(t, "Session Duration", en.Text(LabelSessionDuration))
	assert.Equal(t, "Thời lượng", vi.Text(LabelSessionDuration))

	assert.Equal(t, "90 minutes", en.Text(LabelMinutes, 90))
	assert.Equal(t, "90 phút", vi.Text(LabelMinutes, 90))

	assert.Equal(t, "Nam (45 mins)", en.Text(LabelPlayerMinutes, "Nam", 45))
	assert.Equal(t, "Nam (45 phút)", vi.Text(LabelPlayerMinutes, "Nam", 45))

	assert.Equal(t, "en", en.Lang())
	assert.Equal(t, "vi", vi.Lang())
}

func TestTranslator_All(t *testing.T) {
	labels := New(language.Vietnamese).All()
	assert.Len(t, labels, len(Labels))
	assert.Equal(t, "Tổng tiền", labels[string(LabelTotalAmount)])

	for _, label := range Labels {
		_, ok := vietnamese[label]
		assert.True(t, ok, "missing vietnamese text for %q", label)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name       string
		preference string
		want       language.Tag
	}{
		{name: "empty uses fallback", preference: "", want: language.English},
		{name: "bare code", preference: "vi", want: language.Vietnamese},
		{name: "regional header", preference: "vi-VN,vi;q=0.9,en;q=0.8", want: language.Vietnamese},
		{name: "english preferred", preference: "en-US,en;q=0.9", want: language.English},
		{name: "unsupported language", preference: "fr-FR", want: language.English},
		{name: "garbage", preference: "!!", want: language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.preference, language.English))
		})
	}
}

func TestParseTag(t *testing.T) {
	tag, err := ParseTag("vi")
	require.NoError(t, err)
	assert.Equal(t, language.Vietnamese, tag)

	_, err = ParseTag("not a locale")
	assert.Error(t, err)
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{amount: "0", want: "0k"},
		{amount: "166.6667", want: "167k"},
		{amount: "133.3333", want: "133k"},
		{amount: "1250", want: "1,250k"},
		{amount: "2.5", want: "3k"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.amount)), tt.amount)
	}
}
