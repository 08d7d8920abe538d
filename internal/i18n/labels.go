// Package i18n looks up display strings for the bill summary. Keys are the
// English strings themselves, so a missing translation falls back to English.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Label is a display string key
type Label string

const (
	LabelTitle              Label = "Bill Splitter"
	LabelTotalAmount        Label = "Total Amount"
	LabelSessionStart       Label = "Session Start"
	LabelSessionEnd         Label = "Session End"
	LabelSessionDuration    Label = "Session Duration"
	LabelParticipants       Label = "Number of Participants"
	LabelBaseAmount         Label = "Base Amount"
	LabelSharedItems        Label = "Shared Items"
	LabelBreakdown          Label = "Individual Breakdown"
	LabelPlayers            Label = "Players"
	LabelConsumables        Label = "Consumable Items"
	LabelDarkMode           Label = "Dark mode"
	LabelLightMode          Label = "Light mode"
	LabelShare              Label = "Share"
	LabelWarnings           Label = "Warnings"
	LabelMinutes            Label = "%d minutes"
	LabelPlayerMinutes      Label = "%s (%d mins)"
	LabelIndividualItems    Label = "Individual items: %s"
	LabelConsumablesOverrun Label = "Consumables exceed the total amount"
	LabelNoAttendance       Label = "Nobody has any attended minutes"
	LabelOvernight          Label = "Session crosses midnight"
	LabelItemsIgnored       Label = "Some items are not counted by this split policy"
)

// Labels lists every key served by the labels endpoint
var Labels = []Label{
	LabelTitle,
	LabelTotalAmount,
	LabelSessionStart,
	LabelSessionEnd,
	LabelSessionDuration,
	LabelParticipants,
	LabelBaseAmount,
	LabelSharedItems,
	LabelBreakdown,
	LabelPlayers,
	LabelConsumables,
	LabelDarkMode,
	LabelLightMode,
	LabelShare,
	LabelWarnings,
	LabelConsumablesOverrun,
	LabelNoAttendance,
	LabelOvernight,
	LabelItemsIgnored,
}

var vietnamese = map[Label]string{
	LabelTitle:              "Chia hóa đơn",
	LabelTotalAmount:        "Tổng tiền",
	LabelSessionStart:       "Bắt đầu",
	LabelSessionEnd:         "Kết thúc",
	LabelSessionDuration:    "Thời lượng",
	LabelParticipants:       "Số người chơi",
	LabelBaseAmount:         "Tiền cơ bản",
	LabelSharedItems:        "Đồ dùng chung",
	LabelBreakdown:          "Chi tiết từng người",
	LabelPlayers:            "Người chơi",
	LabelConsumables:        "Đồ ăn uống",
	LabelDarkMode:           "Chế độ tối",
	LabelLightMode:          "Chế độ sáng",
	LabelShare:              "Phải trả",
	LabelWarnings:           "Lưu ý",
	LabelMinutes:            "%d phút",
	LabelPlayerMinutes:      "%s (%d phút)",
	LabelIndividualItems:    "Đồ riêng: %s",
	LabelConsumablesOverrun: "Tiền đồ ăn uống vượt quá tổng tiền",
	LabelNoAttendance:       "Chưa ai có thời gian chơi",
	LabelOvernight:          "Buổi chơi qua nửa đêm",
	LabelItemsIgnored:       "Một số món không được tính theo cách chia này",
}

// Supported lists the languages with a translation table, preferred first
var Supported = []language.Tag{language.English, language.Vietnamese}

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for label, text := range vietnamese {
		if err := b.SetString(language.Vietnamese, string(label), text); err != nil {
			panic(err)
		}
	}
	return b
}
