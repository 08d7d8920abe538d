package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/nashbilliard/billsplit/internal/allocation"
	"github.com/nashbilliard/billsplit/internal/bill"
	"github.com/nashbilliard/billsplit/internal/database"
	"github.com/nashbilliard/billsplit/internal/preference"
)

// testApp wires an App backed by an in-memory DB for CLI tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db, err := database.Open(context.Background(), database.Memory)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &App{
		Bills: bill.NewService(allocation.NewPolicyFactory(), bill.Options{
			Roster:  []string{"Alice", "Bob", "Carol"},
			Catalog: []bill.CatalogEntry{{Name: "Coke"}, {Name: "Water"}},
		}),
		Preferences:   preference.NewService(preference.NewRepository(db), false),
		Locale:        language.English,
		IsInteractive: func() bool { return false },
	}
}

// execCmd runs the root command with args and returns combined output.
func execCmd(t *testing.T, app *App, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestSummaryCmd_Flags(t *testing.T) {
	app := testApp(t)

	out, err := execCmd(t, app, "", "summary",
		"--total", "300", "--start", "14:00", "--end", "15:00",
		"--player", "Alice", "--player", "Bob=14:30-15:00",
		"--owned", "Bob:Coke:2:25",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "BILL SPLITTER")
	assert.Contains(t, out, "60 minutes")
	assert.Contains(t, out, "Alice (60 mins)")
	assert.Contains(t, out, "167k")
	assert.Contains(t, out, "Bob (30 mins)")
	assert.Contains(t, out, "133k")
	assert.Contains(t, out, "Individual items: 50k")
	assert.NotContains(t, out, "WARNINGS")
}

func TestSummaryCmd_JSONAndLanguage(t *testing.T) {
	app := testApp(t)

	out, err := execCmd(t, app, "", "summary", "--json", "--lang", "vi", "--policy", "catalog",
		"--total", "360", "--start", "20:00", "--end", "22:00",
		"--player", "Alice", "--player", "Bob=21:00-22:00",
		"--item", "Water:4:10", "--item", "Coke:1:50:Bob",
	)
	require.NoError(t, err)

	var resp bill.SummaryResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "vi", resp.Locale)
	assert.Equal(t, string(allocation.PolicyCatalog), resp.Policy)
	require.Len(t, resp.Shares, 2)
	assert.Equal(t, "Alice (120 phút)", resp.Shares[0].Label)
	assert.Equal(t, "200k", resp.Shares[0].Display)
	assert.Equal(t, "160k", resp.Shares[1].Display)
}

func TestSummaryCmd_File(t *testing.T) {
	app := testApp(t)

	b := app.Bills.Template()
	b.SetTotalAmount(bill.ParseAmount("100"))
	b.SetSessionWindow("23:00", "01:00")
	require.NoError(t, b.SetParticipated("Carol", true))
	raw, err := json.Marshal(b)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "bill.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	out, err := execCmd(t, app, "", "summary", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Carol (120 mins)")
	assert.Contains(t, out, "100k")
	assert.Contains(t, out, "WARNINGS")
	assert.Contains(t, out, "Session crosses midnight")

	out, err = execCmd(t, app, string(raw), "summary", "-f", "-", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"bill_id": "`+b.ID+`"`)
}

func TestSummaryCmd_FileWithFlags(t *testing.T) {
	app := testApp(t)

	b := app.Bills.Template()
	b.SetTotalAmount(bill.ParseAmount("300"))
	b.SetSessionWindow("14:00", "15:00")
	require.NoError(t, b.SetParticipated("Alice", true))
	require.NoError(t, b.SetParticipated("Bob", true))
	require.NoError(t, b.AddParticipantConsumable("Bob", bill.ConsumableItem{Name: "Coke", Selected: true, Quantity: 1, CostPerUnit: bill.ParseAmount("50")}))
	raw, err := json.Marshal(b)
	require.NoError(t, err)

	out, err := execCmd(t, app, string(raw), "summary", "-f", "-", "--json",
		"--end", "16:00", "--owned", "Bob:Water:1:10", "--owned", "Bob:Bread:2:5",
	)
	require.NoError(t, err)

	var resp bill.SummaryResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 120, resp.SessionMinutes, "--end keeps the file's session start")
	require.Len(t, resp.Shares, 2)
	assert.Equal(t, "Bob (60 mins)", resp.Shares[1].Label, "times already on the file are kept")
	assert.Equal(t, "Individual items: 20k", resp.Shares[1].IndividualDisplay, "--owned replaces Bob's items from the file")
	assert.Equal(t, "20", resp.ConsumablesTotal.String())
}

func TestSummaryCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown player", []string{"summary", "--player", "Zed"}, bill.ErrParticipantNotFound},
		{"bad window", []string{"summary", "--player", "Alice=late"}, ErrInvalidInput},
		{"bad clock", []string{"summary", "--player", "Alice=25:00-26:00"}, ErrInvalidInput},
		{"bad item", []string{"summary", "--item", "Water"}, ErrInvalidInput},
		{"item for stranger", []string{"summary", "--item", "Water:1:10:Zed"}, bill.ErrUnknownParticipant},
		{"bad owned", []string{"summary", "--owned", "Alice:Coke"}, ErrInvalidInput},
		{"unknown policy", []string{"summary", "--player", "Alice", "--policy", "even"}, allocation.ErrUnknownPolicy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execCmd(t, testApp(t), "", tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSummaryCmd_BadFile(t *testing.T) {
	_, err := execCmd(t, testApp(t), "{nope", "summary", "--file", "-")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = execCmd(t, testApp(t), "", "summary", "--file", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSummaryCmd_NoInputNonInteractive(t *testing.T) {
	out, err := execCmd(t, testApp(t), "", "summary", "--json")
	require.NoError(t, err)

	var resp bill.SummaryResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Empty(t, resp.Shares)
	assert.Zero(t, resp.ParticipantCount)
}

func TestTemplateCmd(t *testing.T) {
	out, err := execCmd(t, testApp(t), "", "template")
	require.NoError(t, err)

	var b bill.Bill
	require.NoError(t, json.Unmarshal([]byte(out), &b))
	assert.NotEmpty(t, b.ID)
	require.Len(t, b.Participants, 3)
	assert.Equal(t, "Alice", b.Participants[0].Name)
	require.Len(t, b.Consumables, 2)
	assert.Equal(t, bill.AssignAll, b.Consumables[0].AssignedTo)
}

func TestThemeCmd(t *testing.T) {
	app := testApp(t)

	out, err := execCmd(t, app, "", "theme")
	require.NoError(t, err)
	assert.Equal(t, "light (Light mode)\n", out)

	out, err = execCmd(t, app, "", "theme", "set", "dark")
	require.NoError(t, err)
	assert.Equal(t, "dark (Dark mode)\n", out)

	out, err = execCmd(t, app, "", "theme", "get", "--lang", "vi")
	require.NoError(t, err)
	assert.Equal(t, "dark (Chế độ tối)\n", out)

	out, err = execCmd(t, app, "", "theme", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "light (Light mode)\n", out)

	_, err = execCmd(t, app, "", "theme", "set", "dark")
	require.NoError(t, err)
	out, err = execCmd(t, app, "", "theme", "reset")
	require.NoError(t, err)
	assert.Equal(t, "light (Light mode)\n", out)

	_, err = execCmd(t, app, "", "theme", "set", "sepia")
	assert.ErrorIs(t, err, preference.ErrUnknownTheme)
}
