package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/varpad/catalog"
	"github.com/iw2rmb/varpad/slots"
	"github.com/iw2rmb/varpad/token"
)

const defaultText = "Hello , I am texting you from "

func newSession(text string) (*Session, *[]Event) {
	var events []Event
	s := New(Config{
		Text:    text,
		Catalog: catalog.Default(),
		OnChange: func(ev Event) {
			events = append(events, ev)
		},
	})
	return s, &events
}

func TestNew_StartsEditing(t *testing.T) {
	s, events := newSession(defaultText)

	assert.Equal(t, ModeEditing, s.Mode())
	assert.False(t, s.Placing())
	assert.Equal(t, defaultText, s.Text())
	assert.Zero(t, s.Version())
	assert.Len(t, s.Available(), 2)
	assert.False(t, s.CanReset())
	assert.Empty(t, *events)

	_, ok := s.LastChange()
	assert.False(t, ok)
}

func TestNew_CopiesCatalog(t *testing.T) {
	c := catalog.Default()
	s := New(Config{Catalog: c})
	c[0].Identifier = "CHANGED"
	assert.Equal(t, "COMPANY_NAME", s.Catalog()[0].Identifier)
}

func TestDrop_AtEnd(t *testing.T) {
	s, events := newSession(defaultText)

	require.True(t, s.Drop(7, true, "COMPANY_NAME"))
	assert.Equal(t, "Hello , I am texting you from {{COMPANY_NAME}}", s.Text())
	assert.True(t, s.CanReset())
	assert.Equal(t, catalog.Catalog{{Name: "User name", Identifier: "USER_NAME"}}, s.Available())

	require.Len(t, *events, 1)
	ev := (*events)[0]
	assert.Equal(t, ChangeInsert, ev.Change.Kind)
	assert.Equal(t, "COMPANY_NAME", ev.Change.Identifier)
	assert.Equal(t, 7, ev.Change.Slot)
	assert.Equal(t, defaultText, ev.Change.TextBefore)
	assert.Equal(t, s.Text(), ev.Text)
	assert.Equal(t, 1, ev.Available)
	assert.Equal(t, uint64(1), ev.Version)
}

func TestDrop_AtStart(t *testing.T) {
	s, _ := newSession("Welcome aboard")
	require.True(t, s.Drop(0, true, "USER_NAME"))
	assert.Equal(t, "{{USER_NAME}} Welcome aboard", s.Text())
}

func TestDrop_NoOps(t *testing.T) {
	tests := []struct {
		name string
		text string
		slot int
		ok   bool
		id   string
	}{
		{name: "no slot", text: "Welcome aboard", slot: 1, ok: false, id: "USER_NAME"},
		{name: "no slot with zero index", text: "Welcome aboard", slot: 0, ok: false, id: "COMPANY_NAME"},
		{name: "already used", text: "Hi {{USER_NAME}} there", slot: 0, ok: true, id: "USER_NAME"},
		{name: "invalid identifier", text: "Welcome aboard", slot: 0, ok: true, id: "user name"},
		{name: "empty identifier", text: "Welcome aboard", slot: 0, ok: true, id: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, events := newSession(tt.text)
			assert.False(t, s.Drop(tt.slot, tt.ok, tt.id))
			assert.Equal(t, tt.text, s.Text())
			assert.Zero(t, s.Version())
			assert.Empty(t, *events)
		})
	}
}

func TestDrop_UnknownIdentifierIsStillPlaced(t *testing.T) {
	s, _ := newSession("a b")
	require.True(t, s.Drop(1, true, "NOT_IN_CATALOG"))
	assert.Equal(t, "a {{NOT_IN_CATALOG}} b", s.Text())
	assert.Len(t, s.Available(), 2)
}

func TestDrop_ClampsSlot(t *testing.T) {
	s, _ := newSession("a b")
	require.True(t, s.Drop(99, true, "USER_NAME"))
	assert.Equal(t, "a b {{USER_NAME}}", s.Text())

	ch, ok := s.LastChange()
	require.True(t, ok)
	assert.Equal(t, 2, ch.Slot)
}

func TestDrop_AddsOneWord(t *testing.T) {
	for slot := 0; slot < slots.Count("one two three"); slot++ {
		s, _ := newSession("one two three")
		require.True(t, s.Drop(slot, true, "COMPANY_NAME"))
		words := s.Words()
		require.Len(t, words, 4)
		assert.Equal(t, "{{COMPANY_NAME}}", words[slot])
	}
}

func TestEdit(t *testing.T) {
	s, events := newSession("abc")

	assert.False(t, s.Edit("abc"), "same text is a no-op")
	assert.Empty(t, *events)

	require.True(t, s.Edit("Hi {{USER_NAME}}"))
	assert.Equal(t, "Hi {{USER_NAME}}", s.Text())
	assert.True(t, s.CanReset())
	require.Len(t, *events, 1)
	assert.Equal(t, ChangeEdit, (*events)[0].Change.Kind)
	assert.Equal(t, -1, (*events)[0].Change.Slot)
}

func TestEdit_RejectedWhilePlacing(t *testing.T) {
	s, _ := newSession("abc")
	require.True(t, s.GestureStart("USER_NAME"))
	assert.False(t, s.Edit("xyz"))
	assert.Equal(t, "abc", s.Text())
}

func TestResetVariables(t *testing.T) {
	s, events := newSession("Hi {{USER_NAME}}, welcome")

	require.True(t, s.CanReset())
	require.True(t, s.ResetVariables())
	assert.Equal(t, "Hi, welcome", s.Text())
	assert.False(t, s.CanReset())
	assert.Len(t, s.Available(), 2)
	require.Len(t, *events, 1)
	assert.Equal(t, ChangeReset, (*events)[0].Change.Kind)

	assert.False(t, s.ResetVariables(), "second reset has nothing to strip")
	assert.Len(t, *events, 1)
}

func TestResetVariables_DisabledWithoutTokens(t *testing.T) {
	s, events := newSession("  spaced   out  ")
	assert.False(t, s.ResetVariables())
	assert.Equal(t, "  spaced   out  ", s.Text(), "whitespace is only normalized when tokens are stripped")
	assert.Empty(t, *events)
}

func TestGesture_StartEnd(t *testing.T) {
	s, events := newSession("Welcome aboard")

	require.True(t, s.GestureStart("USER_NAME"))
	assert.Equal(t, ModePlacing, s.Mode())
	assert.Equal(t, "USER_NAME", s.Source())

	assert.False(t, s.GestureStart("COMPANY_NAME"), "no second gesture while placing")
	assert.Equal(t, "USER_NAME", s.Source())

	require.True(t, s.GestureEnd("USER_NAME", 0, true))
	assert.Equal(t, ModeEditing, s.Mode())
	assert.Empty(t, s.Source())
	assert.Equal(t, "{{USER_NAME}} Welcome aboard", s.Text())

	require.Len(t, *events, 3)
	assert.Equal(t, ChangeMode, (*events)[0].Change.Kind)
	assert.Equal(t, ModePlacing, (*events)[0].Mode)
	assert.Equal(t, ChangeMode, (*events)[1].Change.Kind)
	assert.Equal(t, ModeEditing, (*events)[1].Mode)
	assert.Equal(t, "USER_NAME", (*events)[1].Change.Identifier)
	assert.Equal(t, ChangeInsert, (*events)[2].Change.Kind)
}

func TestGesture_EndWithoutSlot(t *testing.T) {
	s, _ := newSession("Welcome aboard")
	require.True(t, s.GestureStart("USER_NAME"))

	assert.False(t, s.GestureEnd("USER_NAME", 0, false))
	assert.Equal(t, ModeEditing, s.Mode())
	assert.Equal(t, "Welcome aboard", s.Text())
}

func TestGesture_EndFallsBackToStartSource(t *testing.T) {
	s, _ := newSession("Welcome aboard")
	require.True(t, s.GestureStart("COMPANY_NAME"))
	require.True(t, s.GestureEnd("", 2, true))
	assert.Equal(t, "Welcome aboard {{COMPANY_NAME}}", s.Text())
}

func TestGesture_Cancel(t *testing.T) {
	s, events := newSession("Welcome aboard")

	s.GestureCancel()
	assert.Empty(t, *events, "cancel while editing is a no-op")

	require.True(t, s.GestureStart("USER_NAME"))
	s.GestureCancel()
	assert.Equal(t, ModeEditing, s.Mode())
	assert.Equal(t, "Welcome aboard", s.Text())
	assert.Len(t, *events, 2)
}

func TestGesture_EndWhileEditingIsIgnored(t *testing.T) {
	s, _ := newSession("Welcome aboard")
	assert.False(t, s.GestureEnd("USER_NAME", 0, true))
	assert.Equal(t, "Welcome aboard", s.Text())
}

func TestGesture_UsedVariableLeavesTextUnchanged(t *testing.T) {
	s, _ := newSession("Hi {{USER_NAME}}")
	require.True(t, s.GestureStart("USER_NAME"))
	assert.False(t, s.GestureEnd("USER_NAME", 0, true))
	assert.Equal(t, "Hi {{USER_NAME}}", s.Text())
}

func TestAvailable_NeverListsUsed(t *testing.T) {
	s, _ := newSession("{{COMPANY_NAME}} x")
	used := token.Identifiers(s.Text())
	for _, v := range s.Available() {
		assert.False(t, used.Has(v.Identifier))
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "editing", ModeEditing.String())
	assert.Equal(t, "placing", ModePlacing.String())
	assert.Equal(t, "insert", ChangeInsert.String())
}
