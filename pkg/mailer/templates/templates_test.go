package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBrand = Branding{CompanyName: "MedLink", AppName: "medlink-api", SupportURL: "https://support.example.com", LoginURL: "https://app.example.com/login"}

func TestRender_AllKnownTemplates(t *testing.T) {
	for _, name := range []string{RegistrationReceived, ProfileUpdated, PasswordChanged} {
		data := ToMap(NewBaseEmailData(testBrand, name, "Ada Lovelace", "ada@example.com"))
		subject, text, html, err := Render(name, data)
		require.NoError(t, err, name)
		assert.NotEmpty(t, subject, name)
		assert.Contains(t, text, "Ada Lovelace", name)
		assert.Contains(t, html, "Ada Lovelace", name)
		assert.True(t, Known(name))
	}
}

func TestRender_ProfileUpdatedListsChanges(t *testing.T) {
	data := NewProfileUpdatedData(testBrand, "Ada", "ada@example.com", []string{"bio", "city"},
		WithTime(time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)))

	subject, text, html, err := Render(ProfileUpdated, data)
	require.NoError(t, err)
	assert.Equal(t, "Your MedLink profile was updated", subject)
	assert.Contains(t, text, "- bio")
	assert.Contains(t, text, "- city")
	assert.Contains(t, text, "01 March 2025, 10:30")
	assert.Contains(t, html, "<li>city</li>")
}

func TestRender_EscapesHTML(t *testing.T) {
	data := NewRegistrationReceivedData(testBrand, "<script>x</script>", "ada@example.com")

	_, _, html, err := Render(RegistrationReceived, data)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, _, err := Render("login_otp", map[string]any{})
	assert.Error(t, err)
	assert.False(t, Known("login_otp"))
}
