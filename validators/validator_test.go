package validators

import (
	"strings"
	"testing"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/anonto42/tweetbox/backend/pkg/errorx"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	var e *errorx.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, errorx.Validation, e.Code)
	return e.Fields
}

func TestTweetContentLength(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.Validate(&models.CreateTweetRequest{Content: "hello"}))
	require.NoError(t, v.Validate(&models.CreateTweetRequest{Content: strings.Repeat("a", 140)}))
	// Length is counted in characters, not bytes.
	require.NoError(t, v.Validate(&models.CreateTweetRequest{Content: strings.Repeat("あ", 140)}))

	fields := fieldErrors(t, v.Validate(&models.CreateTweetRequest{Content: strings.Repeat("a", 141)}))
	require.Equal(t, "Ensure this value has at most 140 characters (it has 141).", fields["content"])

	fields = fieldErrors(t, v.Validate(&models.CreateTweetRequest{Content: ""}))
	require.Equal(t, "This field is required.", fields["content"])
}

func TestSignupRequest(t *testing.T) {
	v := NewValidator()

	valid := models.SignupRequest{
		Username:  "alice",
		Email:     "alice@example.com",
		Password1: "correct-horse",
		Password2: "correct-horse",
	}
	require.NoError(t, v.Validate(&valid))

	bad := valid
	bad.Username = "alice smith"
	bad.Email = "not-an-email"
	bad.Password2 = "different"
	fields := fieldErrors(t, v.Validate(&bad))
	require.Contains(t, fields["username"], "Enter a valid username")
	require.Equal(t, "Enter a valid email address.", fields["email"])
	require.Equal(t, "The two password fields didn't match.", fields["password2"])
}
