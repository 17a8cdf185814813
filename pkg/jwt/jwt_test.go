package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/intertech/sales-automation-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "sales-automation-test"
	testExpMin = 60
)

func TestGenerateAndParseSession(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "Jane Agent", "jane@intertech.com", "agent", true, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.ParseSession(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, "Jane Agent", claims.Name)
	assert.Equal(t, "jane@intertech.com", claims.Email)
	assert.Equal(t, "agent", claims.Role)
	assert.True(t, claims.IsActive)
	assert.Equal(t, pkgjwt.PurposeSession, claims.Purpose)
}

func TestParse_ExpiredToken(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "Jane", "jane@intertech.com", "agent", true, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "expired token must not parse")
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "Jane", "jane@intertech.com", "agent", true, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("a-completely-different-secret", tok)
	assert.Error(t, err, "wrong secret must invalidate the token")
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "Jane", "jane@intertech.com", "agent", true, testIssuer, testExpMin)
	assert.Error(t, err)
}

// A password-reset token must never authenticate a request.
func TestParseSession_RejectsResetToken(t *testing.T) {
	tok, err := pkgjwt.GenerateReset(testSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.ParseSession(testSecret, tok)
	assert.Error(t, err)
}

func TestParseReset(t *testing.T) {
	tok, err := pkgjwt.GenerateReset(testSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err)

	claims, err := pkgjwt.ParseReset(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, pkgjwt.PurposePasswordReset, claims.Purpose)

	// And a session token is not a reset token.
	session, err := pkgjwt.Generate(testSecret, testUserID, "Jane", "jane@intertech.com", "agent", true, testIssuer, testExpMin)
	require.NoError(t, err)
	_, err = pkgjwt.ParseReset(testSecret, session)
	assert.Error(t, err)
}
