package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/med-cabinet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "med-cabinet"
	testAudience = "med-cabinet-api"
	testSignKey  = "test-sign-key"
)

var tokenUser = models.User{ID: 42, Email: "alice@example.com"}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testAudience, tokenUser, time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(42), token.UserID)
	assert.Equal(t, "alice@example.com", token.Email)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		audience string
		user     models.User
		duration time.Duration
		signKey  string
	}{
		{name: "missing user ID", issuer: testIssuer, audience: testAudience, user: models.User{Email: "a@x.com"}, duration: time.Hour, signKey: testSignKey},
		{name: "missing email", issuer: testIssuer, audience: testAudience, user: models.User{ID: 1}, duration: time.Hour, signKey: testSignKey},
		{name: "missing issuer", audience: testAudience, user: tokenUser, duration: time.Hour, signKey: testSignKey},
		{name: "missing audience", issuer: testIssuer, user: tokenUser, duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, audience: testAudience, user: tokenUser, signKey: testSignKey},
		{name: "missing sign key", issuer: testIssuer, audience: testAudience, user: tokenUser, duration: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.audience, tt.user, tt.duration, tt.signKey)
			require.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Roundtrip(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testAudience, tokenUser, time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer, testAudience)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "alice@example.com", parsed.Email)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testAudience, tokenUser, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "another-key", testIssuer, testAudience)
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken("other-service", testAudience, tokenUser, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer, testAudience)
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongAudience(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, "other-api", tokenUser, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer, testAudience)
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testAudience, tokenUser, time.Nanosecond, testSignKey)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer, testAudience)
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testSignKey, testIssuer, testAudience)
	require.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing token", header: "Bearer", wantErr: true},
		{name: "empty header", header: "", wantErr: true},
		{name: "extra spaces trimmed", header: "  Bearer token  ", want: "token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
