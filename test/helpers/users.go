package helpers

import (
	"encoding/json"
	"net/http"
	"testing"
)

// AuthResult is the decoded register/login payload used by the flow tests.
type AuthResult struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

// RegisterStudent creates a student account through the public API and
// returns its token and identity.
func RegisterStudent(t *testing.T, ts *TestServer, name, email string) AuthResult {
	t.Helper()
	return register(t, ts, map[string]interface{}{
		"name":       name,
		"email":      email,
		"password":   "secret123",
		"role":       "student",
		"university": "Test University",
		"skills":     []string{"Go", "React"},
	})
}

// RegisterBusiness creates a business account through the public API.
func RegisterBusiness(t *testing.T, ts *TestServer, name, email string) AuthResult {
	t.Helper()
	return register(t, ts, map[string]interface{}{
		"name":         name,
		"email":        email,
		"password":     "secret123",
		"role":         "business",
		"businessName": name + " LLC",
		"industry":     "Software",
	})
}

func register(t *testing.T, ts *TestServer, body map[string]interface{}) AuthResult {
	t.Helper()

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", body)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("registration failed with %d: %s", res.StatusCode, bodyStr)
	}

	var result AuthResult
	if err := json.Unmarshal([]byte(bodyStr), &result); err != nil {
		t.Fatalf("failed to decode registration response: %v", err)
	}
	if result.Token == "" || result.User.ID == "" {
		t.Fatalf("registration response missing token or user: %s", bodyStr)
	}
	return result
}
