package auth

import (
	"errors"
	"os"
	"testing"

	"google.golang.org/genai"
)

func TestGetAPIKeyFromEnv(t *testing.T) {
	const testKey = "test-api-key-12345"

	originalKey := os.Getenv("GEMINI_API_KEY")
	defer os.Setenv("GEMINI_API_KEY", originalKey)

	os.Setenv("GEMINI_API_KEY", testKey)

	key, err := GetAPIKey()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if key != testKey {
		t.Errorf("expected key %q, got %q", testKey, key)
	}
}

func TestGetAPIKeyLegacyFallback(t *testing.T) {
	const testKey = "legacy-key-67890"

	originalKey := os.Getenv("GEMINI_API_KEY")
	originalLegacy := os.Getenv("GOOGLE_AI_API_KEY")
	defer func() {
		os.Setenv("GEMINI_API_KEY", originalKey)
		os.Setenv("GOOGLE_AI_API_KEY", originalLegacy)
	}()

	os.Unsetenv("GEMINI_API_KEY")
	os.Setenv("GOOGLE_AI_API_KEY", testKey)

	key, err := GetAPIKey()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if key != testKey {
		t.Errorf("expected key %q, got %q", testKey, key)
	}
}

func TestGetAPIKeyPriority(t *testing.T) {
	originalKey := os.Getenv("GEMINI_API_KEY")
	originalLegacy := os.Getenv("GOOGLE_AI_API_KEY")
	defer func() {
		os.Setenv("GEMINI_API_KEY", originalKey)
		os.Setenv("GOOGLE_AI_API_KEY", originalLegacy)
	}()

	os.Setenv("GEMINI_API_KEY", "primary")
	os.Setenv("GOOGLE_AI_API_KEY", "legacy")

	key, err := GetAPIKey()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if key != "primary" {
		t.Errorf("GEMINI_API_KEY should win over GOOGLE_AI_API_KEY, got %q", key)
	}
}

func TestGetAPIKeyNoSource(t *testing.T) {
	originalKey := os.Getenv("GEMINI_API_KEY")
	originalLegacy := os.Getenv("GOOGLE_AI_API_KEY")
	defer func() {
		os.Setenv("GEMINI_API_KEY", originalKey)
		os.Setenv("GOOGLE_AI_API_KEY", originalLegacy)
	}()

	os.Unsetenv("GEMINI_API_KEY")
	os.Unsetenv("GOOGLE_AI_API_KEY")

	_, err := GetAPIKey()
	if err == nil {
		t.Error("expected error when no API key source available")
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ValidationErrorType
	}{
		{"invalid key message", errors.New("API key not valid. Please pass a valid API key."), ErrTypeInvalidKey},
		{"permission denied", errors.New("permission denied"), ErrTypeInvalidKey},
		{"quota", errors.New("quota exceeded for this project"), ErrTypeQuotaExceeded},
		{"rate limit", errors.New("rate limit reached"), ErrTypeQuotaExceeded},
		{"timeout", errors.New("context deadline exceeded: timeout"), ErrTypeNetworkError},
		{"dns", errors.New("dial tcp: lookup example: no such host"), ErrTypeNetworkError},
		{"unknown", errors.New("something unexpected"), ErrTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.err)
			if got == nil {
				t.Fatal("classifyError returned nil for a non-nil error")
			}
			if got.Type != tt.want {
				t.Errorf("classifyError(%q).Type = %v, want %v", tt.err, got.Type, tt.want)
			}
		})
	}

	if classifyError(nil) != nil {
		t.Error("classifyError(nil) should return nil")
	}
}

func TestClassifyAPIError(t *testing.T) {
	tests := []struct {
		code int
		want ValidationErrorType
	}{
		{400, ErrTypeInvalidKey},
		{401, ErrTypeInvalidKey},
		{403, ErrTypeInvalidKey},
		{429, ErrTypeQuotaExceeded},
		{500, ErrTypeNetworkError},
		{503, ErrTypeNetworkError},
		{418, ErrTypeUnknown},
	}

	for _, tt := range tests {
		apiErr := &genai.APIError{Code: tt.code, Message: "test"}
		got := classifyAPIError(apiErr)
		if got.Type != tt.want {
			t.Errorf("classifyAPIError(code=%d).Type = %v, want %v", tt.code, got.Type, tt.want)
		}
	}
}

func TestValidationErrorUnwrap(t *testing.T) {
	inner := errors.New("inner cause")
	valErr := &ValidationError{Type: ErrTypeUnknown, Message: "wrapper", Err: inner}

	if !errors.Is(valErr, inner) {
		t.Error("ValidationError should unwrap to its inner error")
	}
	if valErr.Error() != "wrapper: inner cause" {
		t.Errorf("Error() = %q", valErr.Error())
	}

	bare := &ValidationError{Type: ErrTypeNoKey, Message: "no key"}
	if bare.Error() != "no key" {
		t.Errorf("Error() without inner error = %q", bare.Error())
	}
}
