package auth

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "unit-test-secret-key-0123456789abcdef"

func TestCustomerTokenRoundTrip(t *testing.T) {
	token, err := IssueCustomerToken(testSecret, 42, time.Hour)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}
	customerID, err := ParseCustomerToken(testSecret, token)
	if err != nil {
		t.Fatalf("校验令牌失败: %v", err)
	}
	if customerID != 42 {
		t.Fatalf("顾客ID不一致, want 42, got %d", customerID)
	}
}

func TestParseCustomerTokenWrongSecret(t *testing.T) {
	token, err := IssueCustomerToken(testSecret, 7, time.Hour)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}
	if _, err := ParseCustomerToken("another-secret", token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("密钥不匹配时应返回 ErrInvalidToken, got %v", err)
	}
}

func TestParseCustomerTokenExpired(t *testing.T) {
	token, err := IssueCustomerToken(testSecret, 7, -time.Minute)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}
	if _, err := ParseCustomerToken(testSecret, token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("过期令牌应返回 ErrInvalidToken, got %v", err)
	}
}

func TestParseCustomerTokenZeroCustomerID(t *testing.T) {
	token, err := IssueCustomerToken(testSecret, 0, time.Hour)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}
	if _, err := ParseCustomerToken(testSecret, token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("顾客ID为 0 的令牌应被拒绝, got %v", err)
	}
}

func TestParseCustomerTokenGarbage(t *testing.T) {
	if _, err := ParseCustomerToken(testSecret, "not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("非法令牌应返回 ErrInvalidToken, got %v", err)
	}
}
