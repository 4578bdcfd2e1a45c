package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// 顾客身份令牌。令牌由外部账号系统签发，本服务只负责校验并提取顾客ID；
// IssueCustomerToken 供测试与内部工具使用。

var ErrInvalidToken = errors.New("invalid customer token")

// CustomerClaims 顾客令牌声明
type CustomerClaims struct {
	CustomerID uint `json:"customer_id"`
	jwt.RegisteredClaims
}

// IssueCustomerToken 签发顾客令牌
func IssueCustomerToken(secret string, customerID uint, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := CustomerClaims{
		CustomerID: customerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", customerID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseCustomerToken 校验令牌并返回顾客ID
func ParseCustomerToken(secret, tokenString string) (uint, error) {
	claims := &CustomerClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid || claims.CustomerID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.CustomerID, nil
}
