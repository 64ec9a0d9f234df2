package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrSecretRequired — подписывающий секрет не задан.
	ErrSecretRequired = errors.New("signing secret is required")
	// ErrTokenInvalid — токен не прошёл проверку подписи или срока действия.
	ErrTokenInvalid = errors.New("token is invalid")
)

// Issuer выпускает и проверяет подписанные токены доступа (HS256).
// При ротации секрета проверка принимает и предыдущий секрет, чтобы
// уже выданные токены дожили свой срок.
type Issuer struct {
	secret   []byte
	previous []byte
	ttl      time.Duration

	// now подменяется в тестах.
	now func() time.Time
}

// NewIssuer конструирует Issuer. previousSecret может быть пустым,
// если ротация не идёт.
func NewIssuer(secret, previousSecret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, ErrSecretRequired
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	issuer := &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	if previousSecret != "" {
		issuer.previous = []byte(previousSecret)
	}
	return issuer, nil
}

// Issue выпускает токен для пользователя и возвращает срок его действия.
func (i *Issuer) Issue(userID string) (string, time.Time, error) {
	now := i.now().UTC()
	expiresAt := now.Add(i.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify проверяет токен и возвращает идентификатор пользователя.
// Сначала пробуется текущий секрет, затем предыдущий.
func (i *Issuer) Verify(tokenString string) (string, error) {
	userID, err := i.verifyWith(tokenString, i.secret)
	if err == nil {
		return userID, nil
	}
	if i.previous != nil {
		if userID, prevErr := i.verifyWith(tokenString, i.previous); prevErr == nil {
			return userID, nil
		}
	}
	return "", ErrTokenInvalid
}

func (i *Issuer) verifyWith(tokenString string, secret []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return i.now() }),
	)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}
