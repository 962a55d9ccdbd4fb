package storage

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SignedURLSigner mints and validates download tokens. A token binds a
// subject (export job, upload owner) to one stored file path so a leaked
// token cannot be replayed against other files.
type SignedURLSigner struct {
	secret []byte
	ttl    time.Duration
}

// NewSignedURLSigner builds a signer. A non-positive TTL defaults to a day.
func NewSignedURLSigner(secret string, ttl time.Duration) *SignedURLSigner {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SignedURLSigner{secret: []byte(secret), ttl: ttl}
}

// Generate signs a (subject, path) pair. Both halves are base64-encoded in
// the token so IDs and paths containing dots survive the split on parse.
func (s *SignedURLSigner) Generate(subject, relPath string) (string, time.Time, error) {
	if subject == "" || relPath == "" {
		return "", time.Time{}, fmt.Errorf("subject and relPath required")
	}
	if len(s.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("signing secret missing")
	}
	expiresAt := time.Now().Add(s.ttl)
	encSubject := base64.RawURLEncoding.EncodeToString([]byte(subject))
	encPath := base64.RawURLEncoding.EncodeToString([]byte(relPath))
	ts := strconv.FormatInt(expiresAt.Unix(), 10)

	sig := s.sign(encSubject, ts, encPath)
	token := strings.Join([]string{encSubject, ts, encPath, sig}, ".")
	return token, expiresAt, nil
}

// Parse validates a token and returns the embedded subject and path. With
// allowExpired the timestamp check is skipped; cleanup routines use that to
// identify files behind stale tokens.
func (s *SignedURLSigner) Parse(token string, allowExpired bool) (subject, relPath string, expiresAt time.Time, err error) {
	parts := strings.Split(token, ".")
	if len(parts) != 4 {
		return "", "", time.Time{}, fmt.Errorf("invalid token format")
	}
	encSubject, ts, encPath, sig := parts[0], parts[1], parts[2], parts[3]

	expected := s.sign(encSubject, ts, encPath)
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return "", "", time.Time{}, fmt.Errorf("invalid token signature")
	}

	rawSubject, err := base64.RawURLEncoding.DecodeString(encSubject)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("decode subject: %w", err)
	}
	rawPath, err := base64.RawURLEncoding.DecodeString(encPath)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("decode path: %w", err)
	}
	expUnix, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("invalid timestamp")
	}
	expiresAt = time.Unix(expUnix, 0)
	if !allowExpired && time.Now().After(expiresAt) {
		return "", "", time.Time{}, fmt.Errorf("token expired")
	}
	return string(rawSubject), string(rawPath), expiresAt, nil
}

func (s *SignedURLSigner) sign(encSubject, ts, encPath string) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s|%s|%s", encSubject, ts, encPath)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
