// Package storage issues signed upload and download URLs for the external
// blob store. URLs are HMAC-signed over the file id and expiry so the store
// can verify them without a callback.
package storage

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

const uploadURLTTL = 15 * time.Minute

var ErrBadSignature = errors.New("invalid or expired url signature")

// Config carries the signer settings, passed explicitly at construction.
type Config struct {
	BaseURL    string
	SigningKey string
}

// Signer generates and verifies signed blob URLs.
type Signer struct {
	cfg Config
	now func() time.Time
}

func New(cfg Config) *Signer {
	return &Signer{cfg: cfg, now: time.Now}
}

// UploadTarget is the result of GenerateUploadURL.
type UploadTarget struct {
	FileID string `json:"file_id"`
	URL    string `json:"url"`
}

// GenerateUploadURL mints a fresh file id and a PUT-able signed URL for it.
func (s *Signer) GenerateUploadURL(filename string) (*UploadTarget, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("generate file id: %w", err)
	}
	id := hex.EncodeToString(b)

	exp := s.now().Add(uploadURLTTL).Unix()
	return &UploadTarget{
		FileID: id,
		URL: fmt.Sprintf("%s/upload/%s?name=%s&exp=%d&sig=%s",
			s.cfg.BaseURL, id, url.QueryEscape(filename), exp, s.sign(id, exp)),
	}, nil
}

// ResolveURL returns a signed download URL for an existing file id.
func (s *Signer) ResolveURL(fileID string) string {
	exp := s.now().Add(uploadURLTTL).Unix()
	return fmt.Sprintf("%s/files/%s?exp=%d&sig=%s", s.cfg.BaseURL, fileID, exp, s.sign(fileID, exp))
}

// Verify checks a signature produced by this signer and that it has not expired.
func (s *Signer) Verify(fileID string, exp int64, sig string) error {
	if exp < s.now().Unix() {
		return ErrBadSignature
	}
	if !hmac.Equal([]byte(sig), []byte(s.sign(fileID, exp))) {
		return ErrBadSignature
	}
	return nil
}

func (s *Signer) sign(fileID string, exp int64) string {
	mac := hmac.New(sha256.New, []byte(s.cfg.SigningKey))
	mac.Write([]byte(fileID + ":" + strconv.FormatInt(exp, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}
