package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MrEthical07/goAuthLocal/kvstore"
)

// User is the persisted session record: an account projected without its
// password.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// signedSlot wraps the signed token so the slot value stays JSON-shaped
// under every storage backend.
type signedSlot struct {
	Token string `json:"token"`
}

type sessionClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Store reads and writes the single session slot through the key-value
// collaborator.
type Store struct {
	store      kvstore.Store
	key        string
	signingKey []byte
}

// New creates a Store over the given collaborator and slot key. A
// non-empty signingKey switches the slot to signed records.
func New(store kvstore.Store, key string, signingKey []byte) *Store {
	return &Store{store: store, key: key, signingKey: signingKey}
}

// Load returns the persisted session user, or nil when the slot is
// absent. Deserialization and signature faults also read as nil: the
// store fails open to logged-out, never to an invalid partial user. Only
// I/O faults return an error, and callers degrade those to logged-out
// too.
func (s *Store) Load(ctx context.Context) (*User, error) {
	data, err := s.store.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	if len(s.signingKey) > 0 {
		return s.decodeSigned(data), nil
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, nil
	}
	if user.ID == "" {
		return nil, nil
	}
	return &user, nil
}

// Save overwrites the slot with user.
func (s *Store) Save(ctx context.Context, user User) error {
	var data []byte

	if len(s.signingKey) > 0 {
		token, err := s.encodeSigned(user)
		if err != nil {
			return fmt.Errorf("sign session: %w", err)
		}
		data, err = json.Marshal(signedSlot{Token: token})
		if err != nil {
			return fmt.Errorf("encode session: %w", err)
		}
	} else {
		var err error
		data, err = json.Marshal(user)
		if err != nil {
			return fmt.Errorf("encode session: %w", err)
		}
	}

	if err := s.store.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Clear removes the slot. Clearing an absent slot is not an error.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.key); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *Store) encodeSigned(user User) (string, error) {
	claims := sessionClaims{
		Name:  user.Name,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: user.ID,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
}

// decodeSigned returns nil on any verification failure. Tampering with
// the slot logs the user out instead of surfacing an error.
func (s *Store) decodeSigned(data []byte) *User {
	var slot signedSlot
	if err := json.Unmarshal(data, &slot); err != nil || slot.Token == "" {
		return nil
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(slot.Token, &claims, func(*jwt.Token) (any, error) {
		return s.signingKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil
	}
	if claims.Subject == "" {
		return nil
	}

	return &User{
		ID:    claims.Subject,
		Name:  claims.Name,
		Email: claims.Email,
	}
}
