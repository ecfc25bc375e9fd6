package persistent

import (
	"context"
	crand "crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/coffeeconnect/coffeeconnect"
	"github.com/google/uuid"
	"github.com/tidwall/buntdb"
)

const sessionTTL = 30 * 24 * time.Hour // 30 days

type Session struct {
	Id             string    `json:"id"`
	UserId         string    `json:"userId"`
	Token          string    `json:"token"`
	Ip             string    `json:"ip"`
	UserAgent      string    `json:"userAgent"`
	LastAccessedAt time.Time `json:"lastAccessedAt"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

func (s Session) ToDomain() coffeeconnect.Session {
	return coffeeconnect.Session{
		Id:             s.Id,
		UserId:         coffeeconnect.UserId(s.UserId),
		Token:          s.Token,
		Ip:             s.Ip,
		UserAgent:      s.UserAgent,
		LastAccessedAt: s.LastAccessedAt,
		ExpiresAt:      s.ExpiresAt,
	}
}

type SessionStore struct {
	Buntdb *buntdb.DB
}

var _ coffeeconnect.SessionStore = (*SessionStore)(nil)

func (s *SessionStore) RegisterNew(ctx context.Context, userId coffeeconnect.UserId, ip string, userAgent string) (coffeeconnect.Session, error) {
	token, err := generateSessionToken()
	if err != nil {
		return coffeeconnect.Session{}, fmt.Errorf("generate token: %s", err)
	}
	id := uuid.New().String()

	session := Session{
		Id:             id,
		UserId:         string(userId),
		Token:          token,
		Ip:             ip,
		UserAgent:      userAgent,
		LastAccessedAt: time.Now().UTC(),
		ExpiresAt:      time.Now().UTC().Add(sessionTTL),
	}
	serializedSession, err := json.Marshal(&session)
	if err != nil {
		return coffeeconnect.Session{}, fmt.Errorf("session serialize: %s", err)
	}

	err = s.Buntdb.Update(func(tx *buntdb.Tx) error {
		expireOptions := &buntdb.SetOptions{Expires: true, TTL: sessionTTL}

		_, replaced, err := tx.Set("session_by_id:"+session.Id, session.Token, expireOptions)
		if err != nil {
			return fmt.Errorf("set map session id to auth token: %w", err)
		}
		if replaced {
			return fmt.Errorf("rarest uuid collision '%s' (not possible)", session.Id)
		}

		_, _, err = tx.Set("session:"+session.Token, string(serializedSession), expireOptions)
		if err != nil {
			return fmt.Errorf("set session: %w", err)
		}
		return nil
	})
	if err != nil {
		return coffeeconnect.Session{}, fmt.Errorf("bunt update: %s", err)
	}
	return session.ToDomain(), nil
}

func (s *SessionStore) AcquireAndRefresh(ctx context.Context, token string, ip string, userAgent string) (coffeeconnect.Session, error) {
	var session Session
	err := s.Buntdb.View(func(tx *buntdb.Tx) error {
		serializedSession, err := tx.Get("session:" + token)
		if err != nil {
			return fmt.Errorf("get serialized session: %w", err)
		}
		err = json.Unmarshal([]byte(serializedSession), &session)
		if err != nil {
			return fmt.Errorf("deserialize session: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, buntdb.ErrNotFound) {
			return coffeeconnect.Session{}, coffeeconnect.ErrSessionNotFound
		} else {
			return coffeeconnect.Session{}, fmt.Errorf("get session from buntdb: %s", err)
		}
	}

	session.Ip = ip
	session.UserAgent = userAgent
	session.LastAccessedAt = time.Now().UTC()
	session.ExpiresAt = time.Now().UTC().Add(sessionTTL)
	serializedSession, err := json.Marshal(session)
	if err != nil {
		return coffeeconnect.Session{}, fmt.Errorf("serialize session: %s", err)
	}

	err = s.Buntdb.Update(func(tx *buntdb.Tx) error {
		_, _, err = tx.Set("session:"+token, string(serializedSession),
			&buntdb.SetOptions{Expires: true, TTL: sessionTTL})
		if err != nil {
			return fmt.Errorf("store session: %w", err)
		}
		return nil
	})
	if err != nil {
		return coffeeconnect.Session{}, fmt.Errorf("refresh session in buntdb: %s", err)
	}
	return session.ToDomain(), nil
}

func (s *SessionStore) InvalidateByAuthToken(authToken string) error {
	err := s.Buntdb.Update(func(tx *buntdb.Tx) error {
		serializedSession, err := tx.Delete("session:" + authToken)
		if err != nil {
			return fmt.Errorf("delete session key: %w", err)
		}
		var session Session
		err = json.Unmarshal([]byte(serializedSession), &session)
		if err != nil {
			return fmt.Errorf("deserialize deleted session: %w", err)
		}
		_, err = tx.Delete("session_by_id:" + session.Id)
		if err != nil {
			return fmt.Errorf("delete session key: %w", err)
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("bunt update: %s", err)
	}
	return nil
}

func generateSessionToken() (string, error) {
	const tokenBytes = 60
	rawToken := make([]byte, tokenBytes)
	// crypto/rand - getentropy(2)
	bytesRead, err := crand.Read(rawToken)
	if err != nil {
		return "", fmt.Errorf("rand read: %w", err)
	}
	if bytesRead != tokenBytes {
		return "", fmt.Errorf("bytes read %d / required %d", bytesRead, tokenBytes)
	}
	dirtyToken := base64.StdEncoding.EncodeToString(rawToken)

	// replace all ":" with "_" so a token can never smuggle a key
	// separator into our buntdb queries
	token := strings.Replace(dirtyToken, ":", "_", -1)
	return token, nil
}
