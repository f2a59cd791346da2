/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package store provides functionality for managing edit session storage.
package store

import (
	"sync"
	"time"

	"github.com/asgardeo/flowcomposer/internal/loginflow/model"
	"github.com/asgardeo/flowcomposer/internal/system/config"
)

const defaultValidityPeriod = 30 * time.Minute

// SessionStoreInterface defines the interface for edit session storage.
type SessionStoreInterface interface {
	AddSession(session *model.EditSession)
	GetSession(sessionID string) (bool, *model.EditSession)
	UpdateSession(session *model.EditSession)
	ClearSession(sessionID string)
	ClearSessionStore()
}

// sessionStoreEntry represents an entry in the edit session store.
type sessionStoreEntry struct {
	session    *model.EditSession
	expiryTime time.Time
}

// SessionStore provides the edit session store functionality.
type SessionStore struct {
	sessionStore   map[string]sessionStoreEntry
	validityPeriod time.Duration
	mu             sync.RWMutex
}

var (
	instance *SessionStore
	once     sync.Once
)

// GetSessionStore returns a singleton instance of SessionStore.
func GetSessionStore() SessionStoreInterface {
	once.Do(func() {
		instance = &SessionStore{
			sessionStore:   make(map[string]sessionStoreEntry),
			validityPeriod: getValidityPeriod(),
		}
	})

	return instance
}

// newSessionStore creates a new SessionStore with the given validity period.
func newSessionStore(validityPeriod time.Duration) *SessionStore {
	return &SessionStore{
		sessionStore:   make(map[string]sessionStoreEntry),
		validityPeriod: validityPeriod,
	}
}

func getValidityPeriod() time.Duration {
	flowConfig := config.GetComposerRuntime().Config.Flow
	if flowConfig.SessionValidityPeriod > 0 {
		return time.Duration(flowConfig.SessionValidityPeriod) * time.Second
	}
	return defaultValidityPeriod
}

// AddSession adds an edit session to the session store. The store keeps its
// own copy, so later mutations of the caller's session do not leak in.
func (ss *SessionStore) AddSession(session *model.EditSession) {
	if session == nil || session.ID == "" {
		return
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()

	ss.sessionStore[session.ID] = sessionStoreEntry{
		session:    session.Clone(),
		expiryTime: time.Now().Add(ss.validityPeriod),
	}
}

// GetSession retrieves a copy of an edit session from the session store.
// Callers mutate their copy and write it back with UpdateSession; concurrent
// callers never share session state.
func (ss *SessionStore) GetSession(sessionID string) (bool, *model.EditSession) {
	if sessionID == "" {
		return false, nil
	}

	ss.mu.RLock()
	entry, exists := ss.sessionStore[sessionID]
	ss.mu.RUnlock()

	if exists {
		if time.Now().Before(entry.expiryTime) {
			return true, entry.session.Clone()
		}
		// Remove the expired entry.
		ss.mu.Lock()
		delete(ss.sessionStore, sessionID)
		ss.mu.Unlock()
	}

	return false, nil
}

// UpdateSession stores the session again, extending its validity period.
func (ss *SessionStore) UpdateSession(session *model.EditSession) {
	ss.AddSession(session)
}

// ClearSession removes a specific edit session from the session store.
func (ss *SessionStore) ClearSession(sessionID string) {
	if sessionID == "" {
		return
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()
	delete(ss.sessionStore, sessionID)
}

// ClearSessionStore removes all edit sessions from the session store.
func (ss *SessionStore) ClearSessionStore() {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	ss.sessionStore = make(map[string]sessionStoreEntry)
}
