package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fieldforce/internal/domain/workforce"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store
}

func testIdentity() workforce.Identity {
	return workforce.Identity{
		ID:    "user-pm-001",
		Name:  "Kudzai Ndlovu",
		Email: "kudzai.ndlovu@thegapcompany.co.zw",
		Role:  workforce.RolePM,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	identity := testIdentity()

	if err := store.Save("mock-token-pm", identity); err != nil {
		t.Fatalf("save: %v", err)
	}

	sess, ok := store.Load()
	if !ok {
		t.Fatal("expected a session after save")
	}
	if sess.Token != "mock-token-pm" {
		t.Fatalf("token = %q", sess.Token)
	}
	if sess.Identity != identity {
		t.Fatalf("identity = %+v, want %+v", sess.Identity, identity)
	}
}

func TestLoadAbsentWhenNeverSaved(t *testing.T) {
	store := newTestStore(t)
	if _, ok := store.Load(); ok {
		t.Fatal("expected absent session")
	}
}

func TestPartialStateIsAbsent(t *testing.T) {
	tests := []struct {
		name   string
		record map[string]string
	}{
		{"token only", map[string]string{"accessToken": "tok"}},
		{"user only", map[string]string{"user": `{"id":"user-1","role":"PM"}`}},
		{"empty token", map[string]string{"accessToken": "", "user": `{"id":"user-1"}`}},
		{"unparsable user", map[string]string{"accessToken": "tok", "user": "{nope"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "session.json")
			payload, err := json.Marshal(tc.record)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if err := os.WriteFile(path, payload, 0o600); err != nil {
				t.Fatalf("write: %v", err)
			}
			store, err := Open(path)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			if _, ok := store.Load(); ok {
				t.Fatal("partial state must load as absent")
			}
		})
	}
}

func TestClearIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save("tok", testIdentity()); err != nil {
		t.Fatalf("save: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := store.Clear(); err != nil {
			t.Fatalf("clear #%d: %v", i+1, err)
		}
		if _, ok := store.Load(); ok {
			t.Fatalf("session present after clear #%d", i+1)
		}
	}
}

// The on-disk record must keep the original client storage shape: a token
// string under "accessToken" and the identity serialized as a JSON string
// under "user".
func TestPersistedKeysAreStorageCompatible(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Save("tok-123", testIdentity()); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	var record map[string]string
	if err := json.Unmarshal(raw, &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record["accessToken"] != "tok-123" {
		t.Fatalf("accessToken = %q", record["accessToken"])
	}
	var identity workforce.Identity
	if err := json.Unmarshal([]byte(record["user"]), &identity); err != nil {
		t.Fatalf("user key must hold serialized identity: %v", err)
	}
	if identity.Role != workforce.RolePM {
		t.Fatalf("role = %q", identity.Role)
	}
}

func TestWatchSignalsSaveAndClear(t *testing.T) {
	store := newTestStore(t)
	ch := store.Watch()

	if err := store.Save("tok", testIdentity()); err != nil {
		t.Fatalf("save: %v", err)
	}
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("no notification after save")
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("no notification after clear")
	}
}
