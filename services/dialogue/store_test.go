package dialogue

import (
	"context"
	"fmt"
	"testing"

	"maxxtravel/models"
)

func TestMemoryStoreGetCreatesFreshSession(t *testing.T) {
	store := NewMemorySessionStore(0)

	session, err := store.Get(context.Background(), "abc")
	if err != nil {
		t.Fatal(err)
	}
	if session.SessionID != "abc" || session.State != models.StateStart {
		t.Fatalf("got %+v, want fresh session in start state", session)
	}
	if store.Len() != 0 {
		t.Fatalf("Get must not persist, store has %d entries", store.Len())
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemorySessionStore(0)
	ctx := context.Background()

	session := models.NewDialogueSession("abc")
	session.State = models.StateAwaitingDate
	session.PendingOrigin = "BOM"
	session.PendingDestination = "DXB"
	if err := store.Put(ctx, "abc", session); err != nil {
		t.Fatal(err)
	}

	got, err := store.Get(ctx, "abc")
	if err != nil {
		t.Fatal(err)
	}
	if got.State != models.StateAwaitingDate || got.PendingOrigin != "BOM" || got.PendingDestination != "DXB" {
		t.Fatalf("got %+v", got)
	}
}

func TestMemoryStoreCopiesOnGet(t *testing.T) {
	store := NewMemorySessionStore(0)
	ctx := context.Background()

	session := models.NewDialogueSession("abc")
	session.State = models.StateAwaitingInput
	if err := store.Put(ctx, "abc", session); err != nil {
		t.Fatal(err)
	}

	first, _ := store.Get(ctx, "abc")
	first.State = models.StateFlightFound
	first.PendingOrigin = "mutated"

	second, _ := store.Get(ctx, "abc")
	if second.State != models.StateAwaitingInput || second.PendingOrigin != "" {
		t.Fatalf("stored session mutated through a Get copy: %+v", second)
	}
}

func TestMemoryStoreEvictsOldestAtCap(t *testing.T) {
	store := NewMemorySessionStore(3)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		session := models.NewDialogueSession(fmt.Sprintf("s%d", i))
		session.State = models.StateAwaitingInput
		if err := store.Put(ctx, session.SessionID, session); err != nil {
			t.Fatal(err)
		}
	}

	if store.Len() != 3 {
		t.Fatalf("got %d entries, want 3", store.Len())
	}

	// s0 had the oldest write; a Get for it now starts over.
	got, _ := store.Get(ctx, "s0")
	if got.State != models.StateStart {
		t.Fatalf("expected s0 evicted, got state %q", got.State)
	}
	got, _ = store.Get(ctx, "s3")
	if got.State != models.StateAwaitingInput {
		t.Fatalf("expected s3 retained, got state %q", got.State)
	}
}

func TestMemoryStoreRewriteDoesNotEvict(t *testing.T) {
	store := NewMemorySessionStore(2)
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		session := models.NewDialogueSession(id)
		session.State = models.StateAwaitingInput
		if err := store.Put(ctx, id, session); err != nil {
			t.Fatal(err)
		}
	}
	// Updating an existing session at the cap must not evict anything.
	session := models.NewDialogueSession("a")
	session.State = models.StateFlightFound
	if err := store.Put(ctx, "a", session); err != nil {
		t.Fatal(err)
	}

	if store.Len() != 2 {
		t.Fatalf("got %d entries, want 2", store.Len())
	}
	got, _ := store.Get(ctx, "b")
	if got.State != models.StateAwaitingInput {
		t.Fatalf("b should survive a rewrite of a, got state %q", got.State)
	}
}
