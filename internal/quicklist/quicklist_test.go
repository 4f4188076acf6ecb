package quicklist

import (
	"context"
	"os"
	"testing"
	"time"

	"watchkeep/internal/testsupport"
)

func testBatcher(t *testing.T) *Batcher {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	return New(cfg)
}

func TestAddAndDrain(t *testing.T) {
	b := testBatcher(t)

	for _, id := range []string{"aaa", "bbb", "ccc"} {
		if err := b.Add(id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}

	ids, err := b.Drain()
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	if len(ids) != 3 || ids[0] != "aaa" || ids[1] != "bbb" || ids[2] != "ccc" {
		t.Fatalf("unexpected ids: %v", ids)
	}

	if _, err := os.Stat(b.path); !os.IsNotExist(err) {
		t.Fatal("batch file survived drain")
	}
}

func TestDrainIsOneShot(t *testing.T) {
	b := testBatcher(t)
	if err := b.Add("aaa"); err != nil {
		t.Fatalf("add: %v", err)
	}

	if ids, err := b.Drain(); err != nil || len(ids) != 1 {
		t.Fatalf("first drain: %v %v", ids, err)
	}
	if ids, err := b.Drain(); err != nil || len(ids) != 0 {
		t.Fatalf("second drain should be empty: %v %v", ids, err)
	}
}

func TestExpiredBatchIsDiscardedOnAccess(t *testing.T) {
	b := testBatcher(t)
	if err := b.Add("stale"); err != nil {
		t.Fatalf("add: %v", err)
	}

	b.now = func() time.Time { return time.Now().Add(b.ttl + time.Minute) }

	ids, err := b.Drain()
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expired batch still drained: %v", ids)
	}
	if _, err := os.Stat(b.path); !os.IsNotExist(err) {
		t.Fatal("expired batch file not deleted")
	}
}

func TestAddAfterExpiryStartsFreshBatch(t *testing.T) {
	b := testBatcher(t)
	if err := b.Add("stale"); err != nil {
		t.Fatalf("add: %v", err)
	}

	b.now = func() time.Time { return time.Now().Add(b.ttl + time.Minute) }
	if err := b.Add("fresh"); err != nil {
		t.Fatalf("add after expiry: %v", err)
	}

	data, err := os.ReadFile(b.path)
	if err != nil {
		t.Fatalf("read batch: %v", err)
	}
	if string(data) != "fresh\n" {
		t.Fatalf("stale id leaked into new batch: %q", data)
	}
}

func TestPlayEmptyBatchIsNoop(t *testing.T) {
	b := testBatcher(t)
	n, err := b.Play(context.Background())
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 triggered, got %d", n)
	}
}

func TestPlayWithoutTriggerFailsAndKeepsBatch(t *testing.T) {
	b := testBatcher(t)
	b.trigger = ""
	if err := b.Add("aaa"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := b.Play(context.Background()); err == nil {
		t.Fatal("expected error when remote play command is unset")
	}

	// The misconfiguration must not destroy the queued ids.
	b.trigger = "true"
	ids, err := b.Drain()
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	if len(ids) != 1 || ids[0] != "aaa" {
		t.Fatalf("batch lost after failed play: %v", ids)
	}
}

func TestPlayTriggersEachID(t *testing.T) {
	b := testBatcher(t)
	b.trigger = "true"
	for _, id := range []string{"aaa", "bbb"} {
		if err := b.Add(id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}

	n, err := b.Play(context.Background())
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 triggered, got %d", n)
	}
}

func TestPlayPassesTriggerArguments(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Playback.RemotePlayCommand = "sh"
	cfg.Playback.RemotePlayArgs = []string{"-c", "exit 0"}
	b := New(cfg)

	if err := b.Add("aaa"); err != nil {
		t.Fatalf("add: %v", err)
	}
	n, err := b.Play(context.Background())
	if err != nil {
		t.Fatalf("play with arguments: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 triggered, got %d", n)
	}
	if len(b.triggerArgs) != 2 {
		t.Fatalf("configured arguments not carried: %v", b.triggerArgs)
	}
}
