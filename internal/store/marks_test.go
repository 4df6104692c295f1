package store

import (
	"context"
	"path/filepath"
	"testing"

	mdwerror "github.com/msto63/iadate/foundation/core/error"
	"github.com/msto63/iadate/pkg/iatime"
)

func newTestStore(t *testing.T) *SQLiteMarkStore {
	t.Helper()
	s, err := NewSQLiteMarkStore(Config{Path: filepath.Join(t.TempDir(), "nested", "marks.db")})
	if err != nil {
		t.Fatalf("NewSQLiteMarkStore() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	saved, err := s.Save(ctx, "  launch ", iatime.FromTicks(288))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved.ID == "" {
		t.Error("Save() should assign an ID")
	}
	if saved.Name != "launch" {
		t.Errorf("Save() name = %q, want trimmed", saved.Name)
	}

	byName, err := s.Get(ctx, "launch")
	if err != nil {
		t.Fatalf("Get(name) error = %v", err)
	}
	if byName.Ticks != 288 || byName.ID != saved.ID {
		t.Errorf("Get(name) = %+v", byName)
	}
	if !byName.Instant().Equal(iatime.FromTicks(288)) {
		t.Errorf("Instant() = %v", byName.Instant())
	}
	if !byName.CreatedAt.Equal(saved.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", byName.CreatedAt, saved.CreatedAt)
	}

	byID, err := s.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get(id) error = %v", err)
	}
	if byID.Name != "launch" {
		t.Errorf("Get(id) name = %q", byID.Name)
	}
}

func TestSaveValidation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Save(ctx, " ", iatime.FromTicks(0)); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("Save(empty) error = %v", err)
	}

	if _, err := s.Save(ctx, "dup", iatime.FromTicks(0)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := s.Save(ctx, "dup", iatime.FromTicks(1)); !mdwerror.HasCode(err, mdwerror.CodeDuplicateEntry) {
		t.Errorf("Save(duplicate) error = %v", err)
	}
}

func TestListOrdered(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for name, ticks := range map[string]int64{"late": 900, "early": -5, "middle": 12} {
		if _, err := s.Save(ctx, name, iatime.FromTicks(ticks)); err != nil {
			t.Fatalf("Save(%s) error = %v", name, err)
		}
	}

	marks, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []string{"early", "middle", "late"}
	if len(marks) != len(want) {
		t.Fatalf("List() returned %d marks, want %d", len(marks), len(want))
	}
	for i, name := range want {
		if marks[i].Name != name {
			t.Errorf("List()[%d] = %q, want %q", i, marks[i].Name, name)
		}
	}
}

func TestListEmpty(t *testing.T) {
	marks, err := newTestStore(t).List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(marks) != 0 {
		t.Errorf("List() = %d marks, want 0", len(marks))
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Save(ctx, "temp", iatime.FromTicks(3)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := s.Delete(ctx, "temp"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get(ctx, "temp"); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Get() after Delete() error = %v", err)
	}
	if err := s.Delete(ctx, "temp"); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Delete(missing) error = %v", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marks.db")
	ctx := context.Background()

	s, err := NewSQLiteMarkStore(Config{Path: path})
	if err != nil {
		t.Fatalf("NewSQLiteMarkStore() error = %v", err)
	}
	if _, err := s.Save(ctx, "keep", iatime.FromTicks(42)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	s.Close()

	reopened, err := NewSQLiteMarkStore(Config{Path: path})
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	m, err := reopened.Get(ctx, "keep")
	if err != nil || m.Ticks != 42 {
		t.Errorf("Get() after reopen = %+v, %v", m, err)
	}
}

func TestPing(t *testing.T) {
	s, err := NewSQLiteMarkStore(Config{Path: filepath.Join(t.TempDir(), "marks.db")})
	if err != nil {
		t.Fatalf("NewSQLiteMarkStore() error = %v", err)
	}
	if err := s.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}

	s.Close()
	err = s.Ping(context.Background())
	if !mdwerror.HasCode(err, mdwerror.CodeDatabaseError) {
		t.Errorf("Ping() after Close error = %v, want DATABASE_ERROR", err)
	}
}
