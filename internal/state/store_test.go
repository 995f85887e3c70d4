package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/clipdeck/internal/clip"
)

func TestStore_CommitBaselineAndSnapshotClone(t *testing.T) {
	var s Store

	list := clip.List{clip.Text("a"), clip.Text("b")}
	marks := clip.Marks{true, false}
	s.CommitBaseline(list, marks)

	// Mutating the caller's slices must not reach the store.
	list[0] = clip.Text("zzz")
	marks[0] = false

	snap := s.Snapshot()
	if len(snap.Baseline) != 2 || snap.Baseline[0].Data != "a" {
		t.Fatalf("snapshot baseline = %#v, want [a b]", snap.Baseline)
	}
	if !snap.BaselineMarks.IsNew(0) {
		t.Fatalf("snapshot marks = %#v, want first entry marked", snap.BaselineMarks)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Baseline[0] = clip.Text("999")
	got, _ := s.Baseline()
	if got[0].Data != "a" {
		t.Fatalf("Baseline should clone list; got %q want a", got[0].Data)
	}
}

func TestStore_CommitReplacesWholesale(t *testing.T) {
	var s Store
	s.CommitBaseline(clip.List{clip.Text("a"), clip.Text("b")}, nil)
	s.CommitBaseline(clip.List{clip.Text("c")}, clip.Marks{true})

	got, marks := s.Baseline()
	if len(got) != 1 || got[0].Data != "c" || !marks.IsNew(0) {
		t.Fatalf("baseline = %#v marks = %#v, want [c] [true]", got, marks)
	}
}

func TestStore_SearchLifecycle(t *testing.T) {
	var s Store
	s.CommitBaseline(clip.List{clip.Text("a")}, nil)

	if s.SearchActive() {
		t.Fatal("SearchActive() = true before EnterSearch")
	}

	s.EnterSearch("foo")
	s.SetSearchResult(nil)
	search := s.Search()
	if !search.Active || search.Query != "foo" {
		t.Fatalf("Search() = %#v, want active foo", search)
	}
	if search.LastResult == nil || len(search.LastResult) != 0 {
		t.Fatalf("LastResult = %#v, want empty non-nil list", search.LastResult)
	}

	s.EnterSearch("food")
	if got := s.Search(); got.LastResult == nil {
		t.Fatal("EnterSearch should keep the last result while refining")
	}

	s.ExitSearch()
	search = s.Search()
	if search.Active || search.Query != "" || search.LastResult != nil {
		t.Fatalf("Search() after exit = %#v, want zero value", search)
	}

	base, _ := s.Baseline()
	if len(base) != 1 || base[0].Data != "a" {
		t.Fatalf("baseline changed by search: %#v", base)
	}
}

func TestStore_RecordPollErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.CommitBaseline(clip.List{clip.Text("a")}, nil)
	s.RecordPoll(nil)

	before := time.Now()
	origErr := errors.New("boom")
	s.RecordPoll(origErr)

	snap := s.Snapshot()
	if len(snap.Baseline) != 1 || snap.Baseline[0].Data != "a" {
		t.Fatalf("baseline changed on error: got %#v", snap.Baseline)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	if snap := s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("fresh store = %d failures offline=%v, want 0 false", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.RecordPoll(errors.New("fail 1"))
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 1 || snap.IsOffline() {
		t.Fatalf("after 1 failure = %d offline=%v, want 1 false", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.RecordPoll(errors.New("fail 2"))
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 2 || !snap.IsOffline() {
		t.Fatalf("after 2 failures = %d offline=%v, want 2 true", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.RecordPoll(nil)
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsOffline() || snap.LastError != nil {
		t.Fatalf("after success = %+v, want reset", snap)
	}
}
