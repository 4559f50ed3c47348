/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SomethingNew71/UltraLog/internal/ingest"
	"github.com/SomethingNew71/UltraLog/internal/normalize"
)

func writeHaltechFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()
	fmt.Fprint(f, "%DataLog%\nTime,RPM1\ns,rpm\n")
	for i := 0; i < 10; i++ {
		fmt.Fprintf(f, "%d,%d\n", i, 1000+i)
	}
	return path
}

func waitReady(t *testing.T, w *Workspace, id ingest.TicketID) ingest.Status {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		st, err := w.Poll(id)
		if err != nil {
			t.Fatalf("Poll: %v", err)
		}
		if st.State != ingest.StateLoading {
			return st
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("ticket never left Loading state")
	return ingest.Status{}
}

func TestSubmitAddTabAppliesNormalizationRename(t *testing.T) {
	dir := t.TempDir()
	path := writeHaltechFile(t, dir, "a.csv")

	w := New(normalize.DefaultTable(), 1)
	id, err := w.Submit(path)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	st := waitReady(t, w, id)
	if st.State != ingest.StateReady {
		t.Fatalf("state = %v, err = %v", st.State, st.Err)
	}

	idx := w.AddTab(st.Path, st.Log)
	tabs := w.Tabs()
	if len(tabs) != 1 || idx != 0 {
		t.Fatalf("expected exactly one tab at index 0, got %d tabs, idx=%d", len(tabs), idx)
	}

	ch := tabs[0].Log().Channel(0)
	if ch.DisplayName() != "RPM" {
		t.Errorf("DisplayName = %q, want RPM (RPM1 alias applied)", ch.DisplayName())
	}
}

func TestTabIDForPathDetectsOpenTabAndBlocksDuplicateSubmit(t *testing.T) {
	dir := t.TempDir()
	path := writeHaltechFile(t, dir, "b.csv")

	w := New(normalize.DefaultTable(), 1)
	id, err := w.Submit(path)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	st := waitReady(t, w, id)
	w.AddTab(st.Path, st.Log)

	if _, err := w.Submit(path); err == nil {
		t.Fatal("expected DuplicatePath error on second submit of an open tab's path")
	} else if _, ok := err.(*ingest.DuplicatePath); !ok {
		t.Errorf("err = %T, want *ingest.DuplicatePath", err)
	}
}

func TestCloseActiveAdjustsActiveIndex(t *testing.T) {
	dir := t.TempDir()
	w := New(normalize.DefaultTable(), 1)

	for _, name := range []string{"a.csv", "b.csv"} {
		path := writeHaltechFile(t, dir, name)
		id, err := w.Submit(path)
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		st := waitReady(t, w, id)
		w.AddTab(st.Path, st.Log)
	}

	if w.ActiveIndex() != 1 {
		t.Fatalf("ActiveIndex = %d, want 1 (most recently added)", w.ActiveIndex())
	}

	w.CloseActive()
	if w.ActiveIndex() != 0 {
		t.Errorf("ActiveIndex after close = %d, want 0", w.ActiveIndex())
	}
	if len(w.Tabs()) != 1 {
		t.Errorf("len(Tabs()) = %d, want 1", len(w.Tabs()))
	}

	w.CloseActive()
	if w.ActiveIndex() != -1 {
		t.Errorf("ActiveIndex after closing last tab = %d, want -1", w.ActiveIndex())
	}
	if w.Active() != nil {
		t.Error("Active() should be nil with no tabs open")
	}
}

func TestSetActiveClampsToRange(t *testing.T) {
	w := New(normalize.DefaultTable(), 1)
	w.SetActive(5)
	if w.ActiveIndex() != -1 {
		t.Errorf("ActiveIndex with no tabs = %d, want -1", w.ActiveIndex())
	}
}
