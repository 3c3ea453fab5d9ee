package viewmodel

import (
	"reflect"
	"testing"

	"notoday/internal/testutil"
)

// TestBaseBusyCascade verifies isBusy notifies once, then isNotBusy once.
func TestBaseBusyCascade(t *testing.T) {
	vm := NewBase()
	recorder := &testutil.ChangeRecorder{}
	vm.Subscribe(recorder.Record)

	if !vm.SetBusy(true) {
		t.Fatalf("expected busy change")
	}
	changes := recorder.Changes()
	if len(changes) != 2 {
		t.Fatalf("expected 2 notifications, got %v", recorder.Names())
	}
	if changes[0].Name != PropertyIsBusy || changes[0].Value != true {
		t.Fatalf("unexpected first change: %+v", changes[0])
	}
	if changes[1].Name != PropertyIsNotBusy || changes[1].Value != false {
		t.Fatalf("unexpected second change: %+v", changes[1])
	}
	if vm.IsNotBusy() {
		t.Fatalf("expected IsNotBusy false while busy")
	}
}

// TestBaseBusySameValueIsSilent verifies repeating the current value notifies nothing.
func TestBaseBusySameValueIsSilent(t *testing.T) {
	vm := NewBase()
	recorder := &testutil.ChangeRecorder{}
	vm.Subscribe(recorder.Record)

	vm.SetBusy(false)
	if len(recorder.Changes()) != 0 {
		t.Fatalf("expected no notifications, got %v", recorder.Names())
	}
	vm.SetBusy(true)
	recorder.Reset()
	vm.SetBusy(true)
	if len(recorder.Changes()) != 0 {
		t.Fatalf("expected no notifications, got %v", recorder.Names())
	}
}

// TestBaseDateIsIndependent verifies the date label does not touch busy state.
func TestBaseDateIsIndependent(t *testing.T) {
	vm := NewBase()
	recorder := &testutil.ChangeRecorder{}
	vm.Subscribe(recorder.Record)

	vm.SetDate("Monday")
	if !reflect.DeepEqual(recorder.Names(), []string{PropertyDate}) {
		t.Fatalf("unexpected notifications: %v", recorder.Names())
	}
	if vm.Date() != "Monday" || vm.IsBusy() {
		t.Fatalf("unexpected state: date=%q busy=%v", vm.Date(), vm.IsBusy())
	}
}
