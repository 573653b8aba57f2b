// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagged_test

import (
	"testing"

	"code.hybscloud.com/tagged"
)

func TestStorageConstructDestroy(t *testing.T) {
	var c counters
	var s tagged.Storage[widget, string]

	s.ConstructA(newWidget(&c, 7))
	if s.A().id != 7 {
		t.Fatalf("got id %d, want 7", s.A().id)
	}

	// change of kind is destroy then construct
	s.DestroyA()
	if s.A().c != nil {
		t.Fatal("DestroyA should zero the slot")
	}
	s.ConstructB("b")
	if *s.B() != "b" {
		t.Fatalf("got %q, want b", *s.B())
	}
	s.DestroyB()
	if *s.B() != "" {
		t.Fatal("DestroyB should zero the slot")
	}

	checkCounters(t, &c, 1, 0, 1)
}

func TestStorageAccessorsAlias(t *testing.T) {
	var s tagged.Storage[int, tagged.Void]
	s.ConstructA(1)
	*s.A() = 2
	if *s.A() != 2 {
		t.Fatalf("got %d, want 2", *s.A())
	}
}
