package integrator

import "testing"

func TestNew(t *testing.T) {
	if integ, err := New("path"); err != nil {
		t.Errorf("New(path) failed: %v", err)
	} else if _, ok := integ.(*PathTracingIntegrator); !ok {
		t.Errorf("Expected *PathTracingIntegrator, got %T", integ)
	}

	if integ, err := New("normals"); err != nil {
		t.Errorf("New(normals) failed: %v", err)
	} else if _, ok := integ.(*NormalIntegrator); !ok {
		t.Errorf("Expected *NormalIntegrator, got %T", integ)
	}

	for _, name := range []string{"", "bdpt", "Path"} {
		if _, err := New(name); err == nil {
			t.Errorf("Expected error for integrator %q", name)
		}
	}
}
