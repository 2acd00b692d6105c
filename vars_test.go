package calc_test

import (
	"reflect"
	"testing"

	"github.com/zephyrtronium/calc"
)

func TestVars(t *testing.T) {
	v := calc.NewVars()
	if v.Has("x") || v.Get("x") != 0 || v.Len() != 0 {
		t.Fatal("new vars not empty")
	}
	// Get does not define.
	if v.Has("x") {
		t.Error("Get defined x")
	}
	v.Set("x", 1)
	v.Set("y", 2)
	v.Set("x", 3)
	if !v.Has("x") || v.Get("x") != 3 {
		t.Errorf("want x = 3, got %g (defined: %t)", v.Get("x"), v.Has("x"))
	}
	if v.Len() != 2 {
		t.Errorf("want 2 variables, got %d", v.Len())
	}
	all := v.All()
	if want := map[string]float64{"x": 3, "y": 2}; !reflect.DeepEqual(all, want) {
		t.Errorf("want %v, got %v", want, all)
	}
	// All is a copy.
	all["z"] = 4
	if v.Has("z") {
		t.Error("modifying All changed the variables")
	}
	v.Clear()
	for _, name := range []string{"x", "y", "z"} {
		if v.Has(name) {
			t.Errorf("%s defined after Clear", name)
		}
	}
	if v.Len() != 0 || len(v.All()) != 0 {
		t.Error("variables left after Clear")
	}
	v.Set("x", 5)
	if v.Get("x") != 5 {
		t.Error("Set after Clear failed")
	}
}

func TestVarsZero(t *testing.T) {
	var v calc.Vars
	if v.Has("a") || v.Get("a") != 0 || len(v.All()) != 0 {
		t.Error("zero vars not empty")
	}
	v.Clear()
	v.Set("a", 1)
	if v.Get("a") != 1 {
		t.Error("zero vars not settable")
	}
}

func TestValidName(t *testing.T) {
	cases := []struct {
		s  string
		ok bool
	}{
		{"x", true},
		{"X", true},
		{"abc", true},
		{"x1", true},
		{"total2go", true},
		{"Inf", true},
		{"", false},
		{"1x", false},
		{"_x", false},
		{"x_y", false},
		{"x-y", false},
		{"x y", false},
		{"é", false},
		{"xé", false},
		{"x.y", false},
	}
	for _, c := range cases {
		if got := calc.ValidName(c.s); got != c.ok {
			t.Errorf("ValidName(%q): want %t, got %t", c.s, c.ok, got)
		}
	}
}
