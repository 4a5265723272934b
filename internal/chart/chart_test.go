package chart

import (
	"reflect"
	"testing"
)

func TestRegenerate_Range(t *testing.T) {
	r := NewRand(1)
	for i := 0; i < 200; i++ {
		data := Regenerate(r)
		if len(data) != Bars {
			t.Fatalf("len = %d, want %d", len(data), Bars)
		}
		for _, v := range data {
			if v < 0 || v >= Max {
				t.Fatalf("value %d out of [0, %d)", v, Max)
			}
		}
	}
}

func TestRegenerate_SeedIsRepeatable(t *testing.T) {
	a := Regenerate(NewRand(42))
	b := Regenerate(NewRand(42))
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestDefault(t *testing.T) {
	d := Default()
	d[0] = 99
	if Default()[0] != 30 {
		t.Error("Default() returned shared storage")
	}
}
