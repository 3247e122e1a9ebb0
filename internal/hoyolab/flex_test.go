package hoyolab

import (
	"encoding/json"
	"testing"
)

func TestFlexScalars(t *testing.T) {
	var v struct {
		A Int    `json:"a"`
		B Int    `json:"b"`
		C Int    `json:"c"`
		D Float  `json:"d"`
		E Float  `json:"e"`
		F Float  `json:"f"`
		G String `json:"g"`
		H String `json:"h"`
		I Bool   `json:"i"`
		J Bool   `json:"j"`
	}
	in := `{"a":54,"b":"945","c":"n/a","d":"46.6%","e":null,"f":"NaN","g":12,"h":"x","i":1,"j":"false"}`
	if err := json.Unmarshal([]byte(in), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.A != 54 || v.B != 945 || v.C != 0 {
		t.Fatalf("unexpected ints %d %d %d", v.A, v.B, v.C)
	}
	if v.D != 46.6 || v.E != 0 || v.F != 0 {
		t.Fatalf("unexpected floats %v %v %v", v.D, v.E, v.F)
	}
	if v.G != "12" || v.H != "x" {
		t.Fatalf("unexpected strings %q %q", v.G, v.H)
	}
	if !v.I || v.J {
		t.Fatalf("unexpected bools %v %v", v.I, v.J)
	}
}

func TestParseNumeric(t *testing.T) {
	cases := map[string]float64{"3.5": 3.5, " 46.6% ": 46.6, "0": 0, "15552": 15552}
	for in, want := range cases {
		got, ok := ParseNumeric(in)
		if !ok || got != want {
			t.Fatalf("ParseNumeric(%q) = %v,%v; want %v", in, got, ok, want)
		}
	}
	for _, in := range []string{"", "%", "abc", "Inf"} {
		if _, ok := ParseNumeric(in); ok {
			t.Fatalf("expected ParseNumeric(%q) to fail", in)
		}
	}
}

func TestFlexContainers(t *testing.T) {
	var v struct {
		A List[RelicSet] `json:"a"`
		B List[RelicSet] `json:"b"`
		C Map[RelicSet]  `json:"c"`
		D Map[RelicSet]  `json:"d"`
		E RelicSet       `json:"e"`
		F *RelicSet      `json:"f"`
		G *RelicSet      `json:"g"`
	}
	in := `{"a":[{"id":1,"name":"Gladiator"},"",7],"b":"","c":[],"d":{"x":{"name":"Shimenawa"}},"e":"","f":null,"g":0}`
	if err := json.Unmarshal([]byte(in), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.A) != 3 || v.A[0].Name != "Gladiator" || v.A[1] != (RelicSet{}) || v.A[2] != (RelicSet{}) {
		t.Fatalf("unexpected list %#v", v.A)
	}
	if v.B != nil || v.C != nil {
		t.Fatalf("expected nil containers, got %#v %#v", v.B, v.C)
	}
	if v.D["x"].Name != "Shimenawa" {
		t.Fatalf("unexpected map %#v", v.D)
	}
	if v.E != (RelicSet{}) || v.F != nil || v.G == nil || *v.G != (RelicSet{}) {
		t.Fatalf("unexpected objects %#v %#v %#v", v.E, v.F, v.G)
	}
}
