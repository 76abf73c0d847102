package fits

import "testing"

func TestParseSection(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Section
		ok   bool
	}{
		{"basic", "[1:100,1:50]", Section{X0: 0, X1: 100, Y0: 0, Y1: 50}, true},
		{"offset", "[21:2068,1:4096]", Section{X0: 20, X1: 2068, Y0: 0, Y1: 4096}, true},
		{"quoted", "'[1:10,1:10]'", Section{X0: 0, X1: 10, Y0: 0, Y1: 10}, true},
		{"spaces", " [ 1 : 8 , 2 : 9 ] ", Section{X0: 0, X1: 8, Y0: 1, Y1: 9}, true},
		{"placeholder", "[0:0,0:0]", Section{}, false},
		{"empty", "", Section{}, false},
		{"no brackets", "1:100,1:50", Section{}, false},
		{"one range", "[1:100]", Section{}, false},
		{"three ranges", "[1:2,3:4,5:6]", Section{}, false},
		{"not numbers", "[a:b,c:d]", Section{}, false},
		{"missing colon", "[1-100,1-50]", Section{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSection(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseSection(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseSection(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSectionClip(t *testing.T) {
	tests := []struct {
		name  string
		in    Section
		want  Section
		valid bool
	}{
		{"inside", Section{X0: 10, X1: 20, Y0: 10, Y1: 20}, Section{X0: 10, X1: 20, Y0: 10, Y1: 20}, true},
		{"overflow", Section{X0: 0, X1: 500, Y0: 0, Y1: 500}, Section{X0: 0, X1: 100, Y0: 0, Y1: 100}, true},
		{"negative start", Section{X0: -5, X1: 50, Y0: -5, Y1: 50}, Section{X0: 0, X1: 50, Y0: 0, Y1: 50}, true},
		{"inverted", Section{X0: 50, X1: 10, Y0: 0, Y1: 100}, Section{}, false},
		{"outside", Section{X0: 200, X1: 300, Y0: 0, Y1: 100}, Section{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, valid := tt.in.Clip(100, 100)
			if valid != tt.valid {
				t.Fatalf("Clip valid = %v, want %v", valid, tt.valid)
			}
			if valid && got != tt.want {
				t.Errorf("Clip = %+v, want %+v", got, tt.want)
			}
			if valid && (got.X0 >= got.X1 || got.Y0 >= got.Y1) {
				t.Errorf("Clip produced empty region %+v", got)
			}
		})
	}
}

func TestLookupSection(t *testing.T) {
	cards := map[string]string{
		"TRIMSEC": "[1:100,1:50]",
		"DATASEC": "[1:90,1:45]",
		"BROKEN":  "not a section",
	}

	keys := []string{"TRIMSEC", "DATASEC", "TRIMSEC0"}
	sec, ok := LookupSection(cards, keys)
	if !ok {
		t.Fatal("LookupSection found nothing, want TRIMSEC")
	}
	if want := (Section{X0: 0, X1: 100, Y0: 0, Y1: 50}); sec != want {
		t.Errorf("LookupSection = %+v, want %+v", sec, want)
	}

	// First key missing: falls through to the next candidate.
	sec, ok = LookupSection(cards, []string{"TRIMSEC0", "DATASEC"})
	if !ok {
		t.Fatal("LookupSection found nothing, want DATASEC")
	}
	if want := (Section{X0: 0, X1: 90, Y0: 0, Y1: 45}); sec != want {
		t.Errorf("LookupSection = %+v, want %+v", sec, want)
	}

	// First key present but unparseable: falls through as well.
	if _, ok := LookupSection(cards, []string{"BROKEN"}); ok {
		t.Error("LookupSection accepted an unparseable value")
	}
	sec, ok = LookupSection(cards, []string{"BROKEN", "TRIMSEC"})
	if !ok || sec.X1 != 100 {
		t.Errorf("LookupSection after broken key = %+v, ok=%v", sec, ok)
	}

	if _, ok := LookupSection(cards, []string{"NOPE", "", "ALSONOPE"}); ok {
		t.Error("LookupSection reported a section for absent keys")
	}
}
