package restart

import "testing"

func TestNextIndex(t *testing.T) {
	cases := []struct {
		tmpl, name string
		errval     int
		want       int
	}{
		{"s-####.h5", "s-0041.h5", -1, 42},
		{"s-####.h5", "s-0000.h5", -1, 1},
		{"s-####.h5", "s-9999.h5", -1, 10000},
		{"s-####.h5", "other.h5", -1, 0},
		{"s-####.h5", "s-abcd.h5", -1, 0},
		{"s-####.h5", "s-00041.h5", -1, 42}, // extra leading zero still parses numerically
		{"noslot.h5", "noslot.h5", -1, -1},
	}
	for _, c := range cases {
		got := NextIndex(c.tmpl, c.name, c.errval)
		if got != c.want {
			t.Errorf("NextIndex(%q, %q, %d) = %d, want %d", c.tmpl, c.name, c.errval, got, c.want)
		}
	}
}

func TestParseTemplate(t *testing.T) {
	tmpl, err := ParseTemplate("/tmp/restart/s-####.h5")
	if err != nil {
		t.Fatalf("ParseTemplate: %v", err)
	}
	if tmpl.Dir != "/tmp/restart" || tmpl.Prefix != "s-" || tmpl.Suffix != ".h5" || tmpl.HashCount != 4 {
		t.Errorf("ParseTemplate = %+v, unexpected fields", tmpl)
	}
	if got := tmpl.format(6, 42); got != "s-000042.h5" {
		t.Errorf("format = %q, want s-000042.h5", got)
	}
}

func TestParseTemplateRejectsMalformed(t *testing.T) {
	for _, tmpl := range []string{"noslot.h5", "s-##-##.h5"} {
		if _, err := ParseTemplate(tmpl); err == nil {
			t.Errorf("ParseTemplate(%q): want error, got nil", tmpl)
		}
	}
}
