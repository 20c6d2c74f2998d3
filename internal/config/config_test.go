package config

import "testing"

func TestScreenSize(t *testing.T) {
	cases := []struct {
		name         string
		displayW     int
		displayH     int
		wantW, wantH int
	}{
		{name: "large display", displayW: 1920, displayH: 1080, wantW: 600, wantH: 800},
		{name: "exact max", displayW: 600, displayH: 800, wantW: 450, wantH: 650},
		{name: "small display", displayW: 500, displayH: 700, wantW: 350, wantH: 550},
		{name: "tiny display", displayW: 100, displayH: 100, wantW: PlayerWidth, wantH: PlayerHeight},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, h := ScreenSize(tc.displayW, tc.displayH)
			if w != tc.wantW || h != tc.wantH {
				t.Fatalf("ScreenSize(%d, %d) = (%d, %d), want (%d, %d)", tc.displayW, tc.displayH, w, h, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ROCKETDODGE_TEST_VALUE", "  debug ")
	if got := GetEnv("ROCKETDODGE_TEST_VALUE", "info"); got != "debug" {
		t.Fatalf("GetEnv trimmed = %q, want %q", got, "debug")
	}

	t.Setenv("ROCKETDODGE_TEST_BLANK", "   ")
	if got := GetEnv("ROCKETDODGE_TEST_BLANK", "info"); got != "info" {
		t.Fatalf("GetEnv blank = %q, want fallback", got)
	}

	if got := GetEnv("ROCKETDODGE_TEST_UNSET_KEY", "fallback"); got != "fallback" {
		t.Fatalf("GetEnv unset = %q, want fallback", got)
	}
}
