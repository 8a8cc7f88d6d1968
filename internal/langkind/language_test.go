package langkind

import "testing"

func TestDefaultFromLocale(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		locale string
		want   LanguageKind
	}{
		"empty defaults to english":    {"", English},
		"posix c defaults to english":  {"C", English},
		"french":                       {"fr_FR.UTF-8", French},
		"german no region":             {"de", German},
		"japanese":                     {"ja_JP", Japanese},
		"unrecognized defaults to en":  {"xx_YY", English},
		"swahili":                      {"sw_TZ", Swahili},
		"simplified chinese resolves":  {"zh_CN", Chinese},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := DefaultFromLocale(tc.locale); got != tc.want {
				t.Fatalf("DefaultFromLocale(%q) = %v, want %v", tc.locale, got, tc.want)
			}
		})
	}
}
