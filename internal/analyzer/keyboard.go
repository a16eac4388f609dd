package analyzer

import "sync"

const keyboardWindow = 4

// Keyboard rows and columns on a US layout.
var keyboardLines = []string{
	"1234567890",
	"!@#$%^&*()",
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
	"1qaz", "2wsx", "3edc", "4rfv", "5tgb", "6yhn", "7ujm",
	"zaq1", "xsw2", "cde3", "vfr4",
}

// keyboardWindows returns every 4-character slice of each line, forward and reversed.
var keyboardWindows = sync.OnceValue(func() []string {
	seen := map[string]struct{}{}
	var out []string
	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, line := range keyboardLines {
		for _, l := range []string{line, reverse(line)} {
			for i := 0; i+keyboardWindow <= len(l); i++ {
				add(l[i : i+keyboardWindow])
			}
		}
	}
	return out
})

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
