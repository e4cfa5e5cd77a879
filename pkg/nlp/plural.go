package nlp

import "fmt"

// PluralForms holds the three Russian plural forms of a counted noun:
// one (1 минута), few (2 минуты), many (5 минут).
type PluralForms struct {
	One  string
	Few  string
	Many string
}

// Pluralize renders "n <form>" following the Russian three-form rule:
// n%10==1 unless n%100==11 selects the one-form, n%10 in 2..4 unless
// n%100 in 12..14 selects the few-form, everything else the many-form.
func Pluralize(n int, forms PluralForms) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs%10 == 1 && abs%100 != 11:
		return fmt.Sprintf("%d %s", n, forms.One)
	case abs%10 >= 2 && abs%10 <= 4 && (abs%100 < 12 || abs%100 > 14):
		return fmt.Sprintf("%d %s", n, forms.Few)
	default:
		return fmt.Sprintf("%d %s", n, forms.Many)
	}
}
