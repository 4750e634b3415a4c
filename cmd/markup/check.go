package main

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/vango-dev/markup/internal/errors"
)

// checkMarkup tokenizes s and reports the first end tag that does not
// close the innermost open element, or the first element left open.
func checkMarkup(s string) error {
	z := html.NewTokenizer(strings.NewReader(s))
	var open []string

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return errors.Newf(errors.CategorySerialization, "markup check failed").Wrap(err)
			}
			if len(open) > 0 {
				return errors.Newf(errors.CategorySerialization, "markup check failed").
					WithDetailf("<%s> is never closed", open[len(open)-1])
			}
			return nil

		case html.StartTagToken:
			name, _ := z.TagName()
			open = append(open, string(name))

		case html.EndTagToken:
			name, _ := z.TagName()
			if len(open) == 0 || open[len(open)-1] != string(name) {
				return errors.Newf(errors.CategorySerialization, "markup check failed").
					WithDetailf("unexpected </%s>", name)
			}
			open = open[:len(open)-1]
		}
	}
}
