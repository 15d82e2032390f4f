// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langtag_test

import (
	"fmt"

	"github.com/langmatch/langmatch/langtag"
)

func ExampleBestMatch() {
	available, _ := langtag.ParseAll("en", "sv-FI", "sv", "zh-Hans", "zh-Hant")

	for _, s := range []string{"sv-SE", "sv-FI", "zh-HK", "zh-SG", "de"} {
		got, ok := langtag.BestMatch(langtag.MustParse(s), available)
		fmt.Println(s, "->", got, ok)
	}
	// Output:
	// sv-SE -> sv true
	// sv-FI -> sv-FI true
	// zh-HK -> zh-Hant true
	// zh-SG -> zh-Hans true
	// de -> und false
}

func ExampleInferChineseScript() {
	fmt.Println(langtag.InferChineseScript(langtag.Tag{Language: "zh", Region: "MO"}))
	fmt.Println(langtag.InferChineseScript(langtag.Tag{Language: "zh", Region: "US"}))
	// Output:
	// zh-hant-MO
	// zh-US
}
