// Package data carries the built-in sample menu and FAQ seed. It is
// the fallback source when no menu file is configured; real
// deployments point MENU_PATH at a feed exported from dining services.
package data

import _ "embed"

//go:embed menu.json
var MenuJSON []byte

//go:embed faqs.json
var FAQsJSON []byte
