package content

import _ "embed"

//go:embed site.yaml
var siteYAML []byte
