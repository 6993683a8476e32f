// internal/component/securable.go
package component

import "go-hex-territory/internal/secure"

// Securable объект с зоной захвата вокруг
type Securable struct {
	Zone *secure.Zone
}
