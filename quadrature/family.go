package quadrature

import (
	"fmt"
	"strings"
)

// Family selects which interval endpoints a Gauss type rule pins into its
// node set. The fixed endpoints determine the shifted Jacobi parameters
// used for the interior nodes and the endpoint weight factors.
type Family uint8

const (
	Gauss           Family = iota // no fixed endpoints
	GaussRadauLeft                // z = -1 fixed
	GaussRadauRight               // z = +1 fixed
	GaussLobatto                  // both endpoints fixed
)

func (f Family) String() string {
	switch f {
	case Gauss:
		return "Gauss"
	case GaussRadauLeft:
		return "GaussRadauLeft"
	case GaussRadauRight:
		return "GaussRadauRight"
	case GaussLobatto:
		return "GaussLobatto"
	}
	return fmt.Sprintf("Family(%d)", uint8(f))
}

func ParseFamily(name string) (f Family, err error) {
	switch strings.ToLower(name) {
	case "gauss", "gj":
		f = Gauss
	case "radauleft", "gaussradauleft", "grjm":
		f = GaussRadauLeft
	case "radauright", "gaussradauright", "grjp":
		f = GaussRadauRight
	case "lobatto", "gausslobatto", "glj":
		f = GaussLobatto
	default:
		err = fmt.Errorf("unknown quadrature family %q", name)
	}
	return
}
