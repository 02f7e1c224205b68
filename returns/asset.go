package returns

import (
	"fmt"
	"strings"
)

// Asset identifies one of the asset classes of a portfolio.
type Asset int

const (
	Equities Asset = iota
	Bonds
	Bitcoin
)

// Assets lists all asset classes in their canonical order.
var Assets = []Asset{Equities, Bonds, Bitcoin}

func (a Asset) String() string {
	switch a {
	case Equities:
		return "equities"
	case Bonds:
		return "bonds"
	case Bitcoin:
		return "bitcoin"
	default:
		return fmt.Sprintf("Asset(%d)", int(a))
	}
}

// ParseAsset parses an asset class name. It accepts a few common aliases.
func ParseAsset(s string) (Asset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "equities", "equity", "stocks", "stock":
		return Equities, nil
	case "bonds", "bond":
		return Bonds, nil
	case "bitcoin", "btc":
		return Bitcoin, nil
	}
	return 0, fmt.Errorf("unknown asset %q, want one of equities, bonds or bitcoin", s)
}
