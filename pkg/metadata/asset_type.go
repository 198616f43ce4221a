package metadata

import (
	"fmt"
	"strings"
)

type AssetType string

const (
	TypeLaptop  AssetType = "laptop"
	TypeDesktop AssetType = "desktop"
	TypeMobile  AssetType = "mobile"
	TypeTablet  AssetType = "tablet"
	TypeOther   AssetType = "other"
)

func NewAssetType(value string) (AssetType, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	assetType := AssetType(normalized)
	if !assetType.IsValid() {
		return "", fmt.Errorf(
			"invalid asset type %q, only valid values are: %s, %s, %s, %s, %s",
			value, TypeLaptop, TypeDesktop, TypeMobile, TypeTablet, TypeOther,
		)
	}
	return assetType, nil
}

func (t AssetType) IsValid() bool {
	switch t {
	case TypeLaptop, TypeDesktop, TypeMobile, TypeTablet, TypeOther:
		return true
	default:
		return false
	}
}

func (t AssetType) String() string {
	return string(t)
}
