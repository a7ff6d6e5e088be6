package configs

import "strings"

// GetBrandImage maps a brand name to its bundled image path.
func GetBrandImage(brand string) string {
	if brand == "" {
		return "/images/Apple.jpeg"
	}
	formatted := strings.ToUpper(brand[:1]) + strings.ToLower(brand[1:])

	switch formatted {
	case "Blackberry":
		return "/images/BlackBerry.jpeg"
	case "Htc":
		return "/images/HTC.jpeg"
	case "Huawei":
		return "/images/Huawei.jpeg"
	case "Lg":
		return "/images/LG.jpeg"
	case "Motorola":
		return "/images/Motorola.jpeg"
	case "Nokia":
		return "/images/Nokia.jpeg"
	case "Samsung":
		return "/images/Samsung.jpeg"
	case "Sony":
		return "/images/Sony.jpeg"
	default:
		return "/images/Apple.jpeg"
	}
}
